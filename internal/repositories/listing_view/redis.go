package listingview

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/pokemon-explorer/internal/errors"
	"github.com/KirkDiggler/pokemon-explorer/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/pokemon-explorer/internal/redis"
)

// Key pattern: listing_view:{view_id}
const viewKeyPrefix = "listing_view:"

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// NewRedis creates a new Redis repository for listing views
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Create stores a view with its TTL as the key expiry
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.ViewID == "" {
		return nil, errors.InvalidArgument(errViewIDEmpty)
	}
	if input.TTL < 0 {
		return nil, errors.InvalidArgument(errNegativeTTL)
	}

	view := newView(input, r.clock.Now())

	viewJSON, err := json.Marshal(view)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal listing view")
	}

	ttl := view.ExpiresAt.Sub(view.CreatedAt)
	if err := r.client.Set(ctx, r.buildKey(view.ViewID), viewJSON, ttl).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store listing view in Redis")
	}

	return &CreateOutput{View: view}, nil
}

// Get retrieves a live view
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ViewID == "" {
		return nil, errors.InvalidArgument(errViewIDEmpty)
	}

	key := r.buildKey(input.ViewID)

	viewJSON, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFound("listing view not found")
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get listing view from Redis")
	}

	var view View
	if err := json.Unmarshal(viewJSON, &view); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal listing view")
	}

	// key expiry and the stored deadline can disagree when clocks drift
	if r.clock.Now().After(view.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("listing view has expired")
	}

	return &GetOutput{View: &view}, nil
}

func (r *redisRepository) buildKey(viewID string) string {
	return fmt.Sprintf("%s%s", viewKeyPrefix, viewID)
}
