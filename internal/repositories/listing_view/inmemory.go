package listingview

import (
	"context"
	"sync"

	"github.com/KirkDiggler/pokemon-explorer/internal/errors"
	"github.com/KirkDiggler/pokemon-explorer/internal/pkg/clock"
)

// InMemoryConfig holds the dependencies for the in-memory repository
type InMemoryConfig struct {
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *InMemoryConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

// InMemoryRepository implements Repository for a single process
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	views map[string]*View
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new in-memory repository
func NewInMemory(cfg *InMemoryConfig) (*InMemoryRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &InMemoryRepository{
		clock: cfg.Clock,
		views: make(map[string]*View),
	}, nil
}

// Create stores a view and drops any views that have expired
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.ViewID == "" {
		return nil, errors.InvalidArgument(errViewIDEmpty)
	}
	if input.TTL < 0 {
		return nil, errors.InvalidArgument(errNegativeTTL)
	}

	now := r.clock.Now()
	view := newView(input, now)

	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.views {
		if now.After(existing.ExpiresAt) {
			delete(r.views, id)
		}
	}
	r.views[view.ViewID] = view

	return &CreateOutput{View: copyView(view)}, nil
}

// Get retrieves a live view
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ViewID == "" {
		return nil, errors.InvalidArgument(errViewIDEmpty)
	}

	r.mu.RLock()
	view, exists := r.views[input.ViewID]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFound("listing view not found")
	}

	now := r.clock.Now()
	if !now.After(view.ExpiresAt) {
		return &GetOutput{View: copyView(view)}, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// a Create may have replaced the view since the read lock was released
	current, exists := r.views[input.ViewID]
	if exists && !now.After(current.ExpiresAt) {
		return &GetOutput{View: copyView(current)}, nil
	}
	if exists {
		delete(r.views, input.ViewID)
	}
	return nil, errors.NotFound("listing view has expired")
}

// Len reports how many views are held, expired ones included
func (r *InMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.views)
}

// copyView returns a copy whose slice can be reordered by callers without
// touching the stored view
func copyView(v *View) *View {
	out := *v
	out.Pokemon = append(v.Pokemon[:0:0], v.Pokemon...)
	return &out
}
