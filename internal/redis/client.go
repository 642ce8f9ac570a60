// Package redis wraps go-redis for the listing view store.
package redis

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokemon-explorer/internal/errors"
)

// Nil is returned by reads of a missing key
const Nil = redis.Nil

// Options tune the connection pool. Zero values keep go-redis defaults.
// Options given here override any set in a URL endpoint.
type Options struct {
	Password    string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
}

// NewClient creates a client for a single instance. The endpoint is either
// host:port or a redis:// or rediss:// URL. No connection is made until the
// first command; use Ping to check reachability.
func NewClient(endpoint string, opts *Options) (Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis endpoint is required")
	}

	redisOpts := &redis.Options{Addr: endpoint}
	if strings.HasPrefix(endpoint, "redis://") || strings.HasPrefix(endpoint, "rediss://") {
		parsed, err := redis.ParseURL(endpoint)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis url")
		}
		redisOpts = parsed
	}

	if opts != nil {
		if opts.Password != "" {
			redisOpts.Password = opts.Password
		}
		if opts.DB != 0 {
			redisOpts.DB = opts.DB
		}
		if opts.PoolSize > 0 {
			redisOpts.PoolSize = opts.PoolSize
		}
		if opts.DialTimeout > 0 {
			redisOpts.DialTimeout = opts.DialTimeout
		}
	}

	return redis.NewClient(redisOpts), nil
}

// Ping checks that the server answers within the context deadline.
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis ping failed")
	}
	return nil
}
