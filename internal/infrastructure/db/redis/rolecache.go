package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/medistaff/staffdir/internal/core/domain"
)

const (
	roleCacheKey = "staffdir:roles"
	roleCacheTTL = 5 * time.Minute
)

// RoleCache is a best-effort Redis cache for the role catalog. Staleness is
// bounded by roleCacheTTL plus explicit invalidation on writes. Any Redis
// failure degrades to a cache miss; the caller falls through to the
// repository.
type RoleCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewRoleCache creates a RoleCache wrapping the given Redis client.
func NewRoleCache(client *redis.Client, log zerolog.Logger) *RoleCache {
	return &RoleCache{client: client, log: log}
}

func (c *RoleCache) Get(ctx context.Context) ([]domain.Role, bool) {
	raw, err := c.client.Get(ctx, roleCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Debug().Err(err).Msg("role cache read failed")
		}
		return nil, false
	}

	var roles []domain.Role
	if err := json.Unmarshal(raw, &roles); err != nil {
		c.log.Debug().Err(err).Msg("role cache payload corrupt")
		return nil, false
	}
	return roles, true
}

func (c *RoleCache) Set(ctx context.Context, roles []domain.Role) {
	raw, err := json.Marshal(roles)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, roleCacheKey, raw, roleCacheTTL).Err(); err != nil {
		c.log.Debug().Err(err).Msg("role cache write failed")
	}
}

func (c *RoleCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, roleCacheKey).Err(); err != nil {
		c.log.Debug().Err(err).Msg("role cache invalidation failed")
	}
}
