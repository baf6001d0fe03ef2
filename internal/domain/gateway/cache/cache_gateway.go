package cache

import (
	"context"
	"time"

	"todo-api/internal/domain/model"
)

// CacheGateway is the caching boundary. Get reports a miss through its
// boolean result; only infrastructure failures surface as errors.
type CacheGateway interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	Health() model.ComponentHealthStatus
}
