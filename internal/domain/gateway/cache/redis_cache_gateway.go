package cache

import (
	"context"
	"errors"
	"time"

	"todo-api/internal/domain/model"
	"todo-api/pkg/redis"
)

const healthTimeout = 2 * time.Second

type RedisCacheGateway struct {
	client *redis.Client
}

var _ CacheGateway = (*RedisCacheGateway)(nil)

func NewRedisCacheGateway(client *redis.Client) *RedisCacheGateway {
	return &RedisCacheGateway{client: client}
}

func (gateway *RedisCacheGateway) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	err := gateway.client.GetJSON(ctx, key, dest)
	if err != nil {
		if errors.Is(err, redis.ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (gateway *RedisCacheGateway) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	return gateway.client.SetJSON(ctx, key, value, ttl)
}

func (gateway *RedisCacheGateway) Delete(ctx context.Context, keys ...string) error {
	return gateway.client.Delete(ctx, keys...)
}

func (gateway *RedisCacheGateway) Health() model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
	defer cancel()

	if err := gateway.client.Ping(ctx); err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"message": err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"message": "connected",
		},
	}
}
