package redis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock key only when it still holds this owner's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// TaskLock is a best-effort distributed lock for scheduled tasks, so that a
// job configured on multiple instances runs on exactly one of them per tick.
type TaskLock struct {
	client *Client
	key    string
	token  string
	ttl    time.Duration
}

// NewTaskLock creates a lock on the given key held for at most ttl.
func NewTaskLock(client *Client, key string, ttl time.Duration) *TaskLock {
	return &TaskLock{
		client: client,
		key:    "lock::" + key,
		token:  uuid.NewString(),
		ttl:    ttl,
	}
}

// TryAcquire attempts to take the lock without blocking.
// It reports whether this instance now holds the lock.
func (l *TaskLock) TryAcquire(ctx context.Context) (bool, error) {
	return l.client.SetNX(ctx, l.key, l.token, l.ttl)
}

// Release frees the lock if it is still held by this instance.
func (l *TaskLock) Release(ctx context.Context) error {
	return releaseScript.Run(ctx, l.client.GetClient(), []string{l.key}, l.token).Err()
}
