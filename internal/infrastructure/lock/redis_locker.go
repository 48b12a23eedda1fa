package lock

import (
	"context"
	"time"

	"equine_billing/internal/usecase/interfaces"
	"equine_billing/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`)

// RedisLocker hands out expiring exclusive locks backed by SET NX.
type RedisLocker struct {
	client redis.UniversalClient
	prefix string
}

var _ interfaces.ILocker = (*RedisLocker)(nil)

func NewRedisLocker(client redis.UniversalClient) *RedisLocker {
	return &RedisLocker{client: client, prefix: "lock:"}
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
}

// Acquire takes the lock or fails with ErrLockNotAcquired. The lock expires
// after ttl even if release is never called.
func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(context.Context), error) {
	name := l.prefix + key
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, name, token, ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, interfaces.ErrLockNotAcquired
	}

	release := func(ctx context.Context) {
		if err := releaseScript.Run(ctx, l.client, []string{name}, token).Err(); err != nil {
			logger.FromContext(ctx).WithError(err).WithField("lock", name).Warn("[lock] release failed")
		}
	}
	return release, nil
}
