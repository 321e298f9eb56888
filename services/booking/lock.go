package booking

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"barberbook/utils"
)

const (
	lockKeyPrefix  = "bookingLock:"
	lockTTL        = 5 * time.Second
	lockRetries    = 20
	lockRetryDelay = 50 * time.Millisecond
)

// releaseScript deletes the lock only if it still holds our token, so
// an expired lock taken over by another booking is never released.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisDateLocker serializes the booking path per calendar date with a
// SETNX lock. The TTL bounds how long a crashed holder can block a
// date.
type RedisDateLocker struct {
	Client *redis.Client
}

func (l *RedisDateLocker) Lock(ctx context.Context, date string) (func(), error) {
	key := lockKeyPrefix + date
	token := uuid.New().String()

	for attempt := 0; attempt < lockRetries; attempt++ {
		ok, err := l.Client.SetNX(ctx, key, token, lockTTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			return func() {
				if err := releaseScript.Run(context.Background(), l.Client, []string{key}, token).Err(); err != nil && err != redis.Nil {
					utils.GetLogger().Warn("failed to release booking lock",
						zap.String("date", date), zap.Error(err))
				}
			}, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}
	return nil, ErrDateBusy
}
