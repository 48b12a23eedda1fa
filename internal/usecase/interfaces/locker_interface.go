package interfaces

import (
	"context"
	"time"
)

// ILocker provides short-lived mutual exclusion keyed by string. Acquire
// returns ErrLockNotAcquired when the key is held; the returned release
// func must be called once the critical section ends.
type ILocker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(context.Context), err error)
}
