package lock

import (
	"context"
	"errors"
)

// ErrNotAcquired is returned when a lock could not be taken before the
// context ended or the wait timed out.
var ErrNotAcquired = errors.New("lock not acquired")

// ReleaseFunc releases a held lock
type ReleaseFunc func(ctx context.Context) error

// Locker serializes work on a key, such as one schedule, across requests
type Locker interface {
	Lock(ctx context.Context, key string) (ReleaseFunc, error)
}
