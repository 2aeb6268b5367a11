package interfaces

import (
	"context"
	"time"
)

// ReleaseFunc gives a lock back before its ttl runs out.
type ReleaseFunc func(ctx context.Context) error

// ILocker serializes scheduled jobs across replicas. ok is false when another
// holder owns the key.
type ILocker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (release ReleaseFunc, ok bool, err error)
}
