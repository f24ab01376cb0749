package integration

import "context"

// RateLimiter gates repeated actions per identity key. Implementations fail
// open: if the backing store is unreachable the action is allowed.
type RateLimiter interface {
	// Allow reports whether the action identified by key may proceed
	Allow(ctx context.Context, key string) (bool, error)
}
