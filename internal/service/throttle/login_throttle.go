package throttle

import (
	"context"
	"strconv"
	"time"

	"gadgetmart-auth/pkg/cache"
	xerrors "gadgetmart-auth/pkg/xerrors"
)

const namespace = "login_fail"

// LoginThrottle tracks failed login attempts per client address in redis.
// INCR with an armed TTL keeps the counter atomic under concurrent requests
// and shared across instances, and the window resets itself on expiry.
type LoginThrottle struct {
	cache       *cache.Cache
	maxFailures int64
	window      time.Duration
}

func NewLoginThrottle(c *cache.Cache, maxFailures int64, window time.Duration) *LoginThrottle {
	return &LoginThrottle{
		cache:       c,
		maxFailures: maxFailures,
		window:      window,
	}
}

// Check rejects the attempt when the address already reached the failure
// budget inside the current window. Redis being unreachable fails open so an
// outage doesn't lock every user out.
func (t *LoginThrottle) Check(ctx context.Context, addr string) error {
	count, err := t.cache.Get(ctx, namespace, addr)
	if err != nil {
		return nil
	}
	if parsed, err := strconv.ParseInt(count, 10, 64); err == nil && parsed >= t.maxFailures {
		return xerrors.ErrLoginThrottled
	}
	return nil
}

// Fail records one failed attempt for the address.
func (t *LoginThrottle) Fail(ctx context.Context, addr string) {
	_, _ = t.cache.IncrWithExpire(ctx, namespace, addr, t.window)
}

// Clear drops the counter after a successful first factor.
func (t *LoginThrottle) Clear(ctx context.Context, addr string) {
	_ = t.cache.Delete(ctx, namespace, addr)
}
