package services

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// OutboundThrottle is a fixed-window counter limiting calls to one upstream.
// The budget is shared process-wide (and across processes through Redis):
// the registries rate-limit by source IP, so it cannot be per-caller. Redis
// INCR keeps the increment atomic; when Redis is down a mutex-guarded local
// window stands in, which narrows the budget to this process but never lets
// it overshoot.
type OutboundThrottle struct {
	client *redis.Client
	logger *logrus.Logger

	key         string
	maxRequests int
	window      time.Duration

	mu          sync.Mutex
	windowStart time.Time
	count       int
}

// NewOutboundThrottle creates a throttle for one named upstream
func NewOutboundThrottle(client *redis.Client, name string, maxRequests int, window time.Duration, logger *logrus.Logger) *OutboundThrottle {
	return &OutboundThrottle{
		client:      client,
		logger:      logger,
		key:         "throttle:outbound:" + name,
		maxRequests: maxRequests,
		window:      window,
	}
}

// Allow reports whether another upstream call fits in the current window.
// The first call of a window starts the counter with the window-length expiry;
// the counter resets only through that expiry.
func (t *OutboundThrottle) Allow(ctx context.Context) bool {
	if t.client != nil {
		allowed, err := t.allowRedis(ctx)
		if err == nil {
			return allowed
		}
		t.logger.WithFields(logrus.Fields{
			"key":   t.key,
			"error": err.Error(),
		}).Warn("Redis throttle error, falling back to local window")
	}
	return t.allowLocal()
}

func (t *OutboundThrottle) allowRedis(ctx context.Context) (bool, error) {
	count, err := t.client.Incr(ctx, t.key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		// First hit of the window owns setting the expiry.
		if err := t.client.Expire(ctx, t.key, t.window).Err(); err != nil {
			return false, err
		}
	}
	if count > int64(t.maxRequests) {
		t.logger.WithFields(logrus.Fields{
			"key":   t.key,
			"count": count,
			"max":   t.maxRequests,
		}).Warn("Outbound throttle denied upstream call")
		return false, nil
	}
	return true, nil
}

func (t *OutboundThrottle) allowLocal() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	if t.windowStart.IsZero() || now.Sub(t.windowStart) >= t.window {
		t.windowStart = now
		t.count = 1
		return true
	}
	if t.count >= t.maxRequests {
		return false
	}
	t.count++
	return true
}
