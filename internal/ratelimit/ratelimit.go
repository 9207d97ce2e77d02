// Package ratelimit throttles outbound calls to rate-limited third parties,
// either per process or shared between replicas through Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Limiter blocks until the caller may proceed or ctx ends.
type Limiter interface {
	Wait(ctx context.Context) error
}

// Local is an in-process token bucket.
type Local struct {
	limiter *rate.Limiter
}

// NewLocal allows perSecond events with the given burst.
func NewLocal(perSecond float64, burst int) *Local {
	if burst < 1 {
		burst = 1
	}
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	return &Local{limiter: rate.NewLimiter(limit, burst)}
}

func (l *Local) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// tokenBucketScript refills and consumes a bucket atomically.
// KEYS[1] bucket key; ARGV rate, capacity, cost, now (seconds).
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local rate = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local cost = tonumber(ARGV[3])
local now = tonumber(ARGV[4])

local state = redis.call("HMGET", key, "tokens", "last_refill")
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if not tokens or not last_refill then
    tokens = capacity
    last_refill = now
end

local elapsed = now - last_refill
if elapsed > 0 then
    tokens = math.min(capacity, tokens + elapsed * rate)
    last_refill = now
end

local allowed = 0
if tokens >= cost then
    tokens = tokens - cost
    allowed = 1
end

redis.call("HSET", key, "tokens", tokens, "last_refill", last_refill)
redis.call("EXPIRE", key, 60)

return allowed
`)

// Redis is a token bucket shared by every process using the same key.
type Redis struct {
	client redis.Scripter
	key    string
	rate   float64
	burst  int
	poll   time.Duration
	now    func() time.Time
}

// NewRedis shares a perSecond/burst bucket under key.
func NewRedis(client redis.Scripter, key string, perSecond float64, burst int) *Redis {
	if perSecond <= 0 {
		perSecond = 1
	}
	if burst < 1 {
		burst = 1
	}
	poll := time.Duration(float64(time.Second) / perSecond)
	if poll > time.Second {
		poll = time.Second
	}
	return &Redis{
		client: client,
		key:    "ratelimit:" + key,
		rate:   perSecond,
		burst:  burst,
		poll:   poll,
		now:    time.Now,
	}
}

// Allow consumes one token if available.
func (r *Redis) Allow(ctx context.Context) (bool, error) {
	now := float64(r.now().UnixMicro()) / 1e6
	allowed, err := tokenBucketScript.Run(ctx, r.client, []string{r.key}, r.rate, r.burst, 1, now).Int64()
	if err != nil {
		return false, fmt.Errorf("redis limiter error: %w", err)
	}
	return allowed == 1, nil
}

func (r *Redis) Wait(ctx context.Context) error {
	for {
		allowed, err := r.Allow(ctx)
		if err != nil {
			return err
		}
		if allowed {
			return nil
		}
		timer := time.NewTimer(r.poll)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
