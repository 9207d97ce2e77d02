package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestLocalAllowsBurstThenThrottles(t *testing.T) {
	t.Parallel()

	limiter := NewLocal(1, 2)
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := limiter.Wait(ctx); err != nil {
			t.Fatalf("wait %d: %v", i, err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	if err := limiter.Wait(ctx); err == nil {
		t.Fatal("expected third call to be throttled past the deadline")
	}
}

func TestLocalZeroRateIsUnlimited(t *testing.T) {
	t.Parallel()

	limiter := NewLocal(0, 0)
	for i := 0; i < 100; i++ {
		if err := limiter.Wait(context.Background()); err != nil {
			t.Fatalf("wait %d: %v", i, err)
		}
	}
}

// TestRedisLimiterIntegration requires a running Redis and skips otherwise.
func TestRedisLimiterIntegration(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	t.Cleanup(func() { _ = client.Close() })
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skip("Skipping Redis integration test: redis not available")
	}

	key := "test-" + time.Now().Format(time.RFC3339Nano)
	limiter := NewRedis(client, key, 1, 1)

	allowed, err := limiter.Allow(ctx)
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if !allowed {
		t.Fatal("expected fresh bucket to allow")
	}

	allowed, err = limiter.Allow(ctx)
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if allowed {
		t.Fatal("expected empty bucket to deny")
	}

	waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	if err := limiter.Wait(waitCtx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
