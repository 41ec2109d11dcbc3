package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

const testRedisAddr = "localhost:6379"

func setupCache(t *testing.T) *Cache {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: testRedisAddr})
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available at %s: %v", testRedisAddr, err)
	}

	prefix := "test:" + t.Name() + ":"
	c := New(client, prefix, time.Minute)
	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, prefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})
	return c
}

func TestCache_GetSet(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	var out string
	found, err := c.Get(ctx, "missing", &out)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("Get() found = true for missing key")
	}

	if err := c.Set(ctx, "greeting", "hello"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	found, err = c.Get(ctx, "greeting", &out)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found {
		t.Fatal("Get() found = false after Set()")
	}
	if out != "hello" {
		t.Errorf("Get() value = %q, want %q", out, "hello")
	}
}

func TestCache_Stats(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	var out string
	c.Get(ctx, "nope", &out)
	c.Set(ctx, "k", "v")
	c.Get(ctx, "k", &out)

	stats := c.GetStats()
	if stats.Hits != 1 {
		t.Errorf("Hits = %d, want 1", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}
	if stats.HitRate != 50 {
		t.Errorf("HitRate = %v, want 50", stats.HitRate)
	}
}
