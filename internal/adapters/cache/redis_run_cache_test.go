package cache

import (
	"context"
	"errors"
	"freight-dispatch-service/internal/domain"
	"reflect"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newTestCache(t *testing.T) (*RedisRunCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := NewRedisClient(mr.Addr())
	t.Cleanup(func() { client.Close() })
	return NewRedisRunCache(client, time.Minute), mr
}

func TestRedisRunCacheRoundTrip(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	run := &domain.SimulationRun{
		RunID:       "run-1",
		Fingerprint: "fp",
		CreatedAt:   time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
		Events: []domain.Event{
			{Timestamp: 4200, CarrierID: "Q1", From: "C", Loaded: []string{}, To: "C", Unloaded: []string{"K1"}},
		},
		Carriers: []domain.CarrierSummary{{CarrierID: "Q1", Location: "C", Time: 4200, Delivered: []string{"K1"}}},
	}

	if err := c.Put(ctx, run); err != nil {
		t.Fatalf("put: %v", err)
	}
	if ttl := mr.TTL(runKeyPrefix + "fp"); ttl != time.Minute {
		t.Fatalf("ttl = %v, want 1m", ttl)
	}

	got, err := c.Get(ctx, "fp")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reflect.DeepEqual(got, run) {
		t.Fatalf("run =\n%+v\nwant\n%+v", got, run)
	}
}

func TestRedisRunCacheMiss(t *testing.T) {
	c, _ := newTestCache(t)
	_, err := c.Get(context.Background(), "unknown")
	if !errors.Is(err, domain.ErrCacheMiss) {
		t.Fatalf("err = %v, want ErrCacheMiss", err)
	}
}

func TestRedisRunCacheExpires(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, &domain.SimulationRun{RunID: "r", Fingerprint: "fp"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	if _, err := c.Get(ctx, "fp"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Fatalf("err = %v, want ErrCacheMiss after expiry", err)
	}
}

func TestRedisRunCacheServerDown(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	_, err := c.Get(context.Background(), "fp")
	if err == nil || errors.Is(err, domain.ErrCacheMiss) {
		t.Fatalf("err = %v, want connection error", err)
	}
}
