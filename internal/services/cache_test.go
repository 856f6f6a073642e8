package services

import (
	"context"
	"testing"
	"time"
)

func newMemoryCache() CacheServiceInterface {
	// nil Redis client exercises the in-memory fallback path
	return NewCacheService(nil, testLogger())
}

func TestCacheSetGetRoundTrip(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, `{"a":1}`, time.Minute, "ares", "detail", "00006947"); err != nil {
		t.Fatal(err)
	}
	val, err := cache.Get(ctx, "ares", "detail", "00006947")
	if err != nil {
		t.Fatal(err)
	}
	if val != `{"a":1}` {
		t.Errorf("got %q", val)
	}

	if _, err := cache.Get(ctx, "ares", "detail", "other"); err != ErrCacheMiss {
		t.Errorf("missing key returned %v, want ErrCacheMiss", err)
	}
}

func TestCacheEntriesExpire(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "v", 10*time.Millisecond, "justice", "doc", "1"); err != nil {
		t.Fatal(err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, err := cache.Get(ctx, "justice", "doc", "1"); err != ErrCacheMiss {
		t.Errorf("expired key returned %v, want ErrCacheMiss", err)
	}
}

func TestCacheNamespacesAreDisjoint(t *testing.T) {
	cache := newMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "ares-value", time.Minute, "ares", "detail", "1"); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.Get(ctx, "justice", "detail", "1"); err != ErrCacheMiss {
		t.Errorf("cross-namespace read returned %v, want ErrCacheMiss", err)
	}
}

func TestHashParamsStableAcrossKeyOrder(t *testing.T) {
	cache := newMemoryCache()

	a, err := cache.HashParams(map[string]interface{}{"pocet": 10, "obchodniJmeno": "Firma"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := cache.HashParams(map[string]interface{}{"obchodniJmeno": "Firma", "pocet": 10})
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("hash differs for identical params: %q vs %q", a, b)
	}
	if len(a) != 16 {
		t.Errorf("digest length = %d, want 16", len(a))
	}
}

func TestHashParamsDistinguishesValues(t *testing.T) {
	cache := newMemoryCache()

	a, _ := cache.HashParams(map[string]interface{}{"pocet": 10})
	b, _ := cache.HashParams(map[string]interface{}{"pocet": 20})
	if a == b {
		t.Error("different params must hash differently")
	}
}

func TestHashParamsCanonicalizesStructs(t *testing.T) {
	cache := newMemoryCache()

	type body struct {
		Pocet int    `json:"pocet,omitempty"`
		Name  string `json:"obchodniJmeno,omitempty"`
	}
	fromStruct, err := cache.HashParams(body{Pocet: 10, Name: "Firma"})
	if err != nil {
		t.Fatal(err)
	}
	fromMap, err := cache.HashParams(map[string]interface{}{"obchodniJmeno": "Firma", "pocet": 10})
	if err != nil {
		t.Fatal(err)
	}
	if fromStruct != fromMap {
		t.Errorf("struct and map with identical fields hash differently: %q vs %q", fromStruct, fromMap)
	}
}
