package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iho/rollup/internal/domain"
	"github.com/iho/rollup/internal/usecase/mocks"
)

func TestSettingsCacheServesFromBackingStoreOnMiss(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := mocks.NewMockSettingsRepository()
	store.Set("purchases", "updateSupplierPrices", "true")

	cache := NewSettingsCache(client, store, time.Minute)

	value, err := cache.Get(context.Background(), "purchases", "updateSupplierPrices")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if value != "true" {
		t.Fatalf("expected true, got %s", value)
	}
}

func TestSettingsCacheHitSkipsBackingStore(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := mocks.NewMockSettingsRepository()
	store.Set("purchases", "updateSupplierPrices", "false")

	cache := NewSettingsCache(client, store, time.Minute)

	ctx := context.Background()
	if _, err := cache.Get(ctx, "purchases", "updateSupplierPrices"); err != nil {
		t.Fatalf("warm-up get failed: %v", err)
	}

	// Change the backing store; the cached value must still win.
	store.Set("purchases", "updateSupplierPrices", "true")

	value, err := cache.Get(ctx, "purchases", "updateSupplierPrices")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if value != "false" {
		t.Fatalf("expected cached false, got %s", value)
	}
}

func TestSettingsCacheCachesMisses(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := mocks.NewMockSettingsRepository()
	cache := NewSettingsCache(client, store, time.Minute)

	ctx := context.Background()
	if _, err := cache.Get(ctx, "purchases", "updateSupplierPrices"); !errors.Is(err, domain.ErrSettingNotFound) {
		t.Fatalf("expected ErrSettingNotFound, got %v", err)
	}

	// The miss is cached: a value added afterwards stays invisible until
	// the entry expires or is invalidated.
	store.Set("purchases", "updateSupplierPrices", "true")
	if _, err := cache.Get(ctx, "purchases", "updateSupplierPrices"); !errors.Is(err, domain.ErrSettingNotFound) {
		t.Fatalf("expected cached miss, got %v", err)
	}

	if err := cache.Invalidate(ctx, "purchases", "updateSupplierPrices"); err != nil {
		t.Fatalf("invalidate failed: %v", err)
	}

	value, err := cache.Get(ctx, "purchases", "updateSupplierPrices")
	if err != nil {
		t.Fatalf("get after invalidate failed: %v", err)
	}
	if value != "true" {
		t.Fatalf("expected true after invalidate, got %s", value)
	}
}

func TestSettingsCacheFallsThroughWhenRedisDown(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer client.Close()

	store := mocks.NewMockSettingsRepository()
	store.Set("purchases", "updateSupplierPrices", "true")

	cache := NewSettingsCache(client, store, time.Minute)

	mr.Close()

	value, err := cache.Get(context.Background(), "purchases", "updateSupplierPrices")
	if err != nil {
		t.Fatalf("expected fall-through to backing store, got %v", err)
	}
	if value != "true" {
		t.Fatalf("expected true, got %s", value)
	}
}
