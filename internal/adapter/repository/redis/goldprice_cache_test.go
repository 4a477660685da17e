package redis

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moharam/debtbook/internal/domain"
)

func TestGoldPriceCacheRoundTrip(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewGoldPriceCache(client)
	ctx := context.Background()

	fetched := time.Date(2026, time.March, 10, 1, 5, 0, 0, time.UTC)
	quote := domain.GoldPrice{
		Price:     decimal.RequireFromString("4850.25"),
		SourceURL: "https://example.test/gold",
		FetchedAt: fetched,
	}

	if err := cache.Store(ctx, quote); err != nil {
		t.Fatalf("store failed: %v", err)
	}

	got, err := cache.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got == nil {
		t.Fatalf("expected cached price, got nil")
	}

	if !got.Price.Equal(quote.Price) {
		t.Fatalf("expected price %s, got %s", quote.Price, got.Price)
	}
	if got.SourceURL != quote.SourceURL {
		t.Fatalf("expected source %s, got %s", quote.SourceURL, got.SourceURL)
	}
	if !got.FetchedAt.Equal(fetched) {
		t.Fatalf("expected fetched at %s, got %s", fetched, got.FetchedAt)
	}
}

func TestGoldPriceCacheColdMiss(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewGoldPriceCache(client)

	got, err := cache.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil on cold cache, got %+v", got)
	}
}

func TestGoldPriceCacheCorruptEntry(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	if err := mr.Set("goldprice:daily", "not-json"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	cache := NewGoldPriceCache(client)
	if _, err := cache.Load(context.Background()); err == nil {
		t.Fatalf("expected error for corrupt cache entry")
	}
}
