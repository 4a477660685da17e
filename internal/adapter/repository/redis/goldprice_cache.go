package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/moharam/debtbook/internal/domain"
	"github.com/moharam/debtbook/internal/infrastructure/metrics"
)

const goldPriceKey = "goldprice:daily"

// Prices survive well past one cycle so a failed fetch can still serve the
// previous day's figure.
const goldPriceTTL = 7 * 24 * time.Hour

// GoldPriceCache implements goldprice.Cache using Redis.
type GoldPriceCache struct {
	client  *redis.Client
	metrics *metrics.Metrics
}

// NewGoldPriceCache creates a new GoldPriceCache.
func NewGoldPriceCache(client *redis.Client) *GoldPriceCache {
	return &GoldPriceCache{client: client}
}

// WithMetrics enables operation and error counters.
func (c *GoldPriceCache) WithMetrics(m *metrics.Metrics) *GoldPriceCache {
	c.metrics = m
	return c
}

func (c *GoldPriceCache) count(operation string, err error) {
	if c.metrics == nil {
		return
	}
	c.metrics.RedisOperations.WithLabelValues(operation).Inc()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.metrics.RedisErrors.WithLabelValues(operation).Inc()
	}
}

type cachedPrice struct {
	Price     string    `json:"price"`
	SourceURL string    `json:"source_url"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Load returns the cached price, or nil when the cache is cold.
func (c *GoldPriceCache) Load(ctx context.Context) (*domain.GoldPrice, error) {
	raw, err := c.client.Get(ctx, goldPriceKey).Result()
	c.count("get", err)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load gold price: %w", err)
	}

	var entry cachedPrice
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, fmt.Errorf("decode gold price: %w", err)
	}

	price, err := decimal.NewFromString(entry.Price)
	if err != nil {
		return nil, fmt.Errorf("decode gold price: %w", err)
	}

	return &domain.GoldPrice{
		Price:     price,
		SourceURL: entry.SourceURL,
		FetchedAt: entry.FetchedAt,
	}, nil
}

// Store persists the price for the current cycle.
func (c *GoldPriceCache) Store(ctx context.Context, price domain.GoldPrice) error {
	raw, err := json.Marshal(cachedPrice{
		Price:     price.Price.String(),
		SourceURL: price.SourceURL,
		FetchedAt: price.FetchedAt,
	})
	if err != nil {
		return fmt.Errorf("encode gold price: %w", err)
	}

	err = c.client.Set(ctx, goldPriceKey, raw, goldPriceTTL).Err()
	c.count("set", err)
	if err != nil {
		return fmt.Errorf("store gold price: %w", err)
	}
	return nil
}
