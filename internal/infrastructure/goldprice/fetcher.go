// Package goldprice fetches the daily 24k gold price in EGP per gram.
//
// The price follows a daily cycle anchored at a configurable hour (01:00 by
// default): the first request after the cycle boundary fetches upstream, every
// later request in the same cycle is served from cache. When upstream is down
// the previous cycle's price is served stale rather than failing reads.
package goldprice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/moharam/debtbook/internal/domain"
	"github.com/moharam/debtbook/internal/infrastructure/metrics"
)

// Cache persists the last fetched price across restarts and processes.
type Cache interface {
	// Load returns the cached price, or nil when the cache is cold.
	Load(ctx context.Context) (*domain.GoldPrice, error)
	Store(ctx context.Context, price domain.GoldPrice) error
}

// ErrUnavailable is returned when upstream fails and no cached price exists.
var ErrUnavailable = fmt.Errorf("gold price unavailable")

// priceRe matches the first plausible EGP-per-gram figure in a response body.
var priceRe = regexp.MustCompile(`\d{4,}(\.\d+)?`)

// Config holds fetcher settings.
type Config struct {
	URL       string
	Timeout   time.Duration
	CycleHour int
}

// Fetcher implements usecase.GoldPriceSource over an HTTP price page with a
// Redis-backed daily cache.
type Fetcher struct {
	cfg     Config
	client  *http.Client
	cache   Cache
	logger  zerolog.Logger
	metrics *metrics.Metrics

	mu  sync.Mutex
	now func() time.Time
}

// New creates a new Fetcher. m may be nil.
func New(cfg Config, cache Cache, logger zerolog.Logger, m *metrics.Metrics) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Fetcher{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		cache:   cache,
		logger:  logger,
		metrics: m,
		now:     time.Now,
	}
}

// Current returns the price for the current daily cycle. forceRefresh skips
// the cycle check and always consults upstream.
func (f *Fetcher) Current(ctx context.Context, forceRefresh bool) (domain.GoldPrice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now().UTC()

	cached, err := f.cache.Load(ctx)
	if err != nil {
		f.logger.Warn().Err(err).Msg("gold price cache read failed")
		cached = nil
	}

	if cached != nil && !forceRefresh && !cached.FetchedAt.Before(cycleStart(now, f.cfg.CycleHour)) {
		f.count("cache")
		cached.FromCache = true
		return *cached, nil
	}

	price, err := f.fetch(ctx)
	if err != nil {
		if cached != nil {
			f.count("stale")
			f.logger.Warn().Err(err).
				Time("fetched_at", cached.FetchedAt).
				Msg("gold price fetch failed, serving previous cycle")
			cached.FromCache = true
			return *cached, nil
		}
		f.count("error")
		return domain.GoldPrice{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	quote := domain.GoldPrice{
		Price:     price,
		SourceURL: f.cfg.URL,
		FetchedAt: now,
	}

	if err := f.cache.Store(ctx, quote); err != nil {
		f.logger.Warn().Err(err).Msg("gold price cache write failed")
	}

	f.count("fetched")
	if f.metrics != nil {
		f.metrics.GoldPrice.Set(price.InexactFloat64())
	}

	return quote, nil
}

func (f *Fetcher) count(result string) {
	if f.metrics != nil {
		f.metrics.GoldPriceFetches.WithLabelValues(result).Inc()
	}
}

func (f *Fetcher) fetch(ctx context.Context) (decimal.Decimal, error) {
	var body []byte

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.cfg.URL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}

		body, err = io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return decimal.Zero, err
	}

	return parsePrice(body)
}

// parsePrice accepts either a JSON document with a "price" field or a text
// page carrying the figure somewhere in its body.
func parsePrice(body []byte) (decimal.Decimal, error) {
	var doc struct {
		Price json.Number `json:"price"`
	}
	if err := json.Unmarshal(body, &doc); err == nil && doc.Price != "" {
		price, err := decimal.NewFromString(doc.Price.String())
		if err == nil && price.IsPositive() {
			return price, nil
		}
	}

	text := strings.ReplaceAll(string(body), ",", "")
	match := priceRe.FindString(text)
	if match == "" {
		return decimal.Zero, fmt.Errorf("no price found in response")
	}

	price, err := decimal.NewFromString(match)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse price %q: %w", match, err)
	}
	return price, nil
}

// cycleStart returns the start of the daily cycle containing now.
func cycleStart(now time.Time, hour int) time.Time {
	start := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if now.Before(start) {
		start = start.AddDate(0, 0, -1)
	}
	return start
}
