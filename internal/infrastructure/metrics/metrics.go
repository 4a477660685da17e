package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger metrics
	DebtsCreated       *prometheus.CounterVec
	PaymentsRecorded   *prometheus.CounterVec
	IncreasesRecorded  *prometheus.CounterVec
	InstallmentToggles prometheus.Counter
	CustomersCreated   prometheus.Counter

	// Gold price metrics
	GoldPriceFetches *prometheus.CounterVec
	GoldPrice        prometheus.Gauge

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Ledger metrics
		DebtsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "debtbook_debts_created_total",
				Help: "Total number of debts registered by unit",
			},
			[]string{"unit"},
		),
		PaymentsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "debtbook_payments_recorded_total",
				Help: "Total number of payments recorded by unit",
			},
			[]string{"unit"},
		),
		IncreasesRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "debtbook_increases_recorded_total",
				Help: "Total number of debt increases by unit",
			},
			[]string{"unit"},
		),
		InstallmentToggles: promauto.NewCounter(prometheus.CounterOpts{
			Name: "debtbook_installment_toggles_total",
			Help: "Total number of manual installment toggles",
		}),
		CustomersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "debtbook_customers_created_total",
			Help: "Total number of customers created",
		}),

		// Gold price metrics
		GoldPriceFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "debtbook_gold_price_fetches_total",
				Help: "Total gold price fetches by result",
			},
			[]string{"result"},
		),
		GoldPrice: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "debtbook_gold_price_egp_per_gram",
			Help: "Last fetched 24k gold price in EGP per gram",
		}),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "debtbook_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "debtbook_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "debtbook_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "debtbook_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "debtbook_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "debtbook_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),
	}
}
