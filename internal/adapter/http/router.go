package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/moharam/debtbook/internal/adapter/http/handler"
	"github.com/moharam/debtbook/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	CustomerHandler  *handler.CustomerHandler
	DebtHandler      *handler.DebtHandler
	ReportHandler    *handler.ReportHandler
	GoldPriceHandler *handler.GoldPriceHandler
	HealthHandler    *handler.HealthHandler
	Logging          *middleware.LoggingMiddleware
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.Logging != nil {
		r.Use(cfg.Logging.Wrap)
	}
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Customers and their books
		r.Route("/customers", func(r chi.Router) {
			r.Post("/", cfg.CustomerHandler.Create)
			r.Get("/", cfg.CustomerHandler.List)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", cfg.CustomerHandler.Get)
				r.Put("/", cfg.CustomerHandler.Update)
				r.Delete("/", cfg.CustomerHandler.Delete)
				r.Post("/archive", cfg.CustomerHandler.Archive)
				r.Get("/statement", cfg.ReportHandler.Statement)
				r.Get("/statement.csv", cfg.ReportHandler.StatementCSV)

				r.Route("/debts", func(r chi.Router) {
					r.Post("/", cfg.DebtHandler.Create)

					r.Route("/{debtID}", func(r chi.Router) {
						r.Get("/", cfg.DebtHandler.Get)
						r.Delete("/", cfg.DebtHandler.Delete)
						r.Post("/payments", cfg.DebtHandler.RecordPayment)
						r.Post("/increases", cfg.DebtHandler.Increase)
						r.Post("/images", cfg.DebtHandler.AttachImage)
						r.Post("/installments/{installmentID}/toggle", cfg.DebtHandler.ToggleInstallment)
					})
				})
			})
		})

		// Reports
		r.Route("/reports", func(r chi.Router) {
			r.Get("/summary", cfg.ReportHandler.Summary)
			r.Get("/overdue", cfg.ReportHandler.Overdue)
		})

		// Daily gold price
		r.Get("/goldprice", cfg.GoldPriceHandler.Get)
	})

	return r
}
