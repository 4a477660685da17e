package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moharam/debtbook/internal/adapter/http/dto"
	"github.com/moharam/debtbook/internal/engine"
	"github.com/moharam/debtbook/internal/usecase"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	Summary(ctx context.Context) (*usecase.ShopSummary, error)
	OverdueItems(ctx context.Context) ([]engine.OverdueItem, error)
	CustomerStatement(ctx context.Context, customerID string) (*usecase.Statement, error)
	WriteStatementCSV(ctx context.Context, customerID string, w io.Writer) error
}

// ReportHandler handles reporting HTTP requests.
type ReportHandler struct {
	reportUC ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// Summary returns the dashboard-level valuation of the book.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportUC.Summary(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build summary", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ShopSummaryFromUseCase(summary))
}

// Overdue lists every overdue installment across the book.
func (h *ReportHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	items, err := h.reportUC.OverdueItems(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list overdue installments", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.OverdueItemsFromEngine(items))
}

// Statement returns a customer's per-debt derived figures.
func (h *ReportHandler) Statement(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")

	statement, err := h.reportUC.CustomerStatement(r.Context(), customerID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build statement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromUseCase(statement))
}

// StatementCSV serves a customer statement as a CSV download. The statement
// is rendered fully before any byte is written so errors still produce a
// clean JSON response.
func (h *ReportHandler) StatementCSV(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")

	var buf bytes.Buffer
	if err := h.reportUC.WriteStatementCSV(r.Context(), customerID, &buf); err != nil {
		writeError(w, mapDomainError(err), "failed to render statement", err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="statement-%s.csv"`, customerID))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
