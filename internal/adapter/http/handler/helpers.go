package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/moharam/debtbook/internal/adapter/http/dto"
	"github.com/moharam/debtbook/internal/domain"
	"github.com/moharam/debtbook/internal/infrastructure/goldprice"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDebtNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInstallmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidTerm):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidUnit):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrMissingGoldRate):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrEmptyReason):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCustomerName):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidPhone):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidLabel):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAmountTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrTermTooLong):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNoInstallments):
		return http.StatusConflict
	case errors.Is(err, goldprice.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
