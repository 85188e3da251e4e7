package api

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Immanah/FinancialWellnessHub/internal/service"
)

type transferRequest struct {
	FromAccountID int64           `json:"fromAccountId"`
	ToAccountID   int64           `json:"toAccountId"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
}

// CreateTransfer moves money between two of the caller's accounts. Both
// legs commit or neither does.
func (h *Handler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(httpRequestDuration.WithLabelValues("POST", "/transfer"))
	defer timer.ObserveDuration()

	var req transferRequest
	if err := decodeStrict(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Malformed JSON body", "POST", "/transfer")
		return
	}
	if !req.Amount.IsPositive() {
		h.respondError(w, http.StatusBadRequest, "Positive amount required", "POST", "/transfer")
		return
	}
	if req.FromAccountID == req.ToAccountID {
		h.respondError(w, http.StatusBadRequest, "Self-transfer not allowed", "POST", "/transfer")
		return
	}

	// Ownership of both sides, before any mutation.
	if h.requireOwnAccount(w, r, req.FromAccountID, "POST", "/transfer") == nil {
		return
	}
	if h.requireOwnAccount(w, r, req.ToAccountID, "POST", "/transfer") == nil {
		return
	}

	result, err := h.ledger.Transfer(r.Context(), service.TransferParams{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        req.Amount,
		Description:   req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInsufficientFunds),
			errors.Is(err, service.ErrAccountNotFound),
			errors.Is(err, service.ErrSelfTransfer),
			errors.Is(err, service.ErrInvalidAmount):
			h.respondError(w, http.StatusBadRequest, err.Error(), "POST", "/transfer")
		default:
			h.logger.Error("transfer failed", zap.Error(err))
			h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "POST", "/transfer")
		}
		return
	}
	h.respondJSON(w, http.StatusCreated, result, "POST", "/transfer")
}
