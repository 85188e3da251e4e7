package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Immanah/FinancialWellnessHub/internal/domain"
	"github.com/Immanah/FinancialWellnessHub/internal/service"
	"github.com/Immanah/FinancialWellnessHub/internal/store"
)

type createTransactionRequest struct {
	AccountID   int64                  `json:"accountId"`
	Amount      decimal.Decimal        `json:"amount"`
	Type        domain.TransactionType `json:"type"`
	Description string                 `json:"description"`
	Category    *string                `json:"category,omitempty"`
	Merchant    *string                `json:"merchant,omitempty"`
}

// requireOwnAccount loads the account and verifies it belongs to the
// caller. On failure it writes the response and returns nil: 403 for
// foreign accounts, 400 for unknown ones.
func (h *Handler) requireOwnAccount(w http.ResponseWriter, r *http.Request, accountID int64, method, endpoint string) *domain.Account {
	account, err := h.store.GetAccount(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.respondError(w, http.StatusBadRequest, "Account not found", method, endpoint)
			return nil
		}
		h.logger.Error("account lookup failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", method, endpoint)
		return nil
	}
	if account.UserID != userID(r) {
		h.respondError(w, http.StatusForbidden, "Account does not belong to you", method, endpoint)
		return nil
	}
	return account
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txns, err := h.store.ListUserTransactions(r.Context(), userID(r))
	if err != nil {
		h.logger.Error("list transactions failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "GET", "/transactions")
		return
	}
	h.respondJSON(w, http.StatusOK, txns, "GET", "/transactions")
}

func (h *Handler) ListAccountTransactions(w http.ResponseWriter, r *http.Request) {
	const endpoint = "/accounts/{accountId}/transactions"

	accountID, err := strconv.ParseInt(mux.Vars(r)["accountId"], 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid account id", "GET", endpoint)
		return
	}
	if h.requireOwnAccount(w, r, accountID, "GET", endpoint) == nil {
		return
	}

	txns, err := h.store.ListAccountTransactions(r.Context(), accountID)
	if err != nil {
		h.logger.Error("list account transactions failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "GET", endpoint)
		return
	}
	h.respondJSON(w, http.StatusOK, txns, "GET", endpoint)
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(httpRequestDuration.WithLabelValues("POST", "/transactions"))
	defer timer.ObserveDuration()

	var req createTransactionRequest
	if err := decodeStrict(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Malformed JSON body", "POST", "/transactions")
		return
	}
	if !req.Amount.IsPositive() {
		h.respondError(w, http.StatusBadRequest, "Positive amount required", "POST", "/transactions")
		return
	}
	if !req.Type.Valid() {
		h.respondError(w, http.StatusBadRequest, "Type must be debit or credit", "POST", "/transactions")
		return
	}
	if req.Description == "" {
		h.respondError(w, http.StatusBadRequest, "Description is required", "POST", "/transactions")
		return
	}
	if h.requireOwnAccount(w, r, req.AccountID, "POST", "/transactions") == nil {
		return
	}

	txn, err := h.ledger.ApplyTransaction(r.Context(), service.ApplyParams{
		AccountID:   req.AccountID,
		Amount:      req.Amount,
		Type:        req.Type,
		Description: req.Description,
		Category:    req.Category,
		Merchant:    req.Merchant,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountNotFound), errors.Is(err, service.ErrInvalidAmount):
			h.respondError(w, http.StatusBadRequest, err.Error(), "POST", "/transactions")
		default:
			h.logger.Error("apply transaction failed", zap.Error(err))
			h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "POST", "/transactions")
		}
		return
	}
	h.respondJSON(w, http.StatusCreated, txn, "POST", "/transactions")
}
