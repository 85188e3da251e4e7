package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/Immanah/FinancialWellnessHub/internal/advisor"
)

type adviceRequest struct {
	Query string `json:"query"`
}

func (h *Handler) ListAdvice(w http.ResponseWriter, r *http.Request) {
	history, err := h.store.ListAdvice(r.Context(), userID(r))
	if err != nil {
		h.logger.Error("list advice failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "GET", "/ai/advice")
		return
	}
	h.respondJSON(w, http.StatusOK, history, "GET", "/ai/advice")
}

// CreateAdvice assembles the caller's context bundle, runs the generator
// synchronously and persists the result. Generator failures still produce
// a stored apology response rather than an error.
func (h *Handler) CreateAdvice(w http.ResponseWriter, r *http.Request) {
	var req adviceRequest
	if err := decodeStrict(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Malformed JSON body", "POST", "/ai/advice")
		return
	}
	if req.Query == "" {
		h.respondError(w, http.StatusBadRequest, "Query is required", "POST", "/ai/advice")
		return
	}

	uid := userID(r)
	ctx := r.Context()

	accounts, err := h.store.ListAccounts(ctx, uid)
	if err != nil {
		h.logger.Error("advice context failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "POST", "/ai/advice")
		return
	}
	transactions, err := h.store.ListUserTransactions(ctx, uid)
	if err != nil {
		h.logger.Error("advice context failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "POST", "/ai/advice")
		return
	}
	goals, err := h.store.ListGoals(ctx, uid)
	if err != nil {
		h.logger.Error("advice context failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "POST", "/ai/advice")
		return
	}
	journal, err := h.store.ListJournalEntries(ctx, uid)
	if err != nil {
		h.logger.Error("advice context failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "POST", "/ai/advice")
		return
	}

	summary := advisor.Summarize(accounts, transactions, goals, journal)
	response := h.adviser.Advise(ctx, req.Query, summary)

	advice, err := h.store.CreateAdvice(ctx, uid, req.Query, response)
	if err != nil {
		h.logger.Error("persist advice failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "POST", "/ai/advice")
		return
	}
	h.respondJSON(w, http.StatusCreated, advice, "POST", "/ai/advice")
}
