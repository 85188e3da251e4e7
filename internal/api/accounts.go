package api

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Immanah/FinancialWellnessHub/internal/domain"
)

type createAccountRequest struct {
	Name string             `json:"name"`
	Type domain.AccountType `json:"type"`
}

func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.store.ListAccounts(r.Context(), userID(r))
	if err != nil {
		h.logger.Error("list accounts failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "GET", "/accounts")
		return
	}
	h.respondJSON(w, http.StatusOK, accounts, "GET", "/accounts")
}

func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := decodeStrict(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Malformed JSON body", "POST", "/accounts")
		return
	}
	if req.Name == "" || !req.Type.Valid() {
		h.respondError(w, http.StatusBadRequest, "Name and a valid account type are required", "POST", "/accounts")
		return
	}

	account, err := h.store.CreateAccount(r.Context(), userID(r), req.Name, uuid.NewString(), req.Type)
	if err != nil {
		h.logger.Error("create account failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "POST", "/accounts")
		return
	}
	h.respondJSON(w, http.StatusCreated, account, "POST", "/accounts")
}
