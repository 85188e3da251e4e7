package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/Immanah/FinancialWellnessHub/internal/domain"
)

type createJournalRequest struct {
	Entry string      `json:"entry"`
	Mood  domain.Mood `json:"mood"`
}

func (h *Handler) ListJournal(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.ListJournalEntries(r.Context(), userID(r))
	if err != nil {
		h.logger.Error("list journal failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "GET", "/journal")
		return
	}
	h.respondJSON(w, http.StatusOK, entries, "GET", "/journal")
}

func (h *Handler) CreateJournalEntry(w http.ResponseWriter, r *http.Request) {
	var req createJournalRequest
	if err := decodeStrict(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Malformed JSON body", "POST", "/journal")
		return
	}
	if req.Entry == "" || !req.Mood.Valid() {
		h.respondError(w, http.StatusBadRequest, "Entry text and a valid mood are required", "POST", "/journal")
		return
	}

	entry, err := h.store.CreateJournalEntry(r.Context(), userID(r), req.Entry, req.Mood)
	if err != nil {
		h.logger.Error("create journal entry failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "POST", "/journal")
		return
	}
	h.respondJSON(w, http.StatusCreated, entry, "POST", "/journal")
}
