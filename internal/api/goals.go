package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Immanah/FinancialWellnessHub/internal/service"
	"github.com/Immanah/FinancialWellnessHub/internal/store"
)

type createGoalRequest struct {
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	Deadline     *time.Time      `json:"deadline,omitempty"`
}

// addFundsRequest carries the deposit as a decimal string, e.g. "60.00".
type addFundsRequest struct {
	Amount string `json:"amount"`
}

func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.store.ListGoals(r.Context(), userID(r))
	if err != nil {
		h.logger.Error("list goals failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "GET", "/goals")
		return
	}
	h.respondJSON(w, http.StatusOK, goals, "GET", "/goals")
}

func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if err := decodeStrict(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Malformed JSON body", "POST", "/goals")
		return
	}
	if req.Name == "" || !req.TargetAmount.IsPositive() {
		h.respondError(w, http.StatusBadRequest, "Name and a positive target amount are required", "POST", "/goals")
		return
	}

	goal, err := h.store.CreateGoal(r.Context(), userID(r), req.Name, req.TargetAmount, req.Deadline)
	if err != nil {
		h.logger.Error("create goal failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "POST", "/goals")
		return
	}
	h.respondJSON(w, http.StatusCreated, goal, "POST", "/goals")
}

// AddGoalFunds deposits into a goal; no withdraw or reset exists, goals
// only accumulate.
func (h *Handler) AddGoalFunds(w http.ResponseWriter, r *http.Request) {
	const endpoint = "/goals/{goalId}"

	goalID, err := strconv.ParseInt(mux.Vars(r)["goalId"], 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid goal id", "PATCH", endpoint)
		return
	}

	var req addFundsRequest
	if err := decodeStrict(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Malformed JSON body", "PATCH", endpoint)
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		h.respondError(w, http.StatusBadRequest, "Amount must be a positive decimal string", "PATCH", endpoint)
		return
	}

	goal, err := h.store.GetGoal(r.Context(), goalID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.respondError(w, http.StatusBadRequest, "Goal not found", "PATCH", endpoint)
			return
		}
		h.logger.Error("goal lookup failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "PATCH", endpoint)
		return
	}
	if goal.UserID != userID(r) {
		h.respondError(w, http.StatusForbidden, "Goal does not belong to you", "PATCH", endpoint)
		return
	}

	updated, err := h.goals.AddFunds(r.Context(), goalID, amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGoalNotFound), errors.Is(err, service.ErrInvalidAmount):
			h.respondError(w, http.StatusBadRequest, err.Error(), "PATCH", endpoint)
		default:
			h.logger.Error("add funds failed", zap.Error(err))
			h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "PATCH", endpoint)
		}
		return
	}
	h.respondJSON(w, http.StatusOK, updated, "PATCH", endpoint)
}
