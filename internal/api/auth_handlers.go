package api

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Immanah/FinancialWellnessHub/internal/auth"
	"github.com/Immanah/FinancialWellnessHub/internal/store"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeStrict(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Malformed JSON body", "POST", "/auth/register")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Name == "" || len(req.Password) < 8 {
		h.respondError(w, http.StatusBadRequest, "Email, name and a password of at least 8 characters are required", "POST", "/auth/register")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "POST", "/auth/register")
		return
	}

	user, err := h.store.CreateUser(r.Context(), req.Email, hash, req.Name)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			h.respondError(w, http.StatusBadRequest, "Email already registered", "POST", "/auth/register")
			return
		}
		h.logger.Error("register failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "POST", "/auth/register")
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "POST", "/auth/register")
		return
	}
	h.respondJSON(w, http.StatusCreated, authResponse{Token: token, Name: user.Name, Email: user.Email}, "POST", "/auth/register")
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeStrict(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Malformed JSON body", "POST", "/auth/login")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	user, err := h.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil || !auth.CheckPassword(req.Password, user.PasswordHash) {
		h.respondError(w, http.StatusUnauthorized, "Invalid email or password", "POST", "/auth/login")
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "POST", "/auth/login")
		return
	}
	h.respondJSON(w, http.StatusOK, authResponse{Token: token, Name: user.Name, Email: user.Email}, "POST", "/auth/login")
}
