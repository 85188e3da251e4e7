// Package api exposes the REST surface: auth, accounts, transactions,
// transfers, goals, journal and advice.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Immanah/FinancialWellnessHub/internal/advisor"
	"github.com/Immanah/FinancialWellnessHub/internal/auth"
	"github.com/Immanah/FinancialWellnessHub/internal/domain"
	"github.com/Immanah/FinancialWellnessHub/internal/service"
)

// Store is the persistence facade the handlers read and write through.
type Store interface {
	CreateUser(ctx context.Context, email, passwordHash, name string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	CreateAccount(ctx context.Context, userID int64, name, number string, accountType domain.AccountType) (*domain.Account, error)
	GetAccount(ctx context.Context, id int64) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID int64) ([]domain.Account, error)

	ListAccountTransactions(ctx context.Context, accountID int64) ([]domain.Transaction, error)
	ListUserTransactions(ctx context.Context, userID int64) ([]domain.Transaction, error)

	CreateGoal(ctx context.Context, userID int64, name string, target decimal.Decimal, deadline *time.Time) (*domain.SavingGoal, error)
	GetGoal(ctx context.Context, id int64) (*domain.SavingGoal, error)
	ListGoals(ctx context.Context, userID int64) ([]domain.SavingGoal, error)

	CreateJournalEntry(ctx context.Context, userID int64, entry string, mood domain.Mood) (*domain.JournalEntry, error)
	ListJournalEntries(ctx context.Context, userID int64) ([]domain.JournalEntry, error)

	CreateAdvice(ctx context.Context, userID int64, query, response string) (*domain.Advice, error)
	ListAdvice(ctx context.Context, userID int64) ([]domain.Advice, error)
}

// Ledger is the balance-mutation engine boundary.
type Ledger interface {
	ApplyTransaction(ctx context.Context, p service.ApplyParams) (*domain.Transaction, error)
	Transfer(ctx context.Context, p service.TransferParams) (*service.TransferResult, error)
}

// GoalFunder applies deposits to savings goals.
type GoalFunder interface {
	AddFunds(ctx context.Context, goalID int64, amount decimal.Decimal) (*domain.SavingGoal, error)
}

// Adviser produces the advice response text for a query and summary.
type Adviser interface {
	Advise(ctx context.Context, query string, summary advisor.Summary) string
}

type Handler struct {
	store   Store
	ledger  Ledger
	goals   GoalFunder
	adviser Adviser
	tokens  *auth.TokenManager
	logger  *zap.Logger
}

func NewHandler(store Store, ledger Ledger, goals GoalFunder, adviser Adviser, tokens *auth.TokenManager, logger *zap.Logger) *Handler {
	return &Handler{
		store:   store,
		ledger:  ledger,
		goals:   goals,
		adviser: adviser,
		tokens:  tokens,
		logger:  logger,
	}
}

// Router wires every endpoint. Everything under /api except the auth
// endpoints requires a valid bearer token.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.logRequests)

	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.HandleFunc("/api/auth/register", h.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", h.Login).Methods("POST")

	authed := r.PathPrefix("/api").Subrouter()
	authed.Use(h.authenticate)

	authed.HandleFunc("/accounts", h.ListAccounts).Methods("GET")
	authed.HandleFunc("/accounts", h.CreateAccount).Methods("POST")
	authed.HandleFunc("/accounts/{accountId}/transactions", h.ListAccountTransactions).Methods("GET")

	authed.HandleFunc("/transactions", h.ListTransactions).Methods("GET")
	authed.HandleFunc("/transactions", h.CreateTransaction).Methods("POST")
	authed.HandleFunc("/transfer", h.CreateTransfer).Methods("POST")

	authed.HandleFunc("/goals", h.ListGoals).Methods("GET")
	authed.HandleFunc("/goals", h.CreateGoal).Methods("POST")
	authed.HandleFunc("/goals/{goalId}", h.AddGoalFunds).Methods("PATCH")

	authed.HandleFunc("/journal", h.ListJournal).Methods("GET")
	authed.HandleFunc("/journal", h.CreateJournalEntry).Methods("POST")

	authed.HandleFunc("/ai/advice", h.ListAdvice).Methods("GET")
	authed.HandleFunc("/ai/advice", h.CreateAdvice).Methods("POST")

	return r
}
