package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Immanah/FinancialWellnessHub/internal/advisor"
	"github.com/Immanah/FinancialWellnessHub/internal/auth"
	"github.com/Immanah/FinancialWellnessHub/internal/domain"
	"github.com/Immanah/FinancialWellnessHub/internal/service"
	"github.com/Immanah/FinancialWellnessHub/internal/store"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	nextID       int64
	users        map[int64]*domain.User
	accounts     map[int64]*domain.Account
	goals        map[int64]*domain.SavingGoal
	transactions []domain.Transaction
	journal      []domain.JournalEntry
	advice       []domain.Advice
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    map[int64]*domain.User{},
		accounts: map[int64]*domain.Account{},
		goals:    map[int64]*domain.SavingGoal{},
	}
}

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) CreateUser(_ context.Context, email, passwordHash, name string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return nil, store.ErrEmailTaken
		}
	}
	u := &domain.User{ID: f.id(), Email: email, PasswordHash: passwordHash, Name: name, CreatedAt: time.Now()}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) CreateAccount(_ context.Context, userID int64, name, number string, accountType domain.AccountType) (*domain.Account, error) {
	a := &domain.Account{ID: f.id(), UserID: userID, Name: name, Number: number, Balance: decimal.Zero, Type: accountType, CreatedAt: time.Now()}
	f.accounts[a.ID] = a
	return a, nil
}

func (f *fakeStore) GetAccount(_ context.Context, id int64) (*domain.Account, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeStore) ListAccounts(_ context.Context, userID int64) ([]domain.Account, error) {
	out := []domain.Account{}
	for _, a := range f.accounts {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeStore) ListAccountTransactions(_ context.Context, accountID int64) ([]domain.Transaction, error) {
	out := []domain.Transaction{}
	for _, t := range f.transactions {
		if t.AccountID == accountID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeStore) ListUserTransactions(_ context.Context, userID int64) ([]domain.Transaction, error) {
	out := []domain.Transaction{}
	for _, t := range f.transactions {
		if a, ok := f.accounts[t.AccountID]; ok && a.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateGoal(_ context.Context, userID int64, name string, target decimal.Decimal, deadline *time.Time) (*domain.SavingGoal, error) {
	g := &domain.SavingGoal{ID: f.id(), UserID: userID, Name: name, TargetAmount: target, CurrentAmount: decimal.Zero, Deadline: deadline, CreatedAt: time.Now()}
	f.goals[g.ID] = g
	return g, nil
}

func (f *fakeStore) GetGoal(_ context.Context, id int64) (*domain.SavingGoal, error) {
	g, ok := f.goals[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (f *fakeStore) ListGoals(_ context.Context, userID int64) ([]domain.SavingGoal, error) {
	out := []domain.SavingGoal{}
	for _, g := range f.goals {
		if g.UserID == userID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateJournalEntry(_ context.Context, userID int64, entry string, mood domain.Mood) (*domain.JournalEntry, error) {
	e := domain.JournalEntry{ID: f.id(), UserID: userID, Entry: entry, Mood: mood, CreatedAt: time.Now()}
	f.journal = append(f.journal, e)
	return &e, nil
}

func (f *fakeStore) ListJournalEntries(_ context.Context, userID int64) ([]domain.JournalEntry, error) {
	out := []domain.JournalEntry{}
	for _, e := range f.journal {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateAdvice(_ context.Context, userID int64, query, response string) (*domain.Advice, error) {
	a := domain.Advice{ID: f.id(), UserID: userID, Query: query, Response: response, CreatedAt: time.Now()}
	f.advice = append(f.advice, a)
	return &a, nil
}

func (f *fakeStore) ListAdvice(_ context.Context, userID int64) ([]domain.Advice, error) {
	out := []domain.Advice{}
	for _, a := range f.advice {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

// memLedger applies the engine's semantics against the fake store.
type memLedger struct {
	s *fakeStore
}

func (l *memLedger) addEntry(accountID int64, amount decimal.Decimal, entryType domain.TransactionType, description string, category, merchant *string) domain.Transaction {
	t := domain.Transaction{
		ID: l.s.id(), AccountID: accountID, Amount: amount, Type: entryType,
		Description: description, Category: category, Merchant: merchant, CreatedAt: time.Now(),
	}
	l.s.transactions = append(l.s.transactions, t)
	return t
}

func (l *memLedger) ApplyTransaction(_ context.Context, p service.ApplyParams) (*domain.Transaction, error) {
	if !p.Amount.IsPositive() {
		return nil, service.ErrInvalidAmount
	}
	a, ok := l.s.accounts[p.AccountID]
	if !ok {
		return nil, service.ErrAccountNotFound
	}
	if p.Type == domain.TransactionDebit {
		a.Balance = a.Balance.Sub(p.Amount)
	} else {
		a.Balance = a.Balance.Add(p.Amount)
	}
	t := l.addEntry(p.AccountID, p.Amount, p.Type, p.Description, p.Category, p.Merchant)
	return &t, nil
}

func (l *memLedger) Transfer(_ context.Context, p service.TransferParams) (*service.TransferResult, error) {
	if !p.Amount.IsPositive() {
		return nil, service.ErrInvalidAmount
	}
	if p.FromAccountID == p.ToAccountID {
		return nil, service.ErrSelfTransfer
	}
	from, ok := l.s.accounts[p.FromAccountID]
	if !ok {
		return nil, service.ErrAccountNotFound
	}
	to, ok := l.s.accounts[p.ToAccountID]
	if !ok {
		return nil, service.ErrAccountNotFound
	}
	if from.Balance.LessThan(p.Amount) {
		return nil, service.ErrInsufficientFunds
	}
	from.Balance = from.Balance.Sub(p.Amount)
	to.Balance = to.Balance.Add(p.Amount)
	debit := l.addEntry(p.FromAccountID, p.Amount, domain.TransactionDebit, "Transfer: "+p.Description, nil, nil)
	credit := l.addEntry(p.ToAccountID, p.Amount, domain.TransactionCredit,
		fmt.Sprintf("Transfer from account %s: %s", from.Number, p.Description), nil, nil)
	return &service.TransferResult{DebitEntry: debit, CreditEntry: credit}, nil
}

type memGoals struct {
	s *fakeStore
}

func (m *memGoals) AddFunds(_ context.Context, goalID int64, amount decimal.Decimal) (*domain.SavingGoal, error) {
	if !amount.IsPositive() {
		return nil, service.ErrInvalidAmount
	}
	g, ok := m.s.goals[goalID]
	if !ok {
		return nil, service.ErrGoalNotFound
	}
	g.CurrentAmount = g.CurrentAmount.Add(amount)
	g.Completed = g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
	cp := *g
	return &cp, nil
}

type stubAdviser struct {
	response string
}

func (s *stubAdviser) Advise(_ context.Context, _ string, _ advisor.Summary) string {
	return s.response
}

type testEnv struct {
	handler *Handler
	router  http.Handler
	store   *fakeStore
	tokens  *auth.TokenManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	fs := newFakeStore()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	h := NewHandler(fs, &memLedger{s: fs}, &memGoals{s: fs}, &stubAdviser{response: "advice text"}, tokens, zap.NewNop())
	return &testEnv{handler: h, router: h.Router(), store: fs, tokens: tokens}
}

func (e *testEnv) addUser(t *testing.T, email string) (*domain.User, string) {
	t.Helper()
	u, err := e.store.CreateUser(context.Background(), email, "x", "Test User")
	require.NoError(t, err)
	token, err := e.tokens.Issue(u.ID, u.Email)
	require.NoError(t, err)
	return u, token
}

func (e *testEnv) addAccount(t *testing.T, userID int64, balance string) *domain.Account {
	t.Helper()
	a, err := e.store.CreateAccount(context.Background(), userID, "Account", fmt.Sprintf("num-%d", e.store.nextID), domain.AccountChecking)
	require.NoError(t, err)
	a.Balance = dec(balance)
	return a
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestRequiresAuthentication(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, "GET", "/api/accounts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, "POST", "/api/transfer", "garbage-token", map[string]interface{}{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTransferScenario(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.addUser(t, "owner@example.com")
	a := env.addAccount(t, user.ID, "100.00")
	b := env.addAccount(t, user.ID, "50.00")

	rec := env.do(t, "POST", "/api/transfer", token, map[string]interface{}{
		"fromAccountId": a.ID,
		"toAccountId":   b.ID,
		"amount":        "30.00",
		"description":   "rent",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var result service.TransferResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.True(t, env.store.accounts[a.ID].Balance.Equal(dec("70.00")))
	assert.True(t, env.store.accounts[b.ID].Balance.Equal(dec("80.00")))

	assert.Equal(t, a.ID, result.DebitEntry.AccountID)
	assert.Equal(t, domain.TransactionDebit, result.DebitEntry.Type)
	assert.Equal(t, b.ID, result.CreditEntry.AccountID)
	assert.Equal(t, domain.TransactionCredit, result.CreditEntry.Type)
	assert.True(t, result.DebitEntry.Amount.Equal(dec("30.00")))
	assert.True(t, result.CreditEntry.Amount.Equal(result.DebitEntry.Amount))
	require.Len(t, env.store.transactions, 2)
}

func TestTransferInsufficientFunds(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.addUser(t, "owner@example.com")
	a := env.addAccount(t, user.ID, "100.00")
	b := env.addAccount(t, user.ID, "50.00")

	rec := env.do(t, "POST", "/api/transfer", token, map[string]interface{}{
		"fromAccountId": a.ID,
		"toAccountId":   b.ID,
		"amount":        "100.01",
		"description":   "too much",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Both balances unchanged, no ledger entries.
	assert.True(t, env.store.accounts[a.ID].Balance.Equal(dec("100.00")))
	assert.True(t, env.store.accounts[b.ID].Balance.Equal(dec("50.00")))
	assert.Empty(t, env.store.transactions)
}

func TestTransferIsNotDeduplicated(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.addUser(t, "owner@example.com")
	a := env.addAccount(t, user.ID, "100.00")
	b := env.addAccount(t, user.ID, "50.00")

	body := map[string]interface{}{
		"fromAccountId": a.ID,
		"toAccountId":   b.ID,
		"amount":        "30.00",
		"description":   "rent",
	}
	require.Equal(t, http.StatusCreated, env.do(t, "POST", "/api/transfer", token, body).Code)
	require.Equal(t, http.StatusCreated, env.do(t, "POST", "/api/transfer", token, body).Code)

	assert.True(t, env.store.accounts[a.ID].Balance.Equal(dec("40.00")))
	assert.True(t, env.store.accounts[b.ID].Balance.Equal(dec("110.00")))
	assert.Len(t, env.store.transactions, 4)
}

func TestTransferOwnership(t *testing.T) {
	env := newTestEnv(t)
	owner, _ := env.addUser(t, "owner@example.com")
	_, intruderToken := env.addUser(t, "intruder@example.com")
	a := env.addAccount(t, owner.ID, "100.00")
	b := env.addAccount(t, owner.ID, "50.00")

	rec := env.do(t, "POST", "/api/transfer", intruderToken, map[string]interface{}{
		"fromAccountId": a.ID,
		"toAccountId":   b.ID,
		"amount":        "30.00",
		"description":   "theft",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.True(t, env.store.accounts[a.ID].Balance.Equal(dec("100.00")))
	assert.Empty(t, env.store.transactions)
}

func TestTransferValidation(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.addUser(t, "owner@example.com")
	a := env.addAccount(t, user.ID, "100.00")
	b := env.addAccount(t, user.ID, "50.00")

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"self transfer", map[string]interface{}{
			"fromAccountId": a.ID, "toAccountId": a.ID, "amount": "10.00", "description": "loop",
		}},
		{"zero amount", map[string]interface{}{
			"fromAccountId": a.ID, "toAccountId": b.ID, "amount": "0", "description": "nothing",
		}},
		{"negative amount", map[string]interface{}{
			"fromAccountId": a.ID, "toAccountId": b.ID, "amount": "-5.00", "description": "refund",
		}},
		{"unknown field rejected", map[string]interface{}{
			"fromAccountId": a.ID, "toAccountId": b.ID, "amount": "10.00", "description": "x", "memo": "extra",
		}},
		{"unknown source account", map[string]interface{}{
			"fromAccountId": 9999, "toAccountId": b.ID, "amount": "10.00", "description": "x",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, "POST", "/api/transfer", token, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Empty(t, env.store.transactions)
		})
	}
}

func TestCreateTransactionValidation(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.addUser(t, "owner@example.com")
	a := env.addAccount(t, user.ID, "100.00")

	rec := env.do(t, "POST", "/api/transactions", token, map[string]interface{}{
		"accountId": a.ID, "amount": "10.00", "type": "sideways", "description": "x",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, "POST", "/api/transactions", token, map[string]interface{}{
		"accountId": a.ID, "amount": "-1.00", "type": "debit", "description": "x",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, "POST", "/api/transactions", token, map[string]interface{}{
		"accountId": a.ID, "amount": "25.00", "type": "debit", "description": "coffee", "category": "dining",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, env.store.accounts[a.ID].Balance.Equal(dec("75.00")))
}

func TestCreateTransactionOwnership(t *testing.T) {
	env := newTestEnv(t)
	owner, _ := env.addUser(t, "owner@example.com")
	_, intruderToken := env.addUser(t, "intruder@example.com")
	a := env.addAccount(t, owner.ID, "100.00")

	rec := env.do(t, "POST", "/api/transactions", intruderToken, map[string]interface{}{
		"accountId": a.ID, "amount": "10.00", "type": "credit", "description": "x",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.True(t, env.store.accounts[a.ID].Balance.Equal(dec("100.00")))
}

func TestGoalFundingScenario(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.addUser(t, "owner@example.com")
	goal, err := env.store.CreateGoal(context.Background(), user.ID, "Emergency fund", dec("500.00"), nil)
	require.NoError(t, err)
	env.store.goals[goal.ID].CurrentAmount = dec("450.00")

	rec := env.do(t, "PATCH", fmt.Sprintf("/api/goals/%d", goal.ID), token, map[string]interface{}{
		"amount": "60.00",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated domain.SavingGoal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.True(t, updated.CurrentAmount.Equal(dec("510.00")))
	assert.True(t, updated.Completed)

	// Completion latches: further deposits keep it true.
	rec = env.do(t, "PATCH", fmt.Sprintf("/api/goals/%d", goal.ID), token, map[string]interface{}{
		"amount": "10.00",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.True(t, updated.CurrentAmount.Equal(dec("520.00")))
	assert.True(t, updated.Completed)
}

func TestGoalFundingAccumulates(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.addUser(t, "owner@example.com")
	goal, err := env.store.CreateGoal(context.Background(), user.ID, "Trip", dec("1000.00"), nil)
	require.NoError(t, err)

	for _, amount := range []string{"100.00", "250.50"} {
		rec := env.do(t, "PATCH", fmt.Sprintf("/api/goals/%d", goal.ID), token, map[string]interface{}{"amount": amount})
		require.Equal(t, http.StatusOK, rec.Code)
	}
	g := env.store.goals[goal.ID]
	assert.True(t, g.CurrentAmount.Equal(dec("350.50")))
	assert.False(t, g.Completed)
}

func TestGoalFundingValidation(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.addUser(t, "owner@example.com")
	goal, err := env.store.CreateGoal(context.Background(), user.ID, "Trip", dec("100.00"), nil)
	require.NoError(t, err)

	for _, amount := range []string{"", "abc", "-5.00", "0"} {
		rec := env.do(t, "PATCH", fmt.Sprintf("/api/goals/%d", goal.ID), token, map[string]interface{}{"amount": amount})
		assert.Equal(t, http.StatusBadRequest, rec.Code, "amount %q", amount)
	}

	rec := env.do(t, "PATCH", "/api/goals/9999", token, map[string]interface{}{"amount": "5.00"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGoalFundingOwnership(t *testing.T) {
	env := newTestEnv(t)
	owner, _ := env.addUser(t, "owner@example.com")
	_, intruderToken := env.addUser(t, "intruder@example.com")
	goal, err := env.store.CreateGoal(context.Background(), owner.ID, "Trip", dec("100.00"), nil)
	require.NoError(t, err)

	rec := env.do(t, "PATCH", fmt.Sprintf("/api/goals/%d", goal.ID), intruderToken, map[string]interface{}{"amount": "5.00"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.True(t, env.store.goals[goal.ID].CurrentAmount.IsZero())
}

func TestJournalValidation(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.addUser(t, "owner@example.com")

	rec := env.do(t, "POST", "/api/journal", token, map[string]interface{}{
		"entry": "felt great today", "mood": "ecstatic",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, "POST", "/api/journal", token, map[string]interface{}{
		"entry": "felt great today", "mood": "very-happy",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, env.store.journal, 1)
	assert.Equal(t, domain.MoodVeryHappy, env.store.journal[0].Mood)
}

func TestAdviceIsPersisted(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.addUser(t, "owner@example.com")

	rec := env.do(t, "POST", "/api/ai/advice", token, map[string]interface{}{
		"query": "How can I save more?",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	require.Len(t, env.store.advice, 1)
	assert.Equal(t, "How can I save more?", env.store.advice[0].Query)
	assert.Equal(t, "advice text", env.store.advice[0].Response)

	rec = env.do(t, "GET", "/api/ai/advice", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history []domain.Advice
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	assert.Len(t, history, 1)
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "POST", "/api/auth/register", "", map[string]interface{}{
		"email": "new@example.com", "password": "long-enough-pass", "name": "New User",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	// The issued token works against protected endpoints.
	rec = env.do(t, "GET", "/api/accounts", resp.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, "POST", "/api/auth/login", "", map[string]interface{}{
		"email": "new@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, "POST", "/api/auth/login", "", map[string]interface{}{
		"email": "new@example.com", "password": "long-enough-pass",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	// Short password rejected at registration.
	rec = env.do(t, "POST", "/api/auth/register", "", map[string]interface{}{
		"email": "short@example.com", "password": "short", "name": "X",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAccountValidation(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.addUser(t, "owner@example.com")

	rec := env.do(t, "POST", "/api/accounts", token, map[string]interface{}{
		"name": "My Account", "type": "brokerage",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, "POST", "/api/accounts", token, map[string]interface{}{
		"name": "My Account", "type": "savings",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var account domain.Account
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &account))
	assert.True(t, account.Balance.IsZero())
	assert.NotEmpty(t, account.Number)
}

func TestListAccountTransactionsOwnership(t *testing.T) {
	env := newTestEnv(t)
	owner, _ := env.addUser(t, "owner@example.com")
	_, intruderToken := env.addUser(t, "intruder@example.com")
	a := env.addAccount(t, owner.ID, "100.00")

	rec := env.do(t, "GET", fmt.Sprintf("/api/accounts/%d/transactions", a.ID), intruderToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLoginVerifiesRealHash(t *testing.T) {
	env := newTestEnv(t)
	hash, err := auth.HashPassword("secret-password")
	require.NoError(t, err)
	_, err = env.store.CreateUser(context.Background(), "hashed@example.com", hash, "Hashed")
	require.NoError(t, err)

	rec := env.do(t, "POST", "/api/auth/login", "", map[string]interface{}{
		"email": "hashed@example.com", "password": "secret-password",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}
