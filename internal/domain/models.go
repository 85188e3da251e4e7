package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType distinguishes the two supported account kinds.
type AccountType string

const (
	AccountChecking AccountType = "checking"
	AccountSavings  AccountType = "savings"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	return t == AccountChecking || t == AccountSavings
}

// TransactionType gives the direction of a ledger entry. Amounts are always
// stored positive; the sign is implied by the type.
type TransactionType string

const (
	TransactionDebit  TransactionType = "debit"
	TransactionCredit TransactionType = "credit"
)

func (t TransactionType) Valid() bool {
	return t == TransactionDebit || t == TransactionCredit
}

// Mood is one of the four journal emotional states.
type Mood string

const (
	MoodSad       Mood = "sad"
	MoodNeutral   Mood = "neutral"
	MoodHappy     Mood = "happy"
	MoodVeryHappy Mood = "very-happy"
)

func (m Mood) Valid() bool {
	switch m {
	case MoodSad, MoodNeutral, MoodHappy, MoodVeryHappy:
		return true
	}
	return false
}

// User is an authenticated owner of accounts, goals and journal entries.
// PasswordHash never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

// Account holds a user's balance. The balance is mutated only by the ledger
// service, inside a database transaction.
type Account struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Name      string          `json:"name"`
	Number    string          `json:"number"`
	Balance   decimal.Decimal `json:"balance"`
	Type      AccountType     `json:"type"`
	CreatedAt time.Time       `json:"created_at"`
}

// Transaction is an immutable ledger entry recording money moving into or
// out of one account. Created only as a side effect of a balance mutation.
type Transaction struct {
	ID          int64           `json:"id"`
	AccountID   int64           `json:"account_id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Category    *string         `json:"category,omitempty"`
	Merchant    *string         `json:"merchant,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SavingGoal accumulates deposits toward a target amount. Completed is
// derived (current >= target) and recomputed on every deposit; goals are
// never debited, so once true it stays true.
type SavingGoal struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	Completed     bool            `json:"completed"`
	CreatedAt     time.Time       `json:"created_at"`
}

// JournalEntry is an append-only mood journal record.
type JournalEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Entry     string    `json:"entry"`
	Mood      Mood      `json:"mood"`
	CreatedAt time.Time `json:"created_at"`
}

// Advice is one persisted question/answer pair from the advice generator.
type Advice struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Query     string    `json:"query"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}
