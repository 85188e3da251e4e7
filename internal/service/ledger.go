// Package service holds the balance-mutation engine and the goal updater.
// Every mutation runs inside a single database transaction: the ledger
// insert and the balance write either both persist or neither does.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Immanah/FinancialWellnessHub/internal/domain"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrGoalNotFound      = errors.New("goal not found")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrSelfTransfer      = errors.New("cannot transfer to the same account")
)

type Ledger struct {
	db *pgxpool.Pool
}

func NewLedger(db *pgxpool.Pool) *Ledger {
	return &Ledger{db: db}
}

// ApplyParams describes a single-sided balance mutation.
type ApplyParams struct {
	AccountID   int64
	Amount      decimal.Decimal
	Type        domain.TransactionType
	Description string
	Category    *string
	Merchant    *string
}

// TransferParams describes a two-sided movement between accounts.
type TransferParams struct {
	FromAccountID int64
	ToAccountID   int64
	Amount        decimal.Decimal
	Description   string
}

// TransferResult carries the balanced pair of ledger entries a transfer
// produces.
type TransferResult struct {
	DebitEntry  domain.Transaction `json:"debit_entry"`
	CreditEntry domain.Transaction `json:"credit_entry"`
}

// ApplyTransaction inserts one ledger entry and writes the new balance in a
// single transaction. Debits subtract, credits add; amounts are stored
// positive.
func (l *Ledger) ApplyTransaction(ctx context.Context, p ApplyParams) (*domain.Transaction, error) {
	if !p.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	tx, err := l.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return nil, fmt.Errorf("tx begin failed: %w", err)
	}
	defer tx.Rollback(ctx)

	var balance decimal.Decimal
	err = tx.QueryRow(ctx, "SELECT balance FROM accounts WHERE id = $1 FOR UPDATE", p.AccountID).Scan(&balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("lock acquisition failed: %w", err)
	}

	entry, err := insertEntry(ctx, tx, p.AccountID, p.Amount, p.Type, p.Description, p.Category, p.Merchant)
	if err != nil {
		return nil, err
	}

	newBalance := balance.Add(p.Amount)
	if p.Type == domain.TransactionDebit {
		newBalance = balance.Sub(p.Amount)
	}
	if _, err := tx.Exec(ctx, "UPDATE accounts SET balance = $1 WHERE id = $2", newBalance, p.AccountID); err != nil {
		return nil, fmt.Errorf("balance update failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("tx commit failed: %w", err)
	}
	return entry, nil
}

// Transfer moves amount between two accounts: one debit entry on the
// source, one credit entry on the target, both balance writes, all in one
// transaction. Row locks are taken in ascending account-ID order so two
// opposing transfers cannot deadlock.
func (l *Ledger) Transfer(ctx context.Context, p TransferParams) (*TransferResult, error) {
	if !p.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if p.FromAccountID == p.ToAccountID {
		return nil, ErrSelfTransfer
	}

	tx, err := l.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return nil, fmt.Errorf("tx begin failed: %w", err)
	}
	defer tx.Rollback(ctx)

	first, second := p.FromAccountID, p.ToAccountID
	if first > second {
		first, second = second, first
	}

	type locked struct {
		balance decimal.Decimal
		number  string
	}
	lockRow := func(id int64) (locked, error) {
		var lk locked
		err := tx.QueryRow(ctx, "SELECT balance, number FROM accounts WHERE id = $1 FOR UPDATE", id).
			Scan(&lk.balance, &lk.number)
		if err == pgx.ErrNoRows {
			return lk, ErrAccountNotFound
		}
		if err != nil {
			return lk, fmt.Errorf("lock acquisition failed: %w", err)
		}
		return lk, nil
	}

	byID := map[int64]locked{}
	for _, id := range []int64{first, second} {
		lk, err := lockRow(id)
		if err != nil {
			return nil, err
		}
		byID[id] = lk
	}

	source := byID[p.FromAccountID]
	if source.balance.LessThan(p.Amount) {
		return nil, ErrInsufficientFunds
	}

	debit, err := insertEntry(ctx, tx, p.FromAccountID, p.Amount, domain.TransactionDebit,
		"Transfer: "+p.Description, nil, nil)
	if err != nil {
		return nil, err
	}
	credit, err := insertEntry(ctx, tx, p.ToAccountID, p.Amount, domain.TransactionCredit,
		fmt.Sprintf("Transfer from account %s: %s", source.number, p.Description), nil, nil)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, "UPDATE accounts SET balance = balance - $1 WHERE id = $2", p.Amount, p.FromAccountID); err != nil {
		return nil, fmt.Errorf("source balance update failed: %w", err)
	}
	if _, err := tx.Exec(ctx, "UPDATE accounts SET balance = balance + $1 WHERE id = $2", p.Amount, p.ToAccountID); err != nil {
		return nil, fmt.Errorf("target balance update failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("tx commit failed: %w", err)
	}

	return &TransferResult{DebitEntry: *debit, CreditEntry: *credit}, nil
}

func insertEntry(ctx context.Context, tx pgx.Tx, accountID int64, amount decimal.Decimal, entryType domain.TransactionType, description string, category, merchant *string) (*domain.Transaction, error) {
	var t domain.Transaction
	err := tx.QueryRow(ctx,
		`INSERT INTO transactions (account_id, amount, type, description, category, merchant)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, account_id, amount, type, description, category, merchant, created_at`,
		accountID, amount, entryType, description, category, merchant,
	).Scan(&t.ID, &t.AccountID, &t.Amount, &t.Type, &t.Description, &t.Category, &t.Merchant, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("ledger entry failed: %w", err)
	}
	return &t, nil
}
