package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Immanah/FinancialWellnessHub/internal/domain"
)

const transactionColumns = "id, account_id, amount, type, description, category, merchant, created_at"

// ListAccountTransactions returns the account's ledger entries,
// newest first.
func (s *Store) ListAccountTransactions(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	rows, err := s.db.Query(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE account_id = $1 ORDER BY created_at DESC, id DESC",
		accountID)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()
	return scanTransactions(rows)
}

// ListUserTransactions returns ledger entries across all of the user's
// accounts, newest first.
func (s *Store) ListUserTransactions(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	rows, err := s.db.Query(ctx,
		`SELECT t.id, t.account_id, t.amount, t.type, t.description, t.category, t.merchant, t.created_at
		 FROM transactions t
		 JOIN accounts a ON a.id = t.account_id
		 WHERE a.user_id = $1
		 ORDER BY t.created_at DESC, t.id DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	txns := []domain.Transaction{}
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.AccountID, &t.Amount, &t.Type, &t.Description, &t.Category, &t.Merchant, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}
