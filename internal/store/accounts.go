package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Immanah/FinancialWellnessHub/internal/domain"
)

func (s *Store) CreateAccount(ctx context.Context, userID int64, name, number string, accountType domain.AccountType) (*domain.Account, error) {
	var a domain.Account
	err := s.db.QueryRow(ctx,
		`INSERT INTO accounts (user_id, name, number, type)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, name, number, balance, type, created_at`,
		userID, name, number, accountType,
	).Scan(&a.ID, &a.UserID, &a.Name, &a.Number, &a.Balance, &a.Type, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert account: %w", err)
	}
	return &a, nil
}

func (s *Store) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	var a domain.Account
	err := s.db.QueryRow(ctx,
		"SELECT id, user_id, name, number, balance, type, created_at FROM accounts WHERE id = $1",
		id,
	).Scan(&a.ID, &a.UserID, &a.Name, &a.Number, &a.Balance, &a.Type, &a.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query account: %w", err)
	}
	return &a, nil
}

// ListAccounts returns all accounts owned by the user. An unknown user
// yields an empty slice, not an error.
func (s *Store) ListAccounts(ctx context.Context, userID int64) ([]domain.Account, error) {
	rows, err := s.db.Query(ctx,
		"SELECT id, user_id, name, number, balance, type, created_at FROM accounts WHERE user_id = $1 ORDER BY created_at",
		userID)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Number, &a.Balance, &a.Type, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}
