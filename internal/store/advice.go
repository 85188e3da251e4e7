package store

import (
	"context"
	"fmt"

	"github.com/Immanah/FinancialWellnessHub/internal/domain"
)

func (s *Store) CreateAdvice(ctx context.Context, userID int64, query, response string) (*domain.Advice, error) {
	var a domain.Advice
	err := s.db.QueryRow(ctx,
		`INSERT INTO ai_advice (user_id, query, response)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, query, response, created_at`,
		userID, query, response,
	).Scan(&a.ID, &a.UserID, &a.Query, &a.Response, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert advice: %w", err)
	}
	return &a, nil
}

// ListAdvice returns the user's advice history, newest first.
func (s *Store) ListAdvice(ctx context.Context, userID int64) ([]domain.Advice, error) {
	rows, err := s.db.Query(ctx,
		"SELECT id, user_id, query, response, created_at FROM ai_advice WHERE user_id = $1 ORDER BY created_at DESC, id DESC",
		userID)
	if err != nil {
		return nil, fmt.Errorf("query advice: %w", err)
	}
	defer rows.Close()

	history := []domain.Advice{}
	for rows.Next() {
		var a domain.Advice
		if err := rows.Scan(&a.ID, &a.UserID, &a.Query, &a.Response, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan advice: %w", err)
		}
		history = append(history, a)
	}
	return history, rows.Err()
}
