package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Immanah/FinancialWellnessHub/internal/domain"
)

const goalColumns = "id, user_id, name, target_amount, current_amount, deadline, completed, created_at"

func (s *Store) CreateGoal(ctx context.Context, userID int64, name string, target decimal.Decimal, deadline *time.Time) (*domain.SavingGoal, error) {
	var g domain.SavingGoal
	err := s.db.QueryRow(ctx,
		`INSERT INTO saving_goals (user_id, name, target_amount, deadline)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+goalColumns,
		userID, name, target, deadline,
	).Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Deadline, &g.Completed, &g.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}
	return &g, nil
}

func (s *Store) GetGoal(ctx context.Context, id int64) (*domain.SavingGoal, error) {
	var g domain.SavingGoal
	err := s.db.QueryRow(ctx,
		"SELECT "+goalColumns+" FROM saving_goals WHERE id = $1",
		id,
	).Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Deadline, &g.Completed, &g.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query goal: %w", err)
	}
	return &g, nil
}

func (s *Store) ListGoals(ctx context.Context, userID int64) ([]domain.SavingGoal, error) {
	rows, err := s.db.Query(ctx,
		"SELECT "+goalColumns+" FROM saving_goals WHERE user_id = $1 ORDER BY created_at",
		userID)
	if err != nil {
		return nil, fmt.Errorf("query goals: %w", err)
	}
	defer rows.Close()

	goals := []domain.SavingGoal{}
	for rows.Next() {
		var g domain.SavingGoal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Deadline, &g.Completed, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}
