package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Immanah/FinancialWellnessHub/internal/domain"
)

type Goals struct {
	db *pgxpool.Pool
}

func NewGoals(db *pgxpool.Pool) *Goals {
	return &Goals{db: db}
}

// AddFunds applies a deposit to the goal and recomputes the completion
// flag. Goals are never debited, so completion can only latch on.
func (g *Goals) AddFunds(ctx context.Context, goalID int64, amount decimal.Decimal) (*domain.SavingGoal, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	tx, err := g.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return nil, fmt.Errorf("tx begin failed: %w", err)
	}
	defer tx.Rollback(ctx)

	var current, target decimal.Decimal
	err = tx.QueryRow(ctx,
		"SELECT current_amount, target_amount FROM saving_goals WHERE id = $1 FOR UPDATE",
		goalID,
	).Scan(&current, &target)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("lock acquisition failed: %w", err)
	}

	newCurrent := current.Add(amount)
	completed := newCurrent.GreaterThanOrEqual(target)

	var goal domain.SavingGoal
	err = tx.QueryRow(ctx,
		`UPDATE saving_goals SET current_amount = $1, completed = $2 WHERE id = $3
		 RETURNING id, user_id, name, target_amount, current_amount, deadline, completed, created_at`,
		newCurrent, completed, goalID,
	).Scan(&goal.ID, &goal.UserID, &goal.Name, &goal.TargetAmount, &goal.CurrentAmount,
		&goal.Deadline, &goal.Completed, &goal.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("goal update failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("tx commit failed: %w", err)
	}
	return &goal, nil
}
