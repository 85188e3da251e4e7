package store

import (
	"context"
	"fmt"

	"github.com/Immanah/FinancialWellnessHub/internal/domain"
)

func (s *Store) CreateJournalEntry(ctx context.Context, userID int64, entry string, mood domain.Mood) (*domain.JournalEntry, error) {
	var e domain.JournalEntry
	err := s.db.QueryRow(ctx,
		`INSERT INTO journal_entries (user_id, entry, mood)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, entry, mood, created_at`,
		userID, entry, mood,
	).Scan(&e.ID, &e.UserID, &e.Entry, &e.Mood, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert journal entry: %w", err)
	}
	return &e, nil
}

// ListJournalEntries returns the user's journal, newest first.
func (s *Store) ListJournalEntries(ctx context.Context, userID int64) ([]domain.JournalEntry, error) {
	rows, err := s.db.Query(ctx,
		"SELECT id, user_id, entry, mood, created_at FROM journal_entries WHERE user_id = $1 ORDER BY created_at DESC, id DESC",
		userID)
	if err != nil {
		return nil, fmt.Errorf("query journal entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		var e domain.JournalEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Entry, &e.Mood, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
