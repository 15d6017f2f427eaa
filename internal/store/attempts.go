package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) AppendAttempt(ctx context.Context, a Attempt) error {
	ts := a.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO attempts (timestamp, session_id, kind, correct, total)
		VALUES (?, ?, ?, ?, ?)`,
		ts.UTC().Format(timeLayout), a.SessionID, a.Kind, a.Correct, a.Total)
	if err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) RecentAttempts(ctx context.Context, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, timestamp, session_id, kind, correct, total
		FROM attempts ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var ts string
		if err := rows.Scan(&a.ID, &ts, &a.SessionID, &a.Kind, &a.Correct, &a.Total); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.Timestamp, _ = time.Parse(timeLayout, ts)
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

var _ AttemptRepo = (*attemptRepo)(nil)
var _ EventRepo = (*eventRepo)(nil)
