package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Lee0514/travel-app-backend/internal/db"
)

var ErrNotFound = errors.New("profile: not found")

type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Upsert(ctx context.Context, accountID, displayName, lineUserID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profiles (account_id, display_name, line_user_id, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (account_id) DO UPDATE
		SET display_name = EXCLUDED.display_name,
		    line_user_id = EXCLUDED.line_user_id,
		    updated_at = NOW()
	`, accountID, displayName, lineUserID)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (s *PostgresStore) Get(ctx context.Context, accountID string) (*Record, error) {
	rec := &Record{}

	err := s.db.QueryRowContext(ctx, `
		SELECT account_id, display_name, line_user_id, updated_at
		FROM profiles
		WHERE account_id = $1
	`, accountID).Scan(&rec.AccountID, &rec.DisplayName, &rec.LineUserID, &rec.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}
