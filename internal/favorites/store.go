package favorites

import (
	"context"
	"fmt"

	"github.com/Lee0514/travel-app-backend/internal/db"
)

// Favorite is a saved place together with the denormalized place fields
// the frontend renders.
type Favorite struct {
	PlaceID          string `json:"place_id"`
	PlaceName        string `json:"name"`
	PlaceDescription string `json:"description"`
}

type Store struct {
	db *db.DB
}

func NewStore(db *db.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]Favorite, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT f.place_id, p.name, p.description
		FROM favorites f
		JOIN places p ON p.id = f.place_id
		WHERE f.user_id = $1
		ORDER BY f.created_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []Favorite
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.PlaceID, &f.PlaceName, &f.PlaceDescription); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return out, nil
}

func (s *Store) Add(ctx context.Context, userID, placeID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO favorites (user_id, place_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, place_id) DO NOTHING
	`, userID, placeID)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
