package trips

import (
	"context"
	"fmt"
	"time"

	"github.com/Lee0514/travel-app-backend/internal/db"
)

// Event is a single entry on a user's upcoming itinerary.
type Event struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Note  string `json:"note"`
}

type Store struct {
	db *db.DB
}

func NewStore(db *db.DB) *Store {
	return &Store{db: db}
}

// ListByUser returns the user's events grouped by date, keyed
// "YYYY-MM-DD" the way the frontend calendar consumes them.
func (s *Store) ListByUser(ctx context.Context, userID string) (map[string][]Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, date
		FROM upcoming
		WHERE user_id = $1
		ORDER BY date, created_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	events := map[string][]Event{}
	for rows.Next() {
		var (
			e    Event
			date time.Time
		)
		if err := rows.Scan(&e.ID, &e.Title, &e.Note, &date); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		key := date.Format("2006-01-02")
		events[key] = append(events[key], e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return events, nil
}

func (s *Store) Add(ctx context.Context, userID, title, note, date string) (*Event, error) {
	e := &Event{Title: title, Note: note}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO upcoming (user_id, title, description, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, userID, title, note, date).Scan(&e.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}

// Delete removes the event only when it belongs to the user.
func (s *Store) Delete(ctx context.Context, userID, eventID string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM upcoming
		WHERE id = $1 AND user_id = $2
	`, eventID, userID)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
