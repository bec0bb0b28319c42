// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/jfmartinez/almanac/internal/event"
)

// SQLite implements event.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// CreateEvent adds a new event and assigns its identity.
func (s *SQLite) CreateEvent(ctx context.Context, e *event.Event) error {
	if errs := event.Validate(e); len(errs) > 0 {
		return errs
	}

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO events (title, description, start_at, end_at, color, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		e.Title,
		e.Description,
		e.Start.Format(time.RFC3339),
		e.End.Format(time.RFC3339),
		string(e.Color),
		string(e.Category),
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	e.ID = id

	return nil
}

// GetEvent retrieves an event by ID. Returns nil when no row exists.
func (s *SQLite) GetEvent(ctx context.Context, id int64) (*event.Event, error) {
	query := `
		SELECT id, title, description, start_at, end_at, color, category, created_at
		FROM events
		WHERE id = ?
	`

	e, err := scanEvent(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying event: %w", err)
	}
	return e, nil
}

// UpdateEvent merges the patch into the stored event. Only the fields
// the patch carries are written.
func (s *SQLite) UpdateEvent(ctx context.Context, id int64, patch event.Patch) error {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Start != nil {
		sets = append(sets, "start_at = ?")
		args = append(args, patch.Start.Format(time.RFC3339))
	}
	if patch.End != nil {
		sets = append(sets, "end_at = ?")
		args = append(args, patch.End.Format(time.RFC3339))
	}
	if patch.Color != nil {
		sets = append(sets, "color = ?")
		args = append(args, string(*patch.Color))
	}
	if patch.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, string(*patch.Category))
	}

	if len(sets) == 0 {
		return nil
	}

	query := "UPDATE events SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return event.ErrEventNotFound
	}

	return nil
}

// DeleteEvent removes the event identified by id.
func (s *SQLite) DeleteEvent(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM events WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return event.ErrEventNotFound
	}

	return nil
}

// ListEventsByRange returns events starting within [start, end], ordered by start time.
func (s *SQLite) ListEventsByRange(ctx context.Context, start, end time.Time) ([]*event.Event, error) {
	query := `
		SELECT id, title, description, start_at, end_at, color, category, created_at
		FROM events
		WHERE start_at >= ? AND start_at <= ?
		ORDER BY start_at, id
	`

	rows, err := s.db.QueryContext(ctx, query,
		start.Format(time.RFC3339),
		end.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	events := make([]*event.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}

	return events, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (*event.Event, error) {
	var (
		e           event.Event
		description sql.NullString
		startAt     string
		endAt       string
		color       string
		category    string
		createdAt   string
	)

	err := row.Scan(&e.ID, &e.Title, &description, &startAt, &endAt, &color, &category, &createdAt)
	if err != nil {
		return nil, err
	}

	e.Description = description.String
	e.Color = event.Color(color)
	e.Category = event.Category(category)

	if e.Start, err = time.Parse(time.RFC3339, startAt); err != nil {
		return nil, fmt.Errorf("parsing start: %w", err)
	}
	if e.End, err = time.Parse(time.RFC3339, endAt); err != nil {
		return nil, fmt.Errorf("parsing end: %w", err)
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	return &e, nil
}
