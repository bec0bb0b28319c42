package event

import (
	"context"
	"time"
)

// Patch carries the fields of a partial event update. Nil fields are
// left untouched.
type Patch struct {
	Title       *string
	Description *string
	Start       *time.Time
	End         *time.Time
	Color       *Color
	Category    *Category
}

// Repository defines the storage interface for events. The widget
// itself never persists anything; the embedding application supplies
// an implementation.
type Repository interface {
	// CreateEvent adds a new event and assigns its identity.
	CreateEvent(ctx context.Context, e *Event) error

	// GetEvent retrieves an event by ID, or nil if it does not exist.
	GetEvent(ctx context.Context, id int64) (*Event, error)

	// UpdateEvent merges the patch into the event identified by id.
	// Returns ErrEventNotFound if the event does not exist.
	UpdateEvent(ctx context.Context, id int64, patch Patch) error

	// DeleteEvent removes the event identified by id.
	// Returns ErrEventNotFound if the event does not exist.
	DeleteEvent(ctx context.Context, id int64) error

	// ListEventsByRange returns events starting within [start, end],
	// ordered by start time.
	ListEventsByRange(ctx context.Context, start, end time.Time) ([]*Event, error)

	// Close releases any resources held by the repository.
	Close() error
}
