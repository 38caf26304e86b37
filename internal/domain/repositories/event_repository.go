package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/discussion-planner/internal/domain/entities"
)

// EventRepository defines the interface for event data access
type EventRepository interface {
	// Create creates a new event
	Create(ctx context.Context, event *entities.Event) error

	// FindByID retrieves an event by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Event, error)

	// UpdateSettings overwrites the settings document of an event
	UpdateSettings(ctx context.Context, event *entities.Event) error
}
