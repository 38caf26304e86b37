package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/discussion-planner/internal/domain/entities"
)

// ParticipantRepository defines the interface for participant data access
type ParticipantRepository interface {
	// Create creates a new participant record
	Create(ctx context.Context, participant *entities.Participant) error

	// FindByEventID retrieves all participants of an event
	FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.Participant, error)

	// FindActiveByEventID retrieves the participants eligible for seating
	FindActiveByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.Participant, error)
}
