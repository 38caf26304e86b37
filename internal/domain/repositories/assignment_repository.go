package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/discussion-planner/internal/domain/entities"
)

// AssignmentRepository defines the interface for assignment data access
type AssignmentRepository interface {
	// ReplaceForEvent deletes the previous assignment set of the event, inserts
	// the new one and stores the event settings, all in one transaction
	ReplaceForEvent(ctx context.Context, event *entities.Event, assignments []entities.Assignment) error

	// FindByEventID retrieves the assignments of an event
	FindByEventID(ctx context.Context, eventID uuid.UUID, filters AssignmentFilters) ([]*entities.Assignment, error)

	// DeleteByEventID deletes every assignment of an event
	DeleteByEventID(ctx context.Context, eventID uuid.UUID) (int64, error)

	// CountByEventID counts the assignments of an event
	CountByEventID(ctx context.Context, eventID uuid.UUID) (int64, error)
}

// AssignmentFilters represents filter options for listing assignments
type AssignmentFilters struct {
	RoundNumber   *int
	TopicID       *uuid.UUID
	ParticipantID *uuid.UUID
}
