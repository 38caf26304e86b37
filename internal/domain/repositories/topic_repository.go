package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/discussion-planner/internal/domain/entities"
)

// TopicRepository defines the interface for topic data access
type TopicRepository interface {
	// Create creates a new topic
	Create(ctx context.Context, topic *entities.Topic) error

	// FindByEventID retrieves all topics of an event
	FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.Topic, error)

	// FindApprovedByEventID retrieves the approved topics of an event
	FindApprovedByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.Topic, error)
}

// TopicRankingRepository defines the interface for topic ranking data access
type TopicRankingRepository interface {
	// Upsert creates or replaces the ranking of a participant
	Upsert(ctx context.Context, ranking *entities.TopicRanking) error

	// FindByEventID retrieves all rankings submitted for an event
	FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.TopicRanking, error)
}
