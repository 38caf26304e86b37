package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/discussion-planner/internal/domain/entities"
	"github.com/johnquangdev/discussion-planner/internal/domain/repositories"
)

// participantRepository implements the ParticipantRepository interface
type participantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new participant repository
func NewParticipantRepository(db *gorm.DB) repositories.ParticipantRepository {
	return &participantRepository{db: db}
}

// Create creates a new participant record
func (r *participantRepository) Create(ctx context.Context, participant *entities.Participant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

// FindByEventID retrieves all participants of an event
func (r *participantRepository) FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.Participant, error) {
	var participants []*entities.Participant
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&participants).Error
	return participants, err
}

// FindActiveByEventID retrieves the participants eligible for seating.
// Soft deleted rows are excluded by gorm.
func (r *participantRepository) FindActiveByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.Participant, error) {
	var participants []*entities.Participant
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND status IN ?", eventID, entities.ActiveParticipantStatuses).
		Order("id ASC").
		Find(&participants).Error
	return participants, err
}
