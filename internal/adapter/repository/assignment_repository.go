package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/discussion-planner/internal/domain/entities"
	"github.com/johnquangdev/discussion-planner/internal/domain/repositories"
)

// assignmentInsertBatch bounds the rows of one INSERT statement
const assignmentInsertBatch = 500

// assignmentRepository implements the AssignmentRepository interface
type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) repositories.AssignmentRepository {
	return &assignmentRepository{db: db}
}

// ReplaceForEvent swaps the assignment set of an event atomically
func (r *assignmentRepository) ReplaceForEvent(ctx context.Context, event *entities.Event, assignments []entities.Assignment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", event.ID).Delete(&entities.Assignment{}).Error; err != nil {
			return fmt.Errorf("failed to clear assignments: %w", err)
		}

		if len(assignments) > 0 {
			if err := tx.CreateInBatches(assignments, assignmentInsertBatch).Error; err != nil {
				return fmt.Errorf("failed to insert assignments: %w", err)
			}
		}

		if err := updateEventSettings(tx, event); err != nil {
			return fmt.Errorf("failed to store statistics: %w", err)
		}
		return nil
	})
}

// FindByEventID retrieves the assignments of an event in seating order
func (r *assignmentRepository) FindByEventID(ctx context.Context, eventID uuid.UUID, filters repositories.AssignmentFilters) ([]*entities.Assignment, error) {
	query := r.db.WithContext(ctx).Where("event_id = ?", eventID)

	if filters.RoundNumber != nil {
		query = query.Where("round_number = ?", *filters.RoundNumber)
	}
	if filters.TopicID != nil {
		query = query.Where("topic_id = ?", *filters.TopicID)
	}
	if filters.ParticipantID != nil {
		query = query.Where("participant_id = ?", *filters.ParticipantID)
	}

	var assignments []*entities.Assignment
	err := query.
		Order("round_number ASC, group_number ASC, participant_id ASC").
		Find(&assignments).Error
	return assignments, err
}

// DeleteByEventID deletes every assignment of an event
func (r *assignmentRepository) DeleteByEventID(ctx context.Context, eventID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Delete(&entities.Assignment{})
	return result.RowsAffected, result.Error
}

// CountByEventID counts the assignments of an event
func (r *assignmentRepository) CountByEventID(ctx context.Context, eventID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Assignment{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}
