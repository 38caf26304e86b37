package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/discussion-planner/internal/domain/entities"
	"github.com/johnquangdev/discussion-planner/internal/domain/repositories"
)

// eventRepository implements the EventRepository interface
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) repositories.EventRepository {
	return &eventRepository{db: db}
}

// Create creates a new event
func (r *eventRepository) Create(ctx context.Context, event *entities.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// FindByID retrieves an event by its ID
func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	var event entities.Event
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&event).Error

	if err != nil {
		return nil, err
	}
	return &event, nil
}

// UpdateSettings overwrites the settings document of an event
func (r *eventRepository) UpdateSettings(ctx context.Context, event *entities.Event) error {
	return updateEventSettings(r.db.WithContext(ctx), event)
}

func updateEventSettings(db *gorm.DB, event *entities.Event) error {
	return db.Model(&entities.Event{}).
		Where("id = ?", event.ID).
		Updates(map[string]interface{}{
			"settings":   event.Settings,
			"updated_at": gorm.Expr("NOW()"),
		}).Error
}
