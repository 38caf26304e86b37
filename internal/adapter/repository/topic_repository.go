package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/discussion-planner/internal/domain/entities"
	"github.com/johnquangdev/discussion-planner/internal/domain/repositories"
)

// topicRepository implements the TopicRepository interface
type topicRepository struct {
	db *gorm.DB
}

// NewTopicRepository creates a new topic repository
func NewTopicRepository(db *gorm.DB) repositories.TopicRepository {
	return &topicRepository{db: db}
}

// Create creates a new topic
func (r *topicRepository) Create(ctx context.Context, topic *entities.Topic) error {
	return r.db.WithContext(ctx).Create(topic).Error
}

// FindByEventID retrieves all topics of an event
func (r *topicRepository) FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.Topic, error) {
	var topics []*entities.Topic
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&topics).Error
	return topics, err
}

// FindApprovedByEventID retrieves the approved topics of an event
func (r *topicRepository) FindApprovedByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.Topic, error) {
	var topics []*entities.Topic
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND status = ?", eventID, entities.TopicStatusApproved).
		Order("id ASC").
		Find(&topics).Error
	return topics, err
}

// topicRankingRepository implements the TopicRankingRepository interface
type topicRankingRepository struct {
	db *gorm.DB
}

// NewTopicRankingRepository creates a new topic ranking repository
func NewTopicRankingRepository(db *gorm.DB) repositories.TopicRankingRepository {
	return &topicRankingRepository{db: db}
}

// Upsert creates or replaces the ranking of a participant
func (r *topicRankingRepository) Upsert(ctx context.Context, ranking *entities.TopicRanking) error {
	ranking.TopicsRanked = len(ranking.RankedTopicIDs)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "participant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"ranked_topic_ids", "topics_ranked", "updated_at"}),
		}).
		Create(ranking).Error
}

// FindByEventID retrieves all rankings submitted for an event
func (r *topicRankingRepository) FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.TopicRanking, error) {
	var rankings []*entities.TopicRanking
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("updated_at ASC, id ASC").
		Find(&rankings).Error
	return rankings, err
}
