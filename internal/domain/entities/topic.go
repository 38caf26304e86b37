package entities

import (
	"time"

	"github.com/google/uuid"
)

// TopicStatus represents the review status of a proposed topic
type TopicStatus string

const (
	TopicStatusProposed TopicStatus = "proposed"
	TopicStatusApproved TopicStatus = "approved"
	TopicStatusRejected TopicStatus = "rejected"
)

// Topic represents a discussion topic proposed for an event
type Topic struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EventID     uuid.UUID   `gorm:"type:uuid;not null;index" json:"event_id"`
	Title       string      `gorm:"type:varchar(255);not null" json:"title"`
	Description *string     `gorm:"type:text" json:"description,omitempty"`
	ProposedBy  uuid.UUID   `gorm:"type:uuid;not null;index" json:"proposed_by"`
	Status      TopicStatus `gorm:"type:varchar(20);not null;default:'proposed';index" json:"status"`
	CreatedAt   time.Time   `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Topic
func (Topic) TableName() string {
	return "topics"
}

// IsApproved checks if the topic may be scheduled
func (t *Topic) IsApproved() bool {
	return t.Status == TopicStatusApproved
}
