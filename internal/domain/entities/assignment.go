package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentMethod describes how an assignment was produced
type AssignmentMethod string

const (
	AssignmentMethodAutomatic AssignmentMethod = "automatic"
	AssignmentMethodManual    AssignmentMethod = "manual"
)

// AssignmentStatus represents the status of a seat
type AssignmentStatus string

const (
	AssignmentStatusAssigned  AssignmentStatus = "assigned"
	AssignmentStatusCancelled AssignmentStatus = "cancelled"
)

// Assignment seats one participant in one topic group for one round
type Assignment struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EventID          uuid.UUID        `gorm:"type:uuid;not null;index;uniqueIndex:idx_assignment_seat" json:"event_id"`
	ParticipantID    uuid.UUID        `gorm:"type:uuid;not null;index;uniqueIndex:idx_assignment_seat" json:"participant_id"`
	TopicID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"topic_id"`
	RoundNumber      int              `gorm:"not null;uniqueIndex:idx_assignment_seat" json:"round_number"`
	GroupNumber      int              `gorm:"not null" json:"group_number"`
	AssignmentMethod AssignmentMethod `gorm:"type:varchar(20);not null;default:'automatic'" json:"assignment_method"`
	Status           AssignmentStatus `gorm:"type:varchar(20);not null;default:'assigned'" json:"status"`
	CreatedAt        time.Time        `gorm:"default:now()" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}

// BeforeCreate assigns an ID when the generator left it empty
func (a *Assignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
