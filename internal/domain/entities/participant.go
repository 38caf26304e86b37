package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParticipantRole represents the role of a participant in an event
type ParticipantRole string

const (
	ParticipantRoleOrganizer   ParticipantRole = "organizer"
	ParticipantRoleFacilitator ParticipantRole = "facilitator"
	ParticipantRoleParticipant ParticipantRole = "participant"
)

// ParticipantStatus represents the registration status of a participant
type ParticipantStatus string

const (
	ParticipantStatusInvited    ParticipantStatus = "invited"
	ParticipantStatusRegistered ParticipantStatus = "registered"
	ParticipantStatusConfirmed  ParticipantStatus = "confirmed"
	ParticipantStatusCheckedIn  ParticipantStatus = "checked_in"
	ParticipantStatusCancelled  ParticipantStatus = "cancelled"
	ParticipantStatusDeclined   ParticipantStatus = "declined"
)

// ActiveParticipantStatuses lists the statuses eligible for seating
var ActiveParticipantStatuses = []ParticipantStatus{
	ParticipantStatusRegistered,
	ParticipantStatusConfirmed,
	ParticipantStatusCheckedIn,
}

// Participant represents a person registered for an event
type Participant struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EventID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"event_id"`
	UserID      *uuid.UUID        `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Email       *string           `gorm:"type:varchar(255);index" json:"email,omitempty"`
	DisplayName string            `gorm:"type:varchar(255)" json:"display_name"`
	Role        ParticipantRole   `gorm:"type:varchar(20);default:'participant'" json:"role"`
	Status      ParticipantStatus `gorm:"type:varchar(20);default:'invited';index" json:"status"`
	CreatedAt   time.Time         `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"default:now()" json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `gorm:"index" json:"-"`
}

// TableName specifies the table name for Participant
func (Participant) TableName() string {
	return "participants"
}

// IsActive checks if the participant may be seated in discussion groups
func (p *Participant) IsActive() bool {
	if p.DeletedAt.Valid {
		return false
	}
	for _, s := range ActiveParticipantStatuses {
		if p.Status == s {
			return true
		}
	}
	return false
}

// IsOrganizer checks if the participant organizes the event
func (p *Participant) IsOrganizer() bool {
	return p.Role == ParticipantRoleOrganizer
}

// Label returns a human readable name for exports and warnings
func (p *Participant) Label() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	if p.Email != nil && *p.Email != "" {
		return *p.Email
	}
	return p.ID.String()
}
