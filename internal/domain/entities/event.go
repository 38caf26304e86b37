package entities

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventStatus represents the lifecycle status of an event
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusOpen      EventStatus = "open"
	EventStatusScheduled EventStatus = "scheduled"
	EventStatusRunning   EventStatus = "running"
	EventStatusEnded     EventStatus = "ended"
)

// settingsStatisticsKey is the Settings key holding the last generation statistics
const settingsStatisticsKey = "assignment_statistics"

// Event represents a discussion event made of several rounds of topic groups
type Event struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name                 string         `gorm:"type:varchar(255);not null" json:"name"`
	Description          *string        `gorm:"type:text" json:"description,omitempty"`
	OrganizerID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"organizer_id"`
	Status               EventStatus    `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	NumberOfRounds       int            `gorm:"not null;default:1" json:"number_of_rounds"`
	DiscussionsPerRound  int            `gorm:"not null;default:1" json:"discussions_per_round"`
	IdealGroupSize       int            `gorm:"not null;default:5" json:"ideal_group_size"`
	MinGroupSize         int            `gorm:"not null;default:3" json:"min_group_size"`
	MaxGroupSize         int            `gorm:"not null;default:8" json:"max_group_size"`
	MaxTopicOccurrences  int            `gorm:"not null;default:0" json:"max_topic_occurrences"` // 0 = bounded by rounds
	MinTopicsToRank      int            `gorm:"not null;default:3" json:"min_topics_to_rank"`
	EnableAutoAssignment bool           `gorm:"not null;default:false" json:"enable_auto_assignment"`
	Settings             datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"settings"`
	StartsAt             *time.Time     `gorm:"index" json:"starts_at,omitempty"`
	CreatedAt            time.Time      `gorm:"default:now()" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Event
func (Event) TableName() string {
	return "events"
}

// AssignmentStatistics decodes the statistics stored by the last generation.
// It returns nil when no generation has been stored yet.
func (e *Event) AssignmentStatistics() (*AssignmentStatistics, error) {
	if len(e.Settings) == 0 {
		return nil, nil
	}

	var settings map[string]json.RawMessage
	if err := json.Unmarshal(e.Settings, &settings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSettingsCorrupted, err)
	}

	raw, ok := settings[settingsStatisticsKey]
	if !ok || string(raw) == "null" {
		return nil, nil
	}

	var stats AssignmentStatistics
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SetAssignmentStatistics stores statistics into Settings, keeping the other keys
func (e *Event) SetAssignmentStatistics(stats *AssignmentStatistics) error {
	settings := map[string]json.RawMessage{}
	if len(e.Settings) > 0 {
		if err := json.Unmarshal(e.Settings, &settings); err != nil {
			return fmt.Errorf("%w: %v", ErrSettingsCorrupted, err)
		}
	}
	if settings == nil {
		settings = map[string]json.RawMessage{}
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	settings[settingsStatisticsKey] = raw

	encoded, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	e.Settings = datatypes.JSON(encoded)
	return nil
}
