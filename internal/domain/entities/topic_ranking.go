package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TopicRanking holds a participant's ordered topic preferences, most preferred first
type TopicRanking struct {
	ID             uuid.UUID                      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EventID        uuid.UUID                      `gorm:"type:uuid;not null;index" json:"event_id"`
	ParticipantID  uuid.UUID                      `gorm:"type:uuid;not null;uniqueIndex" json:"participant_id"`
	RankedTopicIDs datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb;not null;default:'[]'" json:"ranked_topic_ids"`
	TopicsRanked   int                            `gorm:"not null;default:0" json:"topics_ranked"`
	CreatedAt      time.Time                      `gorm:"default:now()" json:"created_at"`
	UpdatedAt      time.Time                      `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for TopicRanking
func (TopicRanking) TableName() string {
	return "topic_rankings"
}

// HasRankings checks if at least one topic was ranked
func (r *TopicRanking) HasRankings() bool {
	return len(r.RankedTopicIDs) > 0
}
