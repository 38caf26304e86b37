package entities

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentStatistics describes the quality of a generated seating plan
type AssignmentStatistics struct {
	TotalParticipants             int                         `json:"total_participants"`
	TotalAssignments              int                         `json:"total_assignments"`
	ParticipantsFullyAssigned     int                         `json:"participants_fully_assigned"`
	ParticipantsPartiallyAssigned int                         `json:"participants_partially_assigned"`
	ParticipantsNotAssigned       int                         `json:"participants_not_assigned"`
	TopicsUsed                    int                         `json:"topics_used"`
	AverageGroupSize              float64                     `json:"average_group_size"`
	RoundStatistics               []RoundStatistics           `json:"round_statistics"`
	PreferredChoiceDistribution   ChoiceDistribution          `json:"preferred_choice_distribution"`
	SortedChoiceDistribution      SortedChoiceDistribution    `json:"sorted_choice_distribution"`
	TopicOccurrenceDistribution   TopicOccurrenceDistribution `json:"topic_occurrence_distribution"`
	Warnings                      []string                    `json:"warnings,omitempty"`
	GeneratedAt                   time.Time                   `json:"generated_at"`
}

// RoundStatistics describes one round of the plan
type RoundStatistics struct {
	RoundNumber          int     `json:"round_number"`
	TopicsScheduled      int     `json:"topics_scheduled"`
	ParticipantsAssigned int     `json:"participants_assigned"`
	GroupSizes           []int   `json:"group_sizes"`
	AverageGroupSize     float64 `json:"average_group_size"`
}

// ChoiceDistribution buckets ranked participants by how many of their top choices were honored
type ChoiceDistribution struct {
	Distribution                  map[int]int `json:"distribution"`
	TotalParticipantsWithRankings int         `json:"total_participants_with_rankings"`
}

// SortedChoiceDistribution is a ChoiceDistribution measured against the ranking requirement
type SortedChoiceDistribution struct {
	ChoiceDistribution
	MinTopicsToRank int `json:"min_topics_to_rank"`
}

// TopicOccurrenceDistribution describes how often each topic was scheduled
type TopicOccurrenceDistribution struct {
	TotalTopicsPlanned int                     `json:"total_topics_planned"`
	TopicDetails       []TopicOccurrenceDetail `json:"topic_details"`
}

// TopicOccurrenceDetail is the occurrence count of one topic
type TopicOccurrenceDetail struct {
	TopicID     uuid.UUID `json:"topic_id"`
	Title       string    `json:"title"`
	Occurrences int       `json:"occurrences"`
}
