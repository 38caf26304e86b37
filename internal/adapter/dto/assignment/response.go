package assignment

import (
	"time"
)

// AssignmentResponse represents one seat in the response
type AssignmentResponse struct {
	ID               string    `json:"id"`
	EventID          string    `json:"event_id"`
	ParticipantID    string    `json:"participant_id"`
	TopicID          string    `json:"topic_id"`
	RoundNumber      int       `json:"round_number"`
	GroupNumber      int       `json:"group_number"`
	AssignmentMethod string    `json:"assignment_method"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at,omitempty"`
}

// GenerateAssignmentsResponse represents the result of a generation
type GenerateAssignmentsResponse struct {
	EventID            string              `json:"event_id"`
	AssignmentsCreated int                 `json:"assignments_created"`
	Statistics         *StatisticsResponse `json:"statistics"`
	Warnings           []string            `json:"warnings"`
}

// AssignmentListResponse represents a list of assignments
type AssignmentListResponse struct {
	EventID     string                `json:"event_id"`
	Round       *int                  `json:"round,omitempty"`
	Assignments []*AssignmentResponse `json:"assignments"`
	Total       int                   `json:"total"`
}

// ClearAssignmentsResponse represents the result of a clear
type ClearAssignmentsResponse struct {
	EventID string `json:"event_id"`
	Deleted int64  `json:"deleted"`
}

// StatisticsResponse represents the quality report of a plan
type StatisticsResponse struct {
	TotalParticipants             int                        `json:"total_participants"`
	TotalAssignments              int                        `json:"total_assignments"`
	ParticipantsFullyAssigned     int                        `json:"participants_fully_assigned"`
	ParticipantsPartiallyAssigned int                        `json:"participants_partially_assigned"`
	ParticipantsNotAssigned       int                        `json:"participants_not_assigned"`
	TopicsUsed                    int                        `json:"topics_used"`
	AverageGroupSize              float64                    `json:"average_group_size"`
	RoundStatistics               []RoundStatisticsResponse  `json:"round_statistics"`
	PreferredChoiceDistribution   ChoiceDistributionResponse `json:"preferred_choice_distribution"`
	SortedChoiceDistribution      ChoiceDistributionResponse `json:"sorted_choice_distribution"`
	TopicOccurrenceDistribution   TopicOccurrenceResponse    `json:"topic_occurrence_distribution"`
	Warnings                      []string                   `json:"warnings,omitempty"`
	GeneratedAt                   *time.Time                 `json:"generated_at,omitempty"`
}

// RoundStatisticsResponse represents one round of the report
type RoundStatisticsResponse struct {
	RoundNumber          int     `json:"round_number"`
	TopicsScheduled      int     `json:"topics_scheduled"`
	ParticipantsAssigned int     `json:"participants_assigned"`
	GroupSizes           []int   `json:"group_sizes"`
	AverageGroupSize     float64 `json:"average_group_size"`
}

// ChoiceDistributionResponse represents a choice distribution. Keys are the
// number of honored choices.
type ChoiceDistributionResponse struct {
	Distribution                  map[string]int `json:"distribution"`
	TotalParticipantsWithRankings int            `json:"total_participants_with_rankings"`
	MinTopicsToRank               *int           `json:"min_topics_to_rank,omitempty"`
}

// TopicOccurrenceResponse represents the topic occurrence distribution
type TopicOccurrenceResponse struct {
	TotalTopicsPlanned int                   `json:"total_topics_planned"`
	TopicDetails       []TopicDetailResponse `json:"topic_details"`
}

// TopicDetailResponse represents how often one topic was scheduled
type TopicDetailResponse struct {
	TopicID     string `json:"topic_id"`
	Title       string `json:"title"`
	Occurrences int    `json:"occurrences"`
}
