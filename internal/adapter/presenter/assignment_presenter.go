package presenter

import (
	"strconv"

	"github.com/johnquangdev/discussion-planner/internal/adapter/dto/assignment"
	"github.com/johnquangdev/discussion-planner/internal/domain/entities"
	assignmentUsecase "github.com/johnquangdev/discussion-planner/internal/usecase/assignment"
)

// ToAssignmentResponse converts an Assignment entity to AssignmentResponse DTO
func ToAssignmentResponse(a *entities.Assignment) *assignment.AssignmentResponse {
	if a == nil {
		return nil
	}

	return &assignment.AssignmentResponse{
		ID:               a.ID.String(),
		EventID:          a.EventID.String(),
		ParticipantID:    a.ParticipantID.String(),
		TopicID:          a.TopicID.String(),
		RoundNumber:      a.RoundNumber,
		GroupNumber:      a.GroupNumber,
		AssignmentMethod: string(a.AssignmentMethod),
		Status:           string(a.Status),
		CreatedAt:        a.CreatedAt,
	}
}

// ToAssignmentListResponse converts stored assignments to AssignmentListResponse
func ToAssignmentListResponse(eventID string, round *int, assignments []*entities.Assignment) *assignment.AssignmentListResponse {
	items := make([]*assignment.AssignmentResponse, len(assignments))
	for i, a := range assignments {
		items[i] = ToAssignmentResponse(a)
	}

	return &assignment.AssignmentListResponse{
		EventID:     eventID,
		Round:       round,
		Assignments: items,
		Total:       len(items),
	}
}

// ToGenerateAssignmentsResponse converts a generation output to its DTO
func ToGenerateAssignmentsResponse(out *assignmentUsecase.GenerateOutput) *assignment.GenerateAssignmentsResponse {
	warnings := out.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return &assignment.GenerateAssignmentsResponse{
		EventID:            out.Event.ID.String(),
		AssignmentsCreated: len(out.Assignments),
		Statistics:         ToStatisticsResponse(&out.Statistics),
		Warnings:           warnings,
	}
}

// ToStatisticsResponse converts AssignmentStatistics to StatisticsResponse DTO
func ToStatisticsResponse(s *entities.AssignmentStatistics) *assignment.StatisticsResponse {
	if s == nil {
		return nil
	}

	response := &assignment.StatisticsResponse{
		TotalParticipants:             s.TotalParticipants,
		TotalAssignments:              s.TotalAssignments,
		ParticipantsFullyAssigned:     s.ParticipantsFullyAssigned,
		ParticipantsPartiallyAssigned: s.ParticipantsPartiallyAssigned,
		ParticipantsNotAssigned:       s.ParticipantsNotAssigned,
		TopicsUsed:                    s.TopicsUsed,
		AverageGroupSize:              s.AverageGroupSize,
		RoundStatistics:               make([]assignment.RoundStatisticsResponse, len(s.RoundStatistics)),
		PreferredChoiceDistribution:   toChoiceDistribution(s.PreferredChoiceDistribution, nil),
		TopicOccurrenceDistribution: assignment.TopicOccurrenceResponse{
			TotalTopicsPlanned: s.TopicOccurrenceDistribution.TotalTopicsPlanned,
			TopicDetails:       make([]assignment.TopicDetailResponse, len(s.TopicOccurrenceDistribution.TopicDetails)),
		},
		Warnings: s.Warnings,
	}

	minTopics := s.SortedChoiceDistribution.MinTopicsToRank
	response.SortedChoiceDistribution = toChoiceDistribution(s.SortedChoiceDistribution.ChoiceDistribution, &minTopics)

	for i, r := range s.RoundStatistics {
		response.RoundStatistics[i] = assignment.RoundStatisticsResponse{
			RoundNumber:          r.RoundNumber,
			TopicsScheduled:      r.TopicsScheduled,
			ParticipantsAssigned: r.ParticipantsAssigned,
			GroupSizes:           r.GroupSizes,
			AverageGroupSize:     r.AverageGroupSize,
		}
	}

	for i, d := range s.TopicOccurrenceDistribution.TopicDetails {
		response.TopicOccurrenceDistribution.TopicDetails[i] = assignment.TopicDetailResponse{
			TopicID:     d.TopicID.String(),
			Title:       d.Title,
			Occurrences: d.Occurrences,
		}
	}

	if !s.GeneratedAt.IsZero() {
		generatedAt := s.GeneratedAt
		response.GeneratedAt = &generatedAt
	}

	return response
}

func toChoiceDistribution(d entities.ChoiceDistribution, minTopicsToRank *int) assignment.ChoiceDistributionResponse {
	dist := make(map[string]int, len(d.Distribution))
	for k, v := range d.Distribution {
		dist[strconv.Itoa(k)] = v
	}
	return assignment.ChoiceDistributionResponse{
		Distribution:                  dist,
		TotalParticipantsWithRankings: d.TotalParticipantsWithRankings,
		MinTopicsToRank:               minTopicsToRank,
	}
}
