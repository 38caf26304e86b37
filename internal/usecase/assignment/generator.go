package assignment

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/johnquangdev/discussion-planner/internal/domain/entities"
)

// Input is the snapshot a generation pass works on.
//
// Participants and Topics may contain ineligible rows; they are filtered by
// status here. UserRoles and OrganizerIDs are advisory and currently unused by
// the allocation.
type Input struct {
	Event        *entities.Event
	Participants []entities.Participant
	Topics       []entities.Topic
	Rankings     []entities.TopicRanking
	UserRoles    map[uuid.UUID]string
	OrganizerIDs map[uuid.UUID]struct{}
}

// Result is the output of a generation pass
type Result struct {
	Assignments []entities.Assignment
	Statistics  entities.AssignmentStatistics
	Warnings    []string
}

// Generate computes the seating plan and its statistics. It is deterministic:
// the same snapshot always yields the same result.
func Generate(in Input) (*Result, error) {
	if err := ValidateEvent(in.Event); err != nil {
		return nil, err
	}

	participants := EligibleParticipants(in.Participants)
	if len(participants) == 0 {
		return nil, ErrNoEligibleParticipants
	}
	topics := EligibleTopics(in.Topics)
	if len(topics) == 0 {
		return nil, ErrNoEligibleTopics
	}

	ids := make([]uuid.UUID, len(participants))
	for i, p := range participants {
		ids[i] = p.ID
	}

	plan := NewOrchestrator(in.Event, ids, topics, in.Rankings).Run()

	stats := CalculateStatistics(StatisticsInput{
		Event:        in.Event,
		Participants: participants,
		Topics:       topics,
		Rankings:     in.Rankings,
		Assignments:  plan.Assignments,
	})
	stats.Warnings = append([]string(nil), plan.Warnings...)

	return &Result{
		Assignments: plan.Assignments,
		Statistics:  stats,
		Warnings:    plan.Warnings,
	}, nil
}

// ValidateEvent checks the structural configuration of an event
func ValidateEvent(event *entities.Event) error {
	if event == nil {
		return ErrMissingEvent
	}
	if event.NumberOfRounds < 1 {
		return fmt.Errorf("number_of_rounds=%d: %w", event.NumberOfRounds, ErrInvalidRounds)
	}
	if event.DiscussionsPerRound < 1 {
		return fmt.Errorf("discussions_per_round=%d: %w", event.DiscussionsPerRound, ErrInvalidDiscussionsPerRound)
	}
	if event.MinGroupSize < 1 || event.MinGroupSize > event.IdealGroupSize || event.IdealGroupSize > event.MaxGroupSize {
		return fmt.Errorf("min=%d ideal=%d max=%d: %w",
			event.MinGroupSize, event.IdealGroupSize, event.MaxGroupSize, ErrInvalidGroupBounds)
	}
	return nil
}

// EligibleParticipants keeps active, non deleted participants, dropping duplicate ids
func EligibleParticipants(participants []entities.Participant) []entities.Participant {
	seen := make(map[uuid.UUID]bool, len(participants))
	out := make([]entities.Participant, 0, len(participants))
	for i := range participants {
		p := participants[i]
		if !p.IsActive() || seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	return out
}

// EligibleTopics keeps approved topics, dropping duplicate ids
func EligibleTopics(topics []entities.Topic) []entities.Topic {
	seen := make(map[uuid.UUID]bool, len(topics))
	out := make([]entities.Topic, 0, len(topics))
	for i := range topics {
		t := topics[i]
		if !t.IsApproved() || seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out
}
