package assignment

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/discussion-planner/internal/domain/entities"
)

var testEventID = uuid.MustParse("e0000000-0000-0000-0000-000000000001")

// pid and tid build ids whose byte order follows i
func pid(i int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", i))
}

func tid(i int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("10000000-0000-0000-0000-%012d", i))
}

func newEvent(rounds, discussions, ideal, min, max int) *entities.Event {
	return &entities.Event{
		ID:                   testEventID,
		Name:                 "Test event",
		NumberOfRounds:       rounds,
		DiscussionsPerRound:  discussions,
		IdealGroupSize:       ideal,
		MinGroupSize:         min,
		MaxGroupSize:         max,
		MinTopicsToRank:      3,
		EnableAutoAssignment: true,
	}
}

func newParticipants(n int) []entities.Participant {
	out := make([]entities.Participant, n)
	for i := range out {
		out[i] = entities.Participant{
			ID:          pid(i + 1),
			EventID:     testEventID,
			DisplayName: fmt.Sprintf("Participant %d", i+1),
			Role:        entities.ParticipantRoleParticipant,
			Status:      entities.ParticipantStatusConfirmed,
		}
	}
	return out
}

func newTopics(n int) []entities.Topic {
	out := make([]entities.Topic, n)
	for i := range out {
		out[i] = entities.Topic{
			ID:      tid(i + 1),
			EventID: testEventID,
			Title:   fmt.Sprintf("Topic %d", i+1),
			Status:  entities.TopicStatusApproved,
		}
	}
	return out
}

func ranking(participant uuid.UUID, topics ...uuid.UUID) entities.TopicRanking {
	return entities.TopicRanking{
		EventID:        testEventID,
		ParticipantID:  participant,
		RankedTopicIDs: topics,
		TopicsRanked:   len(topics),
	}
}

func participantIDs(ps []entities.Participant) []uuid.UUID {
	ids := make([]uuid.UUID, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	return ids
}

func topicIDs(ts []entities.Topic) []uuid.UUID {
	ids := make([]uuid.UUID, len(ts))
	for i, t := range ts {
		ids[i] = t.ID
	}
	return ids
}

func ids(list ...uuid.UUID) []uuid.UUID {
	return list
}

// newAllocator wires a round allocator the same way the orchestrator does
func newAllocator(event *entities.Event, participants []uuid.UUID, topics []entities.Topic, rankings []entities.TopicRanking) (*RoundAllocator, *TopicPool) {
	prefs := NewPreferenceIndex(participants, rankings, topicIDs(topics))
	pool := NewTopicPool(event, topics, participants, prefs)
	return NewRoundAllocator(event, prefs, pool), pool
}

// assertPlanInvariants checks the properties every generated plan must hold
func assertPlanInvariants(t *testing.T, in Input, res *Result) {
	t.Helper()
	event := in.Event

	eligible := make(map[uuid.UUID]bool)
	for _, p := range EligibleParticipants(in.Participants) {
		eligible[p.ID] = true
	}
	titles := make(map[uuid.UUID]string)
	for _, tp := range EligibleTopics(in.Topics) {
		titles[tp.ID] = tp.Title
	}

	type seat struct {
		participant uuid.UUID
		round       int
	}
	type group struct {
		round  int
		number int
	}
	seats := make(map[seat]bool)
	sizes := make(map[group]int)
	groupTopic := make(map[group]uuid.UUID)
	topicRounds := make(map[uuid.UUID]map[int]bool)

	for _, a := range res.Assignments {
		assert.True(t, eligible[a.ParticipantID], "assignment for ineligible participant %s", a.ParticipantID)
		_, approved := titles[a.TopicID]
		assert.True(t, approved, "assignment to ineligible topic %s", a.TopicID)
		assert.GreaterOrEqual(t, a.RoundNumber, 1)
		assert.LessOrEqual(t, a.RoundNumber, event.NumberOfRounds)
		assert.Equal(t, entities.AssignmentMethodAutomatic, a.AssignmentMethod)
		assert.Equal(t, entities.AssignmentStatusAssigned, a.Status)

		s := seat{participant: a.ParticipantID, round: a.RoundNumber}
		assert.False(t, seats[s], "participant %s seated twice in round %d", a.ParticipantID, a.RoundNumber)
		seats[s] = true

		g := group{round: a.RoundNumber, number: a.GroupNumber}
		sizes[g]++
		if prev, ok := groupTopic[g]; ok {
			assert.Equal(t, prev, a.TopicID, "group %d of round %d mixes topics", g.number, g.round)
		}
		groupTopic[g] = a.TopicID
	}

	perRound := make(map[int]int)
	for g, size := range sizes {
		perRound[g.round]++
		assert.LessOrEqual(t, size, event.MaxGroupSize)
		if size < event.MinGroupSize {
			want := fmt.Sprintf("topic %s round %d below minimum group size", titles[groupTopic[g]], g.round)
			assert.Contains(t, res.Warnings, want)
		}

		tp := groupTopic[g]
		if topicRounds[tp] == nil {
			topicRounds[tp] = make(map[int]bool)
		}
		assert.False(t, topicRounds[tp][g.round], "topic %s scheduled twice in round %d", tp, g.round)
		topicRounds[tp][g.round] = true
	}
	for round, n := range perRound {
		assert.LessOrEqual(t, n, event.DiscussionsPerRound, "round %d has too many groups", round)
	}

	budget := event.NumberOfRounds
	if event.MaxTopicOccurrences > 0 && event.MaxTopicOccurrences < budget {
		budget = event.MaxTopicOccurrences
	}
	for tp, rounds := range topicRounds {
		assert.LessOrEqual(t, len(rounds), budget, "topic %s over budget", tp)
	}

	stats := res.Statistics
	assert.Equal(t, stats.TotalParticipants,
		stats.ParticipantsFullyAssigned+stats.ParticipantsPartiallyAssigned+stats.ParticipantsNotAssigned)
	sum := 0
	for _, rs := range stats.RoundStatistics {
		sum += rs.ParticipantsAssigned
	}
	assert.LessOrEqual(t, sum, stats.TotalParticipants*event.NumberOfRounds)
	assert.Equal(t, len(res.Assignments), stats.TotalAssignments)
}

func warningsContaining(warnings []string, fragment string) []string {
	var out []string
	for _, w := range warnings {
		if strings.Contains(w, fragment) {
			out = append(out, w)
		}
	}
	return out
}
