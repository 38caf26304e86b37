package export

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/johnquangdev/discussion-planner/internal/domain/entities"
	"github.com/johnquangdev/discussion-planner/internal/usecase/assignment"
)

func strPtr(s string) *string { return &s }

func samplePlan() *assignment.SeatingPlan {
	event := &entities.Event{
		ID:                  uuid.MustParse("20000000-0000-0000-0000-000000000001"),
		Name:                "Spring Unconference",
		NumberOfRounds:      2,
		DiscussionsPerRound: 2,
		IdealGroupSize:      2,
		MinGroupSize:        1,
		MaxGroupSize:        3,
	}

	ada := &entities.Participant{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), DisplayName: "Ada", Email: strPtr("ada@example.com")}
	bob := &entities.Participant{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), DisplayName: "Bob", Email: strPtr("bob@example.com")}
	cy := &entities.Participant{ID: uuid.MustParse("00000000-0000-0000-0000-000000000003"), Email: strPtr("cy@example.com")}

	rust := &entities.Topic{ID: uuid.MustParse("10000000-0000-0000-0000-000000000001"), Title: "Rust"}
	gophers := &entities.Topic{ID: uuid.MustParse("10000000-0000-0000-0000-000000000002"), Title: "Gophers"}

	seat := func(p *entities.Participant, t *entities.Topic, round, group int) *entities.Assignment {
		return &entities.Assignment{EventID: event.ID, ParticipantID: p.ID, TopicID: t.ID, RoundNumber: round, GroupNumber: group}
	}

	return &assignment.SeatingPlan{
		Event: event,
		Participants: map[uuid.UUID]*entities.Participant{
			ada.ID: ada, bob.ID: bob, cy.ID: cy,
		},
		Topics: map[uuid.UUID]*entities.Topic{
			rust.ID: rust, gophers.ID: gophers,
		},
		Assignments: []*entities.Assignment{
			seat(cy, gophers, 1, 2),
			seat(bob, rust, 1, 1),
			seat(ada, rust, 1, 1),
			seat(ada, gophers, 2, 1),
			seat(bob, gophers, 2, 1),
			seat(cy, rust, 2, 2),
		},
		Statistics: &entities.AssignmentStatistics{
			TotalParticipants:         3,
			TotalAssignments:          6,
			ParticipantsFullyAssigned: 3,
			TopicsUsed:                2,
			AverageGroupSize:          1.5,
			PreferredChoiceDistribution: entities.ChoiceDistribution{
				Distribution:                  map[int]int{0: 1, 1: 1, 2: 1},
				TotalParticipantsWithRankings: 3,
			},
			TopicOccurrenceDistribution: entities.TopicOccurrenceDistribution{
				TotalTopicsPlanned: 4,
				TopicDetails: []entities.TopicOccurrenceDetail{
					{TopicID: rust.ID, Title: "Rust", Occurrences: 2},
					{TopicID: gophers.ID, Title: "Gophers", Occurrences: 2},
				},
			},
			Warnings: []string{"topic Gophers round 1 below minimum group size"},
		},
	}
}

func TestWriteSeatingPlan(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSeatingPlan(&buf, samplePlan()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, RoundSheet(1), RoundSheet(2)}, f.GetSheetList())

	t.Run("round sheet sorted by group then participant", func(t *testing.T) {
		rows, err := f.GetRows(RoundSheet(1))
		require.NoError(t, err)
		assert.Equal(t, [][]string{
			{"Group", "Topic", "Participant", "Email"},
			{"1", "Rust", "Ada", "ada@example.com"},
			{"1", "Rust", "Bob", "bob@example.com"},
			{"2", "Gophers", "cy@example.com", "cy@example.com"},
		}, rows)
	})

	t.Run("summary", func(t *testing.T) {
		rows, err := f.GetRows(SummarySheet)
		require.NoError(t, err)
		require.NotEmpty(t, rows)
		assert.Equal(t, []string{"Event", "Spring Unconference"}, rows[0])
		assert.Contains(t, rows, []string{"Total assignments", "6"})
		assert.Contains(t, rows, []string{"Rust", "2"})
		assert.Contains(t, rows, []string{"topic Gophers round 1 below minimum group size"})
	})
}

func TestWriteSeatingPlanWithoutStatistics(t *testing.T) {
	plan := samplePlan()
	plan.Statistics = nil
	plan.Assignments = nil

	var buf bytes.Buffer
	require.NoError(t, WriteSeatingPlan(&buf, plan))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(RoundSheet(2))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Group", "Topic", "Participant", "Email"}}, rows)

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	assert.Len(t, summary, 4)
}
