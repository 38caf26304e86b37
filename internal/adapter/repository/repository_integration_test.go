//go:build integration

package repository

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/discussion-planner/internal/domain/entities"
	"github.com/johnquangdev/discussion-planner/internal/domain/repositories"
	"github.com/johnquangdev/discussion-planner/internal/infrastructure/database"
)

// setupDB starts a throwaway Postgres, applies the migrations and returns a gorm handle
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("planner"),
		tcpostgres.WithUsername("planner"),
		tcpostgres.WithPassword("planner"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(45*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db, migrationsDir(t), database.Up))
	return db
}

func migrationsDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "migrations")
}

type seededEvent struct {
	event        *entities.Event
	participants []*entities.Participant
	topics       []*entities.Topic
}

func seedEvent(t *testing.T, db *gorm.DB) seededEvent {
	t.Helper()
	ctx := context.Background()

	event := &entities.Event{
		ID:                   uuid.New(),
		Name:                 "Integration event",
		OrganizerID:          uuid.New(),
		Status:               entities.EventStatusOpen,
		NumberOfRounds:       2,
		DiscussionsPerRound:  2,
		IdealGroupSize:       2,
		MinGroupSize:         1,
		MaxGroupSize:         3,
		MinTopicsToRank:      2,
		EnableAutoAssignment: true,
	}
	require.NoError(t, NewEventRepository(db).Create(ctx, event))

	seeded := seededEvent{event: event}
	statuses := []entities.ParticipantStatus{
		entities.ParticipantStatusConfirmed,
		entities.ParticipantStatusRegistered,
		entities.ParticipantStatusCheckedIn,
		entities.ParticipantStatusCancelled,
	}
	participantRepo := NewParticipantRepository(db)
	for _, status := range statuses {
		p := &entities.Participant{ID: uuid.New(), EventID: event.ID, DisplayName: string(status), Status: status}
		require.NoError(t, participantRepo.Create(ctx, p))
		seeded.participants = append(seeded.participants, p)
	}

	topicRepo := NewTopicRepository(db)
	for _, status := range []entities.TopicStatus{entities.TopicStatusApproved, entities.TopicStatusApproved, entities.TopicStatusProposed} {
		tp := &entities.Topic{ID: uuid.New(), EventID: event.ID, Title: "Topic " + string(status), ProposedBy: event.OrganizerID, Status: status}
		require.NoError(t, topicRepo.Create(ctx, tp))
		seeded.topics = append(seeded.topics, tp)
	}
	return seeded
}

func TestRepositories_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	db := setupDB(t)
	ctx := context.Background()
	seeded := seedEvent(t, db)
	eventID := seeded.event.ID

	t.Run("active participants exclude cancelled and deleted rows", func(t *testing.T) {
		repo := NewParticipantRepository(db)
		require.NoError(t, db.Delete(seeded.participants[2]).Error)

		active, err := repo.FindActiveByEventID(ctx, eventID)
		require.NoError(t, err)
		assert.Len(t, active, 2)
		for _, p := range active {
			assert.True(t, p.IsActive())
		}
	})

	t.Run("approved topics only", func(t *testing.T) {
		approved, err := NewTopicRepository(db).FindApprovedByEventID(ctx, eventID)
		require.NoError(t, err)
		assert.Len(t, approved, 2)
	})

	t.Run("ranking upsert replaces the previous ranking", func(t *testing.T) {
		repo := NewTopicRankingRepository(db)
		participant := seeded.participants[0].ID

		first := &entities.TopicRanking{ID: uuid.New(), EventID: eventID, ParticipantID: participant, RankedTopicIDs: []uuid.UUID{seeded.topics[0].ID}}
		require.NoError(t, repo.Upsert(ctx, first))
		second := &entities.TopicRanking{ID: uuid.New(), EventID: eventID, ParticipantID: participant, RankedTopicIDs: []uuid.UUID{seeded.topics[1].ID, seeded.topics[0].ID}}
		require.NoError(t, repo.Upsert(ctx, second))

		rankings, err := repo.FindByEventID(ctx, eventID)
		require.NoError(t, err)
		require.Len(t, rankings, 1)
		assert.Equal(t, []uuid.UUID{seeded.topics[1].ID, seeded.topics[0].ID}, []uuid.UUID(rankings[0].RankedTopicIDs))
		assert.Equal(t, 2, rankings[0].TopicsRanked)
	})

	t.Run("replace swaps the assignment set and stores statistics", func(t *testing.T) {
		repo := NewAssignmentRepository(db)
		eventRepo := NewEventRepository(db)
		a, b := seeded.participants[0].ID, seeded.participants[1].ID
		t1, t2 := seeded.topics[0].ID, seeded.topics[1].ID

		first := []entities.Assignment{
			{EventID: eventID, ParticipantID: a, TopicID: t1, RoundNumber: 1, GroupNumber: 1, AssignmentMethod: entities.AssignmentMethodAutomatic, Status: entities.AssignmentStatusAssigned},
			{EventID: eventID, ParticipantID: b, TopicID: t1, RoundNumber: 1, GroupNumber: 1, AssignmentMethod: entities.AssignmentMethodAutomatic, Status: entities.AssignmentStatusAssigned},
		}
		require.NoError(t, repo.ReplaceForEvent(ctx, seeded.event, first))

		event, err := eventRepo.FindByID(ctx, eventID)
		require.NoError(t, err)
		require.NoError(t, event.SetAssignmentStatistics(&entities.AssignmentStatistics{TotalAssignments: 4}))

		second := []entities.Assignment{
			{EventID: eventID, ParticipantID: a, TopicID: t1, RoundNumber: 1, GroupNumber: 1, AssignmentMethod: entities.AssignmentMethodAutomatic, Status: entities.AssignmentStatusAssigned},
			{EventID: eventID, ParticipantID: b, TopicID: t2, RoundNumber: 1, GroupNumber: 2, AssignmentMethod: entities.AssignmentMethodAutomatic, Status: entities.AssignmentStatusAssigned},
			{EventID: eventID, ParticipantID: a, TopicID: t2, RoundNumber: 2, GroupNumber: 1, AssignmentMethod: entities.AssignmentMethodAutomatic, Status: entities.AssignmentStatusAssigned},
			{EventID: eventID, ParticipantID: b, TopicID: t1, RoundNumber: 2, GroupNumber: 2, AssignmentMethod: entities.AssignmentMethodAutomatic, Status: entities.AssignmentStatusAssigned},
		}
		require.NoError(t, repo.ReplaceForEvent(ctx, event, second))

		count, err := repo.CountByEventID(ctx, eventID)
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)

		round := 2
		roundTwo, err := repo.FindByEventID(ctx, eventID, repositories.AssignmentFilters{RoundNumber: &round})
		require.NoError(t, err)
		require.Len(t, roundTwo, 2)
		assert.Equal(t, 1, roundTwo[0].GroupNumber)
		assert.Equal(t, 2, roundTwo[1].GroupNumber)

		byTopic, err := repo.FindByEventID(ctx, eventID, repositories.AssignmentFilters{TopicID: &t2})
		require.NoError(t, err)
		assert.Len(t, byTopic, 2)

		stored, err := eventRepo.FindByID(ctx, eventID)
		require.NoError(t, err)
		stats, err := stored.AssignmentStatistics()
		require.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, 4, stats.TotalAssignments)
	})

	t.Run("duplicate seat in a round is rejected and rolled back", func(t *testing.T) {
		repo := NewAssignmentRepository(db)
		a := seeded.participants[0].ID
		dup := []entities.Assignment{
			{EventID: eventID, ParticipantID: a, TopicID: seeded.topics[0].ID, RoundNumber: 1, GroupNumber: 1, AssignmentMethod: entities.AssignmentMethodAutomatic, Status: entities.AssignmentStatusAssigned},
			{EventID: eventID, ParticipantID: a, TopicID: seeded.topics[1].ID, RoundNumber: 1, GroupNumber: 2, AssignmentMethod: entities.AssignmentMethodAutomatic, Status: entities.AssignmentStatusAssigned},
		}
		require.Error(t, repo.ReplaceForEvent(ctx, seeded.event, dup))

		count, err := repo.CountByEventID(ctx, eventID)
		require.NoError(t, err)
		assert.Equal(t, int64(4), count, "previous set survives a failed replace")
	})

	t.Run("delete clears the event", func(t *testing.T) {
		repo := NewAssignmentRepository(db)
		deleted, err := repo.DeleteByEventID(ctx, eventID)
		require.NoError(t, err)
		assert.Equal(t, int64(4), deleted)
	})

	t.Run("missing event", func(t *testing.T) {
		_, err := NewEventRepository(db).FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
