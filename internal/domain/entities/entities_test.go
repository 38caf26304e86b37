package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestEventAssignmentStatistics(t *testing.T) {
	t.Run("empty settings", func(t *testing.T) {
		stats, err := (&Event{}).AssignmentStatistics()
		require.NoError(t, err)
		assert.Nil(t, stats)
	})

	t.Run("no statistics key", func(t *testing.T) {
		e := &Event{Settings: datatypes.JSON(`{"theme":"dark"}`)}
		stats, err := e.AssignmentStatistics()
		require.NoError(t, err)
		assert.Nil(t, stats)
	})

	t.Run("round trip keeps other settings", func(t *testing.T) {
		e := &Event{Settings: datatypes.JSON(`{"theme":"dark"}`)}
		generatedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
		require.NoError(t, e.SetAssignmentStatistics(&AssignmentStatistics{
			TotalParticipants: 12,
			TotalAssignments:  36,
			Warnings:          []string{"round 2: 1 participant(s) could not be seated"},
			GeneratedAt:       generatedAt,
		}))

		assert.JSONEq(t, `"dark"`, string(mustField(t, e.Settings, "theme")))

		stats, err := e.AssignmentStatistics()
		require.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, 36, stats.TotalAssignments)
		assert.Equal(t, []string{"round 2: 1 participant(s) could not be seated"}, stats.Warnings)
		assert.True(t, generatedAt.Equal(stats.GeneratedAt))
	})

	t.Run("corrupted settings", func(t *testing.T) {
		e := &Event{Settings: datatypes.JSON(`{not json`)}
		_, err := e.AssignmentStatistics()
		assert.ErrorIs(t, err, ErrSettingsCorrupted)
		assert.ErrorIs(t, e.SetAssignmentStatistics(&AssignmentStatistics{}), ErrSettingsCorrupted)
	})
}

func mustField(t *testing.T, raw datatypes.JSON, key string) []byte {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	v, ok := m[key]
	require.True(t, ok, "missing key %s", key)
	return v
}

func TestParticipantIsActive(t *testing.T) {
	tests := []struct {
		status  ParticipantStatus
		deleted bool
		want    bool
	}{
		{ParticipantStatusInvited, false, false},
		{ParticipantStatusRegistered, false, true},
		{ParticipantStatusConfirmed, false, true},
		{ParticipantStatusCheckedIn, false, true},
		{ParticipantStatusCancelled, false, false},
		{ParticipantStatusDeclined, false, false},
		{ParticipantStatusConfirmed, true, false},
	}

	for _, tt := range tests {
		p := &Participant{Status: tt.status}
		if tt.deleted {
			p.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
		}
		assert.Equal(t, tt.want, p.IsActive(), "status=%s deleted=%v", tt.status, tt.deleted)
	}
}

func TestParticipantLabel(t *testing.T) {
	email := "ada@example.com"
	id := uuid.MustParse("00000000-0000-0000-0000-000000000001")

	assert.Equal(t, "Ada", (&Participant{ID: id, DisplayName: "Ada", Email: &email}).Label())
	assert.Equal(t, email, (&Participant{ID: id, Email: &email}).Label())
	assert.Equal(t, id.String(), (&Participant{ID: id}).Label())
	assert.True(t, (&Participant{Role: ParticipantRoleOrganizer}).IsOrganizer())
}

func TestTopicAndRanking(t *testing.T) {
	assert.True(t, (&Topic{Status: TopicStatusApproved}).IsApproved())
	assert.False(t, (&Topic{Status: TopicStatusProposed}).IsApproved())

	assert.False(t, (&TopicRanking{}).HasRankings())
	assert.True(t, (&TopicRanking{RankedTopicIDs: datatypes.JSONSlice[uuid.UUID]{uuid.New()}}).HasRankings())
}
