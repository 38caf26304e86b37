package assignment

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/discussion-planner/internal/domain/entities"
)

func TestPreferenceIndex_DropsIneligibleTopicsKeepingOrder(t *testing.T) {
	participants := ids(pid(1))
	rankings := []entities.TopicRanking{ranking(pid(1), tid(4), tid(2), tid(9), tid(1))}

	idx := NewPreferenceIndex(participants, rankings, ids(tid(1), tid(2), tid(4)))

	assert.Equal(t, ids(tid(4), tid(2), tid(1)), idx.Preferences(pid(1)))
	assert.Equal(t, 1, idx.Rank(pid(1), tid(4)))
	assert.Equal(t, 2, idx.Rank(pid(1), tid(2)))
	assert.Equal(t, 3, idx.Rank(pid(1), tid(1)))
	assert.Equal(t, 0, idx.Rank(pid(1), tid(9)))
	assert.False(t, idx.IsUnranked(pid(1)))
}

func TestPreferenceIndex_DuplicatesKeepFirstPosition(t *testing.T) {
	rankings := []entities.TopicRanking{ranking(pid(1), tid(2), tid(1), tid(2))}

	idx := NewPreferenceIndex(ids(pid(1)), rankings, ids(tid(1), tid(2)))

	assert.Equal(t, ids(tid(2), tid(1)), idx.Preferences(pid(1)))
	assert.Equal(t, 1, idx.Rank(pid(1), tid(2)))
}

func TestPreferenceIndex_LastRankingRecordWins(t *testing.T) {
	rankings := []entities.TopicRanking{
		ranking(pid(1), tid(1), tid(2)),
		ranking(pid(1), tid(2)),
	}

	idx := NewPreferenceIndex(ids(pid(1)), rankings, ids(tid(1), tid(2)))

	assert.Equal(t, ids(tid(2)), idx.Preferences(pid(1)))
	assert.Equal(t, 0, idx.Rank(pid(1), tid(1)))
}

func TestPreferenceIndex_Unranked(t *testing.T) {
	rankings := []entities.TopicRanking{
		ranking(pid(2), tid(7)),
		ranking(pid(99), tid(1)),
	}

	idx := NewPreferenceIndex(ids(pid(1), pid(2)), rankings, ids(tid(1)))

	assert.True(t, idx.IsUnranked(pid(1)), "no ranking at all")
	assert.True(t, idx.IsUnranked(pid(2)), "only ineligible topics ranked")
	assert.Equal(t, 2, idx.UnrankedCount())
	assert.Empty(t, idx.Preferences(pid(99)), "rankings of unknown participants are ignored")
}

func TestPreferenceIndex_WithinTop(t *testing.T) {
	rankings := []entities.TopicRanking{ranking(pid(1), tid(1), tid(2), tid(3))}
	idx := NewPreferenceIndex(ids(pid(1)), rankings, ids(tid(1), tid(2), tid(3)))

	tests := []struct {
		name  string
		topic uuid.UUID
		n     int
		want  bool
	}{
		{name: "first choice in top 1", topic: tid(1), n: 1, want: true},
		{name: "second choice outside top 1", topic: tid(2), n: 1, want: false},
		{name: "third choice in top 3", topic: tid(3), n: 3, want: true},
		{name: "unranked topic", topic: tid(4), n: 3, want: false},
		{name: "zero window", topic: tid(1), n: 0, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, idx.WithinTop(pid(1), tt.topic, tt.n))
		})
	}
}
