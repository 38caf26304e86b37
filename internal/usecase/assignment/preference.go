package assignment

import (
	"github.com/google/uuid"

	"github.com/johnquangdev/discussion-planner/internal/domain/entities"
)

// PreferenceIndex holds, per eligible participant, the ranked topics that are
// still eligible, most preferred first.
type PreferenceIndex struct {
	prefs    map[uuid.UUID][]uuid.UUID
	ranks    map[uuid.UUID]map[uuid.UUID]int
	unranked map[uuid.UUID]bool
}

// NewPreferenceIndex builds the index for the given participants.
//
// Ranked topics that are not in eligibleTopics are dropped and the relative
// order of the rest is kept. Duplicate topics keep their first position. When a
// participant has several ranking records the last one wins. Rankings of
// participants outside the participant list are ignored.
func NewPreferenceIndex(participants []uuid.UUID, rankings []entities.TopicRanking, eligibleTopics []uuid.UUID) *PreferenceIndex {
	eligible := make(map[uuid.UUID]bool, len(eligibleTopics))
	for _, id := range eligibleTopics {
		eligible[id] = true
	}

	byParticipant := make(map[uuid.UUID][]uuid.UUID, len(rankings))
	for _, r := range rankings {
		byParticipant[r.ParticipantID] = r.RankedTopicIDs
	}

	idx := &PreferenceIndex{
		prefs:    make(map[uuid.UUID][]uuid.UUID, len(participants)),
		ranks:    make(map[uuid.UUID]map[uuid.UUID]int, len(participants)),
		unranked: make(map[uuid.UUID]bool),
	}

	for _, pid := range participants {
		ranked := byParticipant[pid]
		list := make([]uuid.UUID, 0, len(ranked))
		positions := make(map[uuid.UUID]int, len(ranked))
		for _, tid := range ranked {
			if !eligible[tid] {
				continue
			}
			if _, seen := positions[tid]; seen {
				continue
			}
			list = append(list, tid)
			positions[tid] = len(list)
		}

		idx.prefs[pid] = list
		idx.ranks[pid] = positions
		if len(list) == 0 {
			idx.unranked[pid] = true
		}
	}

	return idx
}

// Preferences returns the eligible ranked topics of a participant
func (p *PreferenceIndex) Preferences(participantID uuid.UUID) []uuid.UUID {
	return p.prefs[participantID]
}

// Rank returns the 1-based preference rank of a topic, or 0 when not ranked
func (p *PreferenceIndex) Rank(participantID, topicID uuid.UUID) int {
	return p.ranks[participantID][topicID]
}

// IsUnranked reports whether the participant has no eligible preference at all
func (p *PreferenceIndex) IsUnranked(participantID uuid.UUID) bool {
	return p.unranked[participantID]
}

// UnrankedCount returns how many participants have no eligible preference
func (p *PreferenceIndex) UnrankedCount() int {
	return len(p.unranked)
}

// WithinTop reports whether the topic is ranked within the first n preferences
func (p *PreferenceIndex) WithinTop(participantID, topicID uuid.UUID, n int) bool {
	r := p.Rank(participantID, topicID)
	return r > 0 && r <= n
}
