package assignment

import "github.com/google/uuid"

// History is the cross-round state of a generation pass. It is owned by the
// Orchestrator and handed to each round.
type History struct {
	topics    map[uuid.UUID]map[uuid.UUID]bool
	seated    map[uuid.UUID]int
	satisfied map[uuid.UUID]int
}

// NewHistory creates an empty history
func NewHistory() *History {
	return &History{
		topics:    make(map[uuid.UUID]map[uuid.UUID]bool),
		seated:    make(map[uuid.UUID]int),
		satisfied: make(map[uuid.UUID]int),
	}
}

// HasTopic reports whether the participant was already seated in the topic
func (h *History) HasTopic(participantID, topicID uuid.UUID) bool {
	return h.topics[participantID][topicID]
}

// Record stores one seat. preferred marks seats in a topic the participant ranked highly.
func (h *History) Record(participantID, topicID uuid.UUID, preferred bool) {
	seen, ok := h.topics[participantID]
	if !ok {
		seen = make(map[uuid.UUID]bool)
		h.topics[participantID] = seen
	}
	seen[topicID] = true
	h.seated[participantID]++
	if preferred {
		h.satisfied[participantID]++
	}
}

// SeatedRounds returns the number of rounds the participant was seated in
func (h *History) SeatedRounds(participantID uuid.UUID) int {
	return h.seated[participantID]
}

// SatisfiedRounds returns the number of rounds with a preferred topic
func (h *History) SatisfiedRounds(participantID uuid.UUID) int {
	return h.satisfied[participantID]
}
