package assignment

import (
	"github.com/google/uuid"

	"github.com/johnquangdev/discussion-planner/internal/domain/entities"
)

// Plan is the outcome of a full generation pass
type Plan struct {
	Rounds      []RoundResult
	Assignments []entities.Assignment
	Warnings    []string
}

// Orchestrator runs the round allocator for every round of an event and
// carries the per-participant history from one round to the next.
type Orchestrator struct {
	event        *entities.Event
	participants []uuid.UUID
	prefs        *PreferenceIndex
	pool         *TopicPool
	allocator    *RoundAllocator
	history      *History
	window       int
}

// NewOrchestrator prepares a generation pass over eligible participants and topics
func NewOrchestrator(event *entities.Event, participants []uuid.UUID, topics []entities.Topic, rankings []entities.TopicRanking) *Orchestrator {
	ids := append([]uuid.UUID(nil), participants...)
	sortIDs(ids)

	topicIDs := make([]uuid.UUID, 0, len(topics))
	for _, t := range topics {
		topicIDs = append(topicIDs, t.ID)
	}

	prefs := NewPreferenceIndex(ids, rankings, topicIDs)
	pool := NewTopicPool(event, topics, ids, prefs)

	return &Orchestrator{
		event:        event,
		participants: ids,
		prefs:        prefs,
		pool:         pool,
		allocator:    NewRoundAllocator(event, prefs, pool),
		history:      NewHistory(),
		window:       preferenceWindow(event),
	}
}

// Run allocates every round in order. Assignments are ordered by round, then
// group, then participant id.
func (o *Orchestrator) Run() Plan {
	var plan Plan
	for round := 1; round <= o.event.NumberOfRounds; round++ {
		res := o.allocator.Allocate(round, o.participants, o.history)
		for _, g := range res.Groups {
			for _, pid := range g.Members {
				o.history.Record(pid, g.TopicID, o.prefs.WithinTop(pid, g.TopicID, o.window))
				plan.Assignments = append(plan.Assignments, entities.Assignment{
					EventID:          o.event.ID,
					ParticipantID:    pid,
					TopicID:          g.TopicID,
					RoundNumber:      round,
					GroupNumber:      g.Number,
					AssignmentMethod: entities.AssignmentMethodAutomatic,
					Status:           entities.AssignmentStatusAssigned,
				})
			}
		}
		plan.Rounds = append(plan.Rounds, res)
		plan.Warnings = append(plan.Warnings, res.Warnings...)
	}
	return plan
}

// History exposes the cross-round state, mostly for inspection in tests
func (o *Orchestrator) History() *History {
	return o.history
}

// Pool exposes the topic pool
func (o *Orchestrator) Pool() *TopicPool {
	return o.pool
}
