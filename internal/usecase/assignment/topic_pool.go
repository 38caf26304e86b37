package assignment

import (
	"sort"

	"github.com/google/uuid"

	"github.com/johnquangdev/discussion-planner/internal/domain/entities"
)

// TopicPool tracks the remaining occurrence budget of every eligible topic and
// picks the topics played in each round.
type TopicPool struct {
	order       []uuid.UUID
	titles      map[uuid.UUID]string
	budget      map[uuid.UUID]int
	occurrences map[uuid.UUID]int
	demand      map[uuid.UUID]int
	window      int
}

// NewTopicPool creates a pool over the eligible topics.
//
// Each topic may occur at most once per round and at most MaxTopicOccurrences
// times overall (NumberOfRounds when unset). Aggregate demand counts the
// participants ranking the topic within their first MinTopicsToRank choices.
func NewTopicPool(event *entities.Event, topics []entities.Topic, participants []uuid.UUID, prefs *PreferenceIndex) *TopicPool {
	limit := event.NumberOfRounds
	if event.MaxTopicOccurrences > 0 && event.MaxTopicOccurrences < limit {
		limit = event.MaxTopicOccurrences
	}

	demandWindow := event.MinTopicsToRank
	if demandWindow <= 0 {
		demandWindow = event.NumberOfRounds
	}

	pool := &TopicPool{
		order:       make([]uuid.UUID, 0, len(topics)),
		titles:      make(map[uuid.UUID]string, len(topics)),
		budget:      make(map[uuid.UUID]int, len(topics)),
		occurrences: make(map[uuid.UUID]int, len(topics)),
		demand:      make(map[uuid.UUID]int, len(topics)),
		window:      preferenceWindow(event),
	}

	for _, t := range topics {
		if _, dup := pool.titles[t.ID]; dup {
			continue
		}
		pool.order = append(pool.order, t.ID)
		pool.titles[t.ID] = t.Title
		pool.budget[t.ID] = limit
		for _, pid := range participants {
			if prefs.WithinTop(pid, t.ID, demandWindow) {
				pool.demand[t.ID]++
			}
		}
	}
	sortIDs(pool.order)

	return pool
}

// preferenceWindow is how deep in a ranking a topic still counts as highly ranked
func preferenceWindow(event *entities.Event) int {
	w := event.NumberOfRounds
	if event.MinTopicsToRank > w {
		w = event.MinTopicsToRank
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Available returns the topics that still have budget, ordered by id
func (p *TopicPool) Available() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(p.order))
	for _, id := range p.order {
		if p.budget[id] > 0 {
			out = append(out, id)
		}
	}
	return out
}

type topicCandidate struct {
	id      uuid.UUID
	pending int
	fresh   int
	demand  int
}

// Select picks up to limit topics for a round.
//
// Topics are ordered by pending demand (participants ranking the topic highly
// who have not had it yet), then by fresh audience (participants who have not
// had it yet), then by aggregate demand, then by id.
func (p *TopicPool) Select(limit int, participants []uuid.UUID, prefs *PreferenceIndex, history *History) []uuid.UUID {
	if limit <= 0 {
		return nil
	}

	available := p.Available()
	candidates := make([]topicCandidate, 0, len(available))
	for _, tid := range available {
		c := topicCandidate{id: tid, demand: p.demand[tid]}
		for _, pid := range participants {
			if history.HasTopic(pid, tid) {
				continue
			}
			c.fresh++
			if prefs.WithinTop(pid, tid, p.window) {
				c.pending++
			}
		}
		candidates = append(candidates, c)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.pending != b.pending {
			return a.pending > b.pending
		}
		if a.fresh != b.fresh {
			return a.fresh > b.fresh
		}
		if a.demand != b.demand {
			return a.demand > b.demand
		}
		return lessID(a.id, b.id)
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	selected := make([]uuid.UUID, len(candidates))
	for i, c := range candidates {
		selected[i] = c.id
	}
	return selected
}

// Consume records one occurrence of the topic
func (p *TopicPool) Consume(topicID uuid.UUID) {
	if p.budget[topicID] > 0 {
		p.budget[topicID]--
	}
	p.occurrences[topicID]++
}

// Occurrences returns how many rounds the topic was scheduled in so far
func (p *TopicPool) Occurrences(topicID uuid.UUID) int {
	return p.occurrences[topicID]
}

// Remaining returns the remaining occurrence budget of the topic
func (p *TopicPool) Remaining(topicID uuid.UUID) int {
	return p.budget[topicID]
}

// Demand returns the aggregate demand of the topic
func (p *TopicPool) Demand(topicID uuid.UUID) int {
	return p.demand[topicID]
}

// Title returns the topic title, or its id when unknown
func (p *TopicPool) Title(topicID uuid.UUID) string {
	if t, ok := p.titles[topicID]; ok && t != "" {
		return t
	}
	return topicID.String()
}
