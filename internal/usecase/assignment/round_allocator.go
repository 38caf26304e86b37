package assignment

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/johnquangdev/discussion-planner/internal/domain/entities"
)

// roundPhase is a step of the per-round state machine
type roundPhase int

const (
	phaseSelectTopics roundPhase = iota
	phaseBuildDemand
	phaseGreedyFill
	phaseRepairUndersized
	phaseFinalize
	phaseDone
)

func (p roundPhase) String() string {
	switch p {
	case phaseSelectTopics:
		return "SELECT_TOPICS"
	case phaseBuildDemand:
		return "BUILD_DEMAND"
	case phaseGreedyFill:
		return "GREEDY_FILL"
	case phaseRepairUndersized:
		return "REPAIR_UNDERSIZED"
	case phaseFinalize:
		return "FINALIZE"
	case phaseDone:
		return "DONE"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Group is one realized topic group of a round
type Group struct {
	Number  int
	TopicID uuid.UUID
	Members []uuid.UUID
}

// RoundResult is the outcome of one round
type RoundResult struct {
	RoundNumber int
	Groups      []Group
	Unseated    []uuid.UUID
	Warnings    []string
}

// RoundAllocator seats the participants of a single round
type RoundAllocator struct {
	event *entities.Event
	prefs *PreferenceIndex
	pool  *TopicPool
}

// NewRoundAllocator creates a round allocator
func NewRoundAllocator(event *entities.Event, prefs *PreferenceIndex, pool *TopicPool) *RoundAllocator {
	return &RoundAllocator{event: event, prefs: prefs, pool: pool}
}

// Allocate runs SELECT_TOPICS → BUILD_DEMAND → GREEDY_FILL → REPAIR_UNDERSIZED →
// FINALIZE for one round. The history is read, never written; recording the
// seats is the caller's job.
func (a *RoundAllocator) Allocate(round int, participants []uuid.UUID, history *History) RoundResult {
	plan := &roundPlan{
		alloc:        a,
		round:        round,
		participants: participants,
		history:      history,
		byTopic:      make(map[uuid.UUID]*slot),
	}

	for phase := phaseSelectTopics; phase != phaseDone; {
		phase = plan.step(phase)
	}

	return plan.result()
}

// topicLimit is the number of groups that puts the participants of a round
// in ideal sized groups. It grows when the maximum size would otherwise
// leave people without a seat and shrinks when groups could not reach the
// minimum size.
func (a *RoundAllocator) topicLimit(participants int) int {
	limit := participants / max(a.event.IdealGroupSize, 1)
	need := ceilDiv(participants, a.event.MaxGroupSize)
	if most := participants / max(a.event.MinGroupSize, 1); limit > most && most >= need {
		limit = most
	}
	if need > limit {
		limit = need
	}
	if limit < 1 {
		limit = 1
	}
	if limit > a.event.DiscussionsPerRound {
		limit = a.event.DiscussionsPerRound
	}
	return limit
}

type slot struct {
	order   int
	topicID uuid.UUID
	members []uuid.UUID
	dropped bool
	kept    bool
}

func (s *slot) live() bool {
	return !s.dropped
}

type roundDemand struct {
	participantID uuid.UUID
	choices       []uuid.UUID
	bestRank      int
}

type roundPlan struct {
	alloc        *RoundAllocator
	round        int
	participants []uuid.UUID
	history      *History

	slots    []*slot
	byTopic  map[uuid.UUID]*slot
	queue    []roundDemand
	unseated []uuid.UUID
	warnings []string
	noTopics bool
}

func (p *roundPlan) step(phase roundPhase) roundPhase {
	switch phase {
	case phaseSelectTopics:
		p.selectTopics()
		if len(p.slots) == 0 {
			p.noTopics = true
			p.unseated = append(p.unseated, p.participants...)
			p.warnings = append(p.warnings, fmt.Sprintf("round %d has no eligible topics left", p.round))
			return phaseFinalize
		}
		return phaseBuildDemand
	case phaseBuildDemand:
		p.buildDemand()
		return phaseGreedyFill
	case phaseGreedyFill:
		p.greedyFill()
		return phaseRepairUndersized
	case phaseRepairUndersized:
		p.repairUndersized()
		return phaseFinalize
	case phaseFinalize:
		p.finalize()
		return phaseDone
	default:
		return phaseDone
	}
}

func (p *roundPlan) selectTopics() {
	if len(p.participants) == 0 {
		return
	}
	a := p.alloc
	topics := a.pool.Select(a.topicLimit(len(p.participants)), p.participants, a.prefs, p.history)
	for i, tid := range topics {
		s := &slot{order: i, topicID: tid}
		p.slots = append(p.slots, s)
		p.byTopic[tid] = s
	}
}

// choicesFor lists the participant's preferred topics of this round that are
// still open and not already seen in an earlier round, best first.
func (p *roundPlan) choicesFor(participantID uuid.UUID) []uuid.UUID {
	var choices []uuid.UUID
	for _, tid := range p.alloc.prefs.Preferences(participantID) {
		s, ok := p.byTopic[tid]
		if !ok || !s.live() {
			continue
		}
		if p.history.HasTopic(participantID, tid) {
			continue
		}
		choices = append(choices, tid)
	}
	return choices
}

func (p *roundPlan) buildDemand() {
	prefs := p.alloc.prefs
	p.queue = make([]roundDemand, 0, len(p.participants))
	for _, pid := range p.participants {
		d := roundDemand{participantID: pid, choices: p.choicesFor(pid)}
		if len(d.choices) > 0 {
			d.bestRank = prefs.Rank(pid, d.choices[0])
		}
		p.queue = append(p.queue, d)
	}

	h := p.history
	sort.SliceStable(p.queue, func(i, j int) bool {
		a, b := p.queue[i], p.queue[j]
		if (a.bestRank == 0) != (b.bestRank == 0) {
			return a.bestRank != 0
		}
		if a.bestRank == 0 {
			sa, sb := h.SeatedRounds(a.participantID), h.SeatedRounds(b.participantID)
			if sa != sb {
				return sa < sb
			}
			return lessID(a.participantID, b.participantID)
		}
		if a.bestRank != b.bestRank {
			return a.bestRank < b.bestRank
		}
		fa, fb := h.SatisfiedRounds(a.participantID), h.SatisfiedRounds(b.participantID)
		if fa != fb {
			return fa < fb
		}
		return lessID(a.participantID, b.participantID)
	})
}

func (p *roundPlan) greedyFill() {
	for _, d := range p.queue {
		if !p.seat(d.participantID, d.choices) {
			p.unseated = append(p.unseated, d.participantID)
		}
	}
}

// seat tries the preferred topics, then any group below the ideal size, then
// any group below the maximum size.
func (p *roundPlan) seat(participantID uuid.UUID, choices []uuid.UUID) bool {
	event := p.alloc.event
	for _, tid := range choices {
		s := p.byTopic[tid]
		if s.live() && len(s.members) < event.MaxGroupSize {
			s.members = append(s.members, participantID)
			return true
		}
	}
	if s := p.fallbackSlot(participantID, event.IdealGroupSize); s != nil {
		s.members = append(s.members, participantID)
		return true
	}
	if s := p.fallbackSlot(participantID, event.MaxGroupSize); s != nil {
		s.members = append(s.members, participantID)
		return true
	}
	return false
}

// fallbackSlot returns the open group below limit, preferring topics the
// participant has not seen, then the smallest group, then the lowest slot.
func (p *roundPlan) fallbackSlot(participantID uuid.UUID, limit int) *slot {
	var best *slot
	bestRepeat := false
	for _, s := range p.slots {
		if !s.live() || len(s.members) >= limit {
			continue
		}
		repeat := p.history.HasTopic(participantID, s.topicID)
		if best == nil {
			best, bestRepeat = s, repeat
			continue
		}
		if repeat != bestRepeat {
			if !repeat {
				best, bestRepeat = s, repeat
			}
			continue
		}
		if len(s.members) < len(best.members) {
			best, bestRepeat = s, repeat
		}
	}
	return best
}

func (p *roundPlan) repairUndersized() {
	for _, s := range p.slots {
		if s.live() && len(s.members) == 0 {
			s.dropped = true
		}
	}

	for {
		g := p.nextUndersized()
		if g == nil {
			break
		}
		switch {
		case p.merge(g):
		case p.dissolve(g):
		case p.borrow(g):
		default:
			g.kept = true
		}
	}

	min := p.alloc.event.MinGroupSize
	for _, s := range p.slots {
		if s.live() && len(s.members) > 0 && len(s.members) < min {
			p.warnings = append(p.warnings, fmt.Sprintf("topic %s round %d below minimum group size", p.alloc.pool.Title(s.topicID), p.round))
		}
	}
}

func (p *roundPlan) nextUndersized() *slot {
	min := p.alloc.event.MinGroupSize
	var next *slot
	for _, s := range p.slots {
		if !s.live() || s.kept || len(s.members) == 0 || len(s.members) >= min {
			continue
		}
		if next == nil || len(s.members) < len(next.members) {
			next = s
		}
	}
	return next
}

// merge moves every member of g into one other group when the union fits.
// The target is the group most of g's members ranked, then the one fewest of
// them have already seen.
func (p *roundPlan) merge(g *slot) bool {
	max := p.alloc.event.MaxGroupSize
	var target *slot
	bestHits, bestRepeats := 0, 0
	for _, h := range p.slots {
		if h == g || !h.live() || len(h.members) == 0 {
			continue
		}
		if len(h.members)+len(g.members) > max {
			continue
		}
		hits, repeats := 0, 0
		for _, m := range g.members {
			switch {
			case p.history.HasTopic(m, h.topicID):
				repeats++
			case p.alloc.prefs.Rank(m, h.topicID) > 0:
				hits++
			}
		}
		if target == nil || hits > bestHits || (hits == bestHits && repeats < bestRepeats) {
			target, bestHits, bestRepeats = h, hits, repeats
		}
	}
	if target == nil {
		return false
	}

	target.members = append(target.members, g.members...)
	g.members = nil
	g.dropped = true
	return true
}

// dissolve drops g and reseats its members when the other groups have a free
// seat for each of them.
func (p *roundPlan) dissolve(g *slot) bool {
	max := p.alloc.event.MaxGroupSize
	spare := 0
	for _, h := range p.slots {
		if h == g || !h.live() {
			continue
		}
		spare += max - len(h.members)
	}
	if spare < len(g.members) {
		return false
	}

	members := g.members
	g.members = nil
	g.dropped = true
	for _, m := range members {
		if !p.seat(m, p.choicesFor(m)) {
			p.unseated = append(p.unseated, m)
		}
	}
	return true
}

type borrowCandidate struct {
	participantID uuid.UUID
	from          *slot
	prefers       bool
	rank          int
	repeat        bool
}

// borrow pulls members from groups above the minimum size into g, but only
// when that brings g up to the minimum.
func (p *roundPlan) borrow(g *slot) bool {
	min := p.alloc.event.MinGroupSize
	need := min - len(g.members)

	give := make(map[*slot]int)
	total := 0
	for _, h := range p.slots {
		if h == g || !h.live() || len(h.members) <= min {
			continue
		}
		give[h] = len(h.members) - min
		total += give[h]
	}
	if total < need {
		return false
	}

	var candidates []borrowCandidate
	for _, h := range p.slots {
		if give[h] == 0 {
			continue
		}
		for _, m := range h.members {
			rank := p.alloc.prefs.Rank(m, g.topicID)
			repeat := p.history.HasTopic(m, g.topicID)
			candidates = append(candidates, borrowCandidate{
				participantID: m,
				from:          h,
				prefers:       rank > 0 && !repeat,
				rank:          rank,
				repeat:        repeat,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.prefers != b.prefers {
			return a.prefers
		}
		if a.prefers && a.rank != b.rank {
			return a.rank < b.rank
		}
		if a.repeat != b.repeat {
			return !a.repeat
		}
		if a.from.order != b.from.order {
			return a.from.order < b.from.order
		}
		return lessID(a.participantID, b.participantID)
	})

	moved := 0
	for _, c := range candidates {
		if moved == need {
			break
		}
		if give[c.from] == 0 {
			continue
		}
		c.from.members = removeID(c.from.members, c.participantID)
		g.members = append(g.members, c.participantID)
		give[c.from]--
		moved++
	}
	return moved == need
}

func (p *roundPlan) finalize() {
	for _, s := range p.slots {
		if s.live() && len(s.members) == 0 {
			s.dropped = true
		}
		if s.live() {
			sortIDs(s.members)
			p.alloc.pool.Consume(s.topicID)
		}
	}

	sortIDs(p.unseated)
	if len(p.unseated) > 0 && !p.noTopics {
		p.warnings = append(p.warnings, fmt.Sprintf("round %d: %d participant(s) could not be seated", p.round, len(p.unseated)))
	}
}

func (p *roundPlan) result() RoundResult {
	res := RoundResult{
		RoundNumber: p.round,
		Unseated:    p.unseated,
		Warnings:    p.warnings,
	}
	number := 0
	for _, s := range p.slots {
		if !s.live() {
			continue
		}
		number++
		res.Groups = append(res.Groups, Group{
			Number:  number,
			TopicID: s.topicID,
			Members: s.members,
		})
	}
	return res
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
