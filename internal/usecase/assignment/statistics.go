package assignment

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/johnquangdev/discussion-planner/internal/domain/entities"
)

// StatisticsInput is everything CalculateStatistics looks at.
// Participants are expected to be the eligible ones.
type StatisticsInput struct {
	Event        *entities.Event
	Participants []entities.Participant
	Topics       []entities.Topic
	Rankings     []entities.TopicRanking
	Assignments  []entities.Assignment
}

type groupKey struct {
	round int
	group int
}

// CalculateStatistics describes the quality of an assignment set. It is a pure
// function; GeneratedAt and Warnings are left for the caller.
func CalculateStatistics(in StatisticsInput) entities.AssignmentStatistics {
	event := in.Event
	rounds := event.NumberOfRounds

	stats := entities.AssignmentStatistics{
		TotalParticipants: len(in.Participants),
		TotalAssignments:  len(in.Assignments),
	}

	eligible := make(map[uuid.UUID]bool, len(in.Participants))
	for _, p := range in.Participants {
		eligible[p.ID] = true
	}

	groupSizes := make(map[groupKey]int)
	groupTopic := make(map[groupKey]uuid.UUID)
	topicsUsed := make(map[uuid.UUID]bool)
	seatedRounds := make(map[uuid.UUID]map[int]bool)
	assignedTopics := make(map[uuid.UUID]map[uuid.UUID]bool)

	for _, a := range in.Assignments {
		k := groupKey{round: a.RoundNumber, group: a.GroupNumber}
		groupSizes[k]++
		groupTopic[k] = a.TopicID
		topicsUsed[a.TopicID] = true

		if seatedRounds[a.ParticipantID] == nil {
			seatedRounds[a.ParticipantID] = make(map[int]bool)
			assignedTopics[a.ParticipantID] = make(map[uuid.UUID]bool)
		}
		seatedRounds[a.ParticipantID][a.RoundNumber] = true
		assignedTopics[a.ParticipantID][a.TopicID] = true
	}

	for _, p := range in.Participants {
		switch n := len(seatedRounds[p.ID]); {
		case n == 0:
			stats.ParticipantsNotAssigned++
		case n >= rounds:
			stats.ParticipantsFullyAssigned++
		default:
			stats.ParticipantsPartiallyAssigned++
		}
	}

	stats.TopicsUsed = len(topicsUsed)

	keys := make([]groupKey, 0, len(groupSizes))
	seats := 0
	for k, size := range groupSizes {
		keys = append(keys, k)
		seats += size
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].round != keys[j].round {
			return keys[i].round < keys[j].round
		}
		return keys[i].group < keys[j].group
	})
	stats.AverageGroupSize = average(seats, len(keys))

	stats.RoundStatistics = roundStatistics(rounds, keys, groupSizes, groupTopic)

	latest := latestRankings(in.Rankings, eligible)
	stats.PreferredChoiceDistribution = choiceDistribution(in.Participants, latest, assignedTopics, rounds, func(ranked int) int {
		if ranked < rounds {
			return ranked
		}
		return rounds
	})

	window := event.MinTopicsToRank
	sortedMax := rounds
	if window > 0 && window < sortedMax {
		sortedMax = window
	}
	stats.SortedChoiceDistribution = entities.SortedChoiceDistribution{
		ChoiceDistribution: choiceDistribution(in.Participants, latest, assignedTopics, sortedMax, func(ranked int) int {
			if window > 0 && window < ranked {
				return window
			}
			return ranked
		}),
		MinTopicsToRank: event.MinTopicsToRank,
	}

	stats.TopicOccurrenceDistribution = topicOccurrences(in.Topics, keys, groupTopic)

	return stats
}

func roundStatistics(rounds int, keys []groupKey, sizes map[groupKey]int, topics map[groupKey]uuid.UUID) []entities.RoundStatistics {
	out := make([]entities.RoundStatistics, 0, rounds)
	byRound := make(map[int][]groupKey)
	for _, k := range keys {
		byRound[k.round] = append(byRound[k.round], k)
	}

	for r := 1; r <= rounds; r++ {
		rs := entities.RoundStatistics{RoundNumber: r, GroupSizes: []int{}}
		scheduled := make(map[uuid.UUID]bool)
		for _, k := range byRound[r] {
			rs.GroupSizes = append(rs.GroupSizes, sizes[k])
			rs.ParticipantsAssigned += sizes[k]
			scheduled[topics[k]] = true
		}
		rs.TopicsScheduled = len(scheduled)
		rs.AverageGroupSize = average(rs.ParticipantsAssigned, len(rs.GroupSizes))
		out = append(out, rs)
	}
	return out
}

// latestRankings keeps the last ranking of each eligible participant
func latestRankings(rankings []entities.TopicRanking, eligible map[uuid.UUID]bool) map[uuid.UUID][]uuid.UUID {
	out := make(map[uuid.UUID][]uuid.UUID)
	for _, r := range rankings {
		if !eligible[r.ParticipantID] {
			continue
		}
		out[r.ParticipantID] = dedupe(r.RankedTopicIDs)
	}
	return out
}

// choiceDistribution buckets ranked participants by how many distinct assigned
// topics fall within the first topN(len(ranking)) entries of their ranking.
func choiceDistribution(
	participants []entities.Participant,
	rankings map[uuid.UUID][]uuid.UUID,
	assigned map[uuid.UUID]map[uuid.UUID]bool,
	maxCount int,
	topN func(ranked int) int,
) entities.ChoiceDistribution {
	dist := entities.ChoiceDistribution{Distribution: make(map[int]int)}
	for i := 0; i <= maxCount; i++ {
		dist.Distribution[i] = 0
	}

	for _, p := range participants {
		ranking := rankings[p.ID]
		if len(ranking) == 0 {
			continue
		}
		dist.TotalParticipantsWithRankings++

		count := 0
		for _, tid := range ranking[:topN(len(ranking))] {
			if assigned[p.ID][tid] {
				count++
			}
		}
		dist.Distribution[count]++
	}
	return dist
}

func topicOccurrences(topics []entities.Topic, keys []groupKey, groupTopic map[groupKey]uuid.UUID) entities.TopicOccurrenceDistribution {
	occurrences := make(map[uuid.UUID]int)
	for _, k := range keys {
		occurrences[groupTopic[k]]++
	}

	titles := make(map[uuid.UUID]string, len(topics))
	details := make([]entities.TopicOccurrenceDetail, 0, len(topics))
	for _, t := range topics {
		if _, dup := titles[t.ID]; dup {
			continue
		}
		titles[t.ID] = t.Title
		details = append(details, entities.TopicOccurrenceDetail{TopicID: t.ID, Title: t.Title, Occurrences: occurrences[t.ID]})
	}
	for tid, n := range occurrences {
		if _, known := titles[tid]; !known {
			details = append(details, entities.TopicOccurrenceDetail{TopicID: tid, Title: tid.String(), Occurrences: n})
		}
	}

	sort.Slice(details, func(i, j int) bool {
		a, b := details[i], details[j]
		if a.Occurrences != b.Occurrences {
			return a.Occurrences > b.Occurrences
		}
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		return lessID(a.TopicID, b.TopicID)
	})

	return entities.TopicOccurrenceDistribution{
		TotalTopicsPlanned: len(keys),
		TopicDetails:       details,
	}
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func average(total, n int) float64 {
	if n == 0 {
		return 0
	}
	return math.Round(float64(total)/float64(n)*100) / 100
}
