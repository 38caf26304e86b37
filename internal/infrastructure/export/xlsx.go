package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/johnquangdev/discussion-planner/internal/domain/entities"
	"github.com/johnquangdev/discussion-planner/internal/usecase/assignment"
)

// SummarySheet is the name of the statistics sheet
const SummarySheet = "Summary"

// ContentType is the MIME type of the workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var roundHeader = []interface{}{"Group", "Topic", "Participant", "Email"}

// RoundSheet returns the sheet name of a round
func RoundSheet(round int) string {
	return fmt.Sprintf("Round %d", round)
}

// WriteSeatingPlan renders the plan as a workbook: a summary sheet followed by
// one sheet per round listing every seat by group.
func WriteSeatingPlan(w io.Writer, plan *assignment.SeatingPlan) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}
	if err := writeSummary(f, plan); err != nil {
		return err
	}

	byRound := make(map[int][]*entities.Assignment)
	for _, a := range plan.Assignments {
		byRound[a.RoundNumber] = append(byRound[a.RoundNumber], a)
	}

	for round := 1; round <= plan.Event.NumberOfRounds; round++ {
		if err := writeRound(f, plan, round, byRound[round]); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, plan *assignment.SeatingPlan) error {
	rows := [][]interface{}{
		{"Event", plan.Event.Name},
		{"Rounds", plan.Event.NumberOfRounds},
		{"Discussions per round", plan.Event.DiscussionsPerRound},
		{"Group size (min / ideal / max)", fmt.Sprintf("%d / %d / %d", plan.Event.MinGroupSize, plan.Event.IdealGroupSize, plan.Event.MaxGroupSize)},
	}

	if s := plan.Statistics; s != nil {
		rows = append(rows,
			[]interface{}{"Total participants", s.TotalParticipants},
			[]interface{}{"Total assignments", s.TotalAssignments},
			[]interface{}{"Fully assigned", s.ParticipantsFullyAssigned},
			[]interface{}{"Partially assigned", s.ParticipantsPartiallyAssigned},
			[]interface{}{"Not assigned", s.ParticipantsNotAssigned},
			[]interface{}{"Topics used", s.TopicsUsed},
			[]interface{}{"Average group size", s.AverageGroupSize},
			[]interface{}{"Participants with rankings", s.PreferredChoiceDistribution.TotalParticipantsWithRankings},
		)
		if !s.GeneratedAt.IsZero() {
			rows = append(rows, []interface{}{"Generated at", s.GeneratedAt.Format("2006-01-02 15:04:05 MST")})
		}

		rows = append(rows, []interface{}{}, []interface{}{"Preferred choices honored", "Participants"})
		for _, k := range sortedKeys(s.PreferredChoiceDistribution.Distribution) {
			rows = append(rows, []interface{}{k, s.PreferredChoiceDistribution.Distribution[k]})
		}

		rows = append(rows, []interface{}{}, []interface{}{"Topic", "Occurrences"})
		for _, d := range s.TopicOccurrenceDistribution.TopicDetails {
			rows = append(rows, []interface{}{d.Title, d.Occurrences})
		}

		if len(s.Warnings) > 0 {
			rows = append(rows, []interface{}{}, []interface{}{"Warnings"})
			for _, w := range s.Warnings {
				rows = append(rows, []interface{}{w})
			}
		}
	}

	return writeRows(f, SummarySheet, rows)
}

func writeRound(f *excelize.File, plan *assignment.SeatingPlan, round int, seats []*entities.Assignment) error {
	sheet := RoundSheet(round)
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
	}

	sort.SliceStable(seats, func(i, j int) bool {
		if seats[i].GroupNumber != seats[j].GroupNumber {
			return seats[i].GroupNumber < seats[j].GroupNumber
		}
		return participantLabel(plan, seats[i].ParticipantID) < participantLabel(plan, seats[j].ParticipantID)
	})

	rows := make([][]interface{}, 0, len(seats)+1)
	rows = append(rows, roundHeader)
	for _, a := range seats {
		email := ""
		if p, ok := plan.Participants[a.ParticipantID]; ok && p.Email != nil {
			email = *p.Email
		}
		rows = append(rows, []interface{}{
			a.GroupNumber,
			topicTitle(plan, a.TopicID),
			participantLabel(plan, a.ParticipantID),
			email,
		})
	}

	return writeRows(f, sheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for idx, row := range rows {
		if len(row) == 0 {
			continue
		}
		axis, err := excelize.CoordinatesToCellName(1, idx+1)
		if err != nil {
			return err
		}
		cells := row
		if err := f.SetSheetRow(sheet, axis, &cells); err != nil {
			return fmt.Errorf("failed to write sheet %q row %d: %w", sheet, idx+1, err)
		}
	}
	return nil
}

func participantLabel(plan *assignment.SeatingPlan, id uuid.UUID) string {
	if p, ok := plan.Participants[id]; ok {
		return p.Label()
	}
	return id.String()
}

func topicTitle(plan *assignment.SeatingPlan, id uuid.UUID) string {
	if t, ok := plan.Topics[id]; ok && t.Title != "" {
		return t.Title
	}
	return id.String()
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
