package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/discussion-planner/internal/usecase/assignment"
)

func gather(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		byName[f.GetName()] = f
	}
	return byName
}

func counterWithOutcome(f *dto.MetricFamily, outcome string) float64 {
	for _, m := range f.GetMetric() {
		for _, l := range m.GetLabel() {
			if l.GetName() == "outcome" && l.GetValue() == outcome {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestPrometheusRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewPrometheus(reg, "planner_test")

	rec.ObserveGeneration(assignment.OutcomeSuccess, 20*time.Millisecond)
	rec.ObserveGeneration(assignment.OutcomeSuccess, 40*time.Millisecond)
	rec.ObserveGeneration(assignment.OutcomeError, time.Millisecond)
	rec.AddWarnings(3)
	rec.AddWarnings(0)
	rec.AddUnseated(2)
	rec.AddUnseated(-1)

	families := gather(t, reg)

	generations := families["planner_test_assignment_generations_total"]
	require.NotNil(t, generations)
	assert.Equal(t, 2.0, counterWithOutcome(generations, assignment.OutcomeSuccess))
	assert.Equal(t, 1.0, counterWithOutcome(generations, assignment.OutcomeError))

	duration := families["planner_test_assignment_generation_duration_seconds"]
	require.NotNil(t, duration)
	var samples uint64
	for _, m := range duration.GetMetric() {
		samples += m.GetHistogram().GetSampleCount()
	}
	assert.Equal(t, uint64(3), samples)

	require.NotNil(t, families["planner_test_assignment_warnings_total"])
	assert.Equal(t, 3.0, families["planner_test_assignment_warnings_total"].GetMetric()[0].GetCounter().GetValue())
	require.NotNil(t, families["planner_test_assignment_unseated_seats_total"])
	assert.Equal(t, 2.0, families["planner_test_assignment_unseated_seats_total"].GetMetric()[0].GetCounter().GetValue())
}

func TestNewPrometheusDefaultNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewPrometheus(reg, "")
	rec.AddWarnings(1)

	assert.Contains(t, gather(t, reg), "discussion_planner_assignment_warnings_total")
}

func TestNopRecorder(t *testing.T) {
	var rec assignment.MetricsRecorder = NewNop()
	assert.NotPanics(t, func() {
		rec.ObserveGeneration(assignment.OutcomeSuccess, time.Second)
		rec.AddWarnings(1)
		rec.AddUnseated(1)
	})
}
