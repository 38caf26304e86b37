package metrics

import (
	"time"

	"github.com/johnquangdev/discussion-planner/internal/usecase/assignment"
)

// NopRecorder discards all metrics. Used when metrics are disabled.
type NopRecorder struct{}

// Compile-time assertion that NopRecorder implements MetricsRecorder.
var _ assignment.MetricsRecorder = (*NopRecorder)(nil)

// NewNop creates a new no-op recorder.
func NewNop() *NopRecorder {
	return &NopRecorder{}
}

// ObserveGeneration discards the generation metric.
func (n *NopRecorder) ObserveGeneration(_ string, _ time.Duration) {}

// AddWarnings discards the warning count.
func (n *NopRecorder) AddWarnings(_ int) {}

// AddUnseated discards the unseated count.
func (n *NopRecorder) AddUnseated(_ int) {}
