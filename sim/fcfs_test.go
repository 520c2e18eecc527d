package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seeksim/seeksim/sim/trace"
)

func mustRequestSet(t *testing.T, head int, tracks []int) *RequestSet {
	t.Helper()
	rs, err := NewRequestSet(head, tracks, 0)
	require.NoError(t, err)
	return rs
}

func TestFCFSScheduler_VisitsInArrivalOrder(t *testing.T) {
	// GIVEN the classic scenario
	rs := mustRequestSet(t, 53, []int{98, 183, 37, 122, 14, 124, 65, 67})

	// WHEN scheduled first-come-first-served
	tr := (&FCFSScheduler{}).Schedule(rs)

	// THEN the walk follows input order and sums to 640
	want := []trace.Step{
		{From: 53, To: 98},
		{From: 98, To: 183},
		{From: 183, To: 37},
		{From: 37, To: 122},
		{From: 122, To: 14},
		{From: 14, To: 124},
		{From: 124, To: 65},
		{From: 65, To: 67},
	}
	assert.Equal(t, want, tr.Steps)
	assert.Equal(t, 640, tr.TotalMovement)
	assert.Equal(t, "fcfs", tr.Policy)
}

func TestFCFSScheduler_SingleRequest(t *testing.T) {
	rs := mustRequestSet(t, 50, []int{75})

	tr := (&FCFSScheduler{}).Schedule(rs)

	assert.Equal(t, []trace.Step{{From: 50, To: 75}}, tr.Steps)
	assert.Equal(t, 25, tr.TotalMovement)
}

func TestFCFSScheduler_StepCountEqualsRequestCount(t *testing.T) {
	rs := mustRequestSet(t, 0, []int{5, 5, 5, 1})

	tr := (&FCFSScheduler{}).Schedule(rs)

	assert.Len(t, tr.Steps, rs.Len())
}

func TestFCFSScheduler_TotalEqualsWalkSum(t *testing.T) {
	rs := mustRequestSet(t, 100, []int{90, 40, 70})

	tr := (&FCFSScheduler{}).Schedule(rs)

	sum := 0
	for _, s := range tr.Steps {
		sum += s.Distance()
	}
	assert.Equal(t, sum, tr.TotalMovement)
	assert.Equal(t, 90, tr.TotalMovement)
}

func TestFCFSScheduler_DoesNotMutateInput(t *testing.T) {
	rs := mustRequestSet(t, 53, []int{98, 14, 37})

	_ = (&FCFSScheduler{}).Schedule(rs)

	assert.Equal(t, []int{98, 14, 37}, rs.Tracks())
}
