package sim

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seeksim/seeksim/sim/internal/testutil"
	"github.com/seeksim/seeksim/sim/trace"
)

func classicTraces(t *testing.T) (*trace.SeekTrace, *trace.SeekTrace) {
	t.Helper()
	rs := mustRequestSet(t, 53, []int{98, 183, 37, 122, 14, 124, 65, 67})
	return (&FCFSScheduler{}).Schedule(rs), (&SCANScheduler{}).Schedule(rs)
}

func TestMetrics_Observe_RecordsPolicyStats(t *testing.T) {
	fcfsTrace, scanTrace := classicTraces(t)

	m := NewMetrics()
	m.Observe(fcfsTrace, 8)
	m.Observe(scanTrace, 8)

	require.Len(t, m.Stats, 2)

	fcfs := m.Stats["fcfs"]
	assert.Equal(t, 8, fcfs.Requests)
	assert.Equal(t, 8, fcfs.Steps)
	assert.Equal(t, 640, fcfs.TotalMovement)
	assert.Equal(t, 146, fcfs.LongestSeek)
	testutil.AssertFloat64Equal(t, "fcfs mean seek", 80.0, fcfs.MeanSeek, 1e-9)

	scan := m.Stats["scan"]
	assert.Equal(t, 14, scan.Steps)
	assert.Equal(t, 299, scan.TotalMovement)
	assert.Equal(t, 59, scan.LongestSeek)
	testutil.AssertFloat64Equal(t, "scan mean seek", 299.0/14.0, scan.MeanSeek, 1e-9)
}

func TestMetrics_Best_PicksLeastMovement(t *testing.T) {
	fcfsTrace, scanTrace := classicTraces(t)

	m := NewMetrics()
	m.Observe(fcfsTrace, 8)
	m.Observe(scanTrace, 8)

	policy, movement, ok := m.Best()
	require.True(t, ok)
	assert.Equal(t, "scan", policy)
	assert.Equal(t, 299, movement)
}

func TestMetrics_Best_EmptyMetrics(t *testing.T) {
	_, _, ok := NewMetrics().Best()
	assert.False(t, ok)
}

func TestMetrics_Best_TieKeepsEarlierObservation(t *testing.T) {
	a := trace.NewSeekTrace("fcfs")
	a.Record(0, 10)
	b := trace.NewSeekTrace("scan")
	b.Record(0, 10)

	m := NewMetrics()
	m.Observe(a, 1)
	m.Observe(b, 1)

	policy, movement, ok := m.Best()
	require.True(t, ok)
	assert.Equal(t, "fcfs", policy)
	assert.Equal(t, 10, movement)
}

func TestMetrics_Print_WritesPolicyBlocks(t *testing.T) {
	fcfsTrace, scanTrace := classicTraces(t)
	m := NewMetrics()
	m.Observe(fcfsTrace, 8)
	m.Observe(scanTrace, 8)

	// Capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	m.Print()

	_ = w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	output := buf.String()

	assert.Contains(t, output, "=== Seek Metrics ===")
	assert.Contains(t, output, "Policy               : fcfs")
	assert.Contains(t, output, "Total Movement     : 640")
	assert.Contains(t, output, "Policy               : scan")
	assert.Contains(t, output, "Total Movement     : 299")
	assert.Contains(t, output, "Best Policy          : scan (299)")
}
