package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSimulator_RejectsUnknownPolicy(t *testing.T) {
	_, err := NewSimulator([]string{"fcfs", "c-look"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"c-look"`)
}

func TestNewSimulator_RejectsEmptySelection(t *testing.T) {
	_, err := NewSimulator(nil)
	assert.Error(t, err)
}

func TestNewSimulator_RejectsDuplicatePolicy(t *testing.T) {
	_, err := NewSimulator([]string{"scan", "scan"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestSimulator_Run_ProducesTracePerPolicy(t *testing.T) {
	// GIVEN a simulator configured with both policies
	s, err := NewSimulator([]string{"fcfs", "scan"})
	require.NoError(t, err)
	rs := mustRequestSet(t, 53, []int{98, 183, 37, 122, 14, 124, 65, 67})

	// WHEN the request set is scheduled
	result := s.Run(rs)

	// THEN each policy contributes one trace, in configuration order
	require.Len(t, result.Traces, 2)
	assert.Equal(t, "fcfs", result.Traces[0].Policy)
	assert.Equal(t, 640, result.Traces[0].TotalMovement)
	assert.Equal(t, "scan", result.Traces[1].Policy)
	assert.Equal(t, 299, result.Traces[1].TotalMovement)

	// AND metrics cover both policies
	policy, movement, ok := result.Metrics.Best()
	require.True(t, ok)
	assert.Equal(t, "scan", policy)
	assert.Equal(t, 299, movement)
}

func TestSimulator_Run_PreservesSelectionOrder(t *testing.T) {
	s, err := NewSimulator([]string{"scan", "fcfs"})
	require.NoError(t, err)

	result := s.Run(mustRequestSet(t, 50, []int{75}))

	require.Len(t, result.Traces, 2)
	assert.Equal(t, "scan", result.Traces[0].Policy)
	assert.Equal(t, "fcfs", result.Traces[1].Policy)
}

func TestSimulator_Run_IndependentAcrossRuns(t *testing.T) {
	// Two runs over different request sets share nothing
	s, err := NewSimulator([]string{"fcfs"})
	require.NoError(t, err)

	first := s.Run(mustRequestSet(t, 0, []int{10}))
	second := s.Run(mustRequestSet(t, 0, []int{5}))

	assert.Equal(t, 10, first.Traces[0].TotalMovement)
	assert.Equal(t, 5, second.Traces[0].TotalMovement)
	assert.Equal(t, 10, first.Metrics.Stats["fcfs"].TotalMovement)
	assert.Equal(t, 5, second.Metrics.Stats["fcfs"].TotalMovement)
}
