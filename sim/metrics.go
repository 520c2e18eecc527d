// Tracks per-policy seek statistics for final reporting.

package sim

import (
	"fmt"

	"github.com/seeksim/seeksim/sim/trace"
)

// PolicyStats aggregates one policy's outcome over a request set.
type PolicyStats struct {
	Requests      int     // Number of track requests scheduled
	Steps         int     // Steps in the seek trace (revisits included)
	TotalMovement int     // Summed absolute seek distance
	LongestSeek   int     // Largest single-step distance
	MeanSeek      float64 // Mean per-step distance
}

// Metrics aggregates statistics about a simulation run for final
// reporting, keyed by policy name. Useful for comparing policies over
// the same request set.
type Metrics struct {
	Stats map[string]*PolicyStats

	order []string // observation order, for stable printing
}

// NewMetrics creates an empty Metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{Stats: make(map[string]*PolicyStats)}
}

// Observe records the outcome of one policy run. A repeated observation
// for the same policy replaces the earlier one.
func (m *Metrics) Observe(t *trace.SeekTrace, requests int) {
	distances := make([]int, len(t.Steps))
	for i, s := range t.Steps {
		distances[i] = s.Distance()
	}
	if _, seen := m.Stats[t.Policy]; !seen {
		m.order = append(m.order, t.Policy)
	}
	m.Stats[t.Policy] = &PolicyStats{
		Requests:      requests,
		Steps:         len(t.Steps),
		TotalMovement: t.TotalMovement,
		LongestSeek:   Max(distances),
		MeanSeek:      Mean(distances),
	}
}

// Best returns the observed policy with the least total movement.
// Ties keep the earlier observation; ok is false when nothing has been
// observed yet.
func (m *Metrics) Best() (policy string, movement int, ok bool) {
	for i, name := range m.order {
		st := m.Stats[name]
		if i == 0 || st.TotalMovement < movement {
			policy = name
			movement = st.TotalMovement
			ok = true
		}
	}
	return policy, movement, ok
}

// Print displays aggregated metrics at the end of a simulation run.
// Includes per-policy movement totals and the winning policy.
func (m *Metrics) Print() {
	fmt.Println("=== Seek Metrics ===")
	for _, name := range m.order {
		st := m.Stats[name]
		fmt.Printf("Policy               : %s\n", name)
		fmt.Printf("  Requests           : %d\n", st.Requests)
		fmt.Printf("  Steps              : %d\n", st.Steps)
		fmt.Printf("  Total Movement     : %d\n", st.TotalMovement)
		fmt.Printf("  Longest Seek       : %d\n", st.LongestSeek)
		fmt.Printf("  Mean Seek          : %.2f\n", st.MeanSeek)
	}
	if best, movement, ok := m.Best(); ok {
		fmt.Printf("Best Policy          : %s (%d)\n", best, movement)
	}
}
