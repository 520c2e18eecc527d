// Package trace provides seek-trace recording for scheduler runs.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

import (
	"fmt"
	"io"
	"strings"
)

// Step captures a single head movement from one track position to another.
// From and To may be equal; such steps cost nothing but still appear in the
// visiting order.
type Step struct {
	From int
	To   int
}

// Distance returns the absolute seek distance covered by the step.
func (s Step) Distance() int {
	if s.From > s.To {
		return s.From - s.To
	}
	return s.To - s.From
}

// SeekTrace is the ordered walk a scheduling policy produced for one
// request set: every movement step plus the accumulated total.
// TotalMovement always equals the sum of the recorded step distances.
type SeekTrace struct {
	Policy        string
	Steps         []Step
	TotalMovement int
}

// NewSeekTrace creates an empty SeekTrace for the named policy.
func NewSeekTrace(policy string) *SeekTrace {
	return &SeekTrace{
		Policy: policy,
		Steps:  make([]Step, 0),
	}
}

// Record appends a movement step and accumulates its distance.
func (t *SeekTrace) Record(from, to int) {
	step := Step{From: from, To: to}
	t.Steps = append(t.Steps, step)
	t.TotalMovement += step.Distance()
}

// Render writes the trace in the line-oriented console format: a policy
// header, one "Move from X to Y" line per step, and the movement total.
func (t *SeekTrace) Render(w io.Writer) {
	fmt.Fprintf(w, "%s schedule:\n", strings.ToUpper(t.Policy))
	for _, s := range t.Steps {
		fmt.Fprintf(w, "Move from %d to %d\n", s.From, s.To)
	}
	fmt.Fprintf(w, "Total head movement: %d\n", t.TotalMovement)
}
