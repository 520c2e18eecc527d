// sim/simulator.go
package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/seeksim/seeksim/sim/trace"
)

// Simulator runs a set of scheduling policies over request sets.
// Policies run independently; nothing is shared between them beyond the
// immutable input.
type Simulator struct {
	Schedulers []Scheduler
}

// RunResult holds the traces and metrics of one simulation run, one
// trace per policy in configuration order.
type RunResult struct {
	Traces  []*trace.SeekTrace
	Metrics *Metrics
}

// NewSimulator creates a Simulator for the named policies, in order.
// Policy names must be recognized and unique.
func NewSimulator(policies []string) (*Simulator, error) {
	if len(policies) == 0 {
		return nil, errors.New("no scheduling policies selected")
	}
	s := &Simulator{}
	seen := make(map[string]bool, len(policies))
	for _, name := range policies {
		if !IsValidScheduler(name) {
			return nil, fmt.Errorf("unknown scheduler %q; valid: fcfs, scan", name)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate scheduler %q", name)
		}
		seen[name] = true
		s.Schedulers = append(s.Schedulers, NewScheduler(name))
	}
	return s, nil
}

// Run schedules the request set with every configured policy and
// collects traces plus metrics.
func (s *Simulator) Run(reqs *RequestSet) *RunResult {
	result := &RunResult{Metrics: NewMetrics()}
	for _, scheduler := range s.Schedulers {
		logrus.Infof("running %s over %d requests (head %d)", scheduler.Name(), reqs.Len(), reqs.Head())
		t := scheduler.Schedule(reqs)
		result.Traces = append(result.Traces, t)
		result.Metrics.Observe(t, reqs.Len())
		logrus.Infof("%s finished: %d steps, total head movement %d", scheduler.Name(), len(t.Steps), t.TotalMovement)
	}
	return result
}
