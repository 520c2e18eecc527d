package trace

// TraceSummary aggregates statistics across a set of seek traces.
type TraceSummary struct {
	TotalTraces      int
	TotalSteps       int
	ZeroLengthSeeks  int            // steps with From == To (revisit artifacts)
	MovementByPolicy map[string]int // policy name → summed movement
	BestPolicy       string         // least total movement; ties keep the earlier policy
	BestMovement     int
}

// Summarize computes aggregate statistics from a set of traces.
// Safe for nil or empty inputs (returns zero-value fields).
func Summarize(traces []*SeekTrace) *TraceSummary {
	summary := &TraceSummary{
		MovementByPolicy: make(map[string]int),
	}

	var policyOrder []string
	for _, t := range traces {
		if t == nil {
			continue
		}
		summary.TotalTraces++
		summary.TotalSteps += len(t.Steps)
		for _, s := range t.Steps {
			if s.From == s.To {
				summary.ZeroLengthSeeks++
			}
		}
		if _, seen := summary.MovementByPolicy[t.Policy]; !seen {
			policyOrder = append(policyOrder, t.Policy)
		}
		summary.MovementByPolicy[t.Policy] += t.TotalMovement
	}

	for i, policy := range policyOrder {
		movement := summary.MovementByPolicy[policy]
		if i == 0 || movement < summary.BestMovement {
			summary.BestPolicy = policy
			summary.BestMovement = movement
		}
	}

	return summary
}
