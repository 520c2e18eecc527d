package cmd

import (
	"fmt"
	"io"

	sim "github.com/seeksim/seeksim/sim"
)

// session is one interactive scheduling run over a reader/writer pair.
// Stdin/stdout in production, buffers in tests.
type session struct {
	in  io.Reader
	out io.Writer
}

func newSession(in io.Reader, out io.Writer) *session {
	return &session{in: in, out: out}
}

// Run prompts for a request set, schedules it with every selected
// policy, and renders the seek traces. A request count over the
// capacity limit prints a fixed refusal and returns
// sim.ErrCapacityExceeded before anything is scheduled.
func (s *session) Run(maxRequests int, policies []string) error {
	simulator, err := sim.NewSimulator(policies)
	if err != nil {
		return err
	}
	if maxRequests <= 0 {
		maxRequests = sim.DefaultMaxRequests
	}

	fmt.Fprint(s.out, "Enter the number of requests: ")
	var n int
	if _, err := fmt.Fscan(s.in, &n); err != nil {
		return fmt.Errorf("reading request count: %w", err)
	}
	if n > maxRequests {
		fmt.Fprintln(s.out, "Error: Maximum requests exceeded.")
		return fmt.Errorf("%w: %d requests over limit %d", sim.ErrCapacityExceeded, n, maxRequests)
	}
	if n <= 0 {
		return fmt.Errorf("request count must be positive, got %d", n)
	}

	fmt.Fprintln(s.out, "Enter the requests:")
	tracks := make([]int, n)
	for i := range tracks {
		if _, err := fmt.Fscan(s.in, &tracks[i]); err != nil {
			return fmt.Errorf("reading request %d: %w", i+1, err)
		}
	}

	fmt.Fprint(s.out, "Enter the initial head position: ")
	var head int
	if _, err := fmt.Fscan(s.in, &head); err != nil {
		return fmt.Errorf("reading head position: %w", err)
	}

	reqs, err := sim.NewRequestSet(head, tracks, maxRequests)
	if err != nil {
		return err
	}

	result := simulator.Run(reqs)
	for _, tr := range result.Traces {
		fmt.Fprintln(s.out)
		tr.Render(s.out)
	}
	return nil
}
