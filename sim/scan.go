package sim

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/seeksim/seeksim/sim/trace"
)

// SCANScheduler sweeps the head toward the highest requested track,
// takes one forced reversal step to that track, then sweeps back down.
// Both sweeps use inclusive comparisons against the current head
// position, so the downward pass revisits tracks covered on the way up.
// Revisits and the reversal step belong to the trace, zero-cost steps
// included.
type SCANScheduler struct{}

func (s *SCANScheduler) Name() string { return "scan" }

// Schedule runs the bidirectional sweep over an ascending sorted copy
// of the request sequence.
func (s *SCANScheduler) Schedule(reqs *RequestSet) *trace.SeekTrace {
	t := trace.NewSeekTrace(s.Name())

	sorted := make([]int, len(reqs.tracks))
	copy(sorted, reqs.tracks)
	sort.Ints(sorted)

	position := reqs.Head()

	// Rightward sweep: every track at or above the head, ascending.
	for _, track := range sorted {
		if track >= position {
			logrus.Debugf("scan: rightward seek %d -> %d", position, track)
			t.Record(position, track)
			position = track
		}
	}

	// Forced reversal step to the highest track, recorded even when the
	// rightward sweep already ends there.
	top := sorted[len(sorted)-1]
	logrus.Debugf("scan: reversal seek %d -> %d", position, top)
	t.Record(position, top)
	position = top

	// Leftward sweep: every remaining track at or below the head,
	// descending. Ends at the lowest track.
	for i := len(sorted) - 2; i >= 0; i-- {
		if sorted[i] <= position {
			logrus.Debugf("scan: leftward seek %d -> %d", position, sorted[i])
			t.Record(position, sorted[i])
			position = sorted[i]
		}
	}

	return t
}
