package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/seeksim/seeksim/sim/trace"
)

// FCFSScheduler services requests in arrival order.
type FCFSScheduler struct{}

func (f *FCFSScheduler) Name() string { return "fcfs" }

// Schedule walks the request sequence front to back, accumulating the
// absolute seek distance of every move.
func (f *FCFSScheduler) Schedule(reqs *RequestSet) *trace.SeekTrace {
	t := trace.NewSeekTrace(f.Name())
	position := reqs.Head()
	for _, track := range reqs.tracks {
		logrus.Debugf("fcfs: seek %d -> %d", position, track)
		t.Record(position, track)
		position = track
	}
	return t
}
