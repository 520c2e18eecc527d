package sim

import (
	"fmt"

	"github.com/seeksim/seeksim/sim/trace"
)

// Scheduler produces the seek trace a policy generates for a request
// set. Implementations never fail on a valid RequestSet and never
// mutate it.
type Scheduler interface {
	Name() string
	Schedule(reqs *RequestSet) *trace.SeekTrace
}

// ValidSchedulers is the set of recognized scheduler names.
// Shared by spec validation and NewScheduler() to avoid duplication.
var ValidSchedulers = map[string]bool{"fcfs": true, "scan": true}

// IsValidScheduler returns true if name is a recognized scheduler name.
func IsValidScheduler(name string) bool {
	return ValidSchedulers[name]
}

// NewScheduler creates a Scheduler by name.
// Valid names: "fcfs", "scan". Panics on unrecognized names; callers
// validate with IsValidScheduler first.
func NewScheduler(name string) Scheduler {
	if !IsValidScheduler(name) {
		panic(fmt.Sprintf("unknown scheduler %q", name))
	}
	switch name {
	case "fcfs":
		return &FCFSScheduler{}
	case "scan":
		return &SCANScheduler{}
	default:
		panic(fmt.Sprintf("unhandled scheduler %q", name))
	}
}
