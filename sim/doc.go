// Package sim provides the core disk-head scheduling engine for seeksim.
//
// # Reading Guide
//
// Start with these three files to understand the kernel:
//   - request.go: RequestSet construction and validation (capacity, empty input)
//   - scheduler.go: the Scheduler interface and the policy registry
//   - simulator.go: running every configured policy over one request set
//
// The two policies live in fcfs.go and scan.go. Both emit a
// trace.SeekTrace: the ordered movement steps plus the accumulated
// total, with rendering kept out of the scheduling code.
//
// # Architecture
//
// Sub-packages hold everything that is not scheduling:
//   - sim/trace/: seek-trace data types and aggregation
//   - sim/workload/: YAML scenario specs and synthetic track generation
//
// Schedulers are registered by name in ValidSchedulers; NewScheduler
// constructs them and NewSimulator validates caller-selected names.
package sim
