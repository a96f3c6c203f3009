// Package analysis drives a full connectivity sweep: every requested phase
// is resolved through a phase.Table and probed along every requested axis,
// and the results are frozen into a report.Report.
//
// What:
//
//	The run moves through LoadGrid → GridReady → (RunProbe → ProbeComplete)
//	for each phase × axis → AllProbesComplete → ReportReady. The grid is
//	loaded by the caller; Run owns everything after GridReady.
//
// Concurrency:
//
//	Probes run one after another by default. WithWorkers(n) spreads the
//	(phase, axis) pairs over an errgroup of n goroutines. The grid is only
//	read, and each probe owns its visited array, so no copying is needed.
//	Cancellation and the first probe error are observed between probes; a
//	flood in progress always runs to completion.
//
// Errors:
//
//	ErrNoPhases        - Run called with an empty phase list.
//	ErrGridNil         - Run called with a nil grid.
//	ErrOptionViolation - invalid option value.
//	burn errors        - propagated unchanged; no partial report is returned.
//	ctx.Err()          - the run was cancelled between probes.
package analysis
