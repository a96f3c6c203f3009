// Package report assembles per-(phase, axis) percolation results into an
// immutable connectivity report and serializes it.
//
// What:
//
//   - Record is one (phase, axis) row: total, connected and percolated voxel
//     counts plus component counts.
//   - Record.Ratio is percolated/total; it is "not applicable" (ok == false)
//     when the phase is absent, never NaN and never a silent zero.
//   - Builder collects burn.Result values and freezes them into a Report
//     ordered by phase id, then axis.
//   - WriteText and WriteJSON emit a Report; in JSON a not-applicable ratio is
//     null, in text it is "n/a".
//
// Complexity:
//
//   - Add: O(1) amortized. Build: O(R log R) for R records.
//   - Lookup: O(R).
package report
