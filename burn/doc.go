// Package burn measures how a phase connects through a voxel microstructure:
// it "burns" components from one face of the grid and reports how much of the
// phase is reachable from that face and how much belongs to components that
// reach the opposite face.
//
// What:
//
//   - Filler grows one 6-connected component at a time from seeds on the
//     depth-0 face of an axis frame. The two lateral axes wrap around
//     (periodic boundaries); the depth axis does not.
//   - Probe drives a Filler over the whole depth-0 face for one
//     (grid, axis, phase group) triple and returns a Result:
//     TotalVoxels      – voxels of the group anywhere in the grid,
//     ConnectedVoxels  – voxels in components touching the depth-0 face,
//     PercolatedVoxels – voxels in those components that also reach the
//     far face (depth = size-1).
//
// Why:
//
//   - Percolation of porosity or of a hydration product along each axis is the
//     basic transport indicator of a microstructure.
//
// Visited state:
//
//	The grid is never modified. Each Filler owns a visited array of one byte
//	per voxel, so probes over the same grid may run concurrently and nothing
//	has to be restored afterwards.
//
// Frontier:
//
//	Components can span the whole grid, so growth uses an explicit slice-backed
//	stack instead of recursion. WithFrontierLimit caps its length; exceeding
//	the cap aborts the probe with ErrFloodAllocation.
//
// Complexity (V = X·Y·Z):
//
//   - Probe:  O(V) time, O(V) memory (visited array plus frontier).
//   - Fill:   O(size of component).
//
// Options:
//
//   - WithFrontierLimit(n): cap the frontier at n entries (0 = no cap).
//   - WithOnComponent(fn):  observe every finished component.
//
// Errors:
//
//   - ErrGridNil:          nil grid.
//   - ErrOptionViolation:  invalid option (negative frontier limit).
//   - ErrFloodAllocation:  frontier could not grow; the probe result is void.
//   - voxel.ErrUnknownAxis: axis outside {X, Y, Z}.
package burn
