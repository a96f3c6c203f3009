// Package stats summarizes the phase composition of a voxel grid.
//
// For every raw phase id present, and for every aliased group of a
// phase.Table with at least one member present, Compute reports the voxel
// count, the volume fraction and, per axis, the distribution of the
// per-slice area fraction (mean, standard deviation, min, max), plus the
// number of 6-connected clusters and the size of the largest. A layered
// microstructure shows up as a large per-slice spread along the stacking
// axis and none across it.
//
// Complexity: O(P·V + P·(X+Y+Z)) time for V voxels and P present phases,
// O(V + P·(X+Y+Z)) memory.
package stats
