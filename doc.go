// Package voxlath measures how the phases of a 3D microstructure image are
// connected, and whether they percolate from one face of the volume to the
// opposite face.
//
// What is measured?
//
//	For every requested phase (a raw id plus up to three alias ids) and every
//	axis X, Y, Z:
//		• total       voxels of the phase anywhere in the grid
//		• connected   voxels reachable from the entry face of the axis
//		• percolated  voxels of components that also reach the exit face
//		• ratio       percolated / total, or "not applicable" when absent
//
//	Components are 6-connected; the two lateral directions wrap around
//	periodically, the probe direction does not.
//
// Packages:
//
//	voxel/      dense grid, axis enum and canonical frames, text file codec
//	phase/      phase ids, alias groups, names and lookup
//	burn/       non-recursive flood fill, face-to-face percolation probe,
//	            whole-grid cluster census
//	report/     per-(phase, axis) records, text and JSON writers
//	analysis/   phase × axis sweep, sequential or on a worker pool
//	stats/      volume fractions, per-slice spread, cluster counts
//	pattern/    deterministic synthetic microstructures
//	store/      SQLite run archive
//	metrics/    Prometheus collector and textfile export
//	config/     YAML configuration over defaults
//	logging/    slog setup for the CLI
//	cmd/voxlath  command-line front end
//
// Quick ASCII example (one z-slice, phase # along X):
//
//	x →  0 1 2 3
//	y=0  # # # #    this row spans x=0..3: percolates along X
//	y=1  . # . .
//	y=2  # . . .    isolated voxel on the entry face: connected only
//	y=3  . . . .
//
//	go install github.com/katalvlaran/voxlath/cmd/voxlath@latest
package voxlath
