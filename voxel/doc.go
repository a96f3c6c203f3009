// Package voxel holds a dense 3D microstructure image: one raw phase id per
// voxel, plus the coordinate frames and the text codec used to move it in and
// out of files.
//
// What:
//
//   - Grid stores X·Y·Z phase ids in a flat slice, index x + X·(y + Y·z).
//   - Axis is the tagged enum {X, Y, Z}; Frame re-expresses the grid in
//     canonical (depth, lateral1, lateral2) coordinates for one probe axis.
//   - Read / Write implement the microstructure text format: an optional
//     header followed by one integer per voxel.
//
// Voxel order:
//
//	Files list voxels with z outermost, then y, with x varying fastest:
//
//	  for z := 0; z < Z; z++ {
//	      for y := 0; y < Y; y++ {
//	          for x := 0; x < X; x++ { ... }
//	      }
//	  }
//
//	The same order is used for reading and writing and matches the in-memory
//	flat index, so a round trip is a straight copy.
//
// Header:
//
//	Version: 3.0
//	X_Size: 100
//	Y_Size: 100
//	Z_Size: 100
//	Image_Resolution: 1.00
//
//	Legacy files omit the header; Read then assumes LegacyVersion,
//	LegacySize³ voxels and DefaultResolution.
//
// Complexity:
//
//   - New, Clone, Read, Write: O(V), V = X·Y·Z.
//   - At, Set, Index, Coord, Frame mappings: O(1).
//
// Errors:
//
//   - ErrGridAllocation: non-positive dims or a volume above MaxVoxels.
//   - ErrMalformedInput: header or voxel stream could not be parsed; the
//     concrete error is a *ParseError carrying the line and token.
//   - ErrSizeMismatch:   FromCells got a slice of the wrong length.
//   - ErrUnknownAxis:    ParseAxis got something other than x, y or z.
package voxel
