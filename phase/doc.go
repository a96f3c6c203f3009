// Package phase maps logical material phases onto the raw voxel ids that
// represent them in a microstructure image.
//
// What:
//
//   - ID is a raw phase identifier as stored in a voxel (0..255).
//   - Group is one logical phase: a primary ID plus up to three alias ids that
//     are physically the same constituent (e.g. pozzolanic and slag C-S-H both
//     count as C-S-H).
//   - Table is a static, immutable lookup: logical id → Group. Ids without an
//     entry resolve to a singleton Group containing only themselves.
//
// Why:
//
//   - Connectivity queries must treat aliased ids as one phase, both when
//     counting and when deciding whether two neighbouring voxels connect.
//     Centralising the aliases in one table removes the per-call-site if-chains.
//
// Complexity:
//
//   - Resolve, Name: O(1) map lookup.
//   - Group.Mask:    O(1), 256-entry membership array.
//   - Lookup:        O(G) over the named groups.
//
// Errors:
//
//   - ErrUnknownPhase:   Lookup could not match a name or id.
//   - ErrTooManyAliases: a Group carries more than MaxAliases aliases.
//   - ErrAliasConflict:  a raw id is claimed by two groups.
package phase
