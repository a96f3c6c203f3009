// Package store persists connectivity reports in a SQLite database so that
// runs can be listed and re-emitted later.
//
// Two tables: runs (one row per report, keyed by run id) and records (one
// row per phase × axis). The schema is created on Open; Save writes a report
// in a single transaction.
//
// Errors: ErrRunNotFound for an unknown run id; ErrDuplicateRun when a run id
// is saved twice. Driver errors are wrapped with the failing step.
package store
