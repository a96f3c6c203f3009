package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/voxlath/phase"
	"github.com/katalvlaran/voxlath/report"
	"github.com/katalvlaran/voxlath/voxel"
)

//go:embed schema.sql
var schemaSQL string

var (
	// ErrRunNotFound indicates no run with the requested id is stored.
	ErrRunNotFound = errors.New("store: run not found")

	// ErrDuplicateRun indicates a report with the same run id already exists.
	ErrDuplicateRun = errors.New("store: run already saved")
)

// pragmas are applied by the driver to every pooled connection.
var pragmas = []string{
	"busy_timeout(5000)",
	"foreign_keys(1)",
	"journal_mode(WAL)",
	"synchronous(NORMAL)",
}

// Run is the summary row of a stored report.
type Run struct {
	ID         string
	Source     string
	Dims       voxel.Dims
	Resolution float64
	CreatedAt  time.Time
	Records    int
}

// Store is a SQLite-backed report archive. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema. Use ":memory:" for a throwaway store.
func Open(ctx context.Context, path string) (*Store, error) {
	q := url.Values{}
	for _, p := range pragmas {
		q.Add("_pragma", p)
	}
	db, err := sql.Open("sqlite", path+"?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if path == ":memory:" {
		// each connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// Save writes r and all its records in one transaction.
func (s *Store) Save(ctx context.Context, r *report.Report) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE run_id = ?`, r.RunID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check run %s: %w", r.RunID, err)
	}
	if exists > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateRun, r.RunID)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (run_id, source, dim_x, dim_y, dim_z, resolution, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Source, r.Dims.X, r.Dims.Y, r.Dims.Z, r.Resolution, r.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", r.RunID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (
			run_id, phase, name, members, axis,
			total_voxels, connected_voxels, percolated_voxels,
			components, percolating_components
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare records: %w", err)
	}
	defer stmt.Close()

	for _, rec := range r.Records() {
		_, err = stmt.ExecContext(ctx,
			r.RunID, int(rec.Phase), rec.Name, encodeMembers(rec.Members), int(rec.Axis),
			rec.TotalVoxels, rec.ConnectedVoxels, rec.PercolatedVoxels,
			rec.Components, rec.PercolatingComponents,
		)
		if err != nil {
			return fmt.Errorf("insert record phase %d axis %s: %w", rec.Phase, rec.Axis, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// List returns the most recent runs first. limit <= 0 returns every run.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	q := `
		SELECT r.run_id, r.source, r.dim_x, r.dim_y, r.dim_z, r.resolution, r.created_at,
		       (SELECT COUNT(*) FROM records c WHERE c.run_id = r.run_id)
		FROM runs r
		ORDER BY r.created_at DESC, r.run_id`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run     Run
			created int64
		)
		if err := rows.Scan(&run.ID, &run.Source, &run.Dims.X, &run.Dims.Y, &run.Dims.Z,
			&run.Resolution, &created, &run.Records); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.CreatedAt = time.Unix(0, created).UTC()
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// Get rebuilds the stored report with the given run id.
func (s *Store) Get(ctx context.Context, runID string) (*report.Report, error) {
	var (
		meta    report.Meta
		created int64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT run_id, source, dim_x, dim_y, dim_z, resolution, created_at
		FROM runs WHERE run_id = ?`, runID,
	).Scan(&meta.RunID, &meta.Source, &meta.Dims.X, &meta.Dims.Y, &meta.Dims.Z, &meta.Resolution, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("query run %s: %w", runID, err)
	}
	meta.CreatedAt = time.Unix(0, created).UTC()

	rows, err := s.db.QueryContext(ctx, `
		SELECT phase, name, members, axis,
		       total_voxels, connected_voxels, percolated_voxels,
		       components, percolating_components
		FROM records WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("query records %s: %w", runID, err)
	}
	defer rows.Close()

	var recs []report.Record
	for rows.Next() {
		var (
			rec       report.Record
			id, axis  int
			memberStr string
		)
		if err := rows.Scan(&id, &rec.Name, &memberStr, &axis,
			&rec.TotalVoxels, &rec.ConnectedVoxels, &rec.PercolatedVoxels,
			&rec.Components, &rec.PercolatingComponents); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.Phase = phase.ID(id)
		rec.Axis = voxel.Axis(axis)
		if rec.Members, err = decodeMembers(memberStr); err != nil {
			return nil, fmt.Errorf("record phase %d: %w", id, err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return report.New(meta, recs), nil
}

// Delete removes a run and its records.
func (s *Store) Delete(ctx context.Context, runID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE run_id = ?`, runID)
	if err != nil {
		return fmt.Errorf("delete run %s: %w", runID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}

	return nil
}

func encodeMembers(ids []phase.ID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}

	return strings.Join(parts, ",")
}

func decodeMembers(s string) ([]phase.ID, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]phase.ID, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", p, err)
		}
		ids[i] = phase.ID(n)
	}

	return ids, nil
}
