// Package store persists grid snapshots in a SQLite database.
//
// Every Save writes a new snapshot row with a fresh UUID; nothing is updated
// in place. Snapshots sharing a name form a history that Latest reads from.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/mapnav/grid"
	"github.com/katalvlaran/mapnav/topology"
)

var (
	// ErrNotFound indicates that no snapshot matches the id or name.
	ErrNotFound = errors.New("store: snapshot not found")
	// ErrEmptyName indicates a Save without a snapshot name.
	ErrEmptyName = errors.New("store: empty snapshot name")
)

// Info describes a stored snapshot without its node and link rows.
type Info struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Config    grid.Config
	Nodes     int
	Links     int
}

// Store wraps a SQLite connection holding grid snapshots.
type Store struct {
	conn *sqlx.DB
	log  *slog.Logger
	now  func() time.Time
}

// Open opens or creates a database at path and applies the schema.
// A nil logger falls back to slog.Default.
func Open(ctx context.Context, path string, log *slog.Logger) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}

	s := &Store{conn: conn, log: log, now: time.Now}
	if err := s.migrate(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Save writes snap as a new snapshot called name and returns its metadata.
func (s *Store) Save(ctx context.Context, name string, snap grid.Snapshot) (Info, error) {
	if name == "" {
		return Info{}, ErrEmptyName
	}
	info := Info{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: s.now().UTC(),
		Config:    snap.Config,
		Nodes:     len(snap.Nodes),
		Links:     len(snap.Links),
	}

	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return Info{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	c := snap.Config
	_, err = tx.ExecContext(ctx, `INSERT INTO snapshots
		(id, name, created_at, kind, orientation, width, height, node_size, height_step,
		 min_height, max_height, diagonal, origin_x, origin_y, origin_z)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		info.ID, name, info.CreatedAt.UnixNano(), c.Kind.String(), c.Orientation.String(),
		c.Width, c.Height, c.NodeSize, c.HeightStep, c.MinHeight, c.MaxHeight, c.Diagonal,
		c.Origin.X, c.Origin.Y, c.Origin.Z)
	if err != nil {
		return Info{}, fmt.Errorf("insert snapshot: %w", err)
	}

	nodeStmt, err := tx.PreparexContext(ctx, `INSERT INTO nodes (snapshot_id, q, r, h, forced_invalid) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return Info{}, fmt.Errorf("prepare node insert: %w", err)
	}
	defer nodeStmt.Close()
	for _, n := range snap.Nodes {
		if _, err := nodeStmt.ExecContext(ctx, info.ID, n.Q, n.R, n.H, n.ForcedInvalid); err != nil {
			return Info{}, fmt.Errorf("insert node %d,%d: %w", n.Q, n.R, err)
		}
	}

	linkStmt, err := tx.PreparexContext(ctx, `INSERT INTO links (snapshot_id, a, b, tag) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return Info{}, fmt.Errorf("prepare link insert: %w", err)
	}
	defer linkStmt.Close()
	for _, l := range snap.Links {
		if _, err := linkStmt.ExecContext(ctx, info.ID, l.A, l.B, l.Tag); err != nil {
			return Info{}, fmt.Errorf("insert link %d-%d: %w", l.A, l.B, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Info{}, fmt.Errorf("commit: %w", err)
	}
	s.log.Debug("snapshot saved", "id", info.ID, "name", name, "nodes", info.Nodes, "links", info.Links)
	return info, nil
}

// Load reads the snapshot with the given id.
func (s *Store) Load(ctx context.Context, id string) (grid.Snapshot, Info, error) {
	var row snapshotRow
	err := s.conn.GetContext(ctx, &row, selectSnapshot+` WHERE s.id = ?`, id)
	return s.load(ctx, row, err)
}

// Latest reads the most recent snapshot called name.
func (s *Store) Latest(ctx context.Context, name string) (grid.Snapshot, Info, error) {
	var row snapshotRow
	err := s.conn.GetContext(ctx, &row,
		selectSnapshot+` WHERE s.name = ? ORDER BY s.created_at DESC, s.rowid DESC LIMIT 1`, name)
	return s.load(ctx, row, err)
}

func (s *Store) load(ctx context.Context, row snapshotRow, err error) (grid.Snapshot, Info, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return grid.Snapshot{}, Info{}, ErrNotFound
	}
	if err != nil {
		return grid.Snapshot{}, Info{}, fmt.Errorf("load snapshot: %w", err)
	}
	info, err := row.info()
	if err != nil {
		return grid.Snapshot{}, Info{}, err
	}

	var nodes []nodeRow
	if err := s.conn.SelectContext(ctx, &nodes,
		`SELECT q, r, h, forced_invalid FROM nodes WHERE snapshot_id = ? ORDER BY r, q`, row.ID); err != nil {
		return grid.Snapshot{}, Info{}, fmt.Errorf("load nodes: %w", err)
	}
	var links []linkRow
	if err := s.conn.SelectContext(ctx, &links,
		`SELECT a, b, tag FROM links WHERE snapshot_id = ? ORDER BY a, b`, row.ID); err != nil {
		return grid.Snapshot{}, Info{}, fmt.Errorf("load links: %w", err)
	}

	snap := grid.Snapshot{
		Config: info.Config,
		Nodes:  make([]grid.NodeState, len(nodes)),
		Links:  make([]grid.Link, len(links)),
	}
	for i, n := range nodes {
		snap.Nodes[i] = grid.NodeState{Q: n.Q, R: n.R, H: n.H, ForcedInvalid: n.ForcedInvalid}
	}
	for i, l := range links {
		snap.Links[i] = grid.Link{A: l.A, B: l.B, Tag: l.Tag}
	}
	return snap, info, nil
}

// List returns snapshot metadata, newest first. An empty name lists all.
func (s *Store) List(ctx context.Context, name string) ([]Info, error) {
	var rows []snapshotRow
	q := selectSnapshot
	var args []any
	if name != "" {
		q += ` WHERE s.name = ?`
		args = append(args, name)
	}
	q += ` ORDER BY s.created_at DESC, s.rowid DESC`
	if err := s.conn.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	out := make([]Info, 0, len(rows))
	for _, r := range rows {
		info, err := r.info()
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, nil
}

// Delete removes a snapshot with its nodes and links.
func (s *Store) Delete(ctx context.Context, id string) error {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, q := range []string{
		`DELETE FROM nodes WHERE snapshot_id = ?`,
		`DELETE FROM links WHERE snapshot_id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return fmt.Errorf("delete snapshot rows: %w", err)
		}
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

func (r snapshotRow) info() (Info, error) {
	kind, err := topology.ParseKind(r.Kind)
	if err != nil {
		return Info{}, fmt.Errorf("snapshot %s: %w", r.ID, err)
	}
	orient, err := topology.ParseOrientation(r.Orientation)
	if err != nil {
		return Info{}, fmt.Errorf("snapshot %s: %w", r.ID, err)
	}
	return Info{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: time.Unix(0, r.CreatedAt).UTC(),
		Config: grid.Config{
			Kind:        kind,
			Orientation: orient,
			Width:       r.Width,
			Height:      r.Height,
			NodeSize:    r.NodeSize,
			HeightStep:  r.HeightStep,
			MinHeight:   r.MinHeight,
			MaxHeight:   r.MaxHeight,
			Diagonal:    r.Diagonal,
			Origin:      topology.Vec3{X: r.OriginX, Y: r.OriginY, Z: r.OriginZ},
		},
		Nodes: r.Nodes,
		Links: r.Links,
	}, nil
}
