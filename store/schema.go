package store

import "context"

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	kind TEXT NOT NULL,
	orientation TEXT NOT NULL,
	width INTEGER NOT NULL,
	height INTEGER NOT NULL,
	node_size REAL NOT NULL,
	height_step REAL NOT NULL,
	min_height INTEGER NOT NULL,
	max_height INTEGER NOT NULL,
	diagonal INTEGER NOT NULL,
	origin_x REAL NOT NULL,
	origin_y REAL NOT NULL,
	origin_z REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS nodes (
	snapshot_id TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
	q INTEGER NOT NULL,
	r INTEGER NOT NULL,
	h INTEGER NOT NULL,
	forced_invalid INTEGER NOT NULL,
	PRIMARY KEY (snapshot_id, q, r)
);

CREATE TABLE IF NOT EXISTS links (
	snapshot_id TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
	a INTEGER NOT NULL,
	b INTEGER NOT NULL,
	tag INTEGER NOT NULL,
	PRIMARY KEY (snapshot_id, a, b)
);

CREATE INDEX IF NOT EXISTS idx_snapshots_name ON snapshots(name, created_at);
`

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.conn.ExecContext(ctx, schema)
	return err
}

// snapshotRow mirrors the snapshots table.
type snapshotRow struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	CreatedAt   int64   `db:"created_at"`
	Kind        string  `db:"kind"`
	Orientation string  `db:"orientation"`
	Width       int     `db:"width"`
	Height      int     `db:"height"`
	NodeSize    float64 `db:"node_size"`
	HeightStep  float64 `db:"height_step"`
	MinHeight   int     `db:"min_height"`
	MaxHeight   int     `db:"max_height"`
	Diagonal    bool    `db:"diagonal"`
	OriginX     float64 `db:"origin_x"`
	OriginY     float64 `db:"origin_y"`
	OriginZ     float64 `db:"origin_z"`
	Nodes       int     `db:"node_count"`
	Links       int     `db:"link_count"`
}

// nodeRow mirrors the nodes table.
type nodeRow struct {
	Q             int  `db:"q"`
	R             int  `db:"r"`
	H             int  `db:"h"`
	ForcedInvalid bool `db:"forced_invalid"`
}

// linkRow mirrors the links table.
type linkRow struct {
	A   int `db:"a"`
	B   int `db:"b"`
	Tag int `db:"tag"`
}

const selectSnapshot = `
SELECT s.*,
	(SELECT COUNT(*) FROM nodes n WHERE n.snapshot_id = s.id) AS node_count,
	(SELECT COUNT(*) FROM links l WHERE l.snapshot_id = s.id) AS link_count
FROM snapshots s`
