package store_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mapnav/grid"
	"github.com/katalvlaran/mapnav/store"
	"github.com/katalvlaran/mapnav/topology"
)

type StoreSuite struct {
	suite.Suite
	ctx  context.Context
	path string
	db   *store.Store
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.path = filepath.Join(s.T().TempDir(), "maps.db")
	db, err := store.Open(s.ctx, s.path, quiet())
	s.Require().NoError(err)
	s.db = db
}

func (s *StoreSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// sample builds an offset hex grid with edited heights, a forced-invalid node and links.
func (s *StoreSuite) sample() *grid.Grid {
	cfg := grid.DefaultConfig()
	cfg.Kind = topology.HexOddOffset
	cfg.Orientation = topology.PointyTop
	cfg.Width, cfg.Height = 5, 4
	cfg.Diagonal = true
	cfg.Origin = topology.Vec3{X: 1.5, Y: -2, Z: 4}
	g, err := grid.New(cfg, grid.WithLogger(quiet()))
	s.Require().NoError(err)
	s.Require().NoError(g.SetHeight(3, 4))
	s.Require().NoError(g.SetHeight(12, 2))
	s.Require().NoError(g.SetForcedInvalid(7, true))
	s.Require().NoError(g.SetLink(3, 4, 2))
	s.Require().NoError(g.SetLink(11, 6, 0))
	return g
}

func (s *StoreSuite) TestSaveLoad() {
	g := s.sample()
	info, err := s.db.Save(s.ctx, "arena", g.Snapshot())
	s.Require().NoError(err)
	_, err = uuid.Parse(info.ID)
	s.Require().NoError(err, "ids are UUIDs")
	s.Equal(20, info.Nodes)
	s.Equal(2, info.Links)

	snap, loaded, err := s.db.Load(s.ctx, info.ID)
	s.Require().NoError(err)
	s.Equal(info.ID, loaded.ID)
	s.Equal("arena", loaded.Name)
	s.True(info.CreatedAt.Equal(loaded.CreatedAt))
	s.Equal(g.Config(), snap.Config)
	s.ElementsMatch(g.Snapshot().Nodes, snap.Nodes)
	s.Equal(g.AllLinks(), snap.Links)

	restored, err := grid.Restore(snap, grid.WithLogger(quiet()))
	s.Require().NoError(err)
	s.Equal(g.Nodes(), restored.Nodes())
	s.False(restored.ValidIndex(7))
}

func (s *StoreSuite) TestLatestAndList() {
	g := s.sample()
	first, err := s.db.Save(s.ctx, "arena", g.Snapshot())
	s.Require().NoError(err)
	s.Require().NoError(g.SetHeight(0, 5))
	second, err := s.db.Save(s.ctx, "arena", g.Snapshot())
	s.Require().NoError(err)
	_, err = s.db.Save(s.ctx, "other", g.Snapshot())
	s.Require().NoError(err)

	snap, info, err := s.db.Latest(s.ctx, "arena")
	s.Require().NoError(err)
	s.Equal(second.ID, info.ID)
	for _, n := range snap.Nodes {
		if n.Q == 0 && n.R == 0 {
			s.Equal(5, n.H)
		}
	}

	list, err := s.db.List(s.ctx, "arena")
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(second.ID, list[0].ID)
	s.Equal(first.ID, list[1].ID)

	all, err := s.db.List(s.ctx, "")
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *StoreSuite) TestDelete() {
	info, err := s.db.Save(s.ctx, "arena", s.sample().Snapshot())
	s.Require().NoError(err)
	s.Require().NoError(s.db.Delete(s.ctx, info.ID))

	_, _, err = s.db.Load(s.ctx, info.ID)
	s.ErrorIs(err, store.ErrNotFound)
	s.ErrorIs(s.db.Delete(s.ctx, info.ID), store.ErrNotFound)
}

func (s *StoreSuite) TestNotFound() {
	_, _, err := s.db.Load(s.ctx, uuid.NewString())
	s.ErrorIs(err, store.ErrNotFound)
	_, _, err = s.db.Latest(s.ctx, "missing")
	s.ErrorIs(err, store.ErrNotFound)
	_, err = s.db.Save(s.ctx, "", s.sample().Snapshot())
	s.ErrorIs(err, store.ErrEmptyName)
}

func (s *StoreSuite) TestReopen() {
	info, err := s.db.Save(s.ctx, "arena", s.sample().Snapshot())
	s.Require().NoError(err)
	s.Require().NoError(s.db.Close())

	db, err := store.Open(s.ctx, s.path, quiet())
	s.Require().NoError(err)
	s.db = db
	_, loaded, err := s.db.Latest(s.ctx, "arena")
	s.Require().NoError(err)
	s.Equal(info.ID, loaded.ID)
}

// Entry point for running the suite.
func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}
