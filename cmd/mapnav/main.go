// Command mapnav creates, edits and queries navigation grids stored in a
// SQLite snapshot database.
//
// Every editing command loads the latest snapshot of --name, applies its
// change and saves a new snapshot, so the database keeps the full history.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mapnav/config"
	"github.com/katalvlaran/mapnav/grid"
	"github.com/katalvlaran/mapnav/store"
)

func main() {
	root, e := RootCmd()
	err := root.Execute()
	e.close()
	if err != nil {
		os.Exit(1)
	}
}

// env is the state shared by all subcommands of one invocation.
type env struct {
	configFile string
	dbPath     string
	logLevel   string
	name       string

	file *config.File
	log  *slog.Logger
	db   *store.Store
}

// RootCmd builds the command tree. The returned env must be closed after
// Execute.
func RootCmd() (*cobra.Command, *env) {
	e := &env{}
	c := &cobra.Command{
		Use:          "mapnav",
		Short:        "hex and square navigation grids",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
	}
	f := c.PersistentFlags()
	f.StringVar(&e.configFile, "config", "", "HJSON config file")
	f.StringVar(&e.dbPath, "db", "", "snapshot database (overrides store.path)")
	f.StringVar(&e.logLevel, "log-level", "", "debug, info, warn or error (overrides log.level)")
	f.StringVarP(&e.name, "name", "n", "default", "snapshot name")

	c.AddCommand(
		CreateCmd(e),
		InfoCmd(e),
		ListCmd(e),
		PathCmd(e),
		RangeCmd(e),
		LinkCmd(e),
		SetCmd(e),
		SmoothCmd(e),
		RaiseCmd(e),
		FitCmd(e),
	)
	return c, e
}

func (e *env) setup(cmd *cobra.Command) error {
	var err error
	if e.configFile != "" {
		e.file, err = config.Load(e.configFile)
		if err != nil {
			return err
		}
	} else {
		e.file = config.Default()
	}
	if e.logLevel != "" {
		e.file.Log.Level = e.logLevel
	}
	if e.dbPath != "" {
		e.file.Store.Path = e.dbPath
	}

	e.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: e.file.LogLevel()}))
	e.db, err = store.Open(cmd.Context(), e.file.Store.Path, e.log)
	return err
}

func (e *env) close() {
	if e.db == nil {
		return
	}
	if err := e.db.Close(); err != nil {
		e.log.Error("close store", "err", err)
	}
	e.db = nil
}

// load restores the latest snapshot of the current name.
func (e *env) load(ctx context.Context) (*grid.Grid, store.Info, error) {
	snap, info, err := e.db.Latest(ctx, e.name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, store.Info{}, fmt.Errorf("no grid named %q, run create first", e.name)
	}
	if err != nil {
		return nil, store.Info{}, err
	}
	g, err := grid.Restore(snap, grid.WithLogger(e.log))
	if err != nil {
		return nil, store.Info{}, err
	}
	return g, info, nil
}

// edit loads the current grid, applies fn and saves the result as a new snapshot.
func (e *env) edit(cmd *cobra.Command, fn func(g *grid.Grid) error) error {
	g, _, err := e.load(cmd.Context())
	if err != nil {
		return err
	}
	if err := fn(g); err != nil {
		return err
	}
	info, err := e.db.Save(cmd.Context(), e.name, g.Snapshot())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "saved %s %s\n", info.Name, info.ID)
	return nil
}

// nodeArg resolves a "q,r" argument to a node index.
func nodeArg(g *grid.Grid, s string) (int, error) {
	var q, r int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d,%d", &q, &r); err != nil {
		return -1, fmt.Errorf("bad coordinate %q: want q,r", s)
	}
	idx := g.NodeIndex(q, r)
	if idx < 0 {
		return -1, fmt.Errorf("no node at %d,%d", q, r)
	}
	return idx, nil
}

// coords formats node indices as space separated "q,r" pairs.
func coords(g *grid.Grid, ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		n, _ := g.Node(id)
		parts = append(parts, n.Coord().String())
	}
	return strings.Join(parts, " ")
}
