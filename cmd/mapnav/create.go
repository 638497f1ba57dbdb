package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mapnav/grid"
	"github.com/katalvlaran/mapnav/terrain"
	"github.com/katalvlaran/mapnav/topology"
)

func CreateCmd(e *env) *cobra.Command {
	var (
		kind, mode    string
		width, height int
		seed          int64
	)
	c := &cobra.Command{
		Use:   "create",
		Short: "generate a grid and save it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("kind") {
				e.file.Grid.Kind = kind
			}
			if flags.Changed("width") {
				e.file.Grid.Width = width
			}
			if flags.Changed("height") {
				e.file.Grid.Height = height
			}
			if flags.Changed("mode") {
				e.file.Terrain.Mode = mode
			}
			if flags.Changed("seed") {
				e.file.Terrain.Seed = seed
			}

			cfg, err := e.file.GridConfig()
			if err != nil {
				return err
			}
			src, err := e.file.HeightSource()
			if err != nil {
				return err
			}
			g, err := grid.New(cfg, grid.WithLogger(e.log), grid.WithHeights(src))
			if err != nil {
				return err
			}
			info, err := e.db.Save(cmd.Context(), e.name, g.Snapshot())
			if err != nil {
				return err
			}
			cfg = g.Config()
			fmt.Fprintf(cmd.OutOrStdout(), "created %s %s: %s %dx%d, %s nodes\n",
				info.Name, info.ID, cfg.Kind, cfg.Width, cfg.Height, humanize.Comma(int64(info.Nodes)))
			return nil
		},
	}
	c.Flags().StringVar(&kind, "kind", topology.Square.String(), "square, hex-axial, hex-odd-offset or hex-even-offset")
	c.Flags().IntVar(&width, "width", 10, "columns")
	c.Flags().IntVar(&height, "height", 10, "rows")
	c.Flags().StringVar(&mode, "mode", string(terrain.ModeFlat), "height mode: flat, random or noise")
	c.Flags().Int64Var(&seed, "seed", 0, "terrain seed, 0 picks one")
	return c
}

func InfoCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "describe the latest snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, info, err := e.load(cmd.Context())
			if err != nil {
				return err
			}
			cfg := g.Config()
			valid, blocked := 0, 0
			lo, hi := cfg.MaxHeight, cfg.MinHeight
			for _, n := range g.Nodes() {
				switch {
				case n.Valid():
					valid++
					lo, hi = min(lo, n.H), max(hi, n.H)
				case n.Index >= 0:
					blocked++
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "name\t%s\n", info.Name)
			fmt.Fprintf(w, "id\t%s\n", info.ID)
			fmt.Fprintf(w, "saved\t%s\n", humanize.Time(info.CreatedAt))
			fmt.Fprintf(w, "layout\t%s %s %dx%d\n", cfg.Kind, cfg.Orientation, cfg.Width, cfg.Height)
			fmt.Fprintf(w, "nodes\t%s valid, %s blocked\n", humanize.Comma(int64(valid)), humanize.Comma(int64(blocked)))
			if valid > 0 {
				fmt.Fprintf(w, "heights\t%d..%d\n", lo, hi)
			}
			fmt.Fprintf(w, "regions\t%d\n", len(g.Regions(nil)))
			fmt.Fprintf(w, "links\t%d\n", len(g.AllLinks()))
			return w.Flush()
		},
	}
}

func ListCmd(e *env) *cobra.Command {
	var all bool
	c := &cobra.Command{
		Use:   "list",
		Short: "list stored snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := e.name
			if all {
				name = ""
			}
			infos, err := e.db.List(cmd.Context(), name)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tLAYOUT\tNODES\tLINKS\tSAVED")
			for _, in := range infos {
				fmt.Fprintf(w, "%s\t%s\t%s %dx%d\t%s\t%d\t%s\n",
					in.ID, in.Name, in.Config.Kind, in.Config.Width, in.Config.Height,
					humanize.Comma(int64(in.Nodes)), in.Links, humanize.Time(in.CreatedAt))
			}
			return w.Flush()
		},
	}
	c.Flags().BoolVar(&all, "all", false, "list every name")
	return c
}
