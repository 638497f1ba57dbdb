package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mapnav/grid"
	"github.com/katalvlaran/mapnav/terrain"
)

func LinkCmd(e *env) *cobra.Command {
	var (
		tag    int
		remove bool
	)
	c := &cobra.Command{
		Use:   "link A B",
		Short: "tag or untag the connection between two q,r coordinates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.edit(cmd, func(g *grid.Grid) error {
				a, err := nodeArg(g, args[0])
				if err != nil {
					return err
				}
				b, err := nodeArg(g, args[1])
				if err != nil {
					return err
				}
				if remove {
					return g.RemoveLink(a, b)
				}
				return g.SetLink(a, b, tag)
			})
		},
	}
	c.Flags().IntVar(&tag, "tag", 1, "link tag; non-zero tags block paths with --links")
	c.Flags().BoolVar(&remove, "remove", false, "remove the link instead")
	return c
}

func SetCmd(e *env) *cobra.Command {
	var (
		height  int
		invalid bool
	)
	c := &cobra.Command{
		Use:   "set AT",
		Short: "set the height or forced-invalid flag of a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("height") && !flags.Changed("invalid") {
				return fmt.Errorf("nothing to set: pass --height or --invalid")
			}
			return e.edit(cmd, func(g *grid.Grid) error {
				idx, err := nodeArg(g, args[0])
				if err != nil {
					return err
				}
				if flags.Changed("height") {
					if err := g.SetHeight(idx, height); err != nil {
						return err
					}
				}
				if flags.Changed("invalid") {
					return g.SetForcedInvalid(idx, invalid)
				}
				return nil
			})
		},
	}
	c.Flags().IntVar(&height, "height", 0, "elevation layer, clamped to the grid range")
	c.Flags().BoolVar(&invalid, "invalid", false, "exclude the node from queries")
	return c
}

func SmoothCmd(e *env) *cobra.Command {
	var passes int
	c := &cobra.Command{
		Use:   "smooth",
		Short: "move every node one layer towards its steepest neighbor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.edit(cmd, func(g *grid.Grid) error {
				for range max(passes, 1) {
					g.SmoothOut()
				}
				return nil
			})
		},
	}
	c.Flags().IntVar(&passes, "passes", 1, "number of smoothing passes")
	return c
}

func RaiseCmd(e *env) *cobra.Command {
	var by int
	c := &cobra.Command{
		Use:   "raise",
		Short: "shift every node by a number of layers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.edit(cmd, func(g *grid.Grid) error {
				g.ChangeHeight(by)
				return nil
			})
		},
	}
	c.Flags().IntVar(&by, "by", 1, "layers to add, negative lowers")
	return c
}

func FitCmd(e *env) *cobra.Command {
	var (
		amplitude, water float64
		seed             int64
		precision        int
		markInvalid      bool
	)
	c := &cobra.Command{
		Use:   "fit",
		Short: "fit node heights to a simplex relief",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.edit(cmd, func(g *grid.Grid) error {
				y := g.Config().Origin.Y
				s := terrain.NewNoiseSurface(seed, amplitude)
				s.Base = y
				if cmd.Flags().Changed("water") {
					s.WaterLevel = y + water
				}
				return g.AdjustToSurface(s, y+amplitude+1, y-1, markInvalid, precision)
			})
		},
	}
	c.Flags().Float64Var(&amplitude, "amplitude", 1, "relief height in world units")
	c.Flags().Float64Var(&water, "water", 0, "height above the grid origin below which the relief is a miss")
	c.Flags().Int64Var(&seed, "seed", 0, "relief seed, 0 picks one")
	c.Flags().IntVar(&precision, "precision", 0, "0 center, 1 corners, 2 corner average")
	c.Flags().BoolVar(&markInvalid, "mark-invalid", true, "force misses invalid")
	return c
}
