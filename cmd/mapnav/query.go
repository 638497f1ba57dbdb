package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mapnav/astar"
	"github.com/katalvlaran/mapnav/grid"
)

// climbCost charges 1 plus the layer difference per step and blocks steps
// higher than limit. A negative limit means uniform cost.
func climbCost(limit int) grid.CostFunc {
	if limit < 0 {
		return nil
	}
	return func(from, to grid.Node) float64 {
		d := to.H - from.H
		if d < 0 {
			d = -d
		}
		if d > limit {
			return 0
		}
		return float64(1 + d)
	}
}

func PathCmd(e *env) *cobra.Command {
	var (
		climb   int
		links   bool
		maxCost float64
	)
	c := &cobra.Command{
		Use:   "path FROM TO",
		Short: "find the cheapest route between two q,r coordinates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := e.load(cmd.Context())
			if err != nil {
				return err
			}
			from, err := nodeArg(g, args[0])
			if err != nil {
				return err
			}
			to, err := nodeArg(g, args[1])
			if err != nil {
				return err
			}

			cost := climbCost(climb)
			if links {
				cost = grid.BlockedByLinks(g, cost)
			}
			var opts []astar.Option
			if maxCost > 0 {
				opts = append(opts, astar.WithMaxCost(maxCost))
			}
			path := g.Path(from, to, cost, opts...)
			if len(path) == 0 {
				return fmt.Errorf("no path from %s to %s", args[0], args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), coords(g, path))
			e.log.Debug("path found", "steps", len(path))
			return nil
		},
	}
	c.Flags().IntVar(&climb, "climb", -1, "highest layer difference per step, negative for flat cost")
	c.Flags().BoolVar(&links, "links", false, "treat links with a non-zero tag as walls")
	c.Flags().Float64Var(&maxCost, "max-cost", 0, "highest accepted total route cost, 0 for no limit")
	return c
}

func RangeCmd(e *env) *cobra.Command {
	var (
		mode          string
		radius, width int
		climb         int
	)
	c := &cobra.Command{
		Use:   "range AT",
		Short: "list nodes around a q,r coordinate",
		Long: `Modes:
  reach   nodes reachable within a cost budget of radius
  within  nodes at most radius steps away
  ring    nodes between radius and radius+width-1 steps away
  border  reachable nodes that touch the outside of the reachable area`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := e.load(cmd.Context())
			if err != nil {
				return err
			}
			at, err := nodeArg(g, args[0])
			if err != nil {
				return err
			}

			var ids []int
			switch mode {
			case "reach":
				ids = g.Reachable(at, radius, climbCost(climb))
			case "within":
				ids = g.Within(at, radius, false, nil)
			case "ring":
				ids = g.Ring(at, radius, width, nil)
			case "border":
				ids = g.Border(append(g.Reachable(at, radius, climbCost(climb)), at), nil)
			default:
				return fmt.Errorf("unknown range mode %q", mode)
			}
			slices.Sort(ids)
			fmt.Fprintf(cmd.OutOrStdout(), "%d nodes\n", len(ids))
			if len(ids) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), coords(g, ids))
			}
			return nil
		},
	}
	c.Flags().StringVar(&mode, "mode", "reach", "reach, within, ring or border")
	c.Flags().IntVarP(&radius, "radius", "r", 1, "range radius")
	c.Flags().IntVar(&width, "width", 1, "ring width")
	c.Flags().IntVar(&climb, "climb", -1, "highest layer difference per step in reach mode")
	return c
}
