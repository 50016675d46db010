package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/dfs"
	"github.com/katalvlaran/lvsearch/internal/report"
	"github.com/katalvlaran/lvsearch/problems/grid"
	"github.com/katalvlaran/lvsearch/problems/route"
	"github.com/katalvlaran/lvsearch/problems/wgc"
	"github.com/katalvlaran/lvsearch/search"
)

// strategyNames lists the accepted --strategy values in run order.
var strategyNames = []string{"dfs", "bfs"}

// solveFlags are the flags common to every solve subcommand.
type solveFlags struct {
	strategy      string
	maxExpansions int
}

func (f *solveFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.strategy, "strategy", "s", "both", "Search strategy: dfs, bfs or both")
	cmd.Flags().IntVar(&f.maxExpansions, "max-expansions", 0, "Stop after this many expansions (0 = no limit)")
}

// strategies resolves --strategy into the list of strategy names to run.
func (f *solveFlags) strategies() ([]string, error) {
	switch s := strings.ToLower(f.strategy); s {
	case "both", "all", "":
		return strategyNames, nil
	case "dfs", "bfs":
		return []string{s}, nil
	}

	return nil, fmt.Errorf("unknown strategy %q (want dfs, bfs or both)", f.strategy)
}

func newSolveCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Search a problem and print its solution",
	}
	cmd.AddCommand(newSolveWGCCmd(s), newSolveRouteCmd(s), newSolveGridCmd(s))

	return cmd
}

func newSolveWGCCmd(s *settings) *cobra.Command {
	var sf solveFlags
	var initial, goal string
	cmd := &cobra.Command{
		Use:   "wgc",
		Short: "Ferry the farmer, wolf, goat and cabbage across the river",
		Long: `Solves the wolf-goat-cabbage puzzle. States are the travellers left on
the starting bank, written with the letters F, W, G and C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := wgc.ParseItems(initial)
			if err != nil {
				return err
			}
			to, err := wgc.ParseItems(goal)
			if err != nil {
				return err
			}
			return solve(cmd, s, &sf, "wgc", search.Problem[wgc.Items, wgc.Items](wgc.New(from, to)))
		},
	}
	sf.register(cmd)
	cmd.Flags().StringVar(&initial, "initial", "FWGC", "Travellers on the starting bank")
	cmd.Flags().StringVar(&goal, "goal", "", "Travellers left on the starting bank at the goal")

	return cmd
}

func newSolveRouteCmd(s *settings) *cobra.Command {
	var sf solveFlags
	var file string
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find a route through a graph described in YAML",
		Long: `Reads a route file:

  start: A
  goals: [D]
  undirected: true
  edges:
    - {from: A, to: B}
    - {from: B, to: D, cost: 2}

and searches it from start to any goal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := route.Load(file)
			if err != nil {
				return err
			}
			return solve(cmd, s, &sf, "route", search.Problem[string, string](p))
		},
	}
	sf.register(cmd)
	cmd.Flags().StringVarP(&file, "file", "f", "", "Route file (YAML)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newSolveGridCmd(s *settings) *cobra.Command {
	var sf solveFlags
	var file string
	var diagonal bool
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Walk through an ASCII maze",
		Long: `Reads a maze drawn with '#' walls, '.' open cells, one 'S' start and
any number of 'G' goals, and searches a walk from S to a G.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			conn := grid.Conn4
			if diagonal {
				conn = grid.Conn8
			}
			p, err := grid.ParseMaze(f, conn)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			return solve(cmd, s, &sf, "grid", search.Problem[grid.Cell, grid.Direction](p))
		},
	}
	sf.register(cmd)
	cmd.Flags().StringVarP(&file, "file", "f", "", "Maze file")
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "Allow diagonal steps")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// solve runs the selected strategies on p and writes one result per strategy.
// A missing solution is reported, not treated as a failure.
func solve[S comparable, A any](cmd *cobra.Command, s *settings, sf *solveFlags, name string, p search.Problem[S, A]) error {
	names, err := sf.strategies()
	if err != nil {
		return err
	}
	run := map[string]func(search.Problem[S, A], ...search.Option) (*search.Node[S, A], error){
		"dfs": dfs.DepthFirstGraphSearch[S, A],
		"bfs": bfs.BreadthFirstGraphSearch[S, A],
	}

	results := make([]report.Result, 0, len(names))
	for _, strategy := range names {
		var stats search.Stats
		log := s.logger.With("problem", name, "strategy", strategy)
		node, err := run[strategy](p,
			search.WithContext(cmd.Context()),
			search.WithLogger(log),
			search.WithMaxExpansions(sf.maxExpansions),
			search.WithStats(&stats),
		)
		if err != nil && !errors.Is(err, search.ErrNoSolution) {
			return fmt.Errorf("%s: %w", strategy, err)
		}
		log.Debug("search finished", "found", node != nil, "expanded", stats.Expanded)
		results = append(results, report.FromNode(name, strategy, node, stats))
	}

	return report.Write(cmd.OutOrStdout(), s.out, results)
}
