package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/placement"
	"github.com/katalvlaran/mazepath/replan"
	"github.com/katalvlaran/mazepath/shortcut"
)

// costCommand prints the cheapest turn-cost route score.
func (a *app) costCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cost <maze>",
		Short: "Print the cheapest route cost, starting East, with turn penalties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			m, space, err := a.headingMaze(args[0])
			if err != nil {
				return err
			}

			p := newProgress(logger)
			res, err := astar.Search[gridgraph.Heading](space, m.StartHeading(),
				astar.WithOnDone(a.rec.ObserveSearch))
			if err != nil {
				return fmt.Errorf("search %s: %w", args[0], err)
			}
			p.done("searched maze", "expanded", res.Expanded)

			path, err := res.Path()
			if err != nil {
				return err
			}
			check, err := astar.PathCost[gridgraph.Heading](space, path)
			if err != nil {
				return err
			}
			if check != res.Cost {
				return fmt.Errorf("route re-evaluates to %d, search reported %d", check, res.Cost)
			}

			printf(cmd, "%s", humanize.Comma(res.Cost))
			return nil
		},
	}
}

// tilesCommand prints how many cells lie on some cheapest route.
func (a *app) tilesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tiles <maze>",
		Short: "Print how many cells lie on any cheapest turn-cost route",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			m, space, err := a.headingMaze(args[0])
			if err != nil {
				return err
			}

			p := newProgress(logger)
			res, err := astar.Search[gridgraph.Heading](space, m.StartHeading(),
				astar.WithMode(astar.ModeTies),
				astar.WithOnDone(a.rec.ObserveSearch))
			if err != nil {
				return fmt.Errorf("search %s: %w", args[0], err)
			}
			cells := astar.CoveredKeys(res, gridgraph.Heading.Position)
			p.done("enumerated tied routes", "cost", res.Cost, "goals", len(res.Goals))

			printf(cmd, "%s", humanize.Comma(int64(len(cells))))
			return nil
		},
	}
}

// replanCommand replays a barrier stream on an open grid.
func (a *app) replanCommand() *cobra.Command {
	var width, height, prefix int

	cmd := &cobra.Command{
		Use:   "replan <barriers>",
		Short: "Print route steps after the barrier prefix, then the first cutting barrier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			flags := cmd.Flags()
			if !flags.Changed("width") {
				width = a.cfg.Grid.Width
			}
			if !flags.Changed("height") {
				height = a.cfg.Grid.Height
			}
			if !flags.Changed("prefix") {
				prefix = a.cfg.Grid.Prefix
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			events, err := maze.ParseBarriers(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			switch {
			case prefix < 0:
				return fmt.Errorf("prefix cannot be negative (%d)", prefix)
			case prefix > len(events):
				prefix = len(events)
			}

			grid, err := gridgraph.NewGridGraph(width, height)
			if err != nil {
				return err
			}
			start, goal := gridgraph.Cell{}, gridgraph.Cell{X: width - 1, Y: height - 1}
			rp, err := replan.New(grid, gridgraph.NewBarrierSet(events[:prefix]...), start, goal,
				replan.WithLogger(logger),
				replan.WithOnReplan(a.rec.ObserveReplan),
			)
			if err != nil {
				return err
			}
			printf(cmd, "steps: %s", humanize.Comma(int64(rp.Steps())))

			p := newProgress(logger)
			c, _, err := rp.FirstCut(events[prefix:])
			p.done("replayed barriers", "events", len(events)-prefix, "replans", rp.Replans())
			switch {
			case errors.Is(err, replan.ErrNeverCut):
				printf(cmd, "cut: none")
			case err != nil:
				return err
			default:
				printf(cmd, "cut: %v", c)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "grid width (overrides config)")
	cmd.Flags().IntVar(&height, "height", 0, "grid height (overrides config)")
	cmd.Flags().IntVar(&prefix, "prefix", 0, "barriers applied before replanning starts (overrides config)")

	return cmd
}

// shortcutsCommand counts wall-crossing jumps along the maze route.
func (a *app) shortcutsCommand() *cobra.Command {
	var maxLen, minSaving int

	cmd := &cobra.Command{
		Use:   "shortcuts <maze>",
		Short: "Print how many shortcuts along the route save at least --min-saving steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			flags := cmd.Flags()
			if !flags.Changed("max-length") {
				maxLen = a.cfg.Shortcut.MaxLength
			}
			if !flags.Changed("min-saving") {
				minSaving = a.cfg.Shortcut.MinSaving
			}

			m, err := readMaze(args[0])
			if err != nil {
				return err
			}
			res, err := astar.Search[gridgraph.Cell](gridgraph.NewCellSpace(m.Grid, nil, m.Goal), m.Start,
				astar.WithOnDone(a.rec.ObserveSearch))
			if err != nil {
				return fmt.Errorf("search %s: %w", args[0], err)
			}
			path, err := res.Path()
			if err != nil {
				return err
			}

			p := newProgress(logger)
			n, err := shortcut.Count(path, maxLen, minSaving)
			if err != nil {
				return err
			}
			p.done("counted shortcuts", "route", len(path), "max_length", maxLen)

			printf(cmd, "%s", humanize.Comma(int64(n)))
			return nil
		},
	}
	cmd.Flags().IntVar(&maxLen, "max-length", 0, "longest jump in cells (overrides config)")
	cmd.Flags().IntVar(&minSaving, "min-saving", 0, "smallest saving to count (overrides config)")

	return cmd
}

// placementsCommand blocks each reachable cell in turn.
func (a *app) placementsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "placements <maze>",
		Short: "Print how many single-cell blocks cut the route and how many lengthen it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			m, err := readMaze(args[0])
			if err != nil {
				return err
			}
			build := func(bs *gridgraph.BarrierSet) astar.StateSpace[gridgraph.Cell] {
				return gridgraph.NewCellSpace(m.Grid, bs, m.Goal)
			}

			base, err := astar.Search(build(nil), m.Start, astar.WithOnDone(a.rec.ObserveSearch))
			if err != nil {
				return fmt.Errorf("search %s: %w", args[0], err)
			}

			p := newProgress(logger)
			verdicts, err := placement.Evaluate(cmd.Context(), nil,
				placement.Candidates(m.Grid, nil, m.Start), build, m.Start,
				placement.WithWorkers(a.cfg.Workers),
				placement.WithOnVerdict(a.rec.ObserveVerdict),
				placement.WithSearchOptions(astar.WithOnDone(a.rec.ObserveSearch)),
				placement.WithLogger(logger),
			)
			if err != nil {
				return err
			}
			p.done("evaluated placements", "candidates", len(verdicts))

			printf(cmd, "cutting: %s", humanize.Comma(int64(len(placement.Cutting(verdicts)))))
			printf(cmd, "detours: %s", humanize.Comma(int64(len(placement.Detours(verdicts, base.Cost)))))
			return nil
		},
	}
}

func readMaze(path string) (*maze.Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := maze.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// headingMaze reads a maze and wraps it in a turn-cost state space.
func (a *app) headingMaze(path string) (*maze.Maze, *gridgraph.HeadingSpace, error) {
	m, err := readMaze(path)
	if err != nil {
		return nil, nil, err
	}
	space, err := gridgraph.NewHeadingSpace(m.Grid, nil, m.Goal, a.cfg.Costs.Move, a.cfg.Costs.Turn)
	if err != nil {
		return nil, nil, err
	}

	return m, space, nil
}
