package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/metrics"
)

// app holds state shared by all commands of one invocation.
type app struct {
	configPath string
	verbose    bool
	moveCost   int64
	turnCost   int64

	stderr io.Writer
	cfg    *config.Config
	rec    *metrics.Recorder
}

// Execute runs the mazepath CLI with os.Args and returns the first error.
func Execute(ctx context.Context) error {
	root := newRootCommand(os.Stderr)
	return root.ExecuteContext(ctx)
}

// newRootCommand builds the command tree; logs go to stderr.
func newRootCommand(stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr}

	root := &cobra.Command{
		Use:          "mazepath",
		Short:        "mazepath finds, repairs and analyzes routes through grid mazes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.dumpMetrics(loggerFromContext(cmd.Context()))
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML or TOML settings file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	pf.Int64Var(&a.moveCost, "move-cost", 0, "cost of one forward move (overrides config)")
	pf.Int64Var(&a.turnCost, "turn-cost", 0, "cost of one 90° turn (overrides config)")

	root.AddCommand(a.costCommand())
	root.AddCommand(a.tilesCommand())
	root.AddCommand(a.replanCommand())
	root.AddCommand(a.shortcutsCommand())
	root.AddCommand(a.placementsCommand())

	return root
}

// setup loads configuration, applies flag overrides and attaches the logger.
func (a *app) setup(cmd *cobra.Command) error {
	level := log.InfoLevel
	if a.verbose {
		level = log.DebugLevel
	}
	logger := newLogger(a.stderr, level)
	cmd.SetContext(withLogger(cmd.Context(), logger))

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("move-cost") {
		cfg.Costs.Move = a.moveCost
	}
	if flags.Changed("turn-cost") {
		cfg.Costs.Turn = a.turnCost
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.rec = metrics.NewRecorder()
	logger.Debug("configuration loaded",
		"file", a.configPath,
		"move", cfg.Costs.Move,
		"turn", cfg.Costs.Turn,
		"workers", cfg.Workers,
	)

	return nil
}

// dumpMetrics writes every non-zero series at debug level, sorted by name.
func (a *app) dumpMetrics(logger *log.Logger) {
	if a.rec == nil {
		return
	}
	snap, err := a.rec.Snapshot()
	if err != nil {
		logger.Warn("metrics unavailable", "err", err)
		return
	}
	keys := make([]string, 0, len(snap))
	for k, v := range snap {
		if v != 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		logger.Debug("metric", "series", k, "value", snap[k])
	}
}

// printf writes one result line to the command's output.
func printf(cmd *cobra.Command, format string, args ...interface{}) {
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}
