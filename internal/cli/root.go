// Package cli implements the graphkind command-line interface.
//
// The root command reads one or more graph files (text, TOML or YAML), prints
// each graph's category and its shortest distances from vertex 0, and exits.
// With no arguments it reads input.txt from the working directory.
//
// # Commands
//
//   - graphkind [files...]     classify and measure each graph
//   - graphkind matrix <file>  dump the adjacency matrix
//   - graphkind version        print build information
//
// # Logging
//
// Logs go to stderr via charmbracelet/log; --verbose switches to debug
// level. The logger travels through context.Context.
package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphkind/internal/config"
)

// Version is injected at build time via -ldflags "-X ...cli.Version=v1.2.3".
var Version = "dev"

// DefaultInput is read when no file arguments are given.
const DefaultInput = "input.txt"

// rootOptions collects persistent flag values and the resolved config.
type rootOptions struct {
	configPath  string
	format      string
	concurrency int
	verbose     bool

	cfg config.Config
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "graphkind [files...]",
		Short: "Classify weighted digraphs and compute shortest distances from vertex 0",
		Long: `graphkind reads weighted directed graphs and reports, for each one, whether it
has a negative-weight cycle, negative edges only, no negative edges, or no
cycle at all, followed by the shortest distance from vertex 0 to every other
vertex.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{DefaultInput}
			}
			return runAnalyze(cmd.Context(), cmd.OutOrStdout(), opts.cfg, args)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a TOML config file (default ./"+config.DefaultPath+" if present)")
	flags.StringVarP(&opts.format, "format", "f", "", "output format: text or json")
	flags.IntVarP(&opts.concurrency, "concurrency", "j", 0, "number of graphs analysed in parallel")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newMatrixCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// resolve loads the config file, applies explicit flags on top, and attaches
// a logger to the command context.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = o.concurrency
	}
	if flags.Changed("verbose") {
		cfg.Verbose = o.verbose
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	level := charmlog.InfoLevel
	if cfg.Verbose {
		level = charmlog.DebugLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level, cfg.TimeFormat)
	logger.Debug("configuration resolved", "format", cfg.Format, "concurrency", cfg.Concurrency)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, logger))

	return nil
}

// Execute runs the CLI against ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "graphkind %s\n", Version)
			return err
		},
	}
}
