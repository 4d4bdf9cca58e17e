// Package cli wires the taskline commands: the interactive timeline, a
// plain listing for scripts and pipes, and version.
package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/taskline/internal/model"
	"github.com/sandeepkv93/taskline/internal/update"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// isTerminal reports whether stdout is interactive; the TUI is only started
// on a terminal.
var isTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type rootOptions struct {
	configFile string
	view       string
	demo       bool
	auto       bool
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "taskline",
		Short: "Plan tasks on a draggable day, week and month timeline",
		Long: `taskline renders tasks as bars on a daily, weekly or monthly timeline.
Drag the clock to see what is due, drag a bar's edges to move or resize it,
and let auto-progress fill in how far along each task should be.

Without a terminal on stdout it prints the current window like "taskline list".`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if !isTerminal() {
				return runList(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, listOptions{output: outputTable})
			}
			return runTUI(cmd.Context(), cfg)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default .taskline.yaml in the working or home directory)")
	cmd.PersistentFlags().StringVar(&opts.view, "view", "", "view mode: daily, weekly or monthly")
	cmd.PersistentFlags().BoolVar(&opts.demo, "demo", false, "use the in-memory sample board")
	cmd.Flags().BoolVar(&opts.auto, "auto", false, "start with auto-progress enabled")

	cmd.AddCommand(newListCmd(opts), newVersionCmd())
	return cmd
}

// load reads the config and applies flags set on the command line.
func (o *rootOptions) load(cmd *cobra.Command) (update.RuntimeConfig, error) {
	cfg, err := update.LoadRuntimeConfig(o.configFile)
	if err != nil {
		return cfg, err
	}
	if o.view != "" {
		mode, err := model.ParseViewMode(o.view)
		if err != nil {
			return cfg, err
		}
		cfg.View = mode
	}
	if o.demo {
		cfg.Demo = true
	}
	if f := cmd.Flags().Lookup("auto"); f != nil && f.Changed {
		cfg.AutoProgress = o.auto
	}
	return cfg, nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
