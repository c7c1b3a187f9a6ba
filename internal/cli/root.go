package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/me/noblock/internal/config"
	"github.com/me/noblock/internal/logging"
	"github.com/spf13/cobra"
)

var (
	flagConfig     string
	flagInterval   time.Duration
	flagIterations int
	flagDebug      bool
	flagLogLevel   string
	flagLogFormat  string
)

// NewRootCmd creates the root cobra command for the noblock binary.
// Without a subcommand it runs the scheduler.
func NewRootCmd() *cobra.Command {
	defaults := config.DefaultRunConfig()

	root := &cobra.Command{
		Use:   "noblock",
		Short: "Cooperative round-robin task scheduler",
		Long: `noblock runs a fixed set of non-blocking tasks one step at a time,
in strict rotation, pausing for a fixed interval between steps.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			return runScheduler(cmd.Context(), cfg, cmd.OutOrStdout(), logger)
		},
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", defaults.LogLevel, "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", defaults.LogFormat, "Log format (text, json)")

	root.Flags().DurationVar(&flagInterval, "interval", defaults.Interval, "Pause between task steps")
	root.Flags().IntVar(&flagIterations, "iterations", defaults.Iterations, "Number of steps to run (0 runs until interrupted)")

	root.AddCommand(newTasksCmd())

	return root
}

// setup resolves the run configuration (defaults, then config file, then
// explicit flags) and builds the logger. Logs go to stderr; stdout is
// reserved for task output.
func setup(cmd *cobra.Command) (config.RunConfig, *slog.Logger, error) {
	cfg := config.DefaultRunConfig()
	if flagConfig != "" {
		loaded, err := config.LoadFile(flagConfig, cfg)
		if err != nil {
			return cfg, nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("interval") {
		cfg.Interval = flagInterval
	}
	if flags.Changed("iterations") {
		cfg.Iterations = flagIterations
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = flagLogFormat
	}
	if flagDebug {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return cfg, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.NewLogger(cmd.ErrOrStderr(), level, cfg.LogFormat).
		With("run_id", uuid.NewString())
	return cfg, logger, nil
}
