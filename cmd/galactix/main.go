// galactix is a terminal side-scroller: fly a jetpack cat through twelve
// levels of pipes.
//
// Usage:
//
//	galactix                  - Play
//	galactix play             - Play
//	galactix levels           - Show and validate the level table
//	galactix levels --watch   - Re-check the table whenever the config file changes
//	galactix levels --defaults - Print the built-in config as a starting point
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible obstacles
//	--config <path>     - Use a custom YAML config
//	--log-file <path>   - Write logs to a file (default: no logs)
//	--log-level <level> - debug, info, warn or error (default: info)
//	--debug             - Debug logging and strict invariant checks
//	--mute              - Start with music muted
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
	flagDebug    bool
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "galactix",
	Short: "Galactix Cat - a jetpack cat in your terminal",
	Long: `Galactix Cat is a terminal side-scroller. Keep the cat in the air and
fly through the gaps between pipes. Every level is faster and tighter;
survive all of them to complete the mission.

Available commands:
  play     - Start the game (default)
  levels   - Show and validate the level table

Examples:
  galactix
  galactix --seed 42 --mute
  galactix --config ./my-galactix.yaml
  galactix levels --watch`,
	RunE: runPlay,
	// main prints the error once; usage is noise after a runtime failure.
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging and strict invariant checks")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with music muted")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
}

// newLogger builds the logger from the global flags. The terminal belongs to
// the game, so without --log-file nothing is logged.
func newLogger(stderr bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	if flagDebug {
		level = log.DebugLevel
	}

	var (
		w       io.Writer = io.Discard
		cleanup           = func() {}
	)
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		cleanup = func() { _ = f.Close() }
	case stderr:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "galactix",
		Level:           level,
	})
	return logger, cleanup, nil
}
