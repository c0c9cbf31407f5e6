package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/galactix/internal/config"
)

var (
	flagWatch    bool
	flagDefaults bool
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show and validate the level table",
	Long: `Load the configuration, validate it and print the level table.

With --watch the configuration file is re-read and re-checked every time
it is saved, which is handy while tuning levels. --defaults prints the
built-in configuration to use as a starting point for a custom file.

Examples:
  galactix levels
  galactix levels --config ./my-galactix.yaml --watch
  galactix levels --defaults > ~/.galactix/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagWatch, "watch", false, "Re-check the table whenever the config file changes")
	levelsCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in config YAML and exit")
}

var (
	levelsTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#facc15"))
	levelsHeadStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#94a3b8"))
	levelsErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171"))
	levelsOKStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80"))
)

func runLevels(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	path, err := config.Resolve(flagConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	printLevels(out, sourceName(path), cfg)

	if !flagWatch {
		return nil
	}
	if path == "" {
		return fmt.Errorf("nothing to watch: no config file found, using built-in defaults")
	}
	return watchLevels(cmd.Context(), out, path)
}

// watchLevels re-prints the table after every save until interrupted.
// A broken file is reported and the previous table stays in effect.
func watchLevels(ctx context.Context, out io.Writer, path string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := config.NewWatcher(path)
	if err != nil {
		return fmt.Errorf("cannot watch %s: %w", path, err)
	}
	defer w.Close()

	fmt.Fprintf(out, "\nWatching %s (Ctrl+C to stop)\n", path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case p, ok := <-w.Events:
			if !ok {
				return nil
			}
			cfg, err := config.LoadFile(p)
			if err != nil {
				logger.Warn("config rejected", "path", p, "error", err)
				fmt.Fprintln(out, levelsErrStyle.Render(err.Error()))
				continue
			}
			logger.Info("config reloaded", "path", p, "levels", cfg.Table().Max())
			printLevels(out, p, cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch failed", "error", err)
		}
	}
}

func sourceName(path string) string {
	if path == "" {
		return "built-in defaults"
	}
	return path
}

// printLevels writes the table with a swatch of every level's color.
// cfg has already passed validation.
func printLevels(out io.Writer, source string, cfg config.Config) {
	table := cfg.Table()

	fmt.Fprintln(out)
	fmt.Fprintln(out, levelsTitleStyle.Render(fmt.Sprintf("Levels - %s", source)))
	fmt.Fprintln(out)
	fmt.Fprintln(out, levelsHeadStyle.Render(fmt.Sprintf("  %-5s  %-6s  %-5s  %-7s  %-6s  %s", "LEVEL", "SPEED", "GAP", "OPENING", "MOVING", "COLOR")))
	fmt.Fprintln(out, levelsHeadStyle.Render("  "+strings.Repeat("-", 48)))

	for _, l := range table.Levels() {
		moving := "no"
		if l.Moving {
			moving = "yes"
		}
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(l.Color)).Render("    ")
		fmt.Fprintf(out, "  %-5d  %-6.1f  %-5.0f  %-7.0f  %-6s  %s %s\n",
			l.Number, l.Speed, l.ObstacleGap, l.OpeningSize, moving, swatch, l.Color)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, levelsOKStyle.Render(fmt.Sprintf(
		"OK: %d levels, %d pairs per level, 1 point per %d ticks",
		table.Max(), cfg.Progression.PairsPerLevel, cfg.Progression.TicksPerPoint)))
}
