package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/galactix/internal/audio"
	"github.com/vovakirdan/galactix/internal/config"
	"github.com/vovakirdan/galactix/internal/core"
	"github.com/vovakirdan/galactix/internal/game"
	"github.com/vovakirdan/galactix/internal/platform/tui"
	"github.com/vovakirdan/galactix/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Galactix Cat",
	Long: `Start the game.

Controls:
  Space/Up/W - Jump (also starts and restarts a run)
  R/Enter    - Restart after a crash or victory
  M          - Toggle music
  Tab        - Run history (outside a run)
  Q/Ctrl+C   - Quit

Examples:
  galactix play
  galactix play --seed 42
  galactix play --config ./my-galactix.yaml --log-file galactix.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	g := game.New(cfg, game.WithLogger(logger), game.WithStrictInvariants(flagDebug))
	// Reset keeps the flag, so it survives the frontend's own reset.
	g.Session().SetMuted(flagMute)

	// Run history lives for this process only.
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	player := audio.New(logger)
	opts := tui.Options{Store: store, Logger: logger}
	if player.Init() == nil {
		defer player.Close()
		opts.Audio = player
	}

	logger.Info("starting",
		"seed", rc.Seed,
		"fps", rc.TickRate,
		"levels", cfg.Table().Max(),
		"audio", player.Enabled(),
	)
	if err := tui.Run(g, rc, opts); err != nil {
		return err
	}

	if store != nil {
		if high, err := store.HighScore(); err == nil {
			logger.Info("session ended", "high_score", high)
		}
	}
	return nil
}
