package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snakeloop/internal/config"
	"github.com/vovakirdan/snakeloop/internal/core"
	"github.com/vovakirdan/snakeloop/internal/platform/tui"
)

var (
	flagFrames   int
	flagBoundary string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the loop in this terminal",
	Long: `Run the frame loop in this terminal until the frame limit is reached.

Controls:
  Arrows/hjkl  - Move (held keys move once per frame)
                 Terminals send no key release: a press counts as held for
                 input.repeat_delay_ms (700), then until auto-repeat stops
                 for input.hold_timeout_ms (150). A tap moves several cells.
  Space        - Release all held keys
  S / X        - Start / Stop (same as the on-screen buttons)
  Q/Ctrl+C     - Quit

Boundary options:
  none   - Head index is never checked (default)
  clamp  - Head stops at the board edge
  wrap   - Head wraps around the board

Examples:
  snakeloop play
  snakeloop play --fps 30
  snakeloop play --frames 600 --boundary clamp`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFrames, "frames", 0, "Frame limit (0 = from config)")
	playCmd.Flags().StringVar(&flagBoundary, "boundary", "", "Boundary policy: none, clamp, wrap")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyPlayFlags(&cfg)

	logFile, err := openLogFile(flagLogPath)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	game, err := tui.NewGame(cfg, logger)
	if err != nil {
		return err
	}

	rc := hostConfig(cfg)
	if !game.Fits(rc) {
		w, h := game.RequiredSize()
		return fmt.Errorf("terminal too small: need %dx%d, have %dx%d", w, h, rc.ScreenW, rc.ScreenH)
	}

	logger.Info("play", "width", cfg.World.Width, "frames", cfg.Loop.FrameLimit,
		"tick_rate", rc.TickRate, "boundary", cfg.World.Boundary)

	if err := tui.Run(game, logger); err != nil {
		return fmt.Errorf("running loop: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), game.Status.Text())
	return nil
}

// applyPlayFlags overrides config values set on the command line.
func applyPlayFlags(cfg *config.Config) {
	if flagFrames > 0 {
		cfg.Loop.FrameLimit = flagFrames
	}
	if flagBoundary != "" {
		cfg.World.Boundary = flagBoundary
	}
}

// hostConfig describes this terminal.
func hostConfig(cfg config.Config) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickRate = cfg.Loop.TickRate
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	return rc
}
