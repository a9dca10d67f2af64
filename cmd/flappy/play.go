package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/sound"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagConfig string
	flagWatch  bool
	flagMute   bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Space/Enter/Up  - Start, flap, restart
  Left click      - Flap
  P/Esc           - Pause
  Ctrl+S          - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C        - Quit

Config is read from --config, ~/.arcade/configs/flappy.yaml,
./configs/flappy.yaml, then the built-in defaults. With --watch, edits to
the --config file are picked up at the next restart.

Examples:
  flappy play
  flappy play --mute
  flappy play --config ./my-flappy.yaml --watch
  flappy play --seed 42 --log /tmp/flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config when it changes")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.3, "Sound volume (0-1)")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	if flagWatch && flagConfig == "" {
		return errors.New("--watch needs --config")
	}

	// The TUI owns the terminal, so logs go nowhere unless --log is set.
	logger, closeLog, err := newLogger(io.Discard, "flappy")
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	st, err := openStores(logger)
	if err != nil {
		return err
	}
	defer st.Close()

	opts := st.gameOptions(logger)
	if !flagMute {
		player, err := sound.NewPlayer(flagVolume, logger)
		if err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			opts = append(opts, flappy.WithAudio(player))
		}
	}

	var watcher *config.Watcher
	if flagWatch {
		watcher, err = config.WatchFlappy(flagConfig)
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	var history tui.ScoreHistory
	if st.history != nil {
		history = st.history
	}

	game := flappy.New(gameCfg, opts...)
	logger.Info("starting", "store", flagStore, "seed", flagSeed, "fps", flagFPS)

	if err := tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		History: history,
		Watcher: watcher,
		Logger:  logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
