// flappy-gui runs the same game in a desktop window.
//
// Usage:
//
//	flappy-gui [--config path] [--seed n] [--db path] [--store sqlite|gdata] [--scale f] [--mute]
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// High score backends for --store.
const (
	storeSQLite = "sqlite"
	storeGdata  = "gdata"
)

const gdataAppName = "tui_flappy"

var (
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagStore    string
	flagScale    float64
	flagMute     bool
	flagVolume   float64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy-gui",
	Short: "Flappy Bird in a window",
	Long: `Flappy Bird in a desktop window.

Controls:
  Space/Enter/Up  - Start, flap, restart
  Click/Touch     - Flap
  P/Esc           - Pause
  Q               - Quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(_ *cobra.Command, _ []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.arcade/flappy.db", "Path to scores database")
	rootCmd.Flags().StringVar(&flagStore, "store", storeSQLite, "High score backend: sqlite or gdata")
	rootCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.Flags().Float64Var(&flagVolume, "volume", 0.3, "Sound volume (0-1)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "flappy-gui",
		Level:           level,
	})

	if flagScale <= 0 {
		return errors.New("--scale must be positive")
	}

	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := []flappy.Option{
		flappy.WithRand(flappy.NewRand(seed)),
		flappy.WithLogger(logger),
	}

	history, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
	} else {
		defer history.Close()
	}

	switch flagStore {
	case storeSQLite:
		if history != nil {
			opts = append(opts, flappy.WithStore(history))
		}
	case storeGdata:
		g, err := storage.OpenGdata(gdataAppName)
		if err != nil {
			logger.Warn("could not open game data directory", "err", err)
		} else {
			opts = append(opts, flappy.WithStore(g))
		}
	default:
		return fmt.Errorf("unknown --store %q (want %s or %s)", flagStore, storeSQLite, storeGdata)
	}

	var snd *cueSounds
	if !flagMute {
		snd = newCueSounds(flagVolume)
		opts = append(opts, flappy.WithAudio(snd))
	}

	game := flappy.New(cfg, opts...)
	w := &window{
		game:   game,
		logger: logger,
		font:   loadFont(logger),
	}
	if history != nil {
		w.history = history
	}

	ebiten.SetWindowSize(int(cfg.Field.Width*flagScale), int(cfg.Field.Height*flagScale))
	ebiten.SetWindowTitle("Flappy Bird")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting", "seed", seed, "store", flagStore)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
