package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// High score backends for --store.
const (
	storeSQLite = "sqlite"
	storeGdata  = "gdata"
)

// gdataAppName names the per-user data directory used by the gdata backend.
const gdataAppName = "tui_flappy"

// newLogger builds the logger from --log and --log-level. fallback is used
// when no log file is given. The returned func closes the file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closeFn := fallback, func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// stores bundles the high score backend and the score history.
// Either may be nil; the game runs without them.
type stores struct {
	highScore flappy.ScoreStore
	history   *storage.Store
}

// openStores opens the backends chosen by --store and --db. Failures are
// logged and the game continues without the failed backend.
func openStores(logger *log.Logger) (stores, error) {
	var s stores

	history, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
	} else {
		s.history = history
	}

	switch flagStore {
	case storeSQLite:
		if s.history != nil {
			s.highScore = s.history
		}
	case storeGdata:
		g, err := storage.OpenGdata(gdataAppName)
		if err != nil {
			logger.Warn("could not open game data directory", "err", err)
		} else {
			s.highScore = g
		}
	default:
		s.Close()
		return stores{}, fmt.Errorf("unknown --store %q (want %s or %s)", flagStore, storeSQLite, storeGdata)
	}

	return s, nil
}

// gameOptions returns the options every game started by this binary shares.
func (s stores) gameOptions(logger *log.Logger) []flappy.Option {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := []flappy.Option{
		flappy.WithRand(flappy.NewRand(seed)),
		flappy.WithLogger(logger),
	}
	if s.highScore != nil {
		opts = append(opts, flappy.WithStore(s.highScore))
	}
	return opts
}

// Close closes the score database.
func (s stores) Close() {
	if s.history != nil {
		s.history.Close()
	}
}
