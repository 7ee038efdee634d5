package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/drillz/internal/app"
	"github.com/abhisek/drillz/internal/config"
	"github.com/abhisek/drillz/internal/logging"
	"github.com/abhisek/drillz/internal/records"
	"github.com/abhisek/drillz/internal/screen"
	"github.com/abhisek/drillz/internal/session"
	"github.com/abhisek/drillz/internal/store"
)

// runtime holds what every command opens at startup.
type runtime struct {
	cfg     *config.Config
	log     *slog.Logger
	backend store.Backend
	book    *records.Book
	closers []io.Closer
}

// open loads config, the log file and the store. A store that cannot be
// opened is replaced by an in-memory one so the games still run.
func open(cmd *cobra.Command) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	rt := &runtime{cfg: cfg, log: logging.Discard()}

	if p, err := cfg.LogPath(); err != nil {
		fmt.Fprintln(os.Stderr, "Log file not configured:", err)
	} else if log, c, err := logging.OpenFile(p, cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "Log file not configured:", err)
	} else {
		rt.log = log
		rt.closers = append(rt.closers, c)
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err == nil {
		var st *store.Store
		if st, err = store.Open(dbPath); err == nil {
			rt.backend = st
			rt.log.Info("store opened", "path", dbPath)
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Database not available:", err)
		fmt.Fprintln(os.Stderr, "Records will not be kept after exit.")
		rt.log.Warn("using in-memory store", "err", err)
		rt.backend = store.NewMemory()
	}
	rt.closers = append(rt.closers, rt.backend)
	rt.book = records.NewBook(rt.backend, rt.log)
	return rt, nil
}

// deps builds the screen dependencies from config.
func (rt *runtime) deps() screen.Deps {
	seed := rt.cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return screen.Deps{
		Game: session.Options{
			RNG:  rand.New(rand.NewPCG(seed, seed>>1)),
			Book: rt.book,
			Log:  rt.log,
		},
		Tick: rt.cfg.Tick,
	}
}

// Close releases the store before the log file.
func (rt *runtime) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		rt.closers[i].Close()
	}
}

// runApp opens the runtime and launches the TUI, optionally straight into
// a game.
func runApp(cmd *cobra.Command, initial func(screen.Deps) screen.Screen) error {
	rt, err := open(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	rt.log.Info("starting", "version", version)
	return app.Run(app.Options{Deps: rt.deps(), Initial: initial})
}
