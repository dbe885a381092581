package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/five82/dockbar/internal/apps"
	"github.com/five82/dockbar/internal/config"
	"github.com/five82/dockbar/internal/dock"
	"github.com/five82/dockbar/internal/logging"
	"github.com/five82/dockbar/internal/motion"
	"github.com/five82/dockbar/internal/prefs"
	"github.com/five82/dockbar/internal/state"
	"github.com/five82/dockbar/internal/ui"
)

// Options configure the dockbar application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/dockbar/prefs.toml
	Debug      bool   // force debug logging
	Dev        bool   // invariant violations become errors
}

// Run boots the dockbar TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := logging.Setup(logging.Options{
		Path:  cfg.LogFile,
		Level: cfg.LogLevel,
		Debug: opts.Debug,
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closer.Close() }()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("loading preferences failed", "err", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	deps := wire(ctx, cfg, opts, logger)
	logger.Info("dockbar starting",
		"config", cfg.Path,
		"items", len(cfg.Items),
		"anchors", cfg.Anchors,
		"dev", opts.Dev,
	)

	err = ui.Run(ui.Options{
		Context:    ctx,
		Engine:     deps.engine,
		Driver:     deps.driver,
		Scheduler:  deps.sched,
		Catalog:    deps.catalog,
		Logger:     logger,
		SlotWidth:  cfg.SlotWidth,
		LogPath:    cfg.LogFile,
		ThemeName:  userPrefs.Theme,
		ShowLabels: userPrefs.ShowLabels,
		PrefsPath:  opts.PrefsPath,
	})

	// Launched commands are bound to ctx; stop them and wait for their
	// exits to be recorded before the log file closes.
	cancel()
	deps.catalog.Wait()
	logger.Info("dockbar stopped", "order", fmt.Sprint(deps.engine.Order()))
	return err
}

type components struct {
	sched   *ui.Scheduler
	catalog *apps.Catalog
	driver  *motion.Driver
	engine  *dock.Engine
}

// wire builds the dock engine and everything it talks to. The engine and
// the motion driver share the UI scheduler so their timers fire inside the
// Bubble Tea update loop.
func wire(ctx context.Context, cfg config.Config, opts Options, logger *slog.Logger) components {
	sched := ui.NewScheduler()
	catalog := apps.New(cfg.Items, apps.Options{
		Context: ctx,
		Store:   &state.Store{},
		Logger:  logger,
	})
	driver := motion.New(motion.Options{
		Duration:  cfg.Transition,
		Scheduler: sched,
	})
	engine := dock.New(catalog.IDs(), dock.Options{
		Anchors:   cfg.Anchors,
		Debounce:  cfg.Debounce,
		Scheduler: sched,
		Animator:  driver,
		Shell:     catalog,
		Logger:    logger,
		Strict:    opts.Dev,
	})
	return components{sched: sched, catalog: catalog, driver: driver, engine: engine}
}
