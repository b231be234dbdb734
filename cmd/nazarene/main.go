package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/nazarene/audio"
	"github.com/lixenwraith/nazarene/campaign"
	"github.com/lixenwraith/nazarene/config"
	"github.com/lixenwraith/nazarene/input"
	"github.com/lixenwraith/nazarene/logging"
	"github.com/lixenwraith/nazarene/parameter"
	"github.com/lixenwraith/nazarene/render"
	"github.com/lixenwraith/nazarene/status"
	"github.com/lixenwraith/nazarene/store"
	"github.com/lixenwraith/nazarene/world"
)

const logDir = "logs"

var (
	configFlag = flag.String("config", "", "Arena TOML file overlaid on the built-in arena")
	debugFlag  = flag.Bool("debug", false, "Enable debug logging to logs/nazarene.log")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "nazarene: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *debugFlag {
		cfg.Runtime.Debug = true
		if cfg.Runtime.LogFile == "" {
			cfg.Runtime.LogFile = filepath.Join(logDir, "nazarene.log")
		}
	}

	log, err := logging.New(logging.Options{File: cfg.Runtime.LogFile, Debug: cfg.Runtime.Debug})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// Saving is optional; the arena reports failed saves through its hint
	var snapshots world.SnapshotStore
	db, err := store.Open(cfg.Runtime.DBPath)
	if err != nil {
		log.Warn("save store unavailable", zap.String("path", cfg.Runtime.DBPath), zap.Error(err))
	} else {
		snapshots = db
		defer db.Close()
	}

	presenter := audio.NewPresenter(audio.Options{Mute: cfg.Runtime.Mute, Logger: log.Named("audio")})
	if err := presenter.Initialize(); err != nil {
		log.Warn("audio initialization failed, continuing without audio", zap.Error(err))
	}
	defer presenter.Close()

	profiles, err := cfg.Profiles()
	if err != nil {
		return err
	}
	registry := status.NewRegistry()
	arena := world.New(world.Config{
		PlayerPosition: cfg.Player.Position,
		PlayerFacing:   cfg.Player.Facing,
		Campaign:       campaign.New(cfg.Regions, log.Named("campaign")),
		Store:          snapshots,
		Presenter:      presenter,
		Metrics:        status.NewCombatMetrics(registry),
		Profiles:       profiles,
		Seed:           cfg.Runtime.Seed,
		Logger:         log,
	})
	cfg.Populate(arena)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Restore the terminal even if the game crashes
	defer func() {
		r := recover()
		screen.Fini()
		if r != nil {
			fmt.Fprintf(os.Stderr, "\nNAZARENE CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	log.Info("session started",
		zap.Int("enemies", len(arena.Enemies())),
		zap.Int("prayer_sites", len(arena.PrayerSites())),
		zap.Uint64("seed", cfg.Runtime.Seed))
	loop(screen, arena, presenter, log)
	log.Info("session ended", zap.Int64("frames", arena.Frame()), zap.Any("metrics", registry.Snapshot()))
	return nil
}

// loop runs the fixed-step simulation and redraws the HUD until quit
func loop(screen tcell.Screen, arena *world.Arena, presenter *audio.Presenter, log *zap.Logger) {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	handler := input.NewHandler(nil)
	hud := render.NewHUD(screen)
	ticker := time.NewTicker(parameter.GameUpdateInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			intent, bound := handler.HandleEvent(ev)
			if !bound {
				continue
			}
			if intent.Type == input.IntentResize {
				screen.Sync()
				continue
			}
			if !input.Dispatch(intent, arena.Player(), arena, log) {
				return
			}

		case now := <-ticker.C:
			if stop, ok := handler.Idle(); ok {
				input.Dispatch(stop, arena.Player(), arena, log)
			}
			dt := min(now.Sub(last), parameter.MaxTickDelta)
			last = now
			arena.Tick(dt)

			var overlay *render.Overlay
			if f, ok := presenter.CurrentFlash(); ok {
				overlay = &render.Overlay{Effect: f.Effect, At: f.At}
			}
			hud.Draw(arena, overlay)
			screen.Show()
		}
	}
}
