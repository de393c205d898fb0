package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/spawnfield/ecs/debugui"
	debugui_ebiten "github.com/plus3/spawnfield/ecs/debugui/ebiten"
	"github.com/plus3/spawnfield/internal/clock"
	"github.com/plus3/spawnfield/internal/config"
	"github.com/plus3/spawnfield/internal/enemy"
	"github.com/plus3/spawnfield/internal/logging"
	"github.com/plus3/spawnfield/internal/world"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "spawnfield:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Optional YAML or TOML config file.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	seed := flag.Uint64("seed", 0, "Random seed; overrides spawner.seed when non-zero.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Spawner.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	var backend *debugui_ebiten.ImguiBackend
	if *debug {
		backend = debugui_ebiten.New(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	} else {
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
		ebiten.SetWindowTitle(cfg.Window.Title)
	}

	var rng *rand.Rand
	if s := cfg.Spawner.Seed; s != 0 {
		rng = rand.New(rand.NewPCG(s, s))
	}
	opts, err := world.OptionsFromConfig(cfg, enemy.Sheets(), rng, log.Named("world"))
	if err != nil {
		return err
	}
	w, err := world.New(opts)
	if err != nil {
		return err
	}

	game := newGame(w, clock.New(0, log.Named("clock")), cfg.Window)
	if backend != nil {
		game.backend = backend
		game.overlay = debugui.NewOverlay(w.Storage(), w.Scheduler())
		addSpawnerWindows(game)
	}

	log.Info("starting",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Float64("spawn_interval_ms", cfg.Spawner.IntervalMs),
		zap.Bool("debug", *debug),
	)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	log.Info("stopped", zap.Int("spawned", w.Stats().Spawned))
	return nil
}
