package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/spawnfield/internal/config"
	"github.com/plus3/spawnfield/internal/enemy"
	"github.com/plus3/spawnfield/internal/logging"
	"github.com/plus3/spawnfield/internal/render"
	"github.com/plus3/spawnfield/internal/world"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "spawn-stress:", err)
		os.Exit(1)
	}
}

func run() error {
	duration := flag.Duration("duration", 10*time.Second, "Wall time the run should last.")
	step := flag.Float64("step", 1000.0/60.0, "Simulated milliseconds per frame.")
	configPath := flag.String("config", "", "Optional YAML or TOML config file.")
	seed := flag.Uint64("seed", 1, "Random seed for variant choice and placement.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	rng := rand.New(rand.NewPCG(*seed, *seed))
	opts, err := world.OptionsFromConfig(cfg, enemy.BlankSheets(), rng, log.Named("world"))
	if err != nil {
		return err
	}
	w, err := world.New(opts)
	if err != nil {
		return err
	}

	report := &Report{
		Duration:       *duration,
		Step:           *step,
		SpawnInterval:  cfg.Spawner.IntervalMs,
		Variants:       len(cfg.Spawner.Variants),
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info("running headless world", zap.Duration("duration", *duration), zap.Float64("step_ms", *step))
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			w.Update(*step)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))

			drawStart := time.Now()
			w.Draw(render.Discard)
			report.DrawTime.Samples = append(report.DrawTime.Samples, time.Since(drawStart))

			report.TotalFrames++
			report.PeakLive = max(report.PeakLive, w.Len())
		}
	}

	report.TotalTime = time.Since(startTime)
	report.SimulatedTime = time.Duration(float64(report.TotalFrames) * *step * float64(time.Millisecond))
	report.UpdateTime.Finalize()
	report.DrawTime.Finalize()
	report.World = w.Stats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info("run finished",
		zap.Int64("frames", report.TotalFrames),
		zap.Int("spawned", report.World.Spawned),
		zap.Int("culled", report.World.Culled),
	)

	return report.Generate(os.Stdout)
}
