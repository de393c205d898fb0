package world

import (
	"fmt"
	"math/rand/v2"

	"github.com/plus3/spawnfield/internal/config"
	"github.com/plus3/spawnfield/internal/enemy"
	"github.com/plus3/spawnfield/internal/sprite"
	"go.uber.org/zap"
)

// OptionsFromConfig resolves the configured variant names against sheets.
// A zero FrameIntervalMs uses enemy.DefaultFrameInterval.
func OptionsFromConfig(cfg *config.Config, sheets map[enemy.Kind]*sprite.Sheet, rng *rand.Rand, log *zap.Logger) (Options, error) {
	opts := Options{
		Bounds: Bounds{
			Width:  float64(cfg.Window.Width),
			Height: float64(cfg.Window.Height),
		},
		SpawnInterval: cfg.Spawner.IntervalMs,
		Rand:          rng,
		Logger:        log,
	}

	for _, v := range cfg.Spawner.Variants {
		kind, err := enemy.ParseKind(v.Name)
		if err != nil {
			return Options{}, err
		}
		sheet, ok := sheets[kind]
		if !ok {
			return Options{}, fmt.Errorf("%s: no sprite sheet loaded", kind)
		}
		interval := v.FrameIntervalMs
		if interval == 0 {
			interval = enemy.DefaultFrameInterval
		}
		opts.Variants = append(opts.Variants, Variant{
			Template: enemy.Template{Kind: kind, Sheet: sheet, FrameInterval: interval},
			Weight:   v.Weight,
		})
	}
	return opts, nil
}
