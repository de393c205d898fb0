// Package world owns the live enemy collection: it runs the spawn timer, the lazy
// cleanup of culled enemies, depth ordering and the per-frame update and draw passes.
package world

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/plus3/spawnfield/ecs"
	"github.com/plus3/spawnfield/internal/enemy"
	"go.uber.org/zap"
)

var (
	ErrBadBounds     = errors.New("world bounds must be positive")
	ErrBadInterval   = errors.New("spawn interval must be positive")
	ErrEmptyVariants = errors.New("no enemy variants configured")
	ErrBadWeights    = errors.New("variant weights must be non-negative and not all zero")
)

// Bounds is the read-only surface size handed to enemies at construction
type Bounds = enemy.Bounds

// Variant is one spawnable enemy and its relative chance of being picked
type Variant struct {
	Template enemy.Template
	Weight   float64
}

type Options struct {
	Bounds        Bounds
	SpawnInterval float64 // ms between spawns
	Variants      []Variant
	Rand          *rand.Rand  // nil seeds from the runtime source
	Logger        *zap.Logger // nil discards
}

// Stats summarises a world for overlays and reports
type Stats struct {
	Spawned   int
	Culled    int
	Live      int
	Scheduler *ecs.SchedulerStats
	Storage   ecs.StorageStats
}

// World is single-threaded; Update and Draw must not run concurrently.
type World struct {
	bounds   Bounds
	interval float64
	timer    float64
	variants []Variant
	total    float64

	rng *rand.Rand
	log *zap.Logger

	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	drawables *ecs.View[enemy.Drawable]
	info      *ecs.View[inspect]

	entities []ecs.EntityId
	spawned  int
	culled   int
}

// New validates opts and returns an empty world
func New(opts Options) (*World, error) {
	if opts.Bounds.Width <= 0 || opts.Bounds.Height <= 0 {
		return nil, fmt.Errorf("%w: %vx%v", ErrBadBounds, opts.Bounds.Width, opts.Bounds.Height)
	}
	if opts.SpawnInterval <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadInterval, opts.SpawnInterval)
	}
	if len(opts.Variants) == 0 {
		return nil, ErrEmptyVariants
	}

	total := 0.0
	for i, v := range opts.Variants {
		if v.Weight < 0 {
			return nil, fmt.Errorf("%w: variant %d has weight %v", ErrBadWeights, i, v.Weight)
		}
		if err := v.Template.Validate(); err != nil {
			return nil, fmt.Errorf("variant %d: %w", i, err)
		}
		total += v.Weight
	}
	if total == 0 {
		return nil, ErrBadWeights
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	registry := ecs.NewComponentRegistry()
	enemy.Register(registry)
	storage := ecs.NewStorage(registry)
	scheduler := ecs.NewScheduler(storage)
	for _, system := range enemy.Systems() {
		scheduler.Register(system)
	}

	return &World{
		bounds:    opts.Bounds,
		interval:  opts.SpawnInterval,
		variants:  slices.Clone(opts.Variants),
		total:     total,
		rng:       rng,
		log:       log,
		storage:   storage,
		scheduler: scheduler,
		drawables: ecs.NewView[enemy.Drawable](storage),
		info:      ecs.NewView[inspect](storage),
	}, nil
}

// Update advances the world by dt milliseconds. Once the spawn timer passes the
// interval, culled enemies are dropped and one new enemy is added before the
// enemy systems run, so the newcomer moves in the same frame.
func (w *World) Update(dt float64) {
	w.timer += dt
	if w.timer > w.interval {
		w.cleanup()
		w.AddNewEnemy()
		w.timer = 0
	}
	w.scheduler.Once(dt)
}

// AddNewEnemy spawns one enemy of a weighted-random variant and restores depth order
func (w *World) AddNewEnemy() ecs.EntityId {
	v := w.pick()
	id := w.insert(v.Template.Build(w.bounds, w.rng)...)
	w.spawned++
	w.log.Debug("enemy spawned",
		zap.Stringer("kind", v.Template.Kind),
		zap.Int("live", len(w.entities)),
	)
	return id
}

func (w *World) insert(components ...any) ecs.EntityId {
	id := w.storage.Spawn(components...)
	w.entities = append(w.entities, id)
	w.sortByDepth()
	return id
}

// pick walks the cumulative weights; equal weights give a uniform choice
func (w *World) pick() Variant {
	r := w.rng.Float64() * w.total
	for _, v := range w.variants {
		if r < v.Weight {
			return v
		}
		r -= v.Weight
	}
	for i := len(w.variants) - 1; i >= 0; i-- {
		if w.variants[i].Weight > 0 {
			return w.variants[i]
		}
	}
	return w.variants[0]
}

// cleanup drops every marked enemy, keeping the order of the survivors
func (w *World) cleanup() {
	before := len(w.entities)
	w.entities = slices.DeleteFunc(w.entities, func(id ecs.EntityId) bool {
		cull := ecs.ReadComponent[enemy.Cull](w.storage, id)
		if cull == nil || !cull.Marked {
			return false
		}
		w.storage.Delete(id)
		return true
	})

	if removed := before - len(w.entities); removed > 0 {
		w.culled += removed
		w.log.Debug("enemies culled", zap.Int("removed", removed), zap.Int("live", len(w.entities)))
	}
}

// sortByDepth orders enemies by ascending Y so lower enemies paint on top.
// Ties keep no particular order.
func (w *World) sortByDepth() {
	slices.SortFunc(w.entities, func(a, b ecs.EntityId) int {
		return cmp.Compare(w.depth(a), w.depth(b))
	})
}

func (w *World) depth(id ecs.EntityId) float64 {
	if body := ecs.ReadComponent[enemy.Body](w.storage, id); body != nil {
		return body.Y
	}
	return 0
}

// Len returns the number of enemies in the collection, culled ones included
func (w *World) Len() int {
	return len(w.entities)
}

// Entities returns the collection in draw order
func (w *World) Entities() []ecs.EntityId {
	return slices.Clone(w.entities)
}

// SpawnTimer returns the milliseconds accumulated toward the next spawn
func (w *World) SpawnTimer() float64 {
	return w.timer
}

// SpawnInterval returns the configured spawn interval in ms
func (w *World) SpawnInterval() float64 {
	return w.interval
}

// Bounds returns the surface size enemies are placed against
func (w *World) Bounds() Bounds {
	return w.bounds
}

func (w *World) Storage() *ecs.Storage {
	return w.storage
}

func (w *World) Scheduler() *ecs.Scheduler {
	return w.scheduler
}

func (w *World) Stats() Stats {
	return Stats{
		Spawned:   w.spawned,
		Culled:    w.culled,
		Live:      len(w.entities),
		Scheduler: w.scheduler.GetStats(),
		Storage:   w.storage.CollectStats(),
	}
}
