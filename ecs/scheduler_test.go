package ecs_test

import (
	"testing"

	"github.com/plus3/spawnfield/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MovementSystem struct {
	Entities     ecs.Query[movers]
	ExecuteCount int
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	for item := range s.Entities.Values() {
		item.X += item.DX * frame.DeltaTime
		item.Y += item.DY * frame.DeltaTime
	}
}

type HealthSystem struct {
	Entities    ecs.Query[struct{ *Health }]
	TotalHealth int
}

func (s *HealthSystem) Execute(frame *ecs.UpdateFrame) {
	s.TotalHealth = 0
	for item := range s.Entities.Values() {
		s.TotalHealth += item.Current
	}
}

type Gravity struct {
	G float64
}

type GravitySystem struct {
	Entities ecs.Query[movers]
	Gravity  ecs.Singleton[Gravity]
}

func (s *GravitySystem) Execute(frame *ecs.UpdateFrame) {
	g := s.Gravity.Get()
	for item := range s.Entities.Values() {
		item.DY += g.G * frame.DeltaTime
	}
}

type spawnOnceSystem struct {
	done bool
}

func (s *spawnOnceSystem) Execute(frame *ecs.UpdateFrame) {
	if s.done {
		return
	}
	s.done = true
	frame.Commands.Spawn(Position{}, Velocity{DX: 1})
}

func TestSchedulerRunsSystemsInOrder(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	movement := &MovementSystem{}
	health := &HealthSystem{}
	scheduler.Register(movement)
	scheduler.Register(health)

	id := storage.Spawn(Position{}, Velocity{DX: 10, DY: 20})
	storage.Spawn(Health{Current: 50, Max: 100})
	storage.Spawn(Health{Current: 25, Max: 100})

	scheduler.Once(0.5)

	assert.Equal(t, 1, movement.ExecuteCount)
	assert.Equal(t, 75, health.TotalHealth)
	pos := ecs.ReadComponent[Position](storage, id)
	assert.Equal(t, 5.0, pos.X)
	assert.Equal(t, 10.0, pos.Y)
}

func TestSchedulerBindsSingletons(t *testing.T) {
	registry := newTestRegistry()
	storage := ecs.NewStorage(registry)
	ecs.NewSingleton(storage, Gravity{G: 2})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&GravitySystem{})

	id := storage.Spawn(Position{}, Velocity{})
	scheduler.Once(1)
	scheduler.Once(1)

	assert.Equal(t, 4.0, ecs.ReadComponent[Velocity](storage, id).DY)
}

func TestSchedulerAppliesQueuedSpawnsAfterFrame(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	spawner := &spawnOnceSystem{}
	movement := &MovementSystem{}
	scheduler.Register(spawner)
	scheduler.Register(movement)

	scheduler.Once(1)
	assert.Equal(t, 1, storage.Len())

	// queued spawns land after the frame, so movement sees the entity one frame later
	scheduler.Once(1)
	var x float64
	for item := range ecs.NewView[movers](storage).Values() {
		x = item.X
	}
	assert.Equal(t, 1.0, x)
}

func TestSchedulerStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&MovementSystem{})
	scheduler.Register(&HealthSystem{})

	for i := 0; i < 3; i++ {
		scheduler.Once(1)
	}

	stats := scheduler.GetStats()
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(6), stats.TotalExecutions)
	assert.Equal(t, "MovementSystem", stats.Systems[0].Name)
	assert.Equal(t, "HealthSystem", stats.Systems[1].Name)
	for _, s := range stats.Systems {
		assert.Equal(t, int64(3), s.ExecutionCount)
		assert.LessOrEqual(t, s.MinDuration, s.MaxDuration)
	}
}
