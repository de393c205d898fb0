package ecs_test

import (
	"testing"

	"github.com/plus3/spawnfield/ecs"
	"github.com/stretchr/testify/assert"
)

type deleteSystem struct {
	target ecs.EntityId
}

func (s *deleteSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Delete(s.target)
}

func TestCommandsFlushOrder(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	commands := &ecs.Commands{}

	victim := storage.Spawn(Position{X: 1})

	var seen int
	commands.Defer(func() { seen = storage.Len() })
	commands.Spawn(Position{X: 2})
	commands.Spawn(Position{X: 3}, Health{Current: 1})
	commands.Delete(victim)
	assert.Equal(t, 4, commands.Pending())
	assert.Equal(t, 1, storage.Len())

	commands.Flush(storage)

	assert.False(t, storage.Alive(victim))
	assert.Equal(t, 2, storage.Len())
	assert.Equal(t, 2, seen, "deferred calls run after spawns and deletes")
	assert.Equal(t, 0, commands.Pending())
}

func TestCommandsFromSystems(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	target := storage.Spawn(Position{}, Velocity{DX: 1})
	movement := &MovementSystem{}
	scheduler.Register(&deleteSystem{target: target})
	scheduler.Register(movement)

	scheduler.Once(1)

	// the delete is deferred, so movement still ran over the entity this frame
	assert.Equal(t, 1, movement.Entities.Len())
	assert.False(t, storage.Alive(target))

	scheduler.Once(1)
	assert.Equal(t, 0, movement.Entities.Len())
}
