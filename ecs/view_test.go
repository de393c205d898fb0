package ecs_test

import (
	"testing"

	"github.com/plus3/spawnfield/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type movers struct {
	*Position
	*Velocity
}

type optionalHealth struct {
	*Position
	Health *Health `ecs:"optional"`
}

func TestViewGet(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	mover := storage.Spawn(Position{X: 1}, Velocity{DX: 2})
	still := storage.Spawn(Position{X: 5})

	view := ecs.NewView[movers](storage)

	item := view.Get(mover)
	require.NotNil(t, item)
	assert.Equal(t, 1.0, item.Position.X)
	assert.Equal(t, 2.0, item.Velocity.DX)

	assert.Nil(t, view.Get(still))

	storage.Delete(mover)
	assert.Nil(t, view.Get(mover))
}

func TestViewWritesThrough(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1}, Velocity{DX: 2})

	view := ecs.NewView[movers](storage)
	item := view.Get(id)
	item.X += item.DX

	assert.Equal(t, 3.0, ecs.ReadComponent[Position](storage, id).X)
}

func TestViewOptionalFields(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	withHealth := storage.Spawn(Position{X: 1}, Health{Current: 7})
	without := storage.Spawn(Position{X: 2})
	storage.Spawn(Velocity{})

	view := ecs.NewView[optionalHealth](storage)

	item := view.Get(withHealth)
	require.NotNil(t, item)
	require.NotNil(t, item.Health)
	assert.Equal(t, 7, item.Health.Current)

	item = view.Get(without)
	require.NotNil(t, item)
	assert.Nil(t, item.Health)

	count := 0
	for range view.Iter() {
		count++
	}
	assert.Equal(t, 2, count)
}

func TestViewValues(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Position{X: 1}, Velocity{DX: 1})
	storage.Spawn(Position{X: 2}, Velocity{DX: 1}, Tag("a"))
	storage.Spawn(Position{X: 3})

	sum := 0.0
	for item := range ecs.NewView[movers](storage).Values() {
		sum += item.X
	}
	assert.Equal(t, 3.0, sum)
}

func TestViewRejectsBadStructs(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { ecs.NewView[Position](storage) })
	assert.Panics(t, func() { ecs.NewView[int](storage) })
	assert.Panics(t, func() {
		ecs.NewView[struct {
			Health *Health `ecs:"sometimes"`
		}](storage)
	})
}
