package ecs_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/plus3/spawnfield/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityIdEncoding(t *testing.T) {
	tests := []struct {
		archetypeId uint32
		slot        uint32
		generation  uint32
	}{
		{0, 0, 0},
		{0xFFFFFFFF, 0xFFFFF, 0xFFF},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{0x12345678, 0xABCDE, 0x9AB},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("archetype=%d,slot=%d,gen=%d", tt.archetypeId, tt.slot, tt.generation), func(t *testing.T) {
			id := ecs.NewEntityId(tt.archetypeId, tt.slot, tt.generation)
			assert.Equal(t, tt.archetypeId, id.ArchetypeId())
			assert.Equal(t, tt.slot, id.Slot())
			assert.Equal(t, tt.generation, id.Generation())
		})
	}

	id := ecs.NewEntityId(3, 0xFFFFF+2, 0xFFF+1)
	assert.Equal(t, uint32(3), id.ArchetypeId())
	assert.Equal(t, uint32(1), id.Slot(), "slot wraps to its field width")
	assert.Equal(t, uint32(0), id.Generation(), "generation wraps to its field width")
}

func TestSpawnAndGetComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 3, Y: 4}, &Velocity{DX: 1}, Tag("worm"))

	pos := ecs.ReadComponent[Position](storage, id)
	require.NotNil(t, pos)
	assert.Equal(t, 3.0, pos.X)
	assert.Equal(t, 4.0, pos.Y)

	vel := ecs.ReadComponent[Velocity](storage, id)
	require.NotNil(t, vel)
	assert.Equal(t, 1.0, vel.DX)

	assert.Equal(t, Tag("worm"), *ecs.ReadComponent[Tag](storage, id))
	assert.Nil(t, ecs.ReadComponent[Health](storage, id))
	assert.True(t, storage.HasComponent(id, reflect.TypeFor[Velocity]()))
	assert.False(t, storage.HasComponent(id, reflect.TypeFor[Health]()))
}

func TestComponentPointersAreLive(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1})

	ecs.ReadComponent[Position](storage, id).X = 42
	assert.Equal(t, 42.0, ecs.ReadComponent[Position](storage, id).X)
}

func TestComponentOrderDoesNotChangeArchetype(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Position{}, Velocity{})
	b := storage.Spawn(Velocity{}, Position{})

	assert.Equal(t, a.ArchetypeId(), b.ArchetypeId())
	assert.Len(t, storage.Archetypes(), 1)
	assert.NotNil(t, storage.GetArchetype(Velocity{}, Position{}))
	assert.Nil(t, storage.GetArchetype(Health{}))
}

func TestDeleteEntity(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1}, Health{Current: 10, Max: 10})
	other := storage.Spawn(Position{X: 2}, Health{Current: 5, Max: 10})
	require.True(t, storage.Alive(id))
	assert.Equal(t, 2, storage.Len())

	storage.Delete(id)

	assert.False(t, storage.Alive(id))
	assert.True(t, storage.Alive(other))
	assert.Nil(t, storage.GetComponent(id, reflect.TypeFor[Position]()))
	assert.Equal(t, 1, storage.Len())

	// deleting twice, or an id that never existed, is a no-op
	storage.Delete(id)
	storage.Delete(ecs.NewEntityId(7, 7, 0))
	assert.Equal(t, 1, storage.Len())
}

func TestDeletedSlotsAreReused(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	first := storage.Spawn(Position{X: 1})
	storage.Spawn(Position{X: 2})
	storage.Delete(first)

	reused := storage.Spawn(Position{X: 3})
	assert.Equal(t, first.Slot(), reused.Slot())
	assert.Equal(t, 3.0, ecs.ReadComponent[Position](storage, reused).X)
}

func TestReusedSlotGetsFreshId(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	old := storage.Spawn(Position{X: 1})
	storage.Delete(old)
	fresh := storage.Spawn(Position{X: 2})

	require.Equal(t, old.Slot(), fresh.Slot())
	assert.NotEqual(t, old, fresh)
	assert.Equal(t, old.Generation()+1, fresh.Generation())
	assert.False(t, storage.Alive(old))
	assert.True(t, storage.Alive(fresh))
	assert.Nil(t, ecs.ReadComponent[Position](storage, old))
	assert.Nil(t, ecs.NewView[struct{ *Position }](storage).Get(old))

	// a stale id must not delete the entity now living in its slot
	storage.Delete(old)
	assert.True(t, storage.Alive(fresh))
	assert.Equal(t, 2.0, ecs.ReadComponent[Position](storage, fresh).X)

	var ids []ecs.EntityId
	for id := range storage.GetArchetype(Position{}).Iter() {
		ids = append(ids, id)
	}
	assert.Equal(t, []ecs.EntityId{fresh}, ids)
}

func TestManyEntitiesAcrossBlocks(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	ids := make([]ecs.EntityId, 0, 200)
	for i := 0; i < 200; i++ {
		ids = append(ids, storage.Spawn(Position{X: float64(i)}))
	}
	first := ecs.ReadComponent[Position](storage, ids[0])

	for i, id := range ids {
		assert.Equal(t, float64(i), ecs.ReadComponent[Position](storage, id).X)
	}
	// growing the column must not move earlier blocks
	assert.Same(t, first, ecs.ReadComponent[Position](storage, ids[0]))
	assert.Equal(t, 200, storage.Archetypes()[0].Len())
}

func TestSpawnPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { storage.Spawn() })
	assert.Panics(t, func() { storage.Spawn(struct{ A int }{A: 1}) })
	assert.Panics(t, func() { storage.Spawn(Position{}, Position{}) })
	assert.Panics(t, func() { storage.Spawn(map[string]int{}) })
}

func TestReadSingleton(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var missing *Health
	assert.False(t, storage.ReadSingleton(&missing))

	storage.AddSingleton(Health{Current: 3, Max: 9})

	var health *Health
	require.True(t, storage.ReadSingleton(&health))
	assert.Equal(t, 9, health.Max)

	health.Current = 8
	var again *Health
	storage.ReadSingleton(&again)
	assert.Equal(t, 8, again.Current)
}
