package ecs

// EntityId identifies a live entity. The upper 32 bits hold the archetype id; the lower
// 32 bits hold a generation in the top 12 bits and the archetype slot in the low 20.
// The generation changes every time a slot is freed, so a stale id never matches the
// entity that later reuses its slot.
type EntityId uint64

const (
	slotBits       = 20
	slotMask       = 1<<slotBits - 1
	generationMask = 1<<(32-slotBits) - 1
)

// NewEntityId packs an archetype id, slot and generation into an EntityId.
// Slot and generation are truncated to their field widths.
func NewEntityId(archetypeId, slot, generation uint32) EntityId {
	low := (generation&generationMask)<<slotBits | slot&slotMask
	return EntityId(uint64(archetypeId)<<32 | uint64(low))
}

// ArchetypeId returns the archetype half of the id
func (e EntityId) ArchetypeId() uint32 {
	return uint32(e >> 32)
}

// Slot returns the position of the entity inside its archetype
func (e EntityId) Slot() uint32 {
	return uint32(e) & slotMask
}

// Generation returns how many times the slot had been freed when the id was issued
func (e EntityId) Generation() uint32 {
	return uint32(e) >> slotBits
}
