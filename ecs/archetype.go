package ecs

import (
	"hash/fnv"
	"iter"
	"reflect"
	"slices"
	"strings"
)

// Archetype holds every entity that has exactly the same set of component types.
// Columns are kept in lockstep: slot i of each column belongs to the same entity.
type Archetype struct {
	id          uint32
	types       []reflect.Type
	columns     []column
	lookup      map[reflect.Type]int
	generations []uint32
}

func newArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:      id,
		types:   types,
		columns: make([]column, len(types)),
		lookup:  make(map[reflect.Type]int, len(types)),
	}
	for i, t := range types {
		a.columns[i] = registry.newColumn(t)
		a.lookup[t] = i
	}
	return a
}

// ID returns the archetype's hash id
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the component types, sorted by name
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// HasComponent reports whether entities of this archetype carry t
func (a *Archetype) HasComponent(t reflect.Type) bool {
	_, ok := a.lookup[t]
	return ok
}

// Len returns the number of live entities
func (a *Archetype) Len() int {
	if len(a.columns) == 0 {
		return 0
	}
	return a.columns[0].len()
}

// Iter yields the id of every live entity in slot order
func (a *Archetype) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		if len(a.columns) == 0 {
			return
		}
		for slot := range a.columns[0].indices() {
			if !yield(a.entityId(slot)) {
				return
			}
		}
	}
}

func (a *Archetype) spawn(components []any) EntityId {
	slot := -1
	for _, comp := range components {
		col := a.columns[a.lookup[componentType(comp)]]
		index := col.insert(comp)
		if slot >= 0 && index != slot {
			panic("ecs: archetype columns out of step")
		}
		slot = index
	}
	if slot > slotMask {
		panic("ecs: archetype is full")
	}
	for len(a.generations) <= slot {
		a.generations = append(a.generations, 0)
	}
	return a.entityId(slot)
}

func (a *Archetype) entityId(slot int) EntityId {
	return NewEntityId(a.id, uint32(slot), a.generations[slot])
}

// alive reports whether id's slot is occupied by the entity id was issued for
func (a *Archetype) alive(id EntityId) bool {
	slot := int(id.Slot())
	return len(a.columns) > 0 &&
		a.columns[0].live(slot) &&
		a.generations[slot] == id.Generation()
}

func (a *Archetype) component(id EntityId, t reflect.Type) any {
	i, ok := a.lookup[t]
	if !ok || !a.alive(id) {
		return nil
	}
	return a.columns[i].at(int(id.Slot()))
}

// remove frees id's slot and bumps its generation. Stale ids are ignored.
func (a *Archetype) remove(id EntityId) {
	if !a.alive(id) {
		return
	}
	slot := int(id.Slot())
	for _, col := range a.columns {
		col.remove(slot)
	}
	a.generations[slot] = (a.generations[slot] + 1) & generationMask
}

// componentType resolves the stored type of a component value; pointers are
// dereferenced once so Spawn accepts both T and *T.
func componentType(comp any) reflect.Type {
	t := reflect.TypeOf(comp)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// componentTypes validates a spawn set and returns its types sorted by name.
func componentTypes(components []any) []reflect.Type {
	if len(components) == 0 {
		panic("ecs: cannot spawn entity without components")
	}
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		t := componentType(comp)
		switch t.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func:
			panic("ecs: components cannot be pointers, maps, channels, or functions")
		}
		if slices.Contains(types, t) {
			panic("ecs: duplicate component " + t.String())
		}
		types = append(types, t)
	}
	sortTypes(types)
	return types
}

func sortTypes(types []reflect.Type) {
	slices.SortFunc(types, func(a, b reflect.Type) int {
		return strings.Compare(typeKey(a), typeKey(b))
	})
}

func typeKey(t reflect.Type) string {
	return t.PkgPath() + "." + t.String()
}

// archetypeId hashes a sorted type set with FNV-1a.
func archetypeId(types []reflect.Type) uint32 {
	h := fnv.New32a()
	for _, t := range types {
		h.Write([]byte(typeKey(t)))
		h.Write([]byte{0})
	}
	return h.Sum32()
}
