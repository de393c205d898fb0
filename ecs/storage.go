package ecs

import (
	"reflect"

	"github.com/kamstrup/intmap"
)

// Storage owns every archetype and singleton of one ECS world
type Storage struct {
	registry   *ComponentRegistry
	archetypes *intmap.Map[uint32, *Archetype]
	ordered    []*Archetype
	singletons map[reflect.Type]*singletonEntry
}

type singletonEntry struct {
	ptr any
}

// NewStorage creates an empty storage backed by registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		archetypes: intmap.New[uint32, *Archetype](16),
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// Registry returns the registry the storage was created with
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// Spawn creates an entity from the given components. Values and pointers to values
// are both accepted; pointers are copied.
func (s *Storage) Spawn(components ...any) EntityId {
	types := componentTypes(components)
	archetype := s.archetypeFor(types)
	return archetype.spawn(components)
}

func (s *Storage) archetypeFor(types []reflect.Type) *Archetype {
	id := archetypeId(types)
	if archetype, ok := s.archetypes.Get(id); ok {
		return archetype
	}
	archetype := newArchetype(id, types, s.registry)
	s.archetypes.Put(id, archetype)
	s.ordered = append(s.ordered, archetype)
	return archetype
}

// Delete drops the entity and all of its components. Unknown and stale ids are ignored.
func (s *Storage) Delete(id EntityId) {
	if archetype, ok := s.archetypes.Get(id.ArchetypeId()); ok {
		archetype.remove(id)
	}
}

// Alive reports whether id still refers to a spawned entity
func (s *Storage) Alive(id EntityId) bool {
	archetype, ok := s.archetypes.Get(id.ArchetypeId())
	return ok && archetype.alive(id)
}

// GetComponent returns a pointer to the entity's component of type t, or nil
func (s *Storage) GetComponent(id EntityId, t reflect.Type) any {
	archetype, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok {
		return nil
	}
	return archetype.component(id, t)
}

// HasComponent reports whether the entity's archetype carries t
func (s *Storage) HasComponent(id EntityId, t reflect.Type) bool {
	archetype, ok := s.archetypes.Get(id.ArchetypeId())
	return ok && archetype.HasComponent(t)
}

// GetArchetype returns the archetype for the given component set, if one exists
func (s *Storage) GetArchetype(components ...any) *Archetype {
	archetype, _ := s.archetypes.Get(archetypeId(componentTypes(components)))
	return archetype
}

// Archetypes returns every archetype in creation order
func (s *Storage) Archetypes() []*Archetype {
	return s.ordered
}

// Len returns the number of live entities across all archetypes
func (s *Storage) Len() int {
	total := 0
	for _, archetype := range s.ordered {
		total += archetype.Len()
	}
	return total
}

// AddSingleton stores value as the single instance of its type, replacing any previous one
func (s *Storage) AddSingleton(value any) {
	t := reflect.TypeOf(value)
	ptr := reflect.New(t)
	ptr.Elem().Set(reflect.ValueOf(value))
	s.singletons[t] = &singletonEntry{ptr: ptr.Interface()}
}

// ReadSingleton points *out at the stored singleton. out must be a **T.
func (s *Storage) ReadSingleton(out any) bool {
	target := reflect.ValueOf(out)
	if target.Kind() != reflect.Pointer || target.Elem().Kind() != reflect.Pointer {
		panic("ecs: ReadSingleton expects a pointer to a pointer")
	}
	entry := s.singletons[target.Elem().Type().Elem()]
	if entry == nil {
		return false
	}
	target.Elem().Set(reflect.ValueOf(entry.ptr))
	return true
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}

// ComponentReader is satisfied by Storage
type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's T component, or nil if it has none
func ReadComponent[T any](reader ComponentReader, id EntityId) *T {
	comp, _ := reader.GetComponent(id, reflect.TypeFor[T]()).(*T)
	return comp
}
