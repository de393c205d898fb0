package ecs

import "reflect"

// Singleton gives systems typed access to a value that belongs to the world rather
// than to an entity: configuration, clocks, counters.
type Singleton[T any] struct {
	storage *Storage
}

// NewSingleton returns an accessor for T, creating the singleton from initializer
// (or the zero value) when storage does not hold one yet.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	if storage.getSingletonEntry(reflect.TypeFor[T]()) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(value)
	}
	s := &Singleton[T]{}
	s.Init(storage)
	return s
}

// Init binds the accessor to storage. The Scheduler calls it during Register.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
}

// Get returns the singleton, or nil if storage has none
func (s *Singleton[T]) Get() *T {
	if s.storage == nil {
		return nil
	}
	entry := s.storage.getSingletonEntry(reflect.TypeFor[T]())
	if entry == nil {
		return nil
	}
	return entry.ptr.(*T)
}

// Exists reports whether the singleton has been added
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}
