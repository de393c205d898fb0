package ecs

import (
	"iter"
	"reflect"
)

// View binds a struct of component pointers to entities. T must be a struct whose
// fields are all exported pointers to component types, for example
//
//	struct {
//		*Body
//		*Drift
//		Fade *Fade `ecs:"optional"`
//	}
//
// Embedded fields are always required. Named fields are required unless tagged
// `ecs:"optional"`, in which case they are left nil for entities without that component.
type View[T any] struct {
	storage  *Storage
	types    []reflect.Type
	optional []bool
	fields   []int
}

// NewView builds a view for T over storage. It panics if T is not a valid view struct.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("ecs: view type must be a struct, got " + structType.String())
	}

	v := &View[T]{storage: storage}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Type.Kind() != reflect.Pointer {
			panic("ecs: view field " + field.Name + " must be a pointer")
		}
		if !field.IsExported() {
			panic("ecs: view field " + field.Name + " must be exported")
		}

		optional := false
		if tag, ok := field.Tag.Lookup("ecs"); ok && !field.Anonymous {
			if tag != "optional" {
				panic("ecs: invalid tag value \"" + tag + "\" on " + field.Name + " (only \"optional\" is supported)")
			}
			optional = true
		}

		v.types = append(v.types, field.Type.Elem())
		v.optional = append(v.optional, optional)
		v.fields = append(v.fields, i)
	}
	return v
}

// Fill points the fields of dst at the entity's components. It returns false,
// leaving dst partially written, when a required component is missing.
func (v *View[T]) Fill(id EntityId, dst *T) bool {
	archetype, ok := v.storage.archetypes.Get(id.ArchetypeId())
	if !ok || !archetype.alive(id) {
		return false
	}
	return v.bind(reflect.ValueOf(dst).Elem(), archetype, id)
}

// Get returns the populated view for id, or nil when the entity does not match
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// Iter yields every entity that carries all required components, archetype by
// archetype in creation order.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for _, archetype := range v.storage.ordered {
			if !v.matches(archetype) {
				continue
			}
			for id, item := range v.iterArchetype(archetype) {
				if !yield(id, item) {
					return
				}
			}
		}
	}
}

// Values yields only the populated view structs
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.Iter() {
			if !yield(item) {
				return
			}
		}
	}
}

func (v *View[T]) matches(archetype *Archetype) bool {
	for i, t := range v.types {
		if !v.optional[i] && !archetype.HasComponent(t) {
			return false
		}
	}
	return true
}

func (v *View[T]) iterArchetype(archetype *Archetype) iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for id := range archetype.Iter() {
			var item T
			if !v.bind(reflect.ValueOf(&item).Elem(), archetype, id) {
				continue
			}
			if !yield(id, item) {
				return
			}
		}
	}
}

func (v *View[T]) bind(dst reflect.Value, archetype *Archetype, id EntityId) bool {
	for i, t := range v.types {
		field := dst.Field(v.fields[i])
		comp := archetype.component(id, t)
		if comp == nil {
			if !v.optional[i] {
				return false
			}
			field.SetZero()
			continue
		}
		field.Set(reflect.ValueOf(comp))
	}
	return true
}
