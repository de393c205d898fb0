package ecs

import "iter"

// Query is a View that remembers its matching archetypes and snapshots the matching
// entities once per frame. Systems declare Query fields; the Scheduler binds them and
// calls Execute right before the owning system runs.
type Query[T any] struct {
	view       *View[T]
	storage    *Storage
	archetypes []*Archetype
	seen       int

	ids   []EntityId
	items []T
	ready bool
}

// NewQuery creates a query over storage
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds (or rebinds) the query to storage
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.archetypes = nil
	q.seen = 0
	q.ready = false
}

// Execute snapshots the entities that currently match
func (q *Query[T]) Execute() {
	if n := len(q.storage.ordered); n != q.seen {
		for _, archetype := range q.storage.ordered[q.seen:] {
			if q.view.matches(archetype) {
				q.archetypes = append(q.archetypes, archetype)
			}
		}
		q.seen = n
	}

	q.ids = q.ids[:0]
	q.items = q.items[:0]
	for _, archetype := range q.archetypes {
		for id, item := range q.view.iterArchetype(archetype) {
			q.ids = append(q.ids, id)
			q.items = append(q.items, item)
		}
	}
	q.ready = true
}

// Len returns the size of the last snapshot
func (q *Query[T]) Len() int {
	return len(q.ids)
}

// Iter yields the snapshot taken by the last Execute.
// It panics if Execute has never been called.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	if !q.ready {
		panic("ecs: Query.Iter() called before Query.Execute()")
	}
	return func(yield func(EntityId, T) bool) {
		for i := range q.ids {
			if !yield(q.ids[i], q.items[i]) {
				return
			}
		}
	}
}

// Values yields only the view structs of the snapshot
func (q *Query[T]) Values() iter.Seq[T] {
	if !q.ready {
		panic("ecs: Query.Values() called before Query.Execute()")
	}
	return func(yield func(T) bool) {
		for _, item := range q.items {
			if !yield(item) {
				return
			}
		}
	}
}
