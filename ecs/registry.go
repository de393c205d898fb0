package ecs

import (
	"iter"
	"math/bits"
	"reflect"
)

// ComponentRegistry knows how to build a column for every registered component type.
// Each Storage owns one, so independent worlds never share component tables.
type ComponentRegistry struct {
	factories map[reflect.Type]func() column
}

// NewComponentRegistry creates an empty registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() column),
	}
}

// RegisterComponent makes T usable as a component. It must be called before any
// entity carrying a T is spawned.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.factories[reflect.TypeFor[T]()] = func() column {
		return &blockColumn[T]{}
	}
}

// Registered reports whether t has a column factory.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

func (r *ComponentRegistry) newColumn(t reflect.Type) column {
	factory, ok := r.factories[t]
	if !ok {
		panic("ecs: component type " + t.String() + " not registered")
	}
	return factory()
}

// column is the type-erased storage for a single component type inside an archetype.
type column interface {
	insert(item any) int
	remove(index int)
	at(index int) any
	live(index int) bool
	len() int
	indices() iter.Seq[int]
}

const blockSize = 64

// blockColumn stores T values in fixed blocks so component pointers handed out by
// views stay valid while the column grows. Freed slots are reused LIFO.
type blockColumn[T any] struct {
	blocks []*[blockSize]T
	used   []uint64
	free   []int
	next   int
	count  int
}

func (c *blockColumn[T]) insert(item any) int {
	var value T
	switch v := item.(type) {
	case T:
		value = v
	case *T:
		value = *v
	default:
		panic("ecs: " + reflect.TypeOf(item).String() + " inserted into column of " + reflect.TypeFor[T]().String())
	}

	var index int
	if n := len(c.free); n > 0 {
		index = c.free[n-1]
		c.free = c.free[:n-1]
	} else {
		index = c.next
		c.next++
		if index/blockSize >= len(c.blocks) {
			c.blocks = append(c.blocks, new([blockSize]T))
			c.used = append(c.used, 0)
		}
	}

	block, slot := index/blockSize, index%blockSize
	c.blocks[block][slot] = value
	c.used[block] |= 1 << slot
	c.count++
	return index
}

func (c *blockColumn[T]) remove(index int) {
	if !c.live(index) {
		return
	}
	block, slot := index/blockSize, index%blockSize
	var zero T
	c.blocks[block][slot] = zero
	c.used[block] &^= 1 << slot
	c.free = append(c.free, index)
	c.count--
}

func (c *blockColumn[T]) at(index int) any {
	if !c.live(index) {
		return nil
	}
	return &c.blocks[index/blockSize][index%blockSize]
}

func (c *blockColumn[T]) live(index int) bool {
	if index < 0 || index >= c.next {
		return false
	}
	return c.used[index/blockSize]&(1<<(index%blockSize)) != 0
}

func (c *blockColumn[T]) len() int {
	return c.count
}

func (c *blockColumn[T]) indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for block, mask := range c.used {
			for mask != 0 {
				slot := bits.TrailingZeros64(mask)
				mask &^= 1 << slot
				if !yield(block*blockSize + slot) {
					return
				}
			}
		}
	}
}
