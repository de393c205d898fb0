package world

import "github.com/plus3/spawnfield/ecs"

// InsertUnsorted appends raw components to the collection without restoring depth order
func (w *World) InsertUnsorted(components ...any) ecs.EntityId {
	id := w.storage.Spawn(components...)
	w.entities = append(w.entities, id)
	return id
}
