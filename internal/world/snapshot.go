package world

import (
	"github.com/plus3/spawnfield/ecs"
	"github.com/plus3/spawnfield/internal/enemy"
)

type inspect struct {
	Kind *enemy.Kind
	*enemy.Body
	*enemy.Drift
	*enemy.Animation
	*enemy.Cull
}

// EnemyInfo is a copy of one enemy's state
type EnemyInfo struct {
	ID     ecs.EntityId
	Kind   enemy.Kind
	X, Y   float64
	Width  float64
	Height float64
	VX     float64
	Frame  int
	Marked bool
}

// Snapshot copies every enemy's state in draw order
func (w *World) Snapshot() []EnemyInfo {
	infos := make([]EnemyInfo, 0, len(w.entities))
	var e inspect
	for _, id := range w.entities {
		if !w.info.Fill(id, &e) {
			continue
		}
		infos = append(infos, EnemyInfo{
			ID:     id,
			Kind:   *e.Kind,
			X:      e.X,
			Y:      e.Y,
			Width:  e.Width,
			Height: e.Height,
			VX:     e.VX,
			Frame:  e.Frame,
			Marked: e.Marked,
		})
	}
	return infos
}
