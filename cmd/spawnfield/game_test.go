package main

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/spawnfield/internal/clock"
	"github.com/plus3/spawnfield/internal/config"
	"github.com/plus3/spawnfield/internal/enemy"
	"github.com/plus3/spawnfield/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) (*Game, *time.Time) {
	t.Helper()
	sheets := enemy.BlankSheets()
	w, err := world.New(world.Options{
		Bounds:        world.Bounds{Width: 500, Height: 800},
		SpawnInterval: 500,
		Variants: []world.Variant{{
			Template: enemy.Template{Kind: enemy.Worm, Sheet: sheets[enemy.Worm], FrameInterval: enemy.DefaultFrameInterval},
			Weight:   1,
		}},
		Rand: rand.New(rand.NewPCG(1, 1)),
	})
	require.NoError(t, err)

	g := newGame(w, clock.New(0, nil), config.Default().Window)
	current := time.Unix(1000, 0)
	g.start = current
	g.now = func() time.Time { return current }
	return g, &current
}

func TestGameAdvanceDrivesWorld(t *testing.T) {
	g, now := newTestGame(t)

	g.advance()
	assert.Equal(t, 0.0, g.lastDelta, "first frame is clamped")
	assert.Equal(t, 0, g.world.Len())

	*now = now.Add(501 * time.Millisecond)
	g.advance()
	assert.Equal(t, 501.0, g.lastDelta)
	assert.Equal(t, 1, g.world.Len())
	assert.Equal(t, 0.0, g.world.SpawnTimer())
}

func TestGamePauseAndStep(t *testing.T) {
	g, now := newTestGame(t)
	g.advance()
	*now = now.Add(501 * time.Millisecond)
	g.advance()
	require.Equal(t, 1, g.world.Len())

	g.pause.Paused = true
	*now = now.Add(600 * time.Millisecond)
	g.advance()
	assert.Equal(t, 600.0, g.lastDelta, "the clock keeps ticking while paused")
	assert.Equal(t, 0.0, g.world.SpawnTimer())
	assert.Equal(t, 1, g.world.Len())

	g.pause.StepFrames = 1
	*now = now.Add(time.Second)
	g.advance()
	assert.InDelta(t, stepMs, g.world.SpawnTimer(), 1e-9, "a step advances one fixed frame")
	assert.Zero(t, g.pause.StepFrames)

	*now = now.Add(time.Second)
	g.advance()
	assert.InDelta(t, stepMs, g.world.SpawnTimer(), 1e-9)

	g.pause.Paused = false
	*now = now.Add(490 * time.Millisecond)
	g.advance()
	assert.Equal(t, 2, g.world.Len())
	assert.Equal(t, 0.0, g.world.SpawnTimer())
}

func TestLayoutUsesWindowSize(t *testing.T) {
	g, _ := newTestGame(t)
	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 500, w)
	assert.Equal(t, 800, h)
}
