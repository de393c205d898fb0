package debugui

import "github.com/plus3/spawnfield/ecs"

type EntityBrowser struct {
	entities           []EntityInfo
	lastEntityCount    int
	sortColumn         int
	sortAscending      bool
	selectedEntityId   ecs.EntityId
	hasSelection       bool
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

type ComponentInspector struct{}

type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	filled        int
}
