package ecs

import (
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// binder is implemented by *Query[T] and *Singleton[T].
type binder interface {
	Init(storage *Storage)
}

type executor interface {
	Execute()
}

type registeredSystem struct {
	system  System
	queries []executor
	stats   SystemStats
}

// Scheduler runs systems in registration order against one storage.
type Scheduler struct {
	storage  *Storage
	commands *Commands
	systems  []*registeredSystem
}

// NewScheduler creates a new scheduler for the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{
		storage:  storage,
		commands: newCommands(),
	}
}

// Register appends system to the run order and binds its Query and Singleton fields.
func (s *Scheduler) Register(system System) {
	entry := &registeredSystem{
		system: system,
		stats: SystemStats{
			Name:        systemName(system),
			MinDuration: time.Duration(1<<63 - 1),
		},
	}

	value := reflect.ValueOf(system)
	if value.Kind() == reflect.Pointer {
		value = value.Elem()
	}
	if value.Kind() == reflect.Struct && value.CanAddr() {
		for i := 0; i < value.NumField(); i++ {
			field := value.Field(i)
			if !field.CanSet() {
				continue
			}
			b, ok := field.Addr().Interface().(binder)
			if !ok {
				continue
			}
			b.Init(s.storage)
			if q, ok := b.(executor); ok {
				entry.queries = append(entry.queries, q)
			}
		}
	}

	s.systems = append(s.systems, entry)
}

func systemName(system System) string {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// Once runs every system a single time with dt, then flushes queued commands.
// Each system's queries are refreshed immediately before it executes.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.storage, s.commands)

	for _, entry := range s.systems {
		for _, q := range entry.queries {
			q.Execute()
		}

		start := time.Now()
		entry.system.Execute(frame)
		duration := time.Since(start)

		stats := &entry.stats
		stats.ExecutionCount++
		stats.LastDuration = duration
		stats.TotalDuration += duration
		stats.MinDuration = min(stats.MinDuration, duration)
		stats.MaxDuration = max(stats.MaxDuration, duration)
	}

	s.commands.Flush(s.storage)
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systems)),
	}

	for i, entry := range s.systems {
		snapshot := entry.stats
		if snapshot.ExecutionCount > 0 {
			snapshot.AvgDuration = snapshot.TotalDuration / time.Duration(snapshot.ExecutionCount)
		}
		stats.Systems[i] = snapshot
		stats.TotalExecutions += snapshot.ExecutionCount
	}

	return stats
}
