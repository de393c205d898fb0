package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/spawnfield/internal/world"
)

type Report struct {
	// Configuration
	Duration      time.Duration
	Step          float64
	SpawnInterval float64
	Variants      int

	// Results
	TotalFrames    int64
	TotalTime      time.Duration
	SimulatedTime  time.Duration
	PeakLive       int
	UpdateTime     Stats
	DrawTime       Stats
	World          world.Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Spawn Stress Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Frame Step:** {{printf "%.2f" .Step}} ms
- **Spawn Interval:** {{.SpawnInterval}} ms
- **Variants:** {{.Variants}}

## World
- **Frames:** {{.TotalFrames}}
- **Simulated Time:** {{.SimulatedTime}}
- **Spawned:** {{.World.Spawned}}
- **Culled:** {{.World.Culled}}
- **Live at End:** {{.World.Live}}
- **Peak Live:** {{.PeakLive}}
- **Archetypes:** {{.World.Storage.ArchetypeCount}}

## Frame Timings
- **Update:** avg {{.UpdateTime.Avg}}, min {{.UpdateTime.Min}}, max {{.UpdateTime.Max}}
- **Draw:** avg {{.DrawTime.Avg}}, min {{.DrawTime.Min}}, max {{.DrawTime.Max}}

## Systems
| System | Runs | Avg | Max |
|---|---|---|---|
{{- range .World.Scheduler.Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

var reportFuncs = template.FuncMap{
	"bsub": func(a, b uint64) int64 {
		return int64(a) - int64(b)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
