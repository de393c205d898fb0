package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/spawnfield/internal/enemy"
)

var kindColors = map[enemy.Kind]imgui.Vec4{
	enemy.Worm:   imgui.NewVec4(0.85, 0.65, 0.45, 1),
	enemy.Ghost:  imgui.NewVec4(0.75, 0.85, 1.00, 1),
	enemy.Spider: imgui.NewVec4(0.80, 0.55, 0.90, 1),
}

func addSpawnerWindows(g *Game) {
	g.overlay.Add(func() {
		imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
		imgui.SetNextWindowSizeV(imgui.NewVec2(280, 200), imgui.CondOnce)

		if imgui.BeginV("Spawner", nil, imgui.WindowFlagsNone) {
			stats := g.world.Stats()
			progress := float32(g.world.SpawnTimer() / g.world.SpawnInterval())
			imgui.ProgressBarV(min(progress, 1), imgui.NewVec2(-1, 0),
				fmt.Sprintf("%.0f / %.0f ms", g.world.SpawnTimer(), g.world.SpawnInterval()))

			imgui.Text(fmt.Sprintf("Live: %d", stats.Live))
			imgui.Text(fmt.Sprintf("Spawned: %d  Culled: %d", stats.Spawned, stats.Culled))
			imgui.Text(fmt.Sprintf("Frame delta: %.2f ms", g.lastDelta))
			imgui.Separator()

			label := "Pause"
			if g.pause.Paused {
				label = "Resume"
			}
			if imgui.Button(label) {
				g.pause.Paused = !g.pause.Paused
			}
			imgui.SameLine()
			if imgui.Button("Step") {
				g.pause.Paused = true
				g.pause.StepFrames++
			}
			imgui.SameLine()
			if imgui.Button("Spawn") {
				g.world.AddNewEnemy()
			}
		}
		imgui.End()
	})

	g.overlay.Add(func() {
		imgui.SetNextWindowPosV(imgui.NewVec2(10, 220), imgui.CondOnce, imgui.NewVec2(0, 0))
		imgui.SetNextWindowSizeV(imgui.NewVec2(420, 300), imgui.CondOnce)

		if imgui.BeginV("Enemies", nil, imgui.WindowFlagsNone) {
			const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
			if imgui.BeginTableV("EnemyTable", 6, tableFlags, imgui.NewVec2(0, 0), 0) {
				imgui.TableSetupColumn("Kind")
				imgui.TableSetupColumn("X")
				imgui.TableSetupColumn("Y")
				imgui.TableSetupColumn("VX")
				imgui.TableSetupColumn("Frame")
				imgui.TableSetupColumn("Culled")
				imgui.TableHeadersRow()

				for _, e := range g.world.Snapshot() {
					imgui.TableNextRow()
					imgui.TableNextColumn()
					imgui.TextColored(kindColors[e.Kind], e.Kind.String())
					imgui.TableNextColumn()
					imgui.Text(fmt.Sprintf("%.1f", e.X))
					imgui.TableNextColumn()
					imgui.Text(fmt.Sprintf("%.1f", e.Y))
					imgui.TableNextColumn()
					imgui.Text(fmt.Sprintf("%.3f", e.VX))
					imgui.TableNextColumn()
					imgui.Text(fmt.Sprintf("%d", e.Frame))
					imgui.TableNextColumn()
					if e.Marked {
						imgui.Text("yes")
					}
				}
				imgui.EndTable()
			}
		}
		imgui.End()
	})
}
