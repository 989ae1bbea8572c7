// Package inspect draws Dear ImGui windows over a running session: its
// state, its piece statistics, the frame loop's stage timings and a pause
// control.
package inspect

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blocks/game"
	"github.com/plus3/blocks/loop"
)

// Inspector holds the state the windows keep between frames.
type Inspector struct {
	frameTimes *history
}

// New returns an inspector keeping historyFrames frame times.
func New(historyFrames int) *Inspector {
	return &Inspector{frameTimes: newHistory(max(historyFrames, 1))}
}

// Render draws every window. It must run between the backend's BeginFrame
// and EndFrame.
func (i *Inspector) Render(s *game.State, l *loop.Loop, dt time.Duration) {
	i.frameTimes.push(float32(dt.Seconds() * 1000))

	i.renderSession(s)
	i.renderControl(s, l.Clock())
	i.renderStats(s.Stats())
	i.renderStages(l)
}

func (i *Inspector) renderSession(s *game.State) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 360), imgui.CondOnce)
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	renderRows("SessionTable", SessionRows(s))

	if active, ok := s.Active(); ok {
		lock := active.LockDelay()
		if delay := lock.Config().Delay; delay > 0 {
			progress := float32(lock.Accumulated()) / float32(delay)
			imgui.ProgressBarV(min(progress, 1), imgui.NewVec2(-1, 0), "lock delay")
		}
	}
	imgui.End()
}

func (i *Inspector) renderControl(s *game.State, clock *loop.Clock) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 380), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 160), imgui.CondOnce)
	if !imgui.BeginV("Control", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if clock.Paused() {
		imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.2, 0.7, 0.2, 1.0))
		if imgui.Button("Resume") {
			clock.Resume()
		}
		imgui.PopStyleColor()
		imgui.SameLine()
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
	} else {
		imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.7, 0.2, 0.2, 1.0))
		if imgui.Button("Pause") {
			clock.Pause()
		}
		imgui.PopStyleColor()
		imgui.SameLine()
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	}

	if s.Condition() != game.Playing {
		imgui.Text(fmt.Sprintf("Session over: %s", s.Condition()))
	}

	avg := i.frameTimes.average()
	imgui.Separator()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}
	samples := i.frameTimes.ordered()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))
	imgui.End()
}

func (i *Inspector) renderStats(stats *game.Stats) {
	imgui.SetNextWindowPosV(imgui.NewVec2(320, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(240, 340), imgui.CondOnce)
	if !imgui.BeginV("Pieces", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	renderRows("StatsTable", StatsRows(stats))
	imgui.End()
}

func (i *Inspector) renderStages(l *loop.Loop) {
	stats := l.Stats()

	imgui.SetNextWindowPosV(imgui.NewVec2(320, 360), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(400, 200), imgui.CondOnce)
	if !imgui.BeginV("Stages", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsSizingFixedFit
	if imgui.BeginTableV("Stages", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Avg (ms)")
		imgui.TableSetupColumn("Min (ms)")
		imgui.TableSetupColumn("Max (ms)")
		imgui.TableHeadersRow()

		if specs := imgui.TableGetSortSpecs(); specs.SpecsCount() > 0 {
			spec := specs.Specs()
			SortStages(stats.Stages, int(spec.ColumnIndex()), spec.SortDirection() == imgui.SortDirectionDescending)
		}

		for _, stage := range stats.Stages {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(stage.Name)
			imgui.TableNextColumn()
			imgui.Text(millis(stage.AvgDuration))
			imgui.TableNextColumn()
			imgui.Text(millis(stage.MinDuration))
			imgui.TableNextColumn()
			imgui.Text(millis(stage.MaxDuration))
		}
		imgui.EndTable()
	}
	imgui.End()
}

func renderRows(id string, rows []Row) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV(id, 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	for _, row := range rows {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(row.Label)
		imgui.TableNextColumn()
		imgui.Text(row.Value)
	}
	imgui.EndTable()
}
