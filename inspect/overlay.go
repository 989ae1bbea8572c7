package inspect

import (
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blocks/game"
	"github.com/plus3/blocks/loop"
)

// Overlay hosts an Inspector on the ebiten Dear ImGui backend. The backend
// owns the ebiten window, so an Overlay must be created before
// ebiten.RunGame.
type Overlay struct {
	backend   *ebitenbackend.EbitenBackend
	inspector *Inspector
}

// NewOverlay creates the ImGui context and configures the window.
func NewOverlay(title string, width, height, historyFrames int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &Overlay{backend: backend, inspector: New(historyFrames)}
}

// Update builds this frame's windows. Call it from ebiten.Game.Update.
func (o *Overlay) Update(s *game.State, l *loop.Loop, dt time.Duration) {
	o.backend.BeginFrame()
	o.inspector.Render(s, l, dt)
	o.backend.EndFrame()
}

// Draw renders the windows on top of screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(width, height int) {
	o.backend.Layout(width, height)
}

// WantsKeyboard reports whether an ImGui widget has keyboard focus, in
// which case game input should be ignored.
func (o *Overlay) WantsKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}
