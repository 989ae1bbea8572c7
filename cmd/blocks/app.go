package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blocks/config"
	"github.com/plus3/blocks/game"
	"github.com/plus3/blocks/input"
	"github.com/plus3/blocks/inspect"
	"github.com/plus3/blocks/loop"
	"go.uber.org/zap"
)

var layout = input.Layout[ebiten.Key]{
	Left:           ebiten.KeyArrowLeft,
	Right:          ebiten.KeyArrowRight,
	SoftDrop:       ebiten.KeyArrowDown,
	RotateCW:       ebiten.KeyX,
	RotateCCW:      ebiten.KeyZ,
	HardDrop:       ebiten.KeySpace,
	AltHardDrop:    ebiten.KeyArrowUp,
	HasAltHardDrop: true,
	Hold:           ebiten.KeyC,
}

// App implements ebiten.Game. Each Update runs one pass of the frame loop:
// poll the keyboard, then advance the session.
type App struct {
	settings config.Settings
	log      *zap.Logger
	state    *game.State
	bindings *input.Bindings[ebiten.Key]
	clock    *loop.Clock
	loop     *loop.Loop
	overlay  *inspect.Overlay

	triggers  []game.Trigger
	condition game.Condition
	lastFrame time.Duration
}

func newApp(settings config.Settings, logger *zap.Logger, debug bool) (*App, error) {
	a := &App{
		settings: settings,
		log:      logger,
		bindings: input.Standard(layout, settings.ShiftTiming(), settings.DropTiming()),
		clock:    loop.NewClock(nil),
	}
	if err := a.restart(); err != nil {
		return nil, err
	}

	a.loop = loop.New(a.clock)
	a.loop.RegisterFunc("input", a.pollInput)
	a.loop.RegisterFunc("simulate", a.simulate)

	if debug {
		a.overlay = inspect.NewOverlay("blocks (debug)", DebugWidth, DebugHeight, 120)
	}
	return a, nil
}

func (a *App) restart() error {
	state, err := game.New(a.settings.Game(),
		game.WithLogger(a.log.Named("game")),
		game.WithStartTime(a.clock.Now()),
	)
	if err != nil {
		return err
	}
	a.state = state
	a.condition = game.Playing
	a.bindings.Release()
	a.log.Info("session started", zap.Uint64("seed", a.settings.Seed))
	return nil
}

func (a *App) pollInput(frame *loop.Frame) {
	a.triggers = a.triggers[:0]
	if a.clock.Paused() || (a.overlay != nil && a.overlay.WantsKeyboard()) {
		return
	}
	a.triggers = append(a.triggers, a.bindings.Update(ebiten.IsKeyPressed, frame.Now)...)
}

func (a *App) simulate(frame *loop.Frame) {
	condition := a.state.Update(frame.Now, a.triggers)
	if condition != a.condition {
		a.condition = condition
		a.log.Info("session over",
			zap.Stringer("condition", condition),
			zap.Int("score", a.state.Score()),
			zap.Int("lines", a.state.Lines()),
			zap.Int("level", a.state.Level()),
		)
	}
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if !a.clock.Toggle() {
			a.bindings.Release()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := a.restart(); err != nil {
			return err
		}
	}

	now := a.clock.Now()
	a.loop.Once(now)

	if a.overlay != nil {
		a.overlay.Update(a.state, a.loop, now-a.lastFrame)
	}
	a.lastFrame = now
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	drawSession(screen, a.state.Snapshot(), a.clock.Paused())
	if a.overlay != nil {
		a.overlay.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.overlay != nil {
		a.overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
