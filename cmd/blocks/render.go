package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blocks/field"
	"github.com/plus3/blocks/game"
	"github.com/plus3/blocks/grid"
	"github.com/plus3/blocks/shape"
)

const (
	CellSize = 28
	OffsetX  = 30
	OffsetY  = 40
	PanelX   = OffsetX + field.Width*CellSize + 24
)

var shapeColors = [shape.Count]color.RGBA{
	shape.I: {102, 191, 255, 255},
	shape.O: {255, 203, 0, 255},
	shape.J: {0, 121, 241, 255},
	shape.L: {255, 161, 0, 255},
	shape.S: {0, 228, 48, 255},
	shape.Z: {230, 41, 55, 255},
	shape.T: {200, 122, 255, 255},
}

var (
	background = color.RGBA{16, 16, 20, 255}
	boardColor = color.RGBA{30, 30, 36, 255}
	bufferTint = color.RGBA{44, 44, 52, 255}
	gridLine   = color.RGBA{0, 0, 0, 255}
	clearFlash = color.RGBA{240, 240, 240, 255}
)

// cellRect returns the screen rectangle of board cell p. Row 0 is at the
// bottom of the board.
func cellRect(p grid.Pos) (x, y float32) {
	return float32(OffsetX + p.X*CellSize), float32(OffsetY + (field.VisibleHeight-1-p.Y)*CellSize)
}

func drawSession(screen *ebiten.Image, snap game.Snapshot, paused bool) {
	screen.Fill(background)
	vector.DrawFilledRect(screen, OffsetX, OffsetY, field.Width*CellSize, field.VisibleHeight*CellSize, boardColor, false)

	for y := range snap.Cells {
		for x, cell := range snap.Cells[y] {
			drawCell(screen, grid.P(x, y), cell)
		}
	}
	vector.StrokeRect(screen, OffsetX-2, OffsetY-2, field.Width*CellSize+4, field.VisibleHeight*CellSize+4, 2, color.Gray{Y: 128}, false)

	drawPanel(screen, snap)

	switch {
	case snap.Condition == game.Lost:
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press R to restart", OffsetX+20, OffsetY+field.VisibleHeight*CellSize/2)
	case snap.Condition == game.Won:
		ebitenutil.DebugPrintAt(screen, "YOU WIN - press R to play again", OffsetX+20, OffsetY+field.VisibleHeight*CellSize/2)
	case paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED - press P to resume", OffsetX+40, OffsetY+field.VisibleHeight*CellSize/2)
	}
}

func drawCell(screen *ebiten.Image, p grid.Pos, cell game.Cell) {
	x, y := cellRect(p)
	switch cell.Kind {
	case game.CellEmpty:
	case game.CellOutOfPlay:
		vector.DrawFilledRect(screen, x, y, CellSize, CellSize, bufferTint, false)
	case game.CellGhost:
		c := shapeColors[cell.Shape]
		c.A = 80
		vector.DrawFilledRect(screen, x, y, CellSize, CellSize, c, false)
	case game.CellClearing:
		vector.DrawFilledRect(screen, x, y, CellSize, CellSize, clearFlash, false)
	default:
		vector.DrawFilledRect(screen, x, y, CellSize, CellSize, shapeColors[cell.Shape], false)
		vector.StrokeRect(screen, x, y, CellSize, CellSize, 1, gridLine, false)
	}
}

func drawPanel(screen *ebiten.Image, snap game.Snapshot) {
	ebitenutil.DebugPrintAt(screen, "SCORE", PanelX, OffsetY)
	ebitenutil.DebugPrintAt(screen, fmt.Sprint(snap.Score), PanelX, OffsetY+16)
	ebitenutil.DebugPrintAt(screen, "LEVEL", PanelX, OffsetY+48)
	ebitenutil.DebugPrintAt(screen, fmt.Sprint(snap.Level), PanelX, OffsetY+64)
	ebitenutil.DebugPrintAt(screen, "LINES", PanelX, OffsetY+96)
	ebitenutil.DebugPrintAt(screen, fmt.Sprint(snap.Lines), PanelX, OffsetY+112)

	ebitenutil.DebugPrintAt(screen, "HOLD", PanelX, OffsetY+152)
	if snap.HasHeld {
		c := shapeColors[snap.Held]
		if !snap.CanHold {
			c.A = 96
		}
		drawPreview(screen, snap.Held, PanelX, OffsetY+172, c)
	}

	ebitenutil.DebugPrintAt(screen, "NEXT", PanelX, OffsetY+240)
	for i, sh := range snap.Previews {
		drawPreview(screen, sh, PanelX, OffsetY+260+i*56, shapeColors[sh])
	}
}

const previewCell = 12

// drawPreview draws sh in its spawn orientation with its top-left corner
// at (left, top).
func drawPreview(screen *ebiten.Image, sh shape.Shape, left, top int, c color.RGBA) {
	for _, p := range sh.Preview().Positions() {
		x := float32(left + p.X*previewCell)
		y := float32(top + (1-p.Y)*previewCell)
		vector.DrawFilledRect(screen, x, y, previewCell, previewCell, c, false)
		vector.StrokeRect(screen, x, y, previewCell, previewCell, 1, gridLine, false)
	}
}
