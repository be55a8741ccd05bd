package trex

import (
	"math"

	"github.com/vovakirdan/trex-runner/internal/core"
)

// Visual characters for rendering
const (
	RunnerBody   = '█'
	RunnerEye    = '▀'
	RunnerLeg1   = '╱'
	RunnerLeg2   = '╲'
	ObstacleChar = '▓'
	CloudChar    = '░'
	GroundChar   = '─'
	GroundDash   = '╌'
)

// Render draws a scene into the screen buffer, scaling world units to cells.
func Render(sc Scene, dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || sc.WorldWidth <= 0 || sc.WorldHeight <= 0 {
		return
	}

	v := viewport{
		sx: float64(dst.Width()) / sc.WorldWidth,
		sy: float64(dst.Height()) / sc.WorldHeight,
	}

	for _, c := range sc.Clouds {
		x0, y0, x1, y1 := v.cells(c)
		dst.DrawRect(x0, y0, x1-x0, y1-y0, CloudChar, core.ColorDarkGray)
	}

	drawGround(dst, v, sc)
	drawRunner(dst, v, sc.Runner)
	for _, o := range sc.Obstacles {
		x0, y0, x1, y1 := v.cells(o.Box)
		dst.DrawRect(x0, y0, x1-x0, y1-y0, ObstacleChar, core.ColorGreen)
	}

	hud, hudColor := sc.HUD(), core.ColorGray
	if sc.Score > 0 && sc.Score >= sc.HighScore {
		hudColor = core.ColorYellow // New record
	}
	dst.DrawTextColored(dst.Width()-len(hud)-1, 0, hud, hudColor)

	drawOverlay(dst, sc.Overlay())
}

// viewport maps world coordinates to screen cells.
type viewport struct {
	sx, sy float64
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return int(math.Floor(y * v.sy))
}

// cells returns the half-open cell rectangle covered by a box, at least one cell in size.
func (v viewport) cells(b core.Box) (x0, y0, x1, y1 int) {
	x0, y0 = v.col(b.X), v.row(b.Y)
	x1, y1 = v.col(b.Right()), v.row(b.Bottom())
	x1 = core.Max(x1, x0+1)
	y1 = core.Max(y1, y0+1)
	return x0, y0, x1, y1
}

// drawGround draws the baseline and the scrolling dash pattern under it.
func drawGround(dst *core.Screen, v viewport, sc Scene) {
	gy := v.row(sc.GroundY)
	dst.DrawHLine(0, gy, dst.Width(), GroundChar, core.ColorGray)

	if sc.SegmentWidth <= 0 {
		return
	}
	for x := -sc.GroundOffset; x < sc.WorldWidth; x += sc.SegmentWidth {
		start := v.col(x)
		length := core.Max(v.col(x+sc.SegmentWidth/2)-start, 1)
		dst.DrawHLine(start, gy+1, length, GroundDash, core.ColorDarkGray)
	}
}

// drawRunner renders the player: a solid body with legs on the bottom row.
func drawRunner(dst *core.Screen, v viewport, r RunnerView) {
	x0, y0, x1, y1 := v.cells(r.Box)
	legs := y1 - 1
	if legs > y0 {
		dst.DrawRect(x0, y0, x1-x0, legs-y0, RunnerBody, core.ColorBrightWhite)
		dst.SetColored(x1-1, y0, RunnerEye, core.ColorBrightWhite)
	}

	if !r.Grounded {
		// Airborne - legs tucked together
		dst.SetColored(x0, legs, RunnerLeg1, core.ColorBrightWhite)
		dst.SetColored(x0+1, legs, RunnerLeg2, core.ColorBrightWhite)
		return
	}
	if r.LegPhase == 0 {
		dst.SetColored(x0, legs, RunnerLeg1, core.ColorBrightWhite)
		dst.SetColored(x1-1, legs, RunnerLeg2, core.ColorBrightWhite)
	} else {
		dst.SetColored(x0+1, legs, RunnerLeg1, core.ColorBrightWhite)
		dst.SetColored(x1-2, legs, RunnerLeg2, core.ColorBrightWhite)
	}
}

// drawOverlay draws phase text centred on the screen.
func drawOverlay(dst *core.Screen, ov Overlay) {
	if len(ov.Lines) == 0 {
		return
	}

	// Row 0 belongs to the HUD and the panel border sits above the text.
	top := core.Clamp((dst.Height()-len(ov.Lines))/2, 1, dst.Height())
	if ov.Panel {
		width := 0
		for _, l := range ov.Lines {
			width = core.Max(width, len([]rune(l)))
		}
		boxW, boxH := width+6, len(ov.Lines)+2
		boxX := (dst.Width() - boxW) / 2
		dst.DrawRect(boxX, top-1, boxW, boxH, ' ', core.ColorDefault)
		dst.DrawBox(boxX, top-1, boxW, boxH, core.ColorGray)
	}
	for i, l := range ov.Lines {
		dst.DrawTextCentered(top+i, l, core.ColorWhite)
	}
}
