package render

import (
	"math"

	"github.com/lixenwraith/sunshot/parameter"
	"github.com/lixenwraith/sunshot/vmath"
)

// RenderContext provides frame geometry for renderers, passed by value
type RenderContext struct {
	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Scene area between the status bar and the bottom HUD lines
	ViewTop    int
	ViewHeight int

	// Rows per world unit; columns per unit is Scale*Aspect
	Scale  float64
	Aspect float64

	// World point at the centre of the scene area
	Center vmath.Vec2
}

// NewRenderContext fits the fixed world viewport into the terminal
func NewRenderContext(width, height int) RenderContext {
	viewHeight := height - parameter.TopMargin - parameter.BottomMargin
	if viewHeight < 1 {
		viewHeight = 1
	}

	scale := float64(viewHeight) / (2 * parameter.ViewHalfExtent)
	// Narrow terminals bound the scale horizontally
	if maxX := float64(width) / (2 * parameter.ViewHalfExtent * parameter.CellAspect); maxX < scale {
		scale = maxX
	}

	return RenderContext{
		ScreenWidth:  width,
		ScreenHeight: height,
		ViewTop:      parameter.TopMargin,
		ViewHeight:   viewHeight,
		Scale:        scale,
		Aspect:       parameter.CellAspect,
		Center:       vmath.Vec2{X: parameter.ViewCenterX, Y: parameter.ViewCenterY},
	}
}

// WorldToScreen projects a planar world point to a cell; world +Y is screen up
// Returns visible=false outside the scene area
func (rc *RenderContext) WorldToScreen(p vmath.Vec2) (int, int, bool) {
	sx := rc.ScreenWidth/2 + int(math.Round((p.X-rc.Center.X)*rc.Scale*rc.Aspect))
	sy := rc.ViewTop + rc.ViewHeight/2 - int(math.Round((p.Y-rc.Center.Y)*rc.Scale))
	visible := sx >= 0 && sx < rc.ScreenWidth && sy >= rc.ViewTop && sy < rc.ViewTop+rc.ViewHeight
	return sx, sy, visible
}

// ScreenToAim maps a screen column to an aim in [-1, 1], centre column is 0
func (rc *RenderContext) ScreenToAim(x int) float64 {
	half := float64(rc.ScreenWidth) / 2
	if half <= 0 {
		return 0
	}
	return vmath.Clamp((float64(x)-half)/half, -1, 1)
}
