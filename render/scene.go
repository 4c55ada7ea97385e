package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sunshot/engine"
	"github.com/lixenwraith/sunshot/game"
	"github.com/lixenwraith/sunshot/parameter"
	"github.com/lixenwraith/sunshot/vmath"
)

// fillDisk draws an aspect-corrected disk of world radius r around p
func fillDisk(ctx RenderContext, buf *RenderBuffer, p vmath.Vec2, r float64, ch rune, style tcell.Style) {
	cx, cy, _ := ctx.WorldToScreen(p)
	ry := r * ctx.Scale
	rx := ry * ctx.Aspect
	if ry < 0.5 {
		return
	}
	for dy := -int(math.Ceil(ry)); dy <= int(math.Ceil(ry)); dy++ {
		for dx := -int(math.Ceil(rx)); dx <= int(math.Ceil(rx)); dx++ {
			nx, ny := float64(dx)/rx, float64(dy)/ry
			if nx*nx+ny*ny > 1 {
				continue
			}
			y := cy + dy
			if y < ctx.ViewTop || y >= ctx.ViewTop+ctx.ViewHeight {
				continue
			}
			buf.Set(cx+dx, y, ch, style)
		}
	}
}

// plot draws a single glyph when the point is inside the scene area
func plot(ctx RenderContext, buf *RenderBuffer, p vmath.Vec2, ch rune, style tcell.Style) (int, int, bool) {
	x, y, ok := ctx.WorldToScreen(p)
	if ok {
		buf.Set(x, y, ch, style)
	}
	return x, y, ok
}

// BodyRenderer draws the sun, the planet, the moon and the cannon
type BodyRenderer struct {
	game *game.Game
}

func NewBodyRenderer(g *game.Game) *BodyRenderer {
	return &BodyRenderer{game: g}
}

func (r *BodyRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	w := r.game.World()
	prox := w.Tuning.Proximity

	sun := w.PlanarPosition(w.Sun)
	fillDisk(ctx, buf, sun, prox.SunRadius, '░', fg(RgbSunCorona))
	plot(ctx, buf, sun, parameter.GlyphSun, fg(RgbSun).Bold(true))

	if w.Visible(w.Planet) {
		planet := w.PlanarPosition(w.Planet)
		fillDisk(ctx, buf, planet, prox.PlanetRadius, '▒', fg(RgbPlanet))
		plot(ctx, buf, planet, parameter.GlyphPlanet, fg(RgbPlanet).Bold(true))
		plot(ctx, buf, w.PlanarPosition(w.Cannon), parameter.GlyphCannon, fg(RgbCannon).Bold(true))
	}

	if w.Visible(w.Secondary) {
		secondary := w.PlanarPosition(w.Secondary)
		fillDisk(ctx, buf, secondary, prox.SecondaryRadius, '░', fg(RgbSecondary))
		plot(ctx, buf, secondary, parameter.GlyphSecondary, fg(RgbSecondary).Bold(true))
	}
}

// DebrisRenderer draws free and carried debris
type DebrisRenderer struct {
	game *game.Game
}

func NewDebrisRenderer(g *game.Game) *DebrisRenderer {
	return &DebrisRenderer{game: g}
}

func (r *DebrisRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	for _, d := range r.game.Debris() {
		style := fg(RgbDebris)
		if d.PickedUp {
			style = fg(RgbCrate)
		}
		plot(ctx, buf, d.Position, parameter.GlyphDebris, style)
	}
}

// CrateRenderer draws every live crate with its label
type CrateRenderer struct {
	game *game.Game
}

func NewCrateRenderer(g *game.Game) *CrateRenderer {
	return &CrateRenderer{game: g}
}

func (r *CrateRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	for _, p := range r.game.Projectiles() {
		glyph := parameter.GlyphCrate
		if p.Carrying > 0 {
			glyph = parameter.GlyphCrateHeavy
		}
		x, y, ok := plot(ctx, buf, p.Position, glyph, fg(RgbCrate).Bold(true))
		if ok && p.Launched {
			buf.SetString(x+2, y, p.Label, fg(RgbKillLog))
		}
	}
}

// GuideRenderer draws the predicted path of the loaded or flying crate
type GuideRenderer struct {
	game    *game.Game
	visible bool
}

func NewGuideRenderer(g *game.Game) *GuideRenderer {
	return &GuideRenderer{game: g, visible: true}
}

// Toggle flips the guide on or off
func (r *GuideRenderer) Toggle() { r.visible = !r.visible }

func (r *GuideRenderer) IsVisible() bool {
	return r.visible && r.game.Phase() != engine.PhaseMenu
}

func (r *GuideRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	points := r.game.Predict(parameter.PredictionSteps)
	for i := parameter.PredictionStride; i < len(points); i += parameter.PredictionStride {
		plot(ctx, buf, points[i], parameter.GlyphGuide, fg(RgbGuide))
	}
}
