package render

import "github.com/lixenwraith/sunshot/game"

// NewGameView registers the full scene for g on the canvas
func NewGameView(canvas Canvas, g *game.Game, audio func() bool) (*RenderOrchestrator, *GuideRenderer) {
	o := NewRenderOrchestrator(canvas)
	guide := NewGuideRenderer(g)
	o.Register(NewHUDRenderer(g, audio), PriorityUI)
	o.Register(guide, PriorityGuide)
	o.Register(NewBodyRenderer(g), PriorityBodies)
	o.Register(NewDebrisRenderer(g), PriorityDebris)
	o.Register(NewCrateRenderer(g), PriorityCrates)
	return o, guide
}
