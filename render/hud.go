package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/sunshot/engine"
	"github.com/lixenwraith/sunshot/game"
	"github.com/lixenwraith/sunshot/parameter"
)

// HUDRenderer draws the status bar, the menu prompt, the power meter and the kill log
type HUDRenderer struct {
	game  *game.Game
	audio func() bool
}

// NewHUDRenderer creates the HUD; audio reports whether sound is on, nil hides the marker
func NewHUDRenderer(g *game.Game, audio func() bool) *HUDRenderer {
	return &HUDRenderer{game: g, audio: audio}
}

func (r *HUDRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	r.drawStatusBar(ctx, buf)

	switch r.game.Phase() {
	case engine.PhaseMenu:
		r.drawPrompt(ctx, buf)
	case engine.PhaseChargingLaunch:
		r.drawPower(ctx, buf)
	}

	r.drawKillLog(ctx, buf)
}

func (r *HUDRenderer) drawStatusBar(ctx RenderContext, buf *RenderBuffer) {
	for x := 0; x < ctx.ScreenWidth; x++ {
		buf.Set(x, 0, ' ', StyleStatus)
	}
	text := fmt.Sprintf(" Level %d  Score %d  Shots %d  %s ",
		r.game.Level(), r.game.Score(), r.game.Shots(), r.game.Phase())
	x := buf.SetString(0, 0, text, StyleStatus.Bold(true))
	if r.audio != nil && r.audio() {
		buf.SetString(x, 0, parameter.AudioStr, StyleStatus)
	}
}

func (r *HUDRenderer) drawPrompt(ctx RenderContext, buf *RenderBuffer) {
	text := "[ " + r.game.MenuPrompt() + " ]"
	x := (ctx.ScreenWidth - len([]rune(text))) / 2
	y := ctx.ViewTop + ctx.ViewHeight/2
	buf.SetString(x, y, text, fg(RgbPrompt).Bold(true))
}

func (r *HUDRenderer) drawPower(ctx RenderContext, buf *RenderBuffer) {
	maxCharge := r.game.World().Tuning.Launch.MaxCharge
	power := r.game.LaunchPower().Seconds()
	frac := 0.0
	if maxCharge > 0 {
		frac = power / maxCharge
	}

	y := ctx.ScreenHeight - parameter.BottomMargin
	x := buf.SetString(1, y, "Power ", fg(RgbPrompt))
	const width = 20
	filled := int(frac*width + 0.5)
	if filled > width {
		filled = width
	}
	for i := 0; i < width; i++ {
		if i < filled {
			buf.Set(x+i, y, parameter.GlyphPowerFill, fg(powerColor(float64(i)/width)))
		} else {
			buf.Set(x+i, y, parameter.GlyphPowerEmpty, fg(RgbGuide))
		}
	}
	buf.SetString(x+width+1, y, fmt.Sprintf("%.2fs", power), fg(RgbPrompt))
}

func (r *HUDRenderer) drawKillLog(ctx RenderContext, buf *RenderBuffer) {
	log := r.game.KillLog()
	if len(log) == 0 {
		return
	}
	if len(log) > parameter.KillLogLines {
		log = log[len(log)-parameter.KillLogLines:]
	}
	y := ctx.ScreenHeight - 1
	buf.SetString(1, y, "Log: "+strings.Join(log, ", "), fg(RgbKillLog))
}
