package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
	RgbSun        = tcell.NewRGBColor(255, 200, 40)
	RgbSunCorona  = tcell.NewRGBColor(255, 120, 20)
	RgbPlanet     = tcell.NewRGBColor(80, 160, 255)
	RgbSecondary  = tcell.NewRGBColor(170, 170, 190)
	RgbCannon     = tcell.NewRGBColor(255, 165, 0)
	RgbCrate      = tcell.NewRGBColor(230, 230, 230)
	RgbDebris     = tcell.NewRGBColor(150, 120, 90)
	RgbGuide      = tcell.NewRGBColor(90, 90, 110)
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)
	RgbStatusBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbPowerLow   = tcell.NewRGBColor(0, 200, 0)
	RgbPowerHigh  = tcell.NewRGBColor(255, 80, 80)
	RgbKillLog    = tcell.NewRGBColor(180, 180, 180)
	RgbPrompt     = tcell.NewRGBColor(255, 255, 255)
)

var (
	StyleBackground = tcell.StyleDefault.Background(RgbBackground)
	StyleStatus     = tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBg)
)

// fg returns a foreground style over the scene background
func fg(c tcell.Color) tcell.Style {
	return StyleBackground.Foreground(c)
}

// powerColor blends from green to red as t goes 0 to 1
func powerColor(t float64) tcell.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lr, lg, lb := RgbPowerLow.RGB()
	hr, hg, hb := RgbPowerHigh.RGB()
	mix := func(a, b int32) int32 { return a + int32(float64(b-a)*t) }
	return tcell.NewRGBColor(mix(lr, hr), mix(lg, hg), mix(lb, hb))
}
