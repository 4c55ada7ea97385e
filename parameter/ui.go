package parameter

// Layout & Margins
const (
	// TopMargin holds the level/score/phase bar
	TopMargin = 1

	// BottomMargin holds the power meter and kill log lines
	BottomMargin = 2

	// KillLogLines is how many recent kill log entries the HUD shows
	KillLogLines = 4
)

// World viewport, in world units; the view is centred between sun and planet
const (
	ViewCenterX    = 0.0
	ViewCenterY    = 7.0
	ViewHalfExtent = 38.0

	// CellAspect is terminal cell height over width
	CellAspect = 2.0

	// PredictionSteps is the number of fixed steps drawn as the aim guide
	PredictionSteps = 120

	// PredictionStride draws every Nth predicted point
	PredictionStride = 4
)

// UI Symbols
const (
	AudioStr = "♫ "

	GlyphSun        = '☼'
	GlyphPlanet     = '●'
	GlyphSecondary  = 'o'
	GlyphCannon     = '^'
	GlyphCrate      = '■'
	GlyphCrateHeavy = '▣'
	GlyphDebris     = '*'
	GlyphGuide      = '·'
	GlyphPowerFill  = '█'
	GlyphPowerEmpty = '░'
)
