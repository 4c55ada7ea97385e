package parameter

// Debris field generation
const (
	DebrisBase     = 3
	DebrisPerLevel = 2

	// DebrisTaperLevel is the level past which the field shrinks again
	DebrisTaperLevel = 10
	DebrisMin        = 3

	DebrisRingRadius   = 25.0
	DebrisRadiusWobble = 4.0
	DebrisJitter       = 0.35
)

// SecondaryLevel is the first level with a secondary planet
const SecondaryLevel = 3

// Menu prompts
const (
	PromptPlay      = "Play"
	PromptNextLevel = "Next Level"
	PromptRetry     = "Retry"
)
