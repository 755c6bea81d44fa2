package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// richnessForPreset returns the ore richness multiplier for a preset.
// Easier worlds spawn more ore, harder worlds less.
func richnessForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.6
	default:
		return 1.0
	}
}

// ApplyMinerPreset modifies the config based on a difficulty preset.
// Difficulty only affects world generation: upgrade costs and pickaxe
// recipes stay the same on every preset.
func ApplyMinerPreset(cfg *MinerConfig, preset DifficultyPreset) {
	cfg.Ores.Richness *= richnessForPreset(preset)
}
