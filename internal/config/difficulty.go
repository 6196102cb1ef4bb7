package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset.
// The empty string means "keep the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset adjusts the speed ramp and spawn rate for a preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.BaseSpeed *= 0.8
		cfg.Difficulty.PerSpawnIncrement /= 2
		cfg.Spawn.Interval *= 1.5
	case DifficultyHard:
		cfg.Difficulty.BaseSpeed *= 1.2
		cfg.Difficulty.PerSpawnIncrement *= 2
		cfg.Spawn.Interval *= 0.75
		if cfg.Gun.MaxAmmo > 3 {
			cfg.Gun.MaxAmmo = 3
		}
	}
}
