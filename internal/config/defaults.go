package config

import (
	"embed"
	"path"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// DefaultShooterConfig returns the classic shooter tuning.
// It is the last fallback when no YAML can be read.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		World: WorldConfig{
			CellWidth:  16,
			CellHeight: 32,
			FlushOrder: FlushUpdateFirst,
		},
		Render: RenderConfig{
			Style: StyleSprites,
		},
		Player: PlayerConfig{
			MoveSpeed: 200,
			Size:      32,
		},
		Gun: GunConfig{
			MaxAmmo:      5,
			ReloadTime:   0.5,
			FireCooldown: 0.25,
		},
		Bullet: BulletConfig{
			Speed:  500,
			Size:   16,
			MaxAge: 3,
		},
		NPC: NPCConfig{
			Size:         32,
			HitDistance:  32,
			EaseDistance: 1,
		},
		Spawn: SpawnConfig{
			Interval:   1,
			EdgeOffset: 0.6,
		},
		Difficulty: DifficultyConfig{
			BaseSpeed:         150,
			PerSpawnIncrement: 2,
		},
		Input: InputConfig{
			HoldMillis: 600,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a variant,
// or nil if the variant has none.
func GetDefaultYAML(variantID string) []byte {
	data, err := defaultsFS.ReadFile(path.Join("defaults", variantID+".yaml"))
	if err != nil {
		return nil
	}
	return data
}
