package shooter

import "github.com/vovakirdan/tui-shooter/internal/registry"

// Variants lists every registered flavor. Their tuning lives in the
// embedded config of the same ID.
var Variants = []Variant{
	{
		ID:          "shooter",
		Title:       "Top Down Shooter",
		Description: "Sprites, one NPC per second from just off-screen",
	},
	{
		ID:          "shooter_quads",
		Title:       "Top Down Shooter (Quads)",
		Description: "Colored blocks, slower spawns from further out",
	},
	{
		ID:          "shooter_rush",
		Title:       "Top Down Shooter (Rush)",
		Description: "Sparse spawns from far away, hits linger for a frame",
	},
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, v.Description, func() registry.Game {
			return New(v)
		})
	}
}
