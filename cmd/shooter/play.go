package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

const defaultVariant = "shooter"

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: shooter).

Controls:
  W/A/S/D    - Move
  Arrows     - Fire up/left/down/right
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot to ~/.shooter/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower NPCs, gentler ramp, slower spawns
  normal - Variant defaults
  hard   - Faster NPCs, steeper ramp, quicker spawns, 3 rounds

Examples:
  shooter play
  shooter play shooter_quads
  shooter play shooter_rush --difficulty hard
  shooter play --config ./my-shooter.yaml --score-log ./runs.txt`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := defaultVariant
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'shooter list' to see available variants.")
		os.Exit(1)
	}

	if err := applyGameSettings(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		logger.Error("could not create game", "error", err)
		os.Exit(1)
	}

	rec := openRecorder()
	result, runErr := tui.Run(game, rec, runtimeConfig())
	closeRecorder(rec)

	reportWarnings(result.Warnings)
	if runErr != nil {
		logger.Error("game failed", "error", runErr)
		os.Exit(1)
	}

	fmt.Printf("Final score: %d\n", result.Score)
}
