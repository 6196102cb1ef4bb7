// shooter is a top-down arena shooter for the terminal: move with WASD,
// shoot with the arrow keys, survive the NPCs that keep spawning.
//
// Usage:
//
//	shooter list              - List available variants
//	shooter play [variant]    - Play a variant (default: shooter)
//	shooter menu              - Pick variants interactively
//	shooter serve             - Start SSH server for remote play
//	shooter scores <variant>  - Show high scores for a variant
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.shooter/scores.db)
//	--config <path>       - Load variant tuning from a YAML file
//	--difficulty <name>   - Apply a difficulty preset: easy, normal, hard
//	--score-log <path>    - Append finished runs to this file (default: highscores.txt)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/scorelog"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagScoreLog   string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "shooter",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Top Down Shooter - survive the horde in your terminal",
	Long: `Top Down Shooter is a terminal arena shooter. NPCs spawn just off
screen and chase you, a little faster each time. Shoot them before they
reach you; your score is the number of NPCs that spawned.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  shooter play
  shooter play shooter_rush --difficulty hard
  shooter menu
  shooter serve --ssh :2222
  shooter scores shooter`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.shooter/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to a custom variant config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagScoreLog, "score-log", scorelog.DefaultPath, "File every finished run is appended to")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// applyGameSettings passes --config and --difficulty to the variants.
func applyGameSettings() error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	shooter.SetConfigPath(flagConfig)
	shooter.SetDifficultyPreset(preset)
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openRecorder opens the score destinations. A database that cannot be
// opened is reported and skipped.
func openRecorder() *tui.Recorder {
	rec := &tui.Recorder{Log: scorelog.New(flagScoreLog)}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return rec
	}
	rec.Store = store
	return rec
}

func closeRecorder(rec *tui.Recorder) {
	if rec.Store != nil {
		rec.Store.Close()
	}
}

// reportWarnings logs the non-fatal errors of a finished session.
func reportWarnings(warnings []error) {
	for _, err := range warnings {
		logger.Warn("run finished with an error", "error", err)
	}
}
