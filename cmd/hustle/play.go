package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/HC-Build/Hustle-Trail/internal/core"
	"github.com/HC-Build/Hustle-Trail/internal/games/trail"
	"github.com/HC-Build/Hustle-Trail/internal/platform/tui"
	"github.com/HC-Build/Hustle-Trail/internal/profile"
	"github.com/HC-Build/Hustle-Trail/internal/registry"
	"github.com/HC-Build/Hustle-Trail/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagQuestions  string
	flagFresh      bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Hit the trail",
	Long: `Start a run on the specified trail variant (default: trail).

Controls:
  W/S or Up/Down  - Navigate decision prompts
  1-5             - Pick an event or quiz option
  Z/X/C           - Set pace: steady, strenuous, grueling
  Space/F         - Take a hustle break (also starts the run)
  Enter           - Confirm
  P               - Pause
  R               - Restart (after the run ends)
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Calmer event cadence, gentler burn
  normal - The trail as designed
  hard   - Events crowd in, burn bites harder
  fixed  - No segment progression, the whole trail plays flat

Examples:
  hustle play
  hustle play trail_classic
  hustle play --difficulty hard
  hustle play --config ./my-trail.yaml --questions ./my-quiz.yaml
  hustle play --fresh`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom trail config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagQuestions, "questions", "", "Path to custom quiz pool YAML")
	playCmd.Flags().BoolVar(&flagFresh, "fresh", false, "Ignore the saved founder profile and onboard again")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "trail"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if the variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'hustle list' to see available variants.")
		os.Exit(1)
	}

	logger := log.New(os.Stderr)

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config, quiz and difficulty before creation; the game reads
	// them at Reset and silently falls back on unreadable files, so
	// warn here while stderr is still visible.
	if flagConfig != "" {
		if _, statErr := os.Stat(flagConfig); statErr != nil {
			logger.Warn("trail config not readable, using defaults", "path", flagConfig, "error", statErr)
		}
	}
	if flagQuestions != "" {
		if _, statErr := os.Stat(flagQuestions); statErr != nil {
			logger.Warn("quiz pool not readable, using defaults", "path", flagQuestions, "error", statErr)
		}
	}
	trail.SetConfigPath(flagConfig)
	trail.SetDifficultyPreset(flagDifficulty)
	trail.SetQuizPath(flagQuestions)

	// Load the saved founder profile; a broken or tampered save just
	// means onboarding runs again.
	saved, profErr := profile.Load(flagSavePath)
	if profErr != nil {
		logger.Warn("could not load founder profile", "error", profErr)
	}
	if flagFresh {
		saved.CompanyName = "" // forces onboarding; counters survive
	}
	if !saved.Empty() {
		trail.SetProfile(tui.FounderProfile(saved))
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open run history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database, history disabled", "error", err)
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg, tui.ModelOptions{
		SavePath: flagSavePath,
		Saved:    saved,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
