package main

import (
	"fmt"
	"os"
	"time"

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

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Hustle Trail with a variant picker menu",
	Long: `Start the game in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a run ends, you return to the menu to ride again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Run history
  Q            - Quit

Examples:
  hustle menu
  hustle menu --fps 30
  hustle menu --db ./runs.db`,
	Run: runMenu,
}

func init() {
	// Uses global flags from main.go (--fps, --seed, --db, --save)
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := log.New(os.Stderr)

	// Open run history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database, history disabled", "error", err)
		store = nil
	}

	// Load the saved founder profile once; runs may rewrite it
	saved, profErr := profile.Load(flagSavePath)
	if profErr != nil {
		logger.Warn("could not load founder profile", "error", profErr)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
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

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants the run history
		if menuResult.WantsHistory {
			goBack, histErr := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if histErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", histErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from the history
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		// Seed the saved founder so returning players skip onboarding
		if !saved.Empty() {
			trail.SetProfile(tui.FounderProfile(saved))
		}

		// Create game instance
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Update seed for each run
		cfg.Seed = time.Now().UnixNano()

		// Run the game
		if err := tui.Run(game, store, cfg, tui.ModelOptions{
			SavePath: flagSavePath,
			Saved:    saved,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Onboarding may have just written the save, pick it up
		saved, _ = profile.Load(flagSavePath)

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
