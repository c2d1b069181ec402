// hustle is a terminal rendition of the startup trail: found a company,
// pick a pace, survive the events and drag your traction to the finish.
//
// Usage:
//
//	hustle list              - List available trail variants
//	hustle play [variant]    - Hit the trail (default: trail)
//	hustle menu              - Start menu to pick variants interactively
//	hustle serve             - Start SSH server for remote play
//	hustle runs [variant]    - Show the recorded run history
//	hustle profile           - Show or reset the saved founder profile
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Run history database (default: ~/.hustle/runs.db)
//	--save <path>   - Founder profile save file (default: hustle_save.json)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HC-Build/Hustle-Trail/internal/profile"

	// Import the game to register its variants
	_ "github.com/HC-Build/Hustle-Trail/internal/games/trail"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagSavePath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hustle",
	Short: "Hustle Trail - Survive the startup trail in your terminal",
	Long: `Hustle Trail is a terminal survival game. You found a startup,
answer six onboarding questions and set out on a 2000-mile trail of
pivots, burn and acquisition offers. Reach the end before the runway
dries up.

Available commands:
  list     - Show all trail variants
  play     - Hit the trail directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  runs     - View the recorded run history
  profile  - Show or reset the saved founder profile

Examples:
  hustle play
  hustle play trail_classic
  hustle menu
  hustle serve --ssh :2222
  hustle runs trail`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hustle/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagSavePath, "save", profile.DefaultPath, "Path to founder profile save file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(profileCmd)
}
