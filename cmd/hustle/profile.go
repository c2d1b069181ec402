package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HC-Build/Hustle-Trail/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the saved founder profile",
	Long: `Display the founder profile saved from your last onboarding,
along with the aggregate run counters.

Examples:
  hustle profile
  hustle profile --save ./other_save.json
  hustle profile reset`,
	Run: runProfile,
}

var profileResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved founder profile",
	Long:  `Deletes the save file. The next run starts with onboarding.`,
	Run:   runProfileReset,
}

func init() {
	profileCmd.AddCommand(profileResetCmd)
}

func runProfile(cmd *cobra.Command, args []string) {
	saved, err := profile.Load(flagSavePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if saved.Empty() {
		fmt.Println("No founder profile saved yet.")
		fmt.Println()
		fmt.Println("Play 'hustle play' to found your company.")
		return
	}

	fmt.Println("Founder profile:")
	fmt.Println()
	fmt.Printf("  Company:       %s\n", saved.CompanyName)
	fmt.Printf("  Problem:       %s\n", saved.Problem)
	fmt.Printf("  Solution:      %s\n", saved.Solution)
	fmt.Printf("  Warm intro:    %s\n", yesNo(saved.WarmIntro))
	fmt.Printf("  Elite college: %s\n", yesNo(saved.EliteCollege))
	fmt.Println()
	fmt.Printf("  Runs played:   %d\n", saved.GamesPlayed)
	fmt.Printf("  Best traction: %d\n", saved.HighScore)
}

func runProfileReset(cmd *cobra.Command, args []string) {
	if err := profile.Reset(flagSavePath); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting profile: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Founder profile deleted. The next run starts fresh.")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
