package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change journal settings",
}

var darkModeCmd = &cobra.Command{
	Use:   "dark-mode [on|off]",
	Short: "Show or set the dark-mode display preference",
	Long: `Dark mode is a global display preference (not per-user). With no
argument the current setting is printed.

Examples:
  fxjournal settings dark-mode
  fxjournal settings dark-mode on`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE:      runDarkMode,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(darkModeCmd)
}

func runDarkMode(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		on, err := store.DarkMode()
		if err != nil {
			return err
		}
		if on {
			fmt.Println("enabled")
		} else {
			fmt.Println("disabled")
		}
		return nil
	}

	switch args[0] {
	case "on":
		if err := store.SetDarkMode(true); err != nil {
			return err
		}
		fmt.Println("Dark mode enabled")
	case "off":
		if err := store.SetDarkMode(false); err != nil {
			return err
		}
		fmt.Println("Dark mode disabled")
	default:
		return fmt.Errorf("dark-mode: want on or off, got %q", args[0])
	}
	return nil
}
