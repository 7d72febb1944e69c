package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/litescript/skywall/internal/config"
	"github.com/litescript/skywall/internal/logging"
	"github.com/litescript/skywall/internal/ui"
	"github.com/litescript/skywall/internal/wallpaper"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Interactive terminal front end",
	Long: `UI opens a terminal form for the observer, time and output settings
and renders on demand, so a location or moment can be dialed in without
editing the config file.`,
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	// Console logging would fight the TUI for the terminal.
	log := logging.Discard()

	model := ui.New(cfg, func(c *config.Config) error {
		if err := renderChart(c, log); err != nil {
			return err
		}
		if c.Output.Wallpaper {
			return wallpaper.Set(c.Output.Path, log)
		}
		return nil
	})

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
