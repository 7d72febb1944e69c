package main

import (
	"github.com/spf13/cobra"

	"github.com/litescript/skywall/internal/wallpaper"
)

var wallpaperCmd = &cobra.Command{
	Use:   "wallpaper [image]",
	Short: "Render the chart and set it as the desktop wallpaper",
	Long: `Wallpaper renders the chart and installs it as the desktop background,
equivalent to "render --wallpaper". With an image argument no render
happens and the given file is set directly.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWallpaper,
}

func init() {
	rootCmd.AddCommand(wallpaperCmd)
}

func runWallpaper(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if len(args) == 1 {
		return wallpaper.Set(args[0], log)
	}

	if err := renderChart(cfg, log); err != nil {
		return err
	}
	return wallpaper.Set(cfg.Output.Path, log)
}
