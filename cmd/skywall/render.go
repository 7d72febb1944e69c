package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/litescript/skywall/internal/astro"
	"github.com/litescript/skywall/internal/chart"
	"github.com/litescript/skywall/internal/config"
	"github.com/litescript/skywall/internal/constellation"
	"github.com/litescript/skywall/internal/wallpaper"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the sky chart to a PNG",
	Long: `Render composes the full chart for the configured location and time
and writes it to the output path. With --wallpaper (or output.wallpaper
in the config) the saved image is also set as the desktop background.

Examples:
  # Render with the configured defaults
  skywall render

  # Tonight's sky over London, straight onto the desktop
  skywall render --lat 51.48 --lon -0.12 --name London \
      --timezone Europe/London --wallpaper

  # A specific moment
  skywall render --at "2026-04-26 22:00" --out eclipse.png`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().Float64("lat", 0, "observer latitude in degrees, north positive")
	renderCmd.Flags().Float64("lon", 0, "observer longitude in degrees, east positive")
	renderCmd.Flags().String("name", "", "location name shown on the chart")
	renderCmd.Flags().String("timezone", "", "IANA timezone for displayed times")
	renderCmd.Flags().String("at", "", `observation time as "2006-01-02 15:04" (default: now)`)
	renderCmd.Flags().StringP("out", "o", "", "output PNG path")
	renderCmd.Flags().Int("width", 0, "image width in pixels")
	renderCmd.Flags().Int("height", 0, "image height in pixels")
	renderCmd.Flags().BoolP("wallpaper", "w", false, "set the rendered image as the desktop wallpaper")

	// Flags override the config file only when actually set.
	_ = viper.BindPFlag("location.latitude", renderCmd.Flags().Lookup("lat"))
	_ = viper.BindPFlag("location.longitude", renderCmd.Flags().Lookup("lon"))
	_ = viper.BindPFlag("location.name", renderCmd.Flags().Lookup("name"))
	_ = viper.BindPFlag("location.timezone", renderCmd.Flags().Lookup("timezone"))
	_ = viper.BindPFlag("time.at", renderCmd.Flags().Lookup("at"))
	_ = viper.BindPFlag("output.path", renderCmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("output.width", renderCmd.Flags().Lookup("width"))
	_ = viper.BindPFlag("output.height", renderCmd.Flags().Lookup("height"))
	_ = viper.BindPFlag("output.wallpaper", renderCmd.Flags().Lookup("wallpaper"))
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := renderChart(cfg, log); err != nil {
		return err
	}
	if cfg.Output.Wallpaper {
		return wallpaper.Set(cfg.Output.Path, log)
	}
	return nil
}

// renderChart builds the chart options from the configuration and writes
// the PNG to the configured output path.
func renderChart(cfg *config.Config, log *zap.SugaredLogger) error {
	opts, err := buildChartOptions(cfg)
	if err != nil {
		return err
	}
	return chart.New(opts, log).RenderToFile(cfg.Output.Path)
}

// buildChartOptions resolves the configuration into the renderer's
// explicit options: timezone, observation time, catalogs and styling.
func buildChartOptions(cfg *config.Config) (chart.Options, error) {
	loc, err := cfg.Location.TimeLocation()
	if err != nil {
		return chart.Options{}, fmt.Errorf("resolve timezone: %w", err)
	}
	at, err := cfg.Time.Resolve(loc)
	if err != nil {
		return chart.Options{}, fmt.Errorf("resolve observation time: %w", err)
	}

	catalog := astro.DefaultStarCatalog()
	if cfg.Stars.CatalogPath != "" {
		catalog, err = astro.LoadCatalog(cfg.Stars.CatalogPath)
		if err != nil {
			return chart.Options{}, fmt.Errorf("load star catalog: %w", err)
		}
	}

	figures := constellation.DefaultFigures()
	if cfg.Constellations.LinesPath != "" {
		figures, err = constellation.LoadFigures(cfg.Constellations.LinesPath)
		if err != nil {
			return chart.Options{}, fmt.Errorf("load constellation figures: %w", err)
		}
	}

	styles := chart.DefaultPlanetStyles()
	for name, d := range cfg.Planets.Display {
		s := styles[name]
		if d.Color != "" {
			s.Color = d.Color
		}
		if d.TextColor != "" {
			s.TextColor = d.TextColor
		}
		if d.Symbol != "" {
			s.Symbol = d.Symbol
		}
		styles[name] = s
	}

	return chart.Options{
		Width:    cfg.Output.Width,
		Height:   cfg.Output.Height,
		Observer: cfg.Location.Observer(),
		Time:     at,
		Location: loc,
		Catalog:  catalog,
		Figures:  figures,
		Stars: chart.StarOptions{
			MagLimit:      cfg.Stars.MagLimit,
			LabelMagLimit: cfg.Stars.LabelMagLimit,
			MaxStars:      cfg.Stars.MaxStars,
			ShowMagnitude: cfg.Stars.ShowMagnitude,
		},
		Constellations: chart.ConstellationOptions{
			ShowOnly: cfg.Constellations.ShowOnly,
			Max:      cfg.Constellations.Max,
		},
		Planets: chart.PlanetOptions{
			Include: cfg.Planets.Include,
			Styles:  styles,
		},
		Lines: chart.LineOptions{
			Equator:  cfg.Lines.Equator,
			Ecliptic: cfg.Lines.Ecliptic,
		},
	}, nil
}
