// Package config loads and validates the skywall configuration file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/litescript/skywall/internal/astro"
)

// Config is the complete skywall configuration.
type Config struct {
	Location       LocationConfig       `mapstructure:"location"`
	Time           TimeConfig           `mapstructure:"time"`
	Stars          StarsConfig          `mapstructure:"stars"`
	Constellations ConstellationsConfig `mapstructure:"constellations"`
	Planets        PlanetsConfig        `mapstructure:"planets"`
	Lines          LinesConfig          `mapstructure:"lines"`
	Output         OutputConfig         `mapstructure:"output"`
	Logging        LoggingConfig        `mapstructure:"logging"`
}

// LocationConfig is the observer site.
type LocationConfig struct {
	// Latitude in degrees, north positive
	Latitude float64 `mapstructure:"latitude"`
	// Longitude in degrees, east positive
	Longitude float64 `mapstructure:"longitude"`
	// ElevationM is the site elevation above sea level in meters
	ElevationM float64 `mapstructure:"elevation_m"`
	// Name shown in the chart's location panel
	Name string `mapstructure:"name"`
	// Timezone is the IANA timezone name, e.g. "Australia/Brisbane"
	Timezone string `mapstructure:"timezone"`
}

// TimeConfig selects the observation time.
type TimeConfig struct {
	// At is the local observation time as "2006-01-02 15:04".
	// Empty means now.
	At string `mapstructure:"at"`
}

// StarsConfig controls star selection and labeling.
type StarsConfig struct {
	// MagLimit is the faintest apparent magnitude drawn (default: 6.5,
	// the naked-eye limit)
	MagLimit float64 `mapstructure:"mag_limit"`
	// LabelMagLimit labels stars brighter than this (default: 1.5)
	LabelMagLimit float64 `mapstructure:"label_mag_limit"`
	// MaxStars caps the number of stars drawn (0 = no cap)
	MaxStars int `mapstructure:"max_stars"`
	// ShowMagnitude appends "m=x.xx" to star labels
	ShowMagnitude bool `mapstructure:"show_magnitude"`
	// CatalogPath is an optional BSC-format JSON star catalog; empty
	// uses the embedded catalog
	CatalogPath string `mapstructure:"catalog_path"`
}

// ConstellationsConfig controls which figures are drawn.
type ConstellationsConfig struct {
	// Max caps the number of figures drawn (0 = no cap)
	Max int `mapstructure:"max"`
	// ShowOnly restricts drawing to these IAU abbreviations (empty = all)
	ShowOnly []string `mapstructure:"show_only"`
	// LinesPath is an optional GeoJSON figure file; empty uses the
	// embedded figures
	LinesPath string `mapstructure:"lines_path"`
}

// PlanetDisplay styles one planet.
type PlanetDisplay struct {
	Color     string `mapstructure:"color"`
	TextColor string `mapstructure:"text_color"`
	Symbol    string `mapstructure:"symbol"`
}

// PlanetsConfig selects and styles the planets.
type PlanetsConfig struct {
	// Include lists planets to draw (empty = all)
	Include []string `mapstructure:"include"`
	// Display overrides the per-planet color/label scheme
	Display map[string]PlanetDisplay `mapstructure:"display"`
}

// LinesConfig toggles the celestial reference lines.
type LinesConfig struct {
	Equator  bool `mapstructure:"equator"`
	Ecliptic bool `mapstructure:"ecliptic"`
}

// OutputConfig controls the rendered image.
type OutputConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Path   string `mapstructure:"path"`
	// Wallpaper sets the saved image as the desktop wallpaper
	Wallpaper bool `mapstructure:"wallpaper"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is the log level: "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
}

// Observer converts the location to an astro observer.
func (l LocationConfig) Observer() astro.Observer {
	return astro.Observer{
		LatDeg: l.Latitude,
		LonDeg: l.Longitude,
		ElevM:  l.ElevationM,
		Name:   l.Name,
	}
}

// TimeLocation resolves the configured timezone, defaulting to the
// system's local zone when unset.
func (l LocationConfig) TimeLocation() (*time.Location, error) {
	if l.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(l.Timezone)
}

// timeLayout is the accepted observation time format.
const timeLayout = "2006-01-02 15:04"

// Resolve returns the observation time in the given zone, or the
// current time when unset.
func (t TimeConfig) Resolve(loc *time.Location) (time.Time, error) {
	if t.At == "" {
		return time.Now().In(loc), nil
	}
	return time.ParseInLocation(timeLayout, t.At, loc)
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Location: LocationConfig{
			Latitude:   -27.47,
			Longitude:  153.02,
			ElevationM: 0,
			Name:       "Brisbane",
			Timezone:   "Australia/Brisbane",
		},
		Time: TimeConfig{
			At: "",
		},
		Stars: StarsConfig{
			MagLimit:      6.5,
			LabelMagLimit: 1.5,
			MaxStars:      0,
			ShowMagnitude: true,
			CatalogPath:   "",
		},
		Constellations: ConstellationsConfig{
			Max:       0,
			ShowOnly:  []string{},
			LinesPath: "",
		},
		Planets: PlanetsConfig{
			Include: []string{"Mercury", "Venus", "Mars", "Jupiter", "Saturn"},
			Display: map[string]PlanetDisplay{},
		},
		Lines: LinesConfig{
			Equator:  false,
			Ecliptic: false,
		},
		Output: OutputConfig{
			Width:     3840,
			Height:    2160,
			Path:      "skywall.png",
			Wallpaper: false,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers default values with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("location.latitude", defaults.Location.Latitude)
	viper.SetDefault("location.longitude", defaults.Location.Longitude)
	viper.SetDefault("location.elevation_m", defaults.Location.ElevationM)
	viper.SetDefault("location.name", defaults.Location.Name)
	viper.SetDefault("location.timezone", defaults.Location.Timezone)

	viper.SetDefault("time.at", defaults.Time.At)

	viper.SetDefault("stars.mag_limit", defaults.Stars.MagLimit)
	viper.SetDefault("stars.label_mag_limit", defaults.Stars.LabelMagLimit)
	viper.SetDefault("stars.max_stars", defaults.Stars.MaxStars)
	viper.SetDefault("stars.show_magnitude", defaults.Stars.ShowMagnitude)
	viper.SetDefault("stars.catalog_path", defaults.Stars.CatalogPath)

	viper.SetDefault("constellations.max", defaults.Constellations.Max)
	viper.SetDefault("constellations.show_only", defaults.Constellations.ShowOnly)
	viper.SetDefault("constellations.lines_path", defaults.Constellations.LinesPath)

	viper.SetDefault("planets.include", defaults.Planets.Include)
	viper.SetDefault("planets.display", defaults.Planets.Display)

	viper.SetDefault("lines.equator", defaults.Lines.Equator)
	viper.SetDefault("lines.ecliptic", defaults.Lines.Ecliptic)

	viper.SetDefault("output.width", defaults.Output.Width)
	viper.SetDefault("output.height", defaults.Output.Height)
	viper.SetDefault("output.path", defaults.Output.Path)
	viper.SetDefault("output.wallpaper", defaults.Output.Wallpaper)

	viper.SetDefault("logging.level", defaults.Logging.Level)
}

// Load reads the configuration from viper into a Config struct and
// validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "skywall")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".skywall"
	}
	return filepath.Join(home, ".config", "skywall")
}

// ConfigFile returns the path to the config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
