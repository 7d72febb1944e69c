package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestDefaults(t *testing.T) {
	resetViper(t)
	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with defaults: %v", err)
	}

	if cfg.Stars.MagLimit != 6.5 {
		t.Errorf("Stars.MagLimit = %f, want 6.5", cfg.Stars.MagLimit)
	}
	if cfg.Output.Width != 3840 || cfg.Output.Height != 2160 {
		t.Errorf("output size = %dx%d, want 3840x2160", cfg.Output.Width, cfg.Output.Height)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Output.Wallpaper {
		t.Error("Wallpaper should default to off")
	}
}

func TestLoadFromFile(t *testing.T) {
	resetViper(t)

	data := `
location:
  latitude: 51.48
  longitude: -0.12
  name: London
  timezone: Europe/London
stars:
  mag_limit: 4.5
  show_magnitude: false
constellations:
  max: 10
  show_only: [Ori, UMa]
lines:
  equator: true
output:
  width: 1920
  height: 1080
  path: sky.png
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	SetDefaults()
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Location.Name != "London" || cfg.Location.Latitude != 51.48 {
		t.Errorf("location = %+v", cfg.Location)
	}
	if cfg.Stars.MagLimit != 4.5 {
		t.Errorf("Stars.MagLimit = %f, want 4.5", cfg.Stars.MagLimit)
	}
	if cfg.Stars.ShowMagnitude {
		t.Error("ShowMagnitude should be overridden to false")
	}
	if len(cfg.Constellations.ShowOnly) != 2 || cfg.Constellations.ShowOnly[0] != "Ori" {
		t.Errorf("ShowOnly = %v", cfg.Constellations.ShowOnly)
	}
	if !cfg.Lines.Equator {
		t.Error("Lines.Equator should be true")
	}
	// Values absent from the file keep their defaults.
	if cfg.Stars.LabelMagLimit != 1.5 {
		t.Errorf("LabelMagLimit = %f, want default 1.5", cfg.Stars.LabelMagLimit)
	}
	if cfg.Output.Path != "sky.png" {
		t.Errorf("Output.Path = %q", cfg.Output.Path)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "latitude out of range",
			mutate:  func(c *Config) { c.Location.Latitude = 123 },
			wantErr: "location.latitude",
		},
		{
			name:    "longitude out of range",
			mutate:  func(c *Config) { c.Location.Longitude = -500 },
			wantErr: "location.longitude",
		},
		{
			name:    "bad timezone",
			mutate:  func(c *Config) { c.Location.Timezone = "Mars/Olympus" },
			wantErr: "location.timezone",
		},
		{
			name:    "bad time format",
			mutate:  func(c *Config) { c.Time.At = "yesterday" },
			wantErr: "time.at",
		},
		{
			name:    "unknown planet",
			mutate:  func(c *Config) { c.Planets.Include = []string{"Vulcan"} },
			wantErr: "planets.include",
		},
		{
			name:    "zero width",
			mutate:  func(c *Config) { c.Output.Width = 0 },
			wantErr: "output.width",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			errs := cfg.Validate()
			if len(errs) == 0 {
				t.Fatal("expected a validation error")
			}
			found := false
			for _, e := range errs {
				if strings.Contains(e.Error(), tt.wantErr) {
					found = true
				}
			}
			if !found {
				t.Errorf("errors %v do not mention %q", errs, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	if errs := Default().Validate(); len(errs) != 0 {
		t.Errorf("default config should validate cleanly, got %v", errs)
	}
}

func TestTimeResolve(t *testing.T) {
	loc, err := Default().Location.TimeLocation()
	if err != nil {
		t.Fatalf("TimeLocation: %v", err)
	}

	tc := TimeConfig{At: "2026-04-26 22:00"}
	got, err := tc.Resolve(loc)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Hour() != 22 || got.Location() != loc {
		t.Errorf("Resolve = %v, want 22:00 in %v", got, loc)
	}

	now, err := TimeConfig{}.Resolve(loc)
	if err != nil {
		t.Fatalf("Resolve empty: %v", err)
	}
	if now.IsZero() {
		t.Error("empty time should resolve to now")
	}
}
