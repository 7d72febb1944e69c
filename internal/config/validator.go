package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// ValidationError represents a single validation failure.
type ValidationError struct {
	Field   string // config field path, e.g. "location.latitude"
	Value   any    // the invalid value
	Message string // human-readable error description
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidPlanets returns the planet names accepted in planets.include.
func ValidPlanets() []string {
	return []string{"Mercury", "Venus", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune", "Pluto"}
}

// Validate checks the Config for invalid values and returns all
// validation errors found.
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		errors = append(errors, ValidationError{
			Field: "location.latitude", Value: c.Location.Latitude,
			Message: "must be between -90 and 90",
		})
	}
	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		errors = append(errors, ValidationError{
			Field: "location.longitude", Value: c.Location.Longitude,
			Message: "must be between -180 and 180",
		})
	}
	if c.Location.Timezone != "" {
		if _, err := time.LoadLocation(c.Location.Timezone); err != nil {
			errors = append(errors, ValidationError{
				Field: "location.timezone", Value: c.Location.Timezone,
				Message: "unknown IANA timezone",
			})
		}
	}

	if c.Time.At != "" {
		if _, err := time.Parse(timeLayout, c.Time.At); err != nil {
			errors = append(errors, ValidationError{
				Field: "time.at", Value: c.Time.At,
				Message: fmt.Sprintf("must match %q", timeLayout),
			})
		}
	}

	if c.Stars.MagLimit < -2 || c.Stars.MagLimit > 20 {
		errors = append(errors, ValidationError{
			Field: "stars.mag_limit", Value: c.Stars.MagLimit,
			Message: "must be between -2 and 20",
		})
	}
	if c.Stars.MaxStars < 0 {
		errors = append(errors, ValidationError{
			Field: "stars.max_stars", Value: c.Stars.MaxStars,
			Message: "must be >= 0",
		})
	}

	if c.Constellations.Max < 0 {
		errors = append(errors, ValidationError{
			Field: "constellations.max", Value: c.Constellations.Max,
			Message: "must be >= 0",
		})
	}

	for _, name := range c.Planets.Include {
		if !slices.Contains(ValidPlanets(), name) {
			errors = append(errors, ValidationError{
				Field: "planets.include", Value: name,
				Message: fmt.Sprintf("unknown planet, valid: %s", strings.Join(ValidPlanets(), ", ")),
			})
		}
	}

	if c.Output.Width <= 0 {
		errors = append(errors, ValidationError{
			Field: "output.width", Value: c.Output.Width,
			Message: "must be > 0",
		})
	}
	if c.Output.Height <= 0 {
		errors = append(errors, ValidationError{
			Field: "output.height", Value: c.Output.Height,
			Message: "must be > 0",
		})
	}
	if c.Output.Path == "" {
		errors = append(errors, ValidationError{
			Field: "output.path", Value: c.Output.Path,
			Message: "must not be empty",
		})
	}

	if !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field: "logging.level", Value: c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
