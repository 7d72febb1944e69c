// Package chart composes the night-sky image: background, grid, scales,
// sun and moon paths, stars, constellation figures, planets, reference
// lines and info panels.
package chart

import (
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/litescript/skywall/internal/astro"
	"github.com/litescript/skywall/internal/constellation"
)

// Options is the full, explicit configuration for one render. Nothing is
// read from ambient state: the caller resolves config files and defaults
// before building it.
type Options struct {
	Width  int
	Height int

	Observer astro.Observer
	Time     time.Time      // local time of the observation
	Location *time.Location // timezone for displayed times

	Catalog astro.StarCatalog
	Figures []constellation.Figure

	Stars          StarOptions
	Constellations ConstellationOptions
	Planets        PlanetOptions
	Lines          LineOptions
}

// Renderer renders sky charts for a fixed set of options.
type Renderer struct {
	opts Options
	log  *zap.SugaredLogger
}

// New builds a renderer. A nil logger disables logging.
func New(opts Options, log *zap.SugaredLogger) *Renderer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if opts.Width <= 0 {
		opts.Width = 3840
	}
	if opts.Height <= 0 {
		opts.Height = 2160
	}
	return &Renderer{opts: opts, log: log}
}

// renderOn draws the whole chart onto the canvas.
func (r *Renderer) renderOn(c *canvas) {
	obs := r.opts.Observer
	t := r.opts.Time
	loc := r.opts.Location
	if loc == nil {
		loc = time.UTC
	}
	// Daily paths are computed from local midnight, matching the panel's
	// notion of "today".
	localT := t.In(loc)
	midnight := time.Date(localT.Year(), localT.Month(), localT.Day(), 0, 0, 0, 0, loc)
	day := midnight.UTC()

	r.log.Infow("rendering chart",
		"size", fmt.Sprintf("%dx%d", r.opts.Width, r.opts.Height),
		"lat", obs.LatDeg, "lon", obs.LonDeg, "time", localT)

	c.drawBackground()
	c.drawGrid()

	r.drawLocationInfo(c, obs, localT, loc)
	r.drawMoonPhaseInfo(c, midnight, loc)

	r.drawSunPath(c, obs, day, loc)
	r.drawMoonPath(c, obs, day, loc)

	stars := r.drawStars(c, obs, t)
	figures := r.drawConstellations(c, obs, t)
	r.drawCelestialLines(c, obs, t)
	planets := r.drawPlanets(c, obs, day, loc)

	c.drawCardinals()
	c.drawDegreeScale()
	c.drawAltitudeScale()

	r.log.Infow("chart complete", "stars", stars, "figures", figures, "planets", planets)
}

// Render draws the chart and returns the finished image.
func (r *Renderer) Render() (image.Image, error) {
	c, err := newCanvas(r.opts.Width, r.opts.Height)
	if err != nil {
		return nil, fmt.Errorf("chart canvas: %w", err)
	}
	defer c.dc.Close()

	r.renderOn(c)
	return c.dc.Image(), nil
}

// RenderToFile draws the chart and writes it as a PNG.
func (r *Renderer) RenderToFile(path string) error {
	c, err := newCanvas(r.opts.Width, r.opts.Height)
	if err != nil {
		return fmt.Errorf("chart canvas: %w", err)
	}
	defer c.dc.Close()

	r.renderOn(c)
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	r.log.Infow("chart saved", "path", path)
	return nil
}
