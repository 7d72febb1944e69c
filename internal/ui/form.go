// Package ui provides the interactive terminal front end using Bubble Tea:
// a small form for the observer, time and output settings, with the render
// running asynchronously.
package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/skywall/internal/config"
	"github.com/litescript/skywall/internal/version"
)

// RenderFunc performs one chart render for the given configuration. It is
// called off the UI goroutine.
type RenderFunc func(cfg *config.Config) error

// Msg types for Bubble Tea.
type (
	// spinnerTickMsg advances the render spinner.
	spinnerTickMsg time.Time

	// renderDoneMsg signals that an async render finished.
	renderDoneMsg struct {
		elapsed time.Duration
		err     error
	}
)

// fieldKind selects how a form field is edited.
type fieldKind int

const (
	fieldText fieldKind = iota
	fieldFloat
	fieldToggle
	fieldAction
)

// field is one row of the settings form.
type field struct {
	label string
	kind  fieldKind
	get   func(c *config.Config) string
	set   func(c *config.Config, v string) error
}

// Model is the root Bubble Tea model.
type Model struct {
	cfg    *config.Config
	render RenderFunc

	fields []field
	cursor int

	editing bool
	buffer  string

	rendering bool
	animTick  int
	status    string
	statusErr bool
}

// New creates the settings form around a configuration. The render
// function receives a copy of the configuration when the user triggers a
// render.
func New(cfg *config.Config, render RenderFunc) Model {
	return Model{
		cfg:    cfg,
		render: render,
		fields: buildFields(),
	}
}

func buildFields() []field {
	return []field{
		{
			label: "Location",
			kind:  fieldText,
			get:   func(c *config.Config) string { return c.Location.Name },
			set: func(c *config.Config, v string) error {
				c.Location.Name = v
				return nil
			},
		},
		{
			label: "Latitude",
			kind:  fieldFloat,
			get:   func(c *config.Config) string { return strconv.FormatFloat(c.Location.Latitude, 'f', -1, 64) },
			set: func(c *config.Config, v string) error {
				f, err := strconv.ParseFloat(v, 64)
				if err != nil || f < -90 || f > 90 {
					return fmt.Errorf("latitude must be a number in [-90, 90]")
				}
				c.Location.Latitude = f
				return nil
			},
		},
		{
			label: "Longitude",
			kind:  fieldFloat,
			get:   func(c *config.Config) string { return strconv.FormatFloat(c.Location.Longitude, 'f', -1, 64) },
			set: func(c *config.Config, v string) error {
				f, err := strconv.ParseFloat(v, 64)
				if err != nil || f < -180 || f > 180 {
					return fmt.Errorf("longitude must be a number in [-180, 180]")
				}
				c.Location.Longitude = f
				return nil
			},
		},
		{
			label: "Timezone",
			kind:  fieldText,
			get:   func(c *config.Config) string { return c.Location.Timezone },
			set: func(c *config.Config, v string) error {
				if v != "" {
					if _, err := time.LoadLocation(v); err != nil {
						return fmt.Errorf("unknown timezone %q", v)
					}
				}
				c.Location.Timezone = v
				return nil
			},
		},
		{
			label: "Time",
			kind:  fieldText,
			get: func(c *config.Config) string {
				if c.Time.At == "" {
					return "now"
				}
				return c.Time.At
			},
			set: func(c *config.Config, v string) error {
				if v == "" || v == "now" {
					c.Time.At = ""
					return nil
				}
				if _, err := time.Parse("2006-01-02 15:04", v); err != nil {
					return fmt.Errorf(`time must be "2006-01-02 15:04" or "now"`)
				}
				c.Time.At = v
				return nil
			},
		},
		{
			label: "Magnitude limit",
			kind:  fieldFloat,
			get:   func(c *config.Config) string { return strconv.FormatFloat(c.Stars.MagLimit, 'f', -1, 64) },
			set: func(c *config.Config, v string) error {
				f, err := strconv.ParseFloat(v, 64)
				if err != nil || f < -2 || f > 20 {
					return fmt.Errorf("magnitude limit must be a number in [-2, 20]")
				}
				c.Stars.MagLimit = f
				return nil
			},
		},
		{
			label: "Celestial equator",
			kind:  fieldToggle,
			get:   func(c *config.Config) string { return onOff(c.Lines.Equator) },
			set: func(c *config.Config, _ string) error {
				c.Lines.Equator = !c.Lines.Equator
				return nil
			},
		},
		{
			label: "Ecliptic",
			kind:  fieldToggle,
			get:   func(c *config.Config) string { return onOff(c.Lines.Ecliptic) },
			set: func(c *config.Config, _ string) error {
				c.Lines.Ecliptic = !c.Lines.Ecliptic
				return nil
			},
		},
		{
			label: "Output",
			kind:  fieldText,
			get:   func(c *config.Config) string { return c.Output.Path },
			set: func(c *config.Config, v string) error {
				if v == "" {
					return fmt.Errorf("output path must not be empty")
				}
				c.Output.Path = v
				return nil
			},
		},
		{
			label: "Set wallpaper",
			kind:  fieldToggle,
			get:   func(c *config.Config) string { return onOff(c.Output.Wallpaper) },
			set: func(c *config.Config, _ string) error {
				c.Output.Wallpaper = !c.Output.Wallpaper
				return nil
			},
		},
		{
			label: "Render",
			kind:  fieldAction,
		},
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)

	case spinnerTickMsg:
		if !m.rendering {
			return m, nil
		}
		m.animTick++
		return m, spinnerTickCmd()

	case renderDoneMsg:
		m.rendering = false
		if msg.err != nil {
			m.status = "render failed: " + msg.err.Error()
			m.statusErr = true
		} else {
			m.status = fmt.Sprintf("saved %s in %s", m.cfg.Output.Path, msg.elapsed.Round(time.Millisecond))
			m.statusErr = false
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}

	case "enter", " ":
		f := m.fields[m.cursor]
		switch f.kind {
		case fieldToggle:
			_ = f.set(m.cfg, "")
		case fieldAction:
			return m.startRender()
		default:
			if msg.String() == "enter" {
				m.editing = true
				m.buffer = f.get(m.cfg)
				m.status = ""
			}
		}

	case "r":
		return m.startRender()
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.buffer = ""

	case "enter":
		f := m.fields[m.cursor]
		v := strings.TrimSpace(m.buffer)
		if err := f.set(m.cfg, v); err != nil {
			m.status = err.Error()
			m.statusErr = true
			return m, nil
		}
		m.editing = false
		m.buffer = ""
		m.status = ""
		m.statusErr = false

	case "backspace":
		if len(m.buffer) > 0 {
			runes := []rune(m.buffer)
			m.buffer = string(runes[:len(runes)-1])
		}

	default:
		switch msg.Type {
		case tea.KeyRunes:
			m.buffer += string(msg.Runes)
		case tea.KeySpace:
			m.buffer += " "
		}
	}
	return m, nil
}

func (m Model) startRender() (tea.Model, tea.Cmd) {
	if m.rendering {
		return m, nil
	}
	if m.render == nil {
		m.status = "no renderer attached"
		m.statusErr = true
		return m, nil
	}
	m.rendering = true
	m.status = ""
	cfg := *m.cfg
	render := m.render
	return m, tea.Batch(spinnerTickCmd(), func() tea.Msg {
		start := time.Now()
		err := render(&cfg)
		return renderDoneMsg{elapsed: time.Since(start), err: err}
	})
}

func spinnerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8FAADC")).Width(18)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
	editStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFE3")).Underline(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4EC994"))
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render("✦ skywall"))
	b.WriteString(mutedStyle.Render("  v" + version.Version))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		b.WriteString("  " + prefix)

		if f.kind == fieldAction {
			label := "[ " + f.label + " ]"
			if m.rendering {
				label = spinnerFrames[m.animTick%len(spinnerFrames)] + " rendering..."
			}
			if i == m.cursor {
				b.WriteString(cursorStyle.Render(label))
			} else {
				b.WriteString(valueStyle.Render(label))
			}
			b.WriteString("\n")
			continue
		}

		b.WriteString(labelStyle.Render(f.label))
		if m.editing && i == m.cursor {
			b.WriteString(editStyle.Render(m.buffer + "▏"))
		} else {
			b.WriteString(valueStyle.Render(f.get(m.cfg)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	if m.status != "" {
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(okStyle.Render(m.status))
		}
		b.WriteString("\n  ")
	}
	if m.editing {
		b.WriteString(mutedStyle.Render("enter: apply | esc: cancel"))
	} else {
		b.WriteString(mutedStyle.Render("↑↓: navigate | enter: edit/toggle | r: render | q: quit"))
	}
	b.WriteString("\n")

	return b.String()
}
