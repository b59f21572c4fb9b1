package ui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"taskpad/pkg/theme"
)

// Styles holds the compiled lipgloss styles for the active theme.
type Styles struct {
	TitleBar     lipgloss.Style
	NormalText   lipgloss.Style
	SecondaryTxt lipgloss.Style
	Accent       lipgloss.Style
	Success      lipgloss.Style
	Error        lipgloss.Style
	Border       lipgloss.Style
	StatusBar    lipgloss.Style
	Selected     lipgloss.Style
	Done         lipgloss.Style

	// Category accent colors, keyed by category name
	CategoryColors map[string]lipgloss.Style

	// Raw colors kept for components built per-theme
	AccentColor  string
	SuccessColor string
}

func compileStyles(def theme.Definition) Styles {
	c := def.Colors

	categoryColors := make(map[string]lipgloss.Style)
	for cat, color := range c.CategoryAccents {
		categoryColors[cat] = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}

	return Styles{
		TitleBar: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.PrimaryBg)).
			Background(lipgloss.Color(c.Accent)).
			Padding(0, 1),
		NormalText:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.PrimaryText)),
		SecondaryTxt: lipgloss.NewStyle().Foreground(lipgloss.Color(c.SecondaryText)),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color(c.Accent)).Bold(true),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.Success)),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color(c.Error)).Bold(true),
		Border:       lipgloss.NewStyle().Foreground(lipgloss.Color(c.Border)),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.PrimaryText)).
			Background(lipgloss.Color(c.SecondaryBg)).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.PrimaryBg)).
			Background(lipgloss.Color(c.Accent)).
			Bold(true),
		Done: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.SecondaryText)).
			Strikethrough(true),

		CategoryColors: categoryColors,
		AccentColor:    c.Accent,
		SuccessColor:   c.Success,
	}
}

// fallbackStyles is the minimal hardcoded style set used when the terminal
// cannot do colors at all, or when applying a theme failed outright.
func fallbackStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		TitleBar:       plain.Bold(true),
		NormalText:     plain,
		SecondaryTxt:   plain,
		Accent:         plain.Bold(true),
		Success:        plain,
		Error:          plain.Bold(true),
		Border:         plain,
		StatusBar:      plain,
		Selected:       plain.Reverse(true),
		Done:           plain.Strikethrough(true),
		CategoryColors: map[string]lipgloss.Style{},
	}
}

// App is the mutable presentation state shared across Model copies. It
// implements theme.Applier: the theme manager decides which theme is active
// and the App turns it into the style set the views render with.
type App struct {
	styles   Styles
	fallback bool
	progress progress.Model
	form     *form
	status   string
}

func newApp(form *form) *App {
	a := &App{form: form}
	a.installStyles(fallbackStyles())
	return a
}

func (a *App) installStyles(s Styles) {
	a.styles = s

	bar := progress.New(progress.WithoutPercentage())
	if s.SuccessColor != "" {
		bar = progress.New(progress.WithSolidFill(s.SuccessColor), progress.WithoutPercentage())
	}
	bar.Width = 40
	a.progress = bar

	a.form.applyStyles(s)
}

// SupportsStyling reports whether the terminal can render colors. An Ascii
// profile means the styling mechanism is unsupported and the theme system
// degrades to the minimal fallback.
func (a *App) SupportsStyling() bool {
	return lipgloss.ColorProfile() != termenv.Ascii
}

// Apply compiles and installs the theme's style set. Terminal rendering has
// no transition animation, so the animate flag only distinguishes the
// startup path in logs and behavior stays identical across both rungs.
func (a *App) Apply(def theme.Definition, animate bool) error {
	a.installStyles(compileStyles(def))
	a.fallback = false
	return nil
}

// ApplyFallback installs the minimal hardcoded style set.
func (a *App) ApplyFallback() error {
	a.installStyles(fallbackStyles())
	a.fallback = true
	return nil
}

// CaptureInput snapshots in-progress form input before a theme is applied.
func (a *App) CaptureInput() theme.InputSnapshot {
	return a.form.snapshot()
}

// RestoreInput restores a previously captured form snapshot.
func (a *App) RestoreInput(snap theme.InputSnapshot) {
	if fs, ok := snap.(formSnapshot); ok {
		a.form.restore(fs)
	}
}
