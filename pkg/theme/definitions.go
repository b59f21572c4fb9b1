package theme

import "strings"

// Name identifies one of the five built-in themes.
type Name string

const (
	White        Name = "white"
	Dark         Name = "dark"
	Student      Name = "student"
	Developer    Name = "developer"
	Professional Name = "professional"
)

// Default is the theme adopted when nothing valid is stored.
const Default = White

// Colors holds the color-role values of a theme. Values are hex colors as
// accepted by lipgloss. CategoryAccents is keyed by task category name and
// may be empty; views fall back to Accent for missing categories.
type Colors struct {
	PrimaryBg       string
	SecondaryBg     string
	PrimaryText     string
	SecondaryText   string
	Accent          string
	Success         string
	Error           string
	Border          string
	CategoryAccents map[string]string
}

// Preview is the color triple used by theme selection affordances.
type Preview struct {
	Primary   string
	Secondary string
	Text      string
}

// Definition is a compile-time-fixed theme descriptor. Immutable after
// process start.
type Definition struct {
	Name        Name
	DisplayName string
	Description string
	Colors      Colors
	Preview     Preview
}

var definitions = []Definition{
	{
		Name:        White,
		DisplayName: "White",
		Description: "Clean light theme, the default",
		Colors: Colors{
			PrimaryBg:     "#ffffff",
			SecondaryBg:   "#f2f2f2",
			PrimaryText:   "#1a1a1a",
			SecondaryText: "#5c5c5c",
			Accent:        "#3b82f6",
			Success:       "#16a34a",
			Error:         "#dc2626",
			Border:        "#d4d4d4",
			CategoryAccents: map[string]string{
				"work":     "#2563eb",
				"study":    "#9333ea",
				"personal": "#0d9488",
			},
		},
		Preview: Preview{Primary: "#ffffff", Secondary: "#f2f2f2", Text: "#1a1a1a"},
	},
	{
		Name:        Dark,
		DisplayName: "Dark",
		Description: "Low-light theme with muted contrast",
		Colors: Colors{
			PrimaryBg:     "#1e1e2e",
			SecondaryBg:   "#2a2a3c",
			PrimaryText:   "#e8e8f0",
			SecondaryText: "#9a9ab0",
			Accent:        "#89b4fa",
			Success:       "#a6e3a1",
			Error:         "#f38ba8",
			Border:        "#45455a",
			CategoryAccents: map[string]string{
				"work":     "#89b4fa",
				"study":    "#cba6f7",
				"personal": "#94e2d5",
			},
		},
		Preview: Preview{Primary: "#1e1e2e", Secondary: "#2a2a3c", Text: "#e8e8f0"},
	},
	{
		Name:        Student,
		DisplayName: "Student",
		Description: "Bright and friendly, built for study sessions",
		Colors: Colors{
			PrimaryBg:     "#fffbeb",
			SecondaryBg:   "#fef3c7",
			PrimaryText:   "#3f2d04",
			SecondaryText: "#92712a",
			Accent:        "#f59e0b",
			Success:       "#65a30d",
			Error:         "#e11d48",
			Border:        "#fcd34d",
			CategoryAccents: map[string]string{
				"work":     "#d97706",
				"study":    "#7c3aed",
				"personal": "#059669",
			},
		},
		Preview: Preview{Primary: "#fffbeb", Secondary: "#fef3c7", Text: "#3f2d04"},
	},
	{
		Name:        Developer,
		DisplayName: "Developer",
		Description: "Terminal greens on near-black",
		Colors: Colors{
			PrimaryBg:     "#0d1117",
			SecondaryBg:   "#161b22",
			PrimaryText:   "#c9d1d9",
			SecondaryText: "#8b949e",
			Accent:        "#39d353",
			Success:       "#39d353",
			Error:         "#ff7b72",
			Border:        "#30363d",
			CategoryAccents: map[string]string{
				"work":     "#58a6ff",
				"study":    "#d2a8ff",
				"personal": "#39d353",
			},
		},
		Preview: Preview{Primary: "#0d1117", Secondary: "#161b22", Text: "#c9d1d9"},
	},
	{
		Name:        Professional,
		DisplayName: "Professional",
		Description: "Restrained navy and gray for the office",
		Colors: Colors{
			PrimaryBg:     "#f8fafc",
			SecondaryBg:   "#e2e8f0",
			PrimaryText:   "#0f172a",
			SecondaryText: "#475569",
			Accent:        "#1e3a8a",
			Success:       "#15803d",
			Error:         "#b91c1c",
			Border:        "#94a3b8",
		},
		Preview: Preview{Primary: "#f8fafc", Secondary: "#e2e8f0", Text: "#0f172a"},
	},
}

// Definitions returns the five themes in selection order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Lookup returns the definition for a theme name.
func Lookup(name Name) (Definition, bool) {
	for _, d := range definitions {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}

// Parse resolves an arbitrary string to a theme name. Matching ignores case
// and surrounding whitespace.
func Parse(s string) (Name, bool) {
	name := Name(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := Lookup(name); ok {
		return name, true
	}
	return "", false
}
