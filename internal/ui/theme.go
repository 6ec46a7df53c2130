package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors the results page is drawn with.
type Theme struct {
	Name string

	Background string // Outermost background
	Surface    string // Header and footer bars
	SurfaceAlt string // Info panels
	Border     string
	Selection  string // Cursor gutter

	Text    string
	Muted   string
	Faint   string
	Accent  string // Titles
	Success string // Site labels
	Warning string
	Danger  string

	// Matched spans
	HighlightBg string
	HighlightFg string
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style
	SiteText   lipgloss.Style
	DangerText lipgloss.Style
	Highlight  lipgloss.Style
	Title      lipgloss.Style
	Logo       lipgloss.Style
	Header     lipgloss.Style
	Footer     lipgloss.Style
	InfoPanel  lipgloss.Style
	Cursor     lipgloss.Style
	Disabled   lipgloss.Style
	Enabled    lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SiteText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Highlight: lipgloss.NewStyle().
			Background(lipgloss.Color(t.HighlightBg)).
			Foreground(lipgloss.Color(t.HighlightFg)).
			Bold(true),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		InfoPanel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Background(lipgloss.Color(t.SurfaceAlt)).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(0, 1),

		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Selection)).
			Bold(true),

		Disabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		Enabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
	}
}

// Marker renders the per-record play glyph on the record's palette color.
func (t Theme) Marker(color string) lipgloss.Style {
	bg := color
	if bg == "" {
		bg = t.Muted
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color("#ffffff")).
		Padding(0, 1)
}

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name, defaulting to Nightfox.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name:        "Nightfox",
		Background:  "#131a24", // bg0
		Surface:     "#192330", // bg1
		SurfaceAlt:  "#212e3f", // bg2
		Border:      "#39506d", // bg4
		Selection:   "#dbc074", // yellow
		Text:        "#cdcecf", // fg1
		Muted:       "#738091", // comment
		Faint:       "#71839b", // fg3
		Accent:      "#719cd6", // blue
		Success:     "#81b29a", // green
		Warning:     "#dbc074", // yellow
		Danger:      "#c94f6d", // red
		HighlightBg: "#dbc074",
		HighlightFg: "#131a24",
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name:        "Kanagawa",
		Background:  "#16161D", // sumiInk0
		Surface:     "#1F1F28", // sumiInk3
		SurfaceAlt:  "#2A2A37", // sumiInk4
		Border:      "#54546D", // sumiInk6
		Selection:   "#E6C384", // carpYellow
		Text:        "#DCD7BA", // fujiWhite
		Muted:       "#C8C093", // oldWhite
		Faint:       "#727169", // fujiGray
		Accent:      "#7E9CD8", // crystalBlue
		Success:     "#98BB6C", // springGreen
		Warning:     "#E6C384", // carpYellow
		Danger:      "#E46876", // waveRed
		HighlightBg: "#FF9E3B", // roninYellow
		HighlightFg: "#16161D",
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name:        "Slate",
		Background:  "#020617", // slate-950
		Surface:     "#0f172a", // slate-900
		SurfaceAlt:  "#1e293b", // slate-800
		Border:      "#334155", // slate-700
		Selection:   "#38bdf8", // sky-400
		Text:        "#f1f5f9", // slate-100
		Muted:       "#94a3b8", // slate-400
		Faint:       "#64748b", // slate-500
		Accent:      "#38bdf8", // sky-400
		Success:     "#22c55e", // green-500
		Warning:     "#f59e0b", // amber-500
		Danger:      "#ef4444", // red-500
		HighlightBg: "#f59e0b", // amber-500
		HighlightFg: "#020617",
	}
}
