package render

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// TUITheme is the palette of the terminal landing page and chat
type TUITheme struct {
	Name        string
	Description string

	Surface lipgloss.Color
	Border  lipgloss.Color

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color

	Text     lipgloss.Color
	TextDim  lipgloss.Color
	TextMute lipgloss.Color
}

var (
	// CITTheme follows the landing page: deep navy with cyan and violet
	CITTheme = TUITheme{
		Name:        "cit",
		Description: "CIT - Landing page palette, navy with cyan and violet",
		Surface:     "#141b33",
		Border:      "#2a355c",
		Primary:     "#38bdf8",
		Secondary:   "#a78bfa",
		Accent:      "#22d3ee",
		Warning:     "#fbbf24",
		Error:       "#f87171",
		Text:        "#e2e8f0",
		TextDim:     "#94a3b8",
		TextMute:    "#475569",
	}

	// CITLightTheme is the landing page palette for light terminals
	CITLightTheme = TUITheme{
		Name:        "cit-light",
		Description: "CIT Light - Landing page palette on a light background",
		Surface:     "#f1f5f9",
		Border:      "#cbd5e1",
		Primary:     "#0369a1",
		Secondary:   "#6d28d9",
		Accent:      "#0e7490",
		Warning:     "#b45309",
		Error:       "#b91c1c",
		Text:        "#0f172a",
		TextDim:     "#475569",
		TextMute:    "#94a3b8",
	}

	// GalantaTheme uses the amber and graphite of the Galanta brand
	GalantaTheme = TUITheme{
		Name:        "galanta",
		Description: "Galanta - Graphite with amber highlights",
		Surface:     "#27272a",
		Border:      "#3f3f46",
		Primary:     "#f59e0b",
		Secondary:   "#fcd34d",
		Accent:      "#fb923c",
		Warning:     "#facc15",
		Error:       "#ef4444",
		Text:        "#fafafa",
		TextDim:     "#a1a1aa",
		TextMute:    "#52525b",
	}

	// NordTheme is based on the Nord color palette
	NordTheme = TUITheme{
		Name:        "nord",
		Description: "Nord - Arctic-inspired theme with cool tones",
		Surface:     "#3b4252",
		Border:      "#4c566a",
		Primary:     "#88c0d0",
		Secondary:   "#a3be8c",
		Accent:      "#b48ead",
		Warning:     "#ebcb8b",
		Error:       "#bf616a",
		Text:        "#eceff4",
		TextDim:     "#7b88a1",
		TextMute:    "#4c566a",
	}

	// DraculaTheme is based on the Dracula color palette
	DraculaTheme = TUITheme{
		Name:        "dracula",
		Description: "Dracula - Dark theme with vibrant colors",
		Surface:     "#44475a",
		Border:      "#6272a4",
		Primary:     "#8be9fd",
		Secondary:   "#50fa7b",
		Accent:      "#ff79c6",
		Warning:     "#f1fa8c",
		Error:       "#ff5555",
		Text:        "#f8f8f2",
		TextDim:     "#6272a4",
		TextMute:    "#44475a",
	}
)

var (
	themeMu      sync.RWMutex
	currentTheme = CITTheme
)

// GetTUITheme returns the active theme
func GetTUITheme() TUITheme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// SetTUITheme activates the theme called name. Unknown names are ignored
// and reported with false.
func SetTUITheme(name string) bool {
	theme, ok := GetTUIThemeByName(name)
	if !ok {
		return false
	}
	themeMu.Lock()
	currentTheme = theme
	themeMu.Unlock()
	return true
}

// GetTUIThemeByName looks a theme up by name
func GetTUIThemeByName(name string) (TUITheme, bool) {
	for _, t := range AvailableTUIThemes() {
		if t.Name == name {
			return t, true
		}
	}
	return TUITheme{}, false
}

// AvailableTUIThemes lists the built-in themes, the default first
func AvailableTUIThemes() []TUITheme {
	return []TUITheme{CITTheme, CITLightTheme, GalantaTheme, NordTheme, DraculaTheme}
}

// TUIThemeNames returns the theme names in AvailableTUIThemes order
func TUIThemeNames() []string {
	themes := AvailableTUIThemes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
