package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by all renderers.
var (
	ColorNavy   = lipgloss.Color("#1B2A4A")
	ColorWhite  = lipgloss.Color("#F5F5F5")
	ColorGray   = lipgloss.Color("#8A8F98")
	ColorBlue   = lipgloss.Color("#4FA3F7")
	ColorGreen  = lipgloss.Color("#49E209")
	ColorOrange = lipgloss.Color("#FFAA00")
	ColorRed    = lipgloss.Color("#FF6666")
)

// Styles holds the lipgloss styles used by the joke page.
type Styles struct {
	Card        lipgloss.Style
	Badge       lipgloss.Style
	Setup       lipgloss.Style
	Punchline   lipgloss.Style
	Hidden      lipgloss.Style
	ErrorBox    lipgloss.Style
	ErrorTitle  lipgloss.Style
	Selector    lipgloss.Style
	SelectorDim lipgloss.Style
	Counter     lipgloss.Style
	Toast       lipgloss.Style
	StatusBar   lipgloss.Style
	Loading     lipgloss.Style
}

// DefaultStyles returns the default palette applied to every element.
func DefaultStyles() Styles {
	return Styles{
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBlue).
			Padding(1, 2),
		Badge: lipgloss.NewStyle().
			Background(ColorBlue).
			Foreground(ColorNavy).
			Bold(true).
			Padding(0, 1),
		Setup: lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true),
		Punchline: lipgloss.NewStyle().
			Foreground(ColorGreen).
			Italic(true),
		Hidden: lipgloss.NewStyle().
			Foreground(ColorGray),
		ErrorBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorRed).
			Padding(1, 2),
		ErrorTitle: lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true),
		Selector: lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true).
			Underline(true),
		SelectorDim: lipgloss.NewStyle().
			Foreground(ColorGray),
		Counter: lipgloss.NewStyle().
			Foreground(ColorOrange).
			Bold(true),
		Toast: lipgloss.NewStyle().
			Background(ColorGreen).
			Foreground(ColorNavy).
			Bold(true).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(ColorWhite),
		Loading: lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true),
	}
}

// Bindings collects everything the joke page needs to render and dispatch
// input. It is built once at startup.
type Bindings struct {
	Keys   KeyMap
	Styles Styles
}

// DefaultBindings returns the default key map and styles.
func DefaultBindings() Bindings {
	return Bindings{Keys: DefaultKeyMap(), Styles: DefaultStyles()}
}
