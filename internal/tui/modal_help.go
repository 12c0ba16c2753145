package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModal lists every key binding in a scrollable viewport.
type HelpModal struct {
	keys     KeyMap
	viewport viewport.Model
}

// NewHelpModal creates a help modal for keys.
func NewHelpModal(keys KeyMap) *HelpModal {
	return &HelpModal{
		keys:     keys,
		viewport: viewport.New(60, 20),
	}
}

func (h *HelpModal) ID() string { return "help" }

func (h *HelpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, h.keys.Help), key.Matches(msg, h.keys.Escape), key.Matches(msg, h.keys.Quit):
			return true, nil
		case msg.String() == "up" || msg.String() == "k":
			h.viewport.ScrollUp(1)
			return false, nil
		case msg.String() == "down" || msg.String() == "j":
			h.viewport.ScrollDown(1)
			return false, nil
		}
	}
	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return false, cmd
}

func (h *HelpModal) View(width, height int) string {
	modalWidth := min(width-8, 70)
	modalHeight := height - 4
	if modalWidth < 20 || modalHeight < 6 {
		return h.content()
	}

	contentWidth := modalWidth - 4
	contentHeight := modalHeight - 4

	h.viewport.Width = contentWidth
	h.viewport.Height = contentHeight
	h.viewport.SetContent(h.content())

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(ColorBlue).
		Bold(true).
		Render("Help")

	statusBar := lipgloss.NewStyle().
		Foreground(ColorGray).
		Render("up/down: Scroll | ?/h: Toggle Help | ESC: Close")

	modal := lipgloss.JoinVertical(lipgloss.Left, header, h.viewport.View(), statusBar)

	finalModal := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, finalModal)
}

func (h *HelpModal) content() string {
	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"JOKES", []key.Binding{h.keys.NewJoke, h.keys.Retry, h.keys.Reveal, h.keys.Copy}},
		{"CATEGORY", []key.Binding{h.keys.PrevCat, h.keys.NextCat}},
		{"GENERAL", []key.Binding{h.keys.Help, h.keys.Escape, h.keys.Quit, h.keys.ForceQuit}},
	}

	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s.title + ":\n")
		for _, kb := range s.bindings {
			help := kb.Help()
			b.WriteString("  " + lipgloss.NewStyle().Width(14).Render(help.Key) + " - " + help.Desc + "\n")
		}
	}
	b.WriteString("\nStats are saved after every joke and restored on the next run.\n")
	return b.String()
}
