package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/punchline/internal/model"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// renderLoadingPlaceholder renders an animated loading indicator.
// The frame is selected based on the current time so it animates on re-render.
func renderLoadingPlaceholder(style lipgloss.Style, width, height int) string {
	frame := spinnerFrames[time.Now().UnixMilli()/spinnerInterval.Milliseconds()%int64(len(spinnerFrames))]
	text := style.Render(frame + " Fetching a joke...")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
}

// SpinnerTickMsg triggers a re-render for the loading spinner.
type SpinnerTickMsg struct{}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(_ time.Time) tea.Msg {
		return SpinnerTickMsg{}
	})
}

// handleSpinnerTick re-schedules spinner ticks while a fetch is in flight.
func (p *JokePage) handleSpinnerTick() tea.Cmd {
	if p.ctrl.Visibility() == model.VisibilityLoading {
		return spinnerTick()
	}
	p.spinning = false
	return nil
}

// startSpinnerIfNeeded schedules a spinner tick unless one is already pending.
func (p *JokePage) startSpinnerIfNeeded() tea.Cmd {
	if p.spinning || p.ctrl.Visibility() != model.VisibilityLoading {
		return nil
	}
	p.spinning = true
	return spinnerTick()
}
