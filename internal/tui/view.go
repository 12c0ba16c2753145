package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/punchline/internal/model"
)

const (
	minWidth  = 40
	minHeight = 12
	maxCard   = 72
)

// View renders the joke page.
func (p *JokePage) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return "Initializing..."
	}
	if modal := p.modals.top(); modal != nil {
		return modal.View(width, height)
	}
	if width < minWidth || height < minHeight {
		return fmt.Sprintf("Terminal too small. Resize to at least %dx%d.", minWidth, minHeight)
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		renderBranding(),
		p.renderCategorySelector(width),
	)
	counters := p.renderCounters()
	toast := p.renderToast()
	status := p.renderStatusLine(width)

	bodyHeight := height - lipgloss.Height(header) - lipgloss.Height(counters) - 1 - 1
	body := p.renderBody(width, max(bodyHeight, 3))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, counters, toast, status)
}

// renderBranding renders "Punchline!" with a green to light blue gradient.
func renderBranding() string {
	colors := []string{"#49E209", "#3FE01C", "#35DD2F", "#2BDB42", "#21D955", "#17D668", "#0DD47B", "#06D28E", "#00D0A1", "#00CAC7"}
	var b strings.Builder
	for i, r := range "Punchline!" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors[i%len(colors)])).
			Bold(true).
			Render(string(r)))
	}
	return b.String()
}

// renderCategorySelector renders the category list with the selection highlighted.
func (p *JokePage) renderCategorySelector(width int) string {
	s := p.bindings.Styles
	selected := p.ctrl.Category()

	parts := make([]string, 0, len(model.Categories))
	for _, c := range model.Categories {
		if c == selected {
			parts = append(parts, s.Selector.Render(c))
		} else {
			parts = append(parts, s.SelectorDim.Render(c))
		}
	}
	line := "Category: " + strings.Join(parts, s.SelectorDim.Render(" · "))
	if lipgloss.Width(line) > width {
		line = "Category: " + s.Selector.Render("‹ "+selected+" ›")
	}
	return line
}

func (p *JokePage) renderBody(width, height int) string {
	s := p.bindings.Styles
	cardWidth := min(width-4, maxCard)

	switch p.ctrl.Visibility() {
	case model.VisibilityLoading:
		return renderLoadingPlaceholder(s.Loading, width, height)

	case model.VisibilityError:
		box := s.ErrorBox.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
			s.ErrorTitle.Render("Oops! Couldn't fetch a joke."),
			"",
			"Check your connection and press "+p.bindings.Keys.Retry.Help().Key+" to try again.",
		))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
	}

	joke, ok := p.ctrl.CurrentJoke()
	if !ok {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, "")
	}
	inner := cardWidth - 6

	badge := s.Badge.Render(joke.Category)
	if joke.ID > 0 {
		badge += s.SelectorDim.Render(fmt.Sprintf("  #%d", joke.ID))
	}

	var punchline string
	if p.ctrl.Revealed() {
		punchline = s.Punchline.Width(inner).Render(joke.Delivery)
	} else {
		punchline = s.Hidden.Render("••••••  press " + p.bindings.Keys.Reveal.Help().Key + " to reveal")
	}

	card := s.Card.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
		badge,
		"",
		s.Setup.Width(inner).Render(joke.Setup),
		"",
		punchline,
	))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (p *JokePage) renderCounters() string {
	s := p.bindings.Styles
	stats := p.ctrl.Stats()
	return fmt.Sprintf("Jokes seen: %s   Categories: %s",
		s.Counter.Render(fmt.Sprint(stats.JokeCount)),
		s.Counter.Render(fmt.Sprint(stats.CategoryCount())))
}

func (p *JokePage) renderToast() string {
	if text := p.ctrl.Toast(); text != "" {
		return p.bindings.Styles.Toast.Render(text)
	}
	return ""
}

// renderStatusLine renders the key help at the bottom, trimmed to width.
func (p *JokePage) renderStatusLine(width int) string {
	var items []string
	for _, kb := range p.bindings.Keys.statusBindings() {
		h := kb.Help()
		items = append(items, h.Key+": "+h.Desc)
	}
	text := " " + strings.Join(items, " • ")
	for len(items) > 1 && lipgloss.Width(text) > width {
		items = items[:len(items)-1]
		text = " " + strings.Join(items, " • ")
	}
	return p.bindings.Styles.StatusBar.Width(width).Render(text)
}
