package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/punchline/internal/model"
)

// JokePageID identifies the joke page.
const JokePageID = "joke"

// JokePage maps key presses to controller operations and renders the
// controller's state.
type JokePage struct {
	ctrl            *Controller
	bindings        Bindings
	defaultCategory string
	modals          modalStack
	spinning        bool
}

// NewJokePage creates the joke page. The initial fetch for defaultCategory is
// issued from Init.
func NewJokePage(ctrl *Controller, bindings Bindings, defaultCategory string) *JokePage {
	if c, ok := model.CanonicalCategory(defaultCategory); ok {
		defaultCategory = c
	} else {
		defaultCategory = model.CategoryAny
	}
	return &JokePage{
		ctrl:            ctrl,
		bindings:        bindings,
		defaultCategory: defaultCategory,
	}
}

func (p *JokePage) ID() string { return JokePageID }

// Init triggers the startup fetch.
func (p *JokePage) Init() tea.Cmd {
	return p.requestJoke(p.defaultCategory)
}

// Controller returns the page's view controller.
func (p *JokePage) Controller() *Controller { return p.ctrl }

func (p *JokePage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return p.handleKeyPress(msg), nil

	case JokeResultMsg:
		p.ctrl.ApplyResult(msg)
		return nil, nil

	case CopyResultMsg:
		return p.ctrl.ApplyCopyResult(msg), nil

	case ToastExpiredMsg:
		p.ctrl.ExpireToast(msg)
		return nil, nil

	case SpinnerTickMsg:
		return p.handleSpinnerTick(), nil
	}

	if modal := p.modals.top(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			p.modals.pop()
		}
		return cmd, nil
	}
	return nil, nil
}

// handleKeyPress dispatches key events: modal stack first, then page actions.
func (p *JokePage) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	k := p.bindings.Keys
	if key.Matches(msg, k.ForceQuit) {
		return tea.Quit
	}

	if modal := p.modals.top(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			p.modals.pop()
		}
		return cmd
	}

	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit

	case key.Matches(msg, k.Help):
		p.modals.push(NewHelpModal(k))

	case key.Matches(msg, k.NewJoke):
		return p.requestJoke(p.ctrl.Category())

	case key.Matches(msg, k.Retry):
		if p.ctrl.Visibility() == model.VisibilityError {
			return p.requestJoke(p.ctrl.Category())
		}

	case key.Matches(msg, k.NextCat):
		return p.requestJoke(p.ctrl.CycleCategory(1))

	case key.Matches(msg, k.PrevCat):
		return p.requestJoke(p.ctrl.CycleCategory(-1))

	case key.Matches(msg, k.Reveal):
		p.ctrl.Reveal()

	case key.Matches(msg, k.Copy):
		return p.ctrl.CopyCurrentJoke()
	}
	return nil
}

func (p *JokePage) requestJoke(category string) tea.Cmd {
	fetch := p.ctrl.RequestNewJoke(category)
	return tea.Batch(fetch, p.startSpinnerIfNeeded())
}
