package tui

import tea "github.com/charmbracelet/bubbletea"

// Modal is a self-contained overlay that owns its own Update/View lifecycle.
// Modals are managed via a stack on JokePage; the topmost modal receives all
// input and renders full-screen.
type Modal interface {
	// ID returns a unique identifier used to deduplicate pushes.
	ID() string
	// Update processes a message. Return pop=true to close the modal.
	Update(msg tea.Msg) (pop bool, cmd tea.Cmd)
	// View renders the modal content for the given terminal dimensions.
	View(width, height int) string
}

// modalStack is a LIFO of open modals.
type modalStack []Modal

// push adds modal unless one with the same ID is already open.
func (s *modalStack) push(modal Modal) {
	for _, existing := range *s {
		if existing.ID() == modal.ID() {
			return
		}
	}
	*s = append(*s, modal)
}

func (s *modalStack) pop() {
	if len(*s) > 0 {
		*s = (*s)[:len(*s)-1]
	}
}

func (s modalStack) top() Modal {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}
