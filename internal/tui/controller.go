package tui

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/punchline/internal/model"
)

const (
	toastCopied     = "Joke copied to clipboard!"
	toastCopyFailed = "Failed to copy joke"
)

// JokeResultMsg carries the outcome of one fetch back to the controller.
type JokeResultMsg struct {
	Seq  uint64
	Joke model.Joke
	Err  error
}

// CopyResultMsg carries the outcome of one clipboard write.
type CopyResultMsg struct {
	Err error
}

// ToastExpiredMsg hides the toast with the given id if it is still showing.
type ToastExpiredMsg struct {
	ID int
}

// ControllerDeps provides the collaborators of a Controller.
type ControllerDeps struct {
	Fetcher       model.JokeFetcher
	Store         model.StatsStore
	Clipboard     model.ClipboardWriter
	ToastDuration time.Duration
}

// Controller owns the joke view state: which of loading/card/error is shown,
// whether the punchline is revealed, the current joke, and the session stats.
// It is the only writer of Stats. All methods run on the Bubble Tea update
// loop; fetches and clipboard writes run as commands and report back by message.
type Controller struct {
	deps ControllerDeps

	visibility    model.Visibility
	current       *model.Joke
	revealed      bool
	revealEnabled bool
	copyEnabled   bool
	category      string
	lastErr       error

	stats model.Stats

	// Fetch fencing: only the result of the latest request is applied.
	seq      uint64
	cancelFn context.CancelFunc

	toastText string
	toastID   int
}

// NewController creates a controller in the Loading state with stats loaded
// from deps.Store.
func NewController(deps ControllerDeps) *Controller {
	if deps.ToastDuration <= 0 {
		deps.ToastDuration = model.DefaultToastDuration
	}
	c := &Controller{
		deps:       deps,
		visibility: model.VisibilityLoading,
		category:   model.CategoryAny,
		stats:      model.NewStats(),
	}
	if deps.Store != nil {
		c.stats = deps.Store.Load()
	}
	return c
}

// RequestNewJoke enters Loading and returns the command performing the fetch.
// Any fetch still in flight is cancelled and its result will be dropped.
func (c *Controller) RequestNewJoke(category string) tea.Cmd {
	if canonical, ok := model.CanonicalCategory(category); ok {
		category = canonical
	}
	c.category = category
	c.visibility = model.VisibilityLoading
	c.lastErr = nil

	if c.cancelFn != nil {
		c.cancelFn()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancelFn = cancel
	c.seq++
	seq := c.seq

	fetcher := c.deps.Fetcher
	return func() tea.Msg {
		defer cancel()
		joke, err := fetcher.Fetch(ctx, category)
		return JokeResultMsg{Seq: seq, Joke: joke, Err: err}
	}
}

// ApplyResult applies a fetch outcome. It returns false when the result
// belongs to a superseded request and was dropped.
func (c *Controller) ApplyResult(msg JokeResultMsg) bool {
	if msg.Seq != c.seq {
		return false
	}
	c.cancelFn = nil

	if msg.Err != nil {
		log.Printf("fetching joke (%s): %v", c.category, msg.Err)
		c.lastErr = msg.Err
		c.visibility = model.VisibilityError
		return true
	}

	joke := msg.Joke
	c.current = &joke
	c.revealed = false
	c.revealEnabled = true
	c.copyEnabled = true
	c.visibility = model.VisibilityCard
	c.RecordSuccess(joke)
	return true
}

// RecordSuccess counts joke in the stats and persists them. Persistence is
// best-effort: a failed save is logged and otherwise ignored.
func (c *Controller) RecordSuccess(joke model.Joke) {
	c.stats.Record(joke.Category)
	if c.deps.Store == nil {
		return
	}
	if err := c.deps.Store.Save(c.stats); err != nil {
		log.Printf("saving stats: %v", err)
	}
}

// Reveal shows the punchline of the current joke. It reports whether anything
// changed; revealing twice is a no-op.
func (c *Controller) Reveal() bool {
	if c.current == nil || !c.revealEnabled || c.visibility != model.VisibilityCard {
		return false
	}
	c.revealed = true
	c.revealEnabled = false
	return true
}

// CopyCurrentJoke returns the command writing the current joke to the
// clipboard, or nil when there is no joke to copy.
func (c *Controller) CopyCurrentJoke() tea.Cmd {
	if c.current == nil || !c.copyEnabled || c.deps.Clipboard == nil {
		return nil
	}
	text := c.current.Text()
	clip := c.deps.Clipboard
	return func() tea.Msg {
		return CopyResultMsg{Err: clip.WriteAll(text)}
	}
}

// ApplyCopyResult shows the copy outcome as a toast and schedules its expiry.
func (c *Controller) ApplyCopyResult(msg CopyResultMsg) tea.Cmd {
	if msg.Err != nil {
		log.Printf("copying joke: %v", msg.Err)
		return c.ShowToast(toastCopyFailed)
	}
	return c.ShowToast(toastCopied)
}

// ShowToast displays text until the toast duration elapses or another toast replaces it.
func (c *Controller) ShowToast(text string) tea.Cmd {
	c.toastID++
	c.toastText = text
	id := c.toastID
	return tea.Tick(c.deps.ToastDuration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// ExpireToast hides the toast if msg refers to the one currently shown.
func (c *Controller) ExpireToast(msg ToastExpiredMsg) {
	if msg.ID == c.toastID {
		c.toastText = ""
	}
}

// CycleCategory moves the selector by delta positions and returns the new category.
func (c *Controller) CycleCategory(delta int) string {
	n := len(model.Categories)
	idx := (model.CategoryIndex(c.category) + delta%n + n) % n
	return model.Categories[idx]
}

// Visibility returns the active rendering mode.
func (c *Controller) Visibility() model.Visibility { return c.visibility }

// CurrentJoke returns the current joke, if any.
func (c *Controller) CurrentJoke() (model.Joke, bool) {
	if c.current == nil {
		return model.Joke{}, false
	}
	return *c.current, true
}

// Revealed reports whether the punchline is shown.
func (c *Controller) Revealed() bool { return c.revealed }

// RevealEnabled reports whether the reveal action is available.
func (c *Controller) RevealEnabled() bool { return c.revealEnabled }

// CopyEnabled reports whether the copy action is available.
func (c *Controller) CopyEnabled() bool { return c.copyEnabled }

// Category returns the selected category.
func (c *Controller) Category() string { return c.category }

// LastError returns the error behind the Error state, if any.
func (c *Controller) LastError() error { return c.lastErr }

// Stats returns a copy of the session stats.
func (c *Controller) Stats() model.Stats { return c.stats.Clone() }

// Toast returns the visible toast text, empty when none.
func (c *Controller) Toast() string { return c.toastText }
