package model

import "strings"

// Joke is a two-part joke as returned by the joke service.
// It is the canonical type for the fetcher, the view controller, and display.
type Joke struct {
	ID       int
	Category string
	Setup    string
	Delivery string
}

// Text returns the joke formatted for sharing: setup, a blank line, delivery.
func (j Joke) Text() string {
	return j.Setup + "\n\n" + j.Delivery
}

// Visibility is the mutually exclusive rendering mode of the joke view.
type Visibility int

const (
	VisibilityLoading Visibility = iota
	VisibilityCard
	VisibilityError
)

func (v Visibility) String() string {
	switch v {
	case VisibilityLoading:
		return "loading"
	case VisibilityCard:
		return "card"
	case VisibilityError:
		return "error"
	default:
		return "unknown"
	}
}

// Categories lists the joke service categories in selector order.
// CategoryAny is the wildcard.
var Categories = []string{
	CategoryAny,
	"Misc",
	"Programming",
	"Dark",
	"Pun",
	"Spooky",
	"Christmas",
}

// CanonicalCategory returns the selector spelling of name, matched
// case-insensitively. ok is false for names the service does not serve.
func CanonicalCategory(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, c := range Categories {
		if strings.EqualFold(c, name) {
			return c, true
		}
	}
	return "", false
}

// CategoryIndex returns the position of name in Categories, or 0.
func CategoryIndex(name string) int {
	for i, c := range Categories {
		if strings.EqualFold(c, name) {
			return i
		}
	}
	return 0
}
