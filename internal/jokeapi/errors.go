package jokeapi

import (
	"errors"
	"fmt"
)

// Kind classifies why a fetch failed.
type Kind int

const (
	KindTransport Kind = iota + 1
	KindHTTPStatus
	KindDecode
	KindApplication
	KindInvalidCategory
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindHTTPStatus:
		return "http status"
	case KindDecode:
		return "decode"
	case KindApplication:
		return "application"
	case KindInvalidCategory:
		return "invalid category"
	default:
		return "unknown"
	}
}

// FetchError is returned by Client.Fetch for every failure.
type FetchError struct {
	Kind       Kind
	Category   string
	StatusCode int    // set for KindHTTPStatus
	Message    string // service message for KindApplication
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("jokeapi: %s: HTTP status %d", e.Category, e.StatusCode)
	case KindApplication:
		return fmt.Sprintf("jokeapi: %s: service error: %s", e.Category, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("jokeapi: %s: %s: %v", e.Category, e.Kind, e.Err)
	}
	return fmt.Sprintf("jokeapi: %s: %s", e.Category, e.Kind)
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsKind reports whether err is a FetchError of the given kind.
func IsKind(err error, kind Kind) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == kind
}
