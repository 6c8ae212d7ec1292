package garden

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no extraction strategy matches a channel page.
// It is a definitive "nothing here", distinct from a transport failure.
var ErrNotFound = errors.New("no stream address found")

// ErrUnresolved is returned when an indirect reference could not be converted
// to a playable address after exhausting retries.
var ErrUnresolved = errors.New("indirect reference unresolved")

// FetchError reports a transport or HTTP status failure while retrieving
// dataset JSON or a channel page.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError reports a malformed dataset document.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
