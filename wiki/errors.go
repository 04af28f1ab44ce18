package wiki

import (
	"errors"
	"fmt"
)

// PageNotFoundError indicates the API reported the requested page as missing.
type PageNotFoundError struct {
	Title string
}

func (e *PageNotFoundError) Error() string {
	return fmt.Sprintf("no Wikipedia page found for %q", e.Title)
}

// RequestError indicates a lookup failed to complete: a transport failure,
// a non-OK status, an undecodable body, or an in-band API error. Malformed
// responses are deliberately classified here rather than as a separate kind;
// the caller treats all of them as network-level failures.
type RequestError struct {
	Op  string // "request", "read", "decode", or the API action
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Shape violations in an otherwise well-formed JSON envelope
var (
	errMissingQuery = errors.New("no query object in response")
	errMissingPages = errors.New("no page data in response")
)

// IsNotFound returns true if the error is a PageNotFoundError.
func IsNotFound(err error) bool {
	var notFound *PageNotFoundError
	return errors.As(err, &notFound)
}

// IsRequestError returns true if the error is a RequestError.
func IsRequestError(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr)
}
