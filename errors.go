package splist

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a call that was rejected before any request
// was dispatched, such as FetchItem with a non-positive ID.
var ErrInvalidArgument = errors.New("invalid argument")

// RequestError reports a failed HTTP round trip: either the transport
// returned an error or the server answered with a non-2xx status.
type RequestError struct {
	Method     string
	URL        string
	StatusCode int // zero when the transport failed before a response arrived
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// AuthError reports a failed digest refresh, either because the contextinfo
// request itself failed or because the response matched neither of the two
// envelope shapes that carry a FormDigestValue.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("refresh digest: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("refresh digest: %s", e.Reason)
}

func (e *AuthError) Unwrap() error { return e.Err }
