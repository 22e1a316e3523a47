package urlencoded

import "errors"

// Errors returned by the decode entry points. The set is closed: every
// decode failure is ErrEmptyQuery, ErrMalformedQuery or a *BodyError.
var (
	// ErrEmptyQuery reports that the input to decode was empty: no query
	// string was present, or the body was empty or absent.
	ErrEmptyQuery = errors.New("urlencoded: expected query, found empty string")

	// ErrMalformedQuery reports input whose percent-decoded bytes are not
	// valid UTF-8 text.
	ErrMalformedQuery = errors.New("urlencoded: malformed query string")
)

// BodyError reports that acquiring the request body failed before decoding
// could begin. It wraps the acquisition failure, which remains available
// through [errors.Unwrap].
type BodyError struct {
	Err error
}

func (e *BodyError) Error() string {
	return "urlencoded: reading body: " + e.Err.Error()
}

func (e *BodyError) Unwrap() error { return e.Err }
