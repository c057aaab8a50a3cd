// Package gammaerrors defines the error taxonomy shared by all Gamma SDK
// methods. Callers can match individual types with errors.As, or treat any
// SDK-originated failure generically via the Error marker interface.
package gammaerrors

import (
	"errors"
	"fmt"
)

// Error is implemented by every error the SDK returns. It exists so callers
// can distinguish SDK failures from their own wrapping without enumerating
// concrete types.
type Error interface {
	error
	gammaError()
}

// APIError reports a non-2xx HTTP response or a transport-level failure
// (DNS, connection reset, malformed body). Status is 0 when the request
// never produced a response.
type APIError struct {
	Status int
	Body   string
	Err    error
}

func (e *APIError) Error() string {
	switch {
	case e.Err != nil && e.Status > 0:
		return fmt.Sprintf("gamma: api error (status %d): %v", e.Status, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("gamma: api error: %v", e.Err)
	default:
		return fmt.Sprintf("gamma: api error (status %d): %s", e.Status, e.Body)
	}
}

func (e *APIError) Unwrap() error { return e.Err }

func (e *APIError) gammaError() {}

// NotFoundError reports an HTTP 404 for a specific resource path.
type NotFoundError struct {
	Status int // always 404
	Path   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("gamma: resource not found: %s", e.Path)
}

func (e *NotFoundError) gammaError() {}

// NewNotFound returns a NotFoundError for the given request path.
func NewNotFound(path string) *NotFoundError {
	return &NotFoundError{Status: 404, Path: path}
}

// ValidationError reports caller input the SDK rejected before issuing any
// network request, such as an unresolvable URL or a malformed address.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return "gamma: " + e.Msg
}

func (e *ValidationError) gammaError() {}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsGamma reports whether err originated from this SDK.
func IsGamma(err error) bool {
	var ge Error
	return errors.As(err, &ge)
}
