package responder

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError lets a controller action choose the response status for an error.
type HTTPError struct {
	Status int
	Err    error
}

// NewHTTPError wraps err with status. A nil err is replaced by the status text.
func NewHTTPError(status int, err error) *HTTPError {
	if err == nil {
		err = errors.New(http.StatusText(status))
	}
	return &HTTPError{Status: status, Err: err}
}

// Errorf is shorthand for NewHTTPError(status, fmt.Errorf(format, args...)).
func Errorf(status int, format string, args ...any) *HTTPError {
	return NewHTTPError(status, fmt.Errorf(format, args...))
}

func (e *HTTPError) Error() string {
	return e.Err.Error()
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func statusFromError(err error) (int, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.Status >= 400 && httpErr.Status <= 599 {
		return httpErr.Status, true
	}
	return 0, false
}
