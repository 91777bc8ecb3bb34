package clubadmin

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionExpired is returned when the API answered 401 and the local
	// session was dropped.
	ErrSessionExpired = errors.New("session expired")
	// ErrInvalidCredentials is returned by Login when the API rejects the
	// email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNoStoredSession is returned by Restore when storage holds nothing
	// to restore.
	ErrNoStoredSession = errors.New("no stored session")
	// ErrRequestFailed wraps transport-level failures (DNS, refused
	// connection, timeout) that never produced an HTTP status.
	ErrRequestFailed = errors.New("request failed")
	// ErrClientClosed is returned by operations on a closed client.
	ErrClientClosed = errors.New("client closed")
)

// APIError is a non-2xx answer from the API, carrying the server's own
// message when it sent one. The message is always non-empty and suitable for
// display.
type APIError struct {
	Status    int
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	return e.Message
}

// AsAPIError unwraps err into an [*APIError], or returns nil when err does
// not carry one.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// newAPIError builds an [*APIError], falling back to "HTTP <code>: <status
// text>" when the server sent no usable message.
func newAPIError(status int, statusText, message, requestID string) *APIError {
	if message == "" {
		message = fmt.Sprintf("HTTP %d: %s", status, statusText)
	}
	return &APIError{
		Status:    status,
		Message:   message,
		RequestID: requestID,
	}
}
