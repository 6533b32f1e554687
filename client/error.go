package client

import (
	"errors"
	"fmt"
	"time"
)

// Kind classifies a forwarding failure.
type Kind int

const (
	// KindUnreachable covers network failures below HTTP and requests that
	// could not be built or were cancelled by the caller.
	KindUnreachable Kind = iota
	// KindTimeout means the remote did not answer within the configured bound.
	KindTimeout
	// KindHTTPStatus means the remote answered with a non-2xx status.
	KindHTTPStatus
	// KindMalformedResponse means the body was not a JSON-RPC response.
	KindMalformedResponse
	// KindRemoteError means the remote returned a JSON-RPC error object.
	KindRemoteError
)

func (k Kind) String() string {
	switch k {
	case KindUnreachable:
		return "unreachable"
	case KindTimeout:
		return "timeout"
	case KindHTTPStatus:
		return "httpStatus"
	case KindMalformedResponse:
		return "malformedResponse"
	case KindRemoteError:
		return "remoteError"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is returned by Forward for every failure.
type Error struct {
	Kind    Kind
	Method  string
	Status  int    // HTTP status, KindHTTPStatus only
	Body    string // response body, KindHTTPStatus only
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a forwarding error of the given kind.
func IsKind(err error, kind Kind) bool {
	var forwardErr *Error
	if errors.As(err, &forwardErr) {
		return forwardErr.Kind == kind
	}
	return false
}

func newTimeoutError(method string, timeout time.Duration, err error) *Error {
	return &Error{
		Kind:    KindTimeout,
		Method:  method,
		Message: fmt.Sprintf("Request timeout after %s for method: %s", formatTimeout(timeout), method),
		Err:     err,
	}
}

func newHTTPStatusError(method string, status int, body string) *Error {
	return &Error{
		Kind:    KindHTTPStatus,
		Method:  method,
		Status:  status,
		Body:    body,
		Message: fmt.Sprintf("HTTP %d: %s", status, body),
	}
}

func newMalformedResponseError(method string, err error) *Error {
	return &Error{
		Kind:    KindMalformedResponse,
		Method:  method,
		Message: fmt.Sprintf("invalid JSON-RPC response for method %s: %v", method, err),
		Err:     err,
	}
}

func newRemoteError(method, message string) *Error {
	return &Error{Kind: KindRemoteError, Method: method, Message: message}
}

func newUnreachableError(method string, err error) *Error {
	return &Error{Kind: KindUnreachable, Method: method, Message: err.Error(), Err: err}
}

// formatTimeout renders whole seconds as "30 seconds", anything else as a duration.
func formatTimeout(timeout time.Duration) string {
	if timeout >= time.Second && timeout%time.Second == 0 {
		seconds := int(timeout / time.Second)
		if seconds == 1 {
			return "1 second"
		}
		return fmt.Sprintf("%d seconds", seconds)
	}
	return timeout.String()
}
