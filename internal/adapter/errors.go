package adapter

import (
	"errors"
	"fmt"
)

// Status sentinels. A [*RequestError] unwraps to one of them so callers can
// match on the class of failure with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessableEntity = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrUnexpectedStatus is used for non-2xx codes without a dedicated sentinel.
	ErrUnexpectedStatus = errors.New("unexpected status")

	// ErrMalformedResponse marks a 2xx response whose body could not be decoded.
	ErrMalformedResponse = errors.New("malformed response")
)

// DefaultErrorDetail is reported when neither the server nor the transport
// supplies a usable message.
const DefaultErrorDetail = "Request failed"

// MalformedResponseDetail is reported when a response arrived but its body
// could not be decoded.
const MalformedResponseDetail = "Malformed server response"

// RequestError is returned by every [ServerAdapter] call that did not end
// with a usable 2xx response.
//
// Status is the HTTP status code, or 0 when the request never got a
// response (connection refused, DNS failure, canceled context).
// Detail is the human-readable message supplied by the server.
type RequestError struct {
	Status int
	Detail string
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status == 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Detail, e.Err)
		}
		return e.Detail
	}
	return fmt.Sprintf("http %d: %s", e.Status, e.Detail)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether the request failed before a response arrived.
func (e *RequestError) IsTransport() bool {
	return e.Status == 0
}

// AsRequestError is a shortcut for [errors.As] with a *RequestError target.
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}
