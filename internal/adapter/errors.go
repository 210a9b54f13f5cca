package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrMalformedResponse marks a 2xx response whose body did not decode
	// into the expected shape (e.g. a credential without an id).
	ErrMalformedResponse = errors.New("malformed server response")
)

// ServerError pairs the status sentinel a failure response mapped to with
// the message the server sent in its {"message"} body. Message is the text
// to show the user verbatim; errors.Is against the sentinel keeps working
// through Unwrap.
type ServerError struct {
	Status  error
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return e.Status.Error()
	}
	return e.Status.Error() + ": " + e.Message
}

func (e *ServerError) Unwrap() error { return e.Status }
