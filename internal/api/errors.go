package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies remote-service failures into the small taxonomy the rest
// of the application reacts to.
type Kind string

const (
	// KindAuthentication covers bad credentials and any 401 on a
	// subsequent call; the latter additionally triggers the client's
	// OnUnauthorized observer before the error is returned.
	KindAuthentication Kind = "authentication"
	// KindAuthorization is a well-formed session with insufficient role.
	KindAuthorization Kind = "authorization"
	// KindValidation is a malformed request body, carrying the
	// server-provided detail text.
	KindValidation Kind = "validation"
	// KindNotFound is an operation against a non-existent record id.
	KindNotFound Kind = "not_found"
	// KindTransport covers network failures, malformed JSON responses,
	// and server-side failures outside the other kinds.
	KindTransport Kind = "transport"
)

// Error is a typed failure from the resource client. Every call either
// resolves with data or rejects with one of these, carrying a
// human-readable message.
type Error struct {
	// Op is the operation that failed, e.g. "patients.update".
	Op string
	// Kind classifies the failure.
	Kind Kind
	// StatusCode is the HTTP status, 0 for pre-response failures.
	StatusCode int
	// Message is the server-provided detail when present, else a
	// per-operation fallback.
	Message string
	// Err is the underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: [%d] %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrapError wraps a pre-response failure (network, marshaling) as a
// transport error.
func wrapError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindTransport, Message: err.Error(), Err: err}
}

// fromStatus maps a non-2xx status to a typed error. message is the
// server-provided detail; fallback is the per-operation message used when
// the server sent none.
func fromStatus(op string, status int, message, fallback string) *Error {
	if message == "" {
		message = fallback
	}
	kind := KindTransport
	switch {
	case status == http.StatusUnauthorized:
		kind = KindAuthentication
	case status == http.StatusForbidden:
		kind = KindAuthorization
	case status == http.StatusNotFound:
		kind = KindNotFound
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		kind = KindValidation
	}
	return &Error{Op: op, Kind: kind, StatusCode: status, Message: message}
}

// ErrorKind returns the Kind of err, or "" if err is not a client Error.
func ErrorKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsAuthentication reports whether err is an authentication failure.
func IsAuthentication(err error) bool { return ErrorKind(err) == KindAuthentication }

// IsAuthorization reports whether err is an insufficient-role failure.
func IsAuthorization(err error) bool { return ErrorKind(err) == KindAuthorization }

// IsValidation reports whether err is a request-validation failure.
func IsValidation(err error) bool { return ErrorKind(err) == KindValidation }

// IsNotFound reports whether err targets a non-existent record.
func IsNotFound(err error) bool { return ErrorKind(err) == KindNotFound }

// IsTransport reports whether err is a transport-level failure.
func IsTransport(err error) bool { return ErrorKind(err) == KindTransport }

// UserMessage extracts the human-readable message from a client error,
// falling back to err.Error() for foreign errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
