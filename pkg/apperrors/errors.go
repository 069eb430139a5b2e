package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so the HTTP layer can map it to exactly one
// status code, regardless of which endpoint surfaced it.
type Kind uint8

const (
	Validation Kind = iota + 1 // bad or duplicate input
	NotFound                   // missing user or avatar reference
	IO                         // filesystem failure
	Delivery                   // email transport failure
	Publish                    // broker failure
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFound:
		return "not_found"
	case IO:
		return "io"
	case Delivery:
		return "delivery"
	case Publish:
		return "publish"
	}
	return "unknown"
}

// Error is a kinded error carrying an optional cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New returns a kinded error without a cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf is New with formatting.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap annotates err with a kind and message. A nil err yields nil.
func Wrap(kind Kind, msg string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the kind from err, or 0 when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Is lets errors.Is match two kinded errors by kind alone, so callers can
// probe with apperrors.New(apperrors.NotFound, "").
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// Status is the single place error kinds become HTTP status codes.
func Status(err error) int {
	switch KindOf(err) {
	case NotFound:
		return http.StatusNotFound
	case Validation, IO, Delivery, Publish:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
