// Package apierr maps the error kinds named in spec section 7 to HTTP
// status codes, the way the teacher's handlers map service errors to
// gin.H{"error": ...} responses, but centralised so every handler speaks
// the same vocabulary.
package apierr

import "net/http"

// Kind is one of the error categories the HTTP surface can signal.
type Kind int

const (
	KindBadInput Kind = iota
	KindBadToken
	KindNotFound
	KindStateViolation
	KindGone
	KindUnsupported
)

// Error is a Kind carrying a human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func BadInput(msg string) *Error       { return New(KindBadInput, msg) }
func BadToken(msg string) *Error       { return New(KindBadToken, msg) }
func NotFound(msg string) *Error       { return New(KindNotFound, msg) }
func StateViolation(msg string) *Error { return New(KindStateViolation, msg) }
func Gone(msg string) *Error           { return New(KindGone, msg) }
func Unsupported(msg string) *Error    { return New(KindUnsupported, msg) }

// Status returns the HTTP status code for a Kind.
func (k Kind) Status() int {
	switch k {
	case KindBadInput:
		return http.StatusBadRequest
	case KindBadToken:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindStateViolation:
		return http.StatusConflict
	case KindGone:
		return http.StatusGone
	case KindUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
