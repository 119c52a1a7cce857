// Package response provides the result type every command handler
// returns, and the rules for turning errors into one-line messages.
//
// Handlers never print and never abort the shell. They return a Response;
// the shell prints its Message whatever the Status, so a bad phone number
// or a missing contact costs the user one line of output, not the session.
package response

import (
	"errors"

	"github.com/aanand-mishra/contact-book/internal/types"
)

// Response is the outcome of one command.
type Response struct {
	Status  string // "ok" or "error"
	Message string // the line shown to the user
}

// Status string constants. Use these instead of raw string literals so
// a typo is caught by the compiler.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Messages for error kinds whose text is not the error's own.
const (
	MsgWrongArgumentCount = "Please provide the correct number of arguments."
	MsgRecordNotFound     = "Contact not found."
)

// OK wraps a success message.
func OK(message string) Response {
	return Response{Status: StatusOK, Message: message}
}

// GeneralError renders any error as a Response.
//
//	ErrWrongArgumentCount → "Please provide the correct number of arguments."
//	ErrRecordNotFound     → "Contact not found."
//	anything else         → the error's own text
func GeneralError(err error) Response {
	switch {
	case errors.Is(err, types.ErrWrongArgumentCount):
		return Response{Status: StatusError, Message: MsgWrongArgumentCount}
	case errors.Is(err, types.ErrRecordNotFound):
		return Response{Status: StatusError, Message: MsgRecordNotFound}
	default:
		return Response{Status: StatusError, Message: err.Error()}
	}
}

// Failed reports whether the response carries an error.
func (r Response) Failed() bool { return r.Status == StatusError }

func (r Response) String() string { return r.Message }
