// Package router maps command words to handlers, the way http.ServeMux
// maps request patterns to http.HandlerFuncs.
package router

import (
	"log/slog"
	"strings"

	"github.com/aanand-mishra/contact-book/internal/utils/response"
)

// MsgInvalidCommand is the reply for any command without a handler.
const MsgInvalidCommand = "Invalid command."

// HandlerFunc runs one command. args are the words after the command,
// unchanged in case.
type HandlerFunc func(args []string) response.Response

// Router is a command table. The zero value is not usable; call New.
type Router struct {
	handlers map[string]HandlerFunc
}

// New returns an empty router.
func New() *Router {
	return &Router{handlers: make(map[string]HandlerFunc)}
}

// Handle registers h for command. Commands are matched case-insensitively.
func (r *Router) Handle(command string, h HandlerFunc) {
	r.handlers[strings.ToLower(command)] = h
}

// Dispatch runs the handler registered for command.
func (r *Router) Dispatch(command string, args []string) response.Response {
	h, ok := r.handlers[command]
	if !ok {
		slog.Debug("unknown command", slog.String("command", command))
		return response.Response{Status: response.StatusError, Message: MsgInvalidCommand}
	}
	return h(args)
}

// ParseInput splits a line on whitespace. The command word is lower-cased;
// arguments are returned as typed. A blank line yields an empty command.
func ParseInput(line string) (command string, args []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}
