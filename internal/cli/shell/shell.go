// Package shell runs the read-eval-print loop: prompt, read a line,
// dispatch it, print the reply, until the user says close or exit.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aanand-mishra/contact-book/internal/addressbook"
	"github.com/aanand-mishra/contact-book/internal/cli/router"
	"github.com/aanand-mishra/contact-book/internal/storage"
)

const (
	Greeting = "Welcome to the assistant bot!"
	Prompt   = "Enter a command: "
	Farewell = "Good bye!"
)

// Shell owns one session with the user. The book is loaded before the
// shell is built and saved by Run when the session ends.
type Shell struct {
	book   addressbook.Book
	store  storage.Storage
	router *router.Router
	in     *bufio.Reader
	out    io.Writer
	log    *slog.Logger
}

// New builds a shell reading commands from in and writing replies to out.
func New(book addressbook.Book, store storage.Storage, r *router.Router, in io.Reader, out io.Writer, log *slog.Logger) *Shell {
	return &Shell{
		book:   book,
		store:  store,
		router: r,
		in:     bufio.NewReader(in),
		out:    out,
		log:    log,
	}
}

// Run loops until close, exit, or end of input, then saves the book.
// Command failures are printed and the loop goes on; only I/O and save
// errors are returned.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, Greeting)

	for {
		fmt.Fprint(s.out, Prompt)

		line, err := s.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("shell: read input: %w", err)
		}
		eof := errors.Is(err, io.EOF)
		if eof && line == "" {
			// Ctrl+D: finish the prompt line, then leave as on exit.
			fmt.Fprintln(s.out)
			return s.quit()
		}

		command, args := router.ParseInput(line)
		if command == "close" || command == "exit" {
			return s.quit()
		}

		reply := s.router.Dispatch(command, args)
		if reply.Failed() {
			s.log.Debug("command failed",
				slog.String("command", command),
				slog.String("reply", reply.Message))
		}
		fmt.Fprintln(s.out, reply.Message)

		if eof {
			return s.quit()
		}
	}
}

func (s *Shell) quit() error {
	if err := s.store.Save(s.book); err != nil {
		s.log.Error("failed to save address book", slog.String("error", err.Error()))
		return fmt.Errorf("shell: save: %w", err)
	}
	s.log.Debug("address book saved", slog.Int("contacts", s.book.Len()))
	fmt.Fprintln(s.out, Farewell)
	return nil
}
