// Package contact contains the command handlers for the contact book.
//
// Every exported function is a factory: it receives its dependencies (the
// address book, a clock) once at startup and returns the router.HandlerFunc
// that runs on every matching command:
//
//	r.Handle("add", contact.Add(book))
//
// Handlers check their argument count, do the work, and always answer with
// a response.Response. Failures are returned through response.GeneralError,
// never panicked or printed.
package contact

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aanand-mishra/contact-book/internal/addressbook"
	"github.com/aanand-mishra/contact-book/internal/cli/router"
	"github.com/aanand-mishra/contact-book/internal/types"
	"github.com/aanand-mishra/contact-book/internal/utils/response"
)

// atLeast fails with ErrWrongArgumentCount when args has fewer than n words.
func atLeast(args []string, n int) error {
	if len(args) < n {
		return fmt.Errorf("want at least %d, got %d: %w", n, len(args), types.ErrWrongArgumentCount)
	}
	return nil
}

// exactly fails with ErrWrongArgumentCount unless args has n words.
func exactly(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("want %d, got %d: %w", n, len(args), types.ErrWrongArgumentCount)
	}
	return nil
}

// findRecord looks up name and turns a miss into ErrRecordNotFound.
func findRecord(book addressbook.Book, name string) (*types.Record, error) {
	record, ok := book.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrRecordNotFound, name)
	}
	return record, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Hello handles "hello".
// Replies with a fixed greeting.
// ─────────────────────────────────────────────────────────────────────────────
func Hello() router.HandlerFunc {
	return func(_ []string) response.Response {
		return response.OK("How can I help you?")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Add handles "add <name> <phone>".
// Creates the contact if the name is new, then appends the phone. An
// existing contact keeps its phones; the new one is added after them.
// The phone is validated first, so a typo never leaves an empty contact.
// ─────────────────────────────────────────────────────────────────────────────
func Add(book addressbook.Book) router.HandlerFunc {
	return func(args []string) response.Response {
		if err := atLeast(args, 2); err != nil {
			return response.GeneralError(err)
		}
		name, number := args[0], args[1]
		slog.Debug("adding a phone", slog.String("name", name))

		phone, err := types.NewPhone(number)
		if err != nil {
			return response.GeneralError(err)
		}

		message := "Contact updated."
		record, ok := book.Find(name)
		if !ok {
			if record, err = types.NewRecord(name); err != nil {
				return response.GeneralError(err)
			}
			book.AddRecord(record)
			message = "Contact added."
		}
		record.Phones = append(record.Phones, phone)

		slog.Debug("phone added", slog.String("name", name), slog.Int("phones", len(record.Phones)))
		return response.OK(message)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Change handles "change <name> <old phone> <new phone>".
// The replacement phone goes to the end of the list.
//
// Errors: wrong argument count, unknown contact, old phone not on the
// contact, invalid new phone.
// ─────────────────────────────────────────────────────────────────────────────
func Change(book addressbook.Book) router.HandlerFunc {
	return func(args []string) response.Response {
		if err := exactly(args, 3); err != nil {
			return response.GeneralError(err)
		}
		name, oldNumber, newNumber := args[0], args[1], args[2]
		slog.Debug("changing a phone", slog.String("name", name))

		record, err := findRecord(book, name)
		if err != nil {
			return response.GeneralError(err)
		}
		if err := record.EditPhone(oldNumber, newNumber); err != nil {
			return response.GeneralError(err)
		}
		return response.OK("Contact updated.")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Phone handles "phone <name>".
//
//	Phone(s) for alice: 1234567890, 0987654321
// ─────────────────────────────────────────────────────────────────────────────
func Phone(book addressbook.Book) router.HandlerFunc {
	return func(args []string) response.Response {
		if err := atLeast(args, 1); err != nil {
			return response.GeneralError(err)
		}
		name := args[0]

		record, err := findRecord(book, name)
		if err != nil {
			return response.GeneralError(err)
		}
		return response.OK(fmt.Sprintf("Phone(s) for %s: %s", name, strings.Join(record.PhoneStrings(), ", ")))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// All handles "all".
// One line per contact, in the order they were added.
// ─────────────────────────────────────────────────────────────────────────────
func All(book addressbook.Book) router.HandlerFunc {
	return func(_ []string) response.Response {
		if book.Len() == 0 {
			return response.OK("No contacts available.")
		}
		lines := make([]string, 0, book.Len())
		for _, record := range book.Records() {
			lines = append(lines, record.String())
		}
		return response.OK(strings.Join(lines, "\n"))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Birthdays handles "birthdays".
// now is the clock; main passes time.Now.
//
//	alice: 17.06.2024
// ─────────────────────────────────────────────────────────────────────────────
func Birthdays(book addressbook.Book, now func() time.Time) router.HandlerFunc {
	return func(_ []string) response.Response {
		upcoming := book.UpcomingBirthdays(now())
		slog.Debug("upcoming birthdays", slog.Int("count", len(upcoming)))

		if len(upcoming) == 0 {
			return response.OK("No upcoming birthdays.")
		}
		lines := make([]string, 0, len(upcoming))
		for _, u := range upcoming {
			lines = append(lines, fmt.Sprintf("%s: %s", u.Name, u.Birthday))
		}
		return response.OK(strings.Join(lines, "\n"))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// AddBirthday handles "add-birthday <name> <DD.MM.YYYY>".
// Replaces any birthday already set.
// ─────────────────────────────────────────────────────────────────────────────
func AddBirthday(book addressbook.Book) router.HandlerFunc {
	return func(args []string) response.Response {
		if err := exactly(args, 2); err != nil {
			return response.GeneralError(err)
		}
		name, birthday := args[0], args[1]
		slog.Debug("adding a birthday", slog.String("name", name))

		record, err := findRecord(book, name)
		if err != nil {
			return response.GeneralError(err)
		}
		if err := record.AddBirthday(birthday); err != nil {
			return response.GeneralError(err)
		}
		return response.OK(fmt.Sprintf("Birthday %s added to contact %s.", birthday, name))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// ShowBirthday handles "show-birthday <name>".
//
//	Birthday of alice: 15.06.1990
// ─────────────────────────────────────────────────────────────────────────────
func ShowBirthday(book addressbook.Book) router.HandlerFunc {
	return func(args []string) response.Response {
		if err := atLeast(args, 1); err != nil {
			return response.GeneralError(err)
		}
		name := args[0]

		record, err := findRecord(book, name)
		if err != nil {
			return response.GeneralError(err)
		}
		if !record.Birthday.IsSet() {
			return response.GeneralError(fmt.Errorf("No birthday found for contact %s.", name))
		}
		return response.OK(fmt.Sprintf("Birthday of %s: %s", name, record.Birthday))
	}
}

// Register wires every contact command into r.
func Register(r *router.Router, book addressbook.Book, now func() time.Time) {
	r.Handle("hello", Hello())
	r.Handle("add", Add(book))
	r.Handle("change", Change(book))
	r.Handle("phone", Phone(book))
	r.Handle("all", All(book))
	r.Handle("birthdays", Birthdays(book, now))
	r.Handle("add-birthday", AddBirthday(book))
	r.Handle("show-birthday", ShowBirthday(book))
}
