// Package types holds the contact model shared across the application:
// the validated field types (Name, Phone, Birthday), the Record that
// aggregates them, and the error kinds they return. Keeping them in one
// place prevents import cycles: the address book, storage drivers, and
// command handlers can all import types without depending on each other.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// BirthdayLayout is the DD.MM.YYYY layout in Go's reference-time notation.
const BirthdayLayout = "02.01.2006"

// Validation rules, expressed as go-playground/validator tags.
//
//	number    only ASCII digits (unlike "numeric", no sign or decimal point)
//	len=10    exactly ten characters
//	datetime  must time.Parse with the given layout, so 31.04 is rejected
const (
	nameRule     = "required"
	phoneRule    = "len=10,number"
	birthdayRule = "datetime=" + BirthdayLayout
)

// validate caches parsed tags; one instance serves the package.
var validate = validator.New()

// Name is a contact's display name and the identity key in the book.
type Name string

// NewName wraps any non-empty string.
func NewName(value string) (Name, error) {
	if err := validate.Var(value, nameRule); err != nil {
		return "", ErrInvalidName
	}
	return Name(value), nil
}

func (n Name) String() string { return string(n) }

// Phone is a phone number of exactly 10 decimal digits.
type Phone string

// NewPhone validates number and returns it as a Phone.
func NewPhone(number string) (Phone, error) {
	if err := validate.Var(number, phoneRule); err != nil {
		return "", ErrInvalidPhone
	}
	return Phone(number), nil
}

func (p Phone) String() string { return string(p) }

// Birthday is a date in DD.MM.YYYY form. The zero value means the
// contact has no birthday recorded.
type Birthday string

// NewBirthday accepts an empty value (no birthday) or a real calendar
// date in DD.MM.YYYY form.
func NewBirthday(value string) (Birthday, error) {
	if value == "" {
		return "", nil
	}
	if err := validate.Var(value, birthdayRule); err != nil {
		return "", ErrInvalidBirthday
	}
	return Birthday(value), nil
}

// IsSet reports whether a birthday is recorded.
func (b Birthday) IsSet() bool { return b != "" }

// Time parses the stored value. It fails for an unset birthday or for a
// value that did not go through NewBirthday (e.g. a hand-edited snapshot).
func (b Birthday) Time() (time.Time, error) {
	if !b.IsSet() {
		return time.Time{}, ErrInvalidBirthday
	}
	t, err := time.Parse(BirthdayLayout, string(b))
	if err != nil {
		return time.Time{}, ErrInvalidBirthday
	}
	return t, nil
}

func (b Birthday) String() string { return string(b) }
