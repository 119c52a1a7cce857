package types

import (
	"fmt"
	"strings"
)

// Record is one contact: a name, an ordered list of phones (duplicates
// allowed), and an optional birthday.
type Record struct {
	Name     Name
	Phones   []Phone
	Birthday Birthday
}

// NewRecord creates a record with no phones and no birthday.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{Name: n}, nil
}

// AddPhone validates number and appends it.
func (r *Record) AddPhone(number string) error {
	phone, err := NewPhone(number)
	if err != nil {
		return err
	}
	r.Phones = append(r.Phones, phone)
	return nil
}

// RemovePhone removes the first phone equal to number and reports
// whether anything was removed.
func (r *Record) RemovePhone(number string) bool {
	for i, p := range r.Phones {
		if string(p) == number {
			r.Phones = append(r.Phones[:i], r.Phones[i+1:]...)
			return true
		}
	}
	return false
}

// EditPhone replaces oldNumber with newNumber. The new phone is appended
// before the old one is removed, so the replacement ends up last.
func (r *Record) EditPhone(oldNumber, newNumber string) error {
	if _, ok := r.FindPhone(oldNumber); !ok {
		return fmt.Errorf("%w: %s", ErrPhoneNotFound, oldNumber)
	}
	if err := r.AddPhone(newNumber); err != nil {
		return err
	}
	r.RemovePhone(oldNumber)
	return nil
}

// FindPhone returns the first phone equal to number.
func (r *Record) FindPhone(number string) (Phone, bool) {
	for _, p := range r.Phones {
		if string(p) == number {
			return p, true
		}
	}
	return "", false
}

// AddBirthday replaces the birthday after validation.
func (r *Record) AddBirthday(value string) error {
	b, err := NewBirthday(value)
	if err != nil {
		return err
	}
	r.Birthday = b
	return nil
}

// PhoneStrings returns the phones as plain strings, in order.
func (r *Record) PhoneStrings() []string {
	out := make([]string, 0, len(r.Phones))
	for _, p := range r.Phones {
		out = append(out, string(p))
	}
	return out
}

func (r *Record) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Contact name: %s, phones: %s", r.Name, strings.Join(r.PhoneStrings(), "; "))
	if r.Birthday.IsSet() {
		fmt.Fprintf(&b, ", birthday: %s", r.Birthday)
	}
	return b.String()
}
