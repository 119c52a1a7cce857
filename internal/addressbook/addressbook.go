// Package addressbook stores contact records keyed by name.
//
// Book is the capability the command handlers and storage drivers depend
// on; AddressBook is the in-memory implementation. Handlers never learn
// which container backs the book, so tests can hand them a fake.
package addressbook

import (
	"fmt"
	"strings"
	"time"

	"github.com/aanand-mishra/contact-book/internal/types"
)

// Book is the contract for a collection of records keyed by name.
type Book interface {
	// AddRecord inserts the record, replacing any record with the same name.
	AddRecord(record *types.Record)

	// Find returns the record for name, or false if there is none.
	Find(name string) (*types.Record, bool)

	// Delete removes the record for name. It returns ErrRecordNotFound
	// when the name is unknown.
	Delete(name string) error

	// Records returns every record in insertion order.
	Records() []*types.Record

	// Len returns the number of records.
	Len() int

	// UpcomingBirthdays lists contacts to congratulate within the next
	// week, relative to now.
	UpcomingBirthdays(now time.Time) []UpcomingBirthday
}

// AddressBook is a name → record map that remembers insertion order.
type AddressBook struct {
	records map[types.Name]*types.Record
	order   []types.Name
}

var _ Book = (*AddressBook)(nil)

// New returns an empty address book.
func New() *AddressBook {
	return &AddressBook{records: make(map[types.Name]*types.Record)}
}

func (b *AddressBook) AddRecord(record *types.Record) {
	if _, exists := b.records[record.Name]; !exists {
		b.order = append(b.order, record.Name)
	}
	b.records[record.Name] = record
}

func (b *AddressBook) Find(name string) (*types.Record, bool) {
	r, ok := b.records[types.Name(name)]
	return r, ok
}

func (b *AddressBook) Delete(name string) error {
	key := types.Name(name)
	if _, ok := b.records[key]; !ok {
		return fmt.Errorf("%w: %s", types.ErrRecordNotFound, name)
	}
	delete(b.records, key)
	for i, n := range b.order {
		if n == key {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

func (b *AddressBook) Records() []*types.Record {
	out := make([]*types.Record, 0, len(b.order))
	for _, n := range b.order {
		out = append(out, b.records[n])
	}
	return out
}

func (b *AddressBook) Len() int { return len(b.order) }

func (b *AddressBook) String() string {
	if b.Len() == 0 {
		return "The address book is empty."
	}
	lines := make([]string, 0, b.Len())
	for _, r := range b.Records() {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}
