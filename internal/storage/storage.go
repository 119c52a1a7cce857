// Package storage defines the Storage interface, the contract any
// snapshot backend must satisfy to persist the address book between runs.
//
// The shell only talks to this interface, so switching from SQLite to a
// YAML file is a config change with zero handler changes.
package storage

import "github.com/aanand-mishra/contact-book/internal/addressbook"

// Storage loads and saves whole-book snapshots.
type Storage interface {
	// Load returns the saved address book. A snapshot that does not
	// exist yet is not an error: Load returns an empty book.
	Load() (*addressbook.AddressBook, error)

	// Save writes every record of book, replacing the previous snapshot.
	Save(book addressbook.Book) error

	// Close releases any resources held by the backend.
	Close() error
}
