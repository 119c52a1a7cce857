// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// The whole address book lives in a single SQLite file. Each save
// rewrites both tables inside one transaction; positions are stored
// explicitly so contact order and phone order survive a round trip.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/aanand-mishra/contact-book/internal/addressbook"
	"github.com/aanand-mishra/contact-book/internal/config"
	"github.com/aanand-mishra/contact-book/internal/storage"
	"github.com/aanand-mishra/contact-book/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
	CREATE TABLE IF NOT EXISTS contacts (
		position INTEGER PRIMARY KEY,
		name     TEXT    NOT NULL UNIQUE,
		birthday TEXT    NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS phones (
		contact  TEXT    NOT NULL REFERENCES contacts(name),
		position INTEGER NOT NULL,
		number   TEXT    NOT NULL,
		PRIMARY KEY (contact, position)
	);
`

// SQLite is the concrete implementation of storage.Storage.
type SQLite struct {
	Db   *sql.DB
	path string
}

var _ storage.Storage = (*SQLite)(nil)

// New prepares a SQLite handle for cfg.Storage.Path.
//
// sql.Open does not touch the file; it is created by the first Save, so a
// fresh working directory stays empty until the user exits the shell.
func New(cfg *config.Config) (*SQLite, error) {
	db, err := sql.Open("sqlite3", cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}
	return &SQLite{Db: db, path: cfg.Storage.Path}, nil
}

// migrate creates the tables if they do not exist yet. It is idempotent.
func (s *SQLite) migrate() error {
	if _, err := s.Db.Exec(schema); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

// Load reads every contact ordered by position, then attaches its phones.
func (s *SQLite) Load() (*addressbook.AddressBook, error) {
	book := addressbook.New()

	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return book, nil
	}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	rows, err := s.Db.Query("SELECT name, birthday FROM contacts ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("Load: query contacts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name, birthday string
		if err := rows.Scan(&name, &birthday); err != nil {
			return nil, fmt.Errorf("Load: scan contact: %w", err)
		}
		// Fields are restored as stored; validation happened on the way in.
		book.AddRecord(&types.Record{
			Name:     types.Name(name),
			Birthday: types.Birthday(birthday),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Load: contacts iteration: %w", err)
	}

	if err := s.loadPhones(book); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	return book, nil
}

func (s *SQLite) loadPhones(book *addressbook.AddressBook) error {
	rows, err := s.Db.Query("SELECT contact, number FROM phones ORDER BY contact, position")
	if err != nil {
		return fmt.Errorf("query phones: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var contact, number string
		if err := rows.Scan(&contact, &number); err != nil {
			return fmt.Errorf("scan phone: %w", err)
		}
		record, ok := book.Find(contact)
		if !ok {
			return fmt.Errorf("phone %s belongs to unknown contact %q", number, contact)
		}
		record.Phones = append(record.Phones, types.Phone(number))
	}
	return rows.Err()
}

// Save replaces the stored snapshot with book inside a single transaction.
func (s *SQLite) Save(book addressbook.Book) error {
	if err := s.migrate(); err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	tx, err := s.Db.Begin()
	if err != nil {
		return fmt.Errorf("Save: begin: %w", err)
	}
	// Rollback after a successful Commit is a no-op.
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM phones"); err != nil {
		return fmt.Errorf("Save: clear phones: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM contacts"); err != nil {
		return fmt.Errorf("Save: clear contacts: %w", err)
	}

	contactStmt, err := tx.Prepare("INSERT INTO contacts (position, name, birthday) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("Save: prepare contacts: %w", err)
	}
	defer contactStmt.Close()

	phoneStmt, err := tx.Prepare("INSERT INTO phones (contact, position, number) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("Save: prepare phones: %w", err)
	}
	defer phoneStmt.Close()

	for i, record := range book.Records() {
		if _, err := contactStmt.Exec(i, record.Name.String(), record.Birthday.String()); err != nil {
			return fmt.Errorf("Save: insert contact %q: %w", record.Name, err)
		}
		for j, phone := range record.Phones {
			if _, err := phoneStmt.Exec(record.Name.String(), j, phone.String()); err != nil {
				return fmt.Errorf("Save: insert phone for %q: %w", record.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Save: commit: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (s *SQLite) Close() error {
	return s.Db.Close()
}
