// Package yamlfile stores the address book as a human-readable YAML
// document. It is the alternative to the SQLite driver for users who want
// to read or diff their contacts by hand.
package yamlfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aanand-mishra/contact-book/internal/addressbook"
	"github.com/aanand-mishra/contact-book/internal/config"
	"github.com/aanand-mishra/contact-book/internal/storage"
	"github.com/aanand-mishra/contact-book/internal/types"
)

// snapshot is the on-disk document. Contacts are a list, not a map, so
// the book's order is kept.
type snapshot struct {
	Contacts []contact `yaml:"contacts"`
}

type contact struct {
	Name     string   `yaml:"name"`
	Phones   []string `yaml:"phones"`
	Birthday string   `yaml:"birthday,omitempty"`
}

// File is a storage.Storage backed by one YAML file.
type File struct {
	path string
}

var _ storage.Storage = (*File)(nil)

// New returns a File for cfg.Storage.Path. Nothing is read or created yet.
func New(cfg *config.Config) *File {
	return &File{path: cfg.Storage.Path}
}

// Load parses the snapshot; a missing file yields an empty book.
func (f *File) Load() (*addressbook.AddressBook, error) {
	book := addressbook.New()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return book, nil
	}
	if err != nil {
		return nil, fmt.Errorf("yamlfile.Load: read %s: %w", f.path, err)
	}

	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("yamlfile.Load: decode %s: %w", f.path, err)
	}

	for _, c := range snap.Contacts {
		record := &types.Record{
			Name:     types.Name(c.Name),
			Birthday: types.Birthday(c.Birthday),
		}
		for _, p := range c.Phones {
			record.Phones = append(record.Phones, types.Phone(p))
		}
		book.AddRecord(record)
	}
	return book, nil
}

// Save overwrites the file with the full book. The write is a plain
// truncate-and-write; a crash halfway through leaves a partial file.
func (f *File) Save(book addressbook.Book) error {
	snap := snapshot{Contacts: make([]contact, 0, book.Len())}
	for _, r := range book.Records() {
		snap.Contacts = append(snap.Contacts, contact{
			Name:     r.Name.String(),
			Phones:   r.PhoneStrings(),
			Birthday: r.Birthday.String(),
		})
	}

	data, err := yaml.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("yamlfile.Save: encode: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("yamlfile.Save: write %s: %w", f.path, err)
	}
	return nil
}

// Close is a no-op; the file is only open during Load and Save.
func (f *File) Close() error { return nil }
