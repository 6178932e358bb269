/*
Package catalog implements an SQLite backed cache of encoded images.

Entries are keyed by the digest of the source image and a key describing the
reduction applied to it, so changing any option that affects the pixel data
results in a fresh conversion.
*/
package catalog

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // register sqlite3 driver
	"github.com/pkg/errors"
)

// Entry is the cached result of encoding one image.
type Entry struct {
	Width    int
	Height   int
	Elements int
	Body     string
	ASCII    string
}

// Catalog is the cache object.
type Catalog struct {
	db *sql.DB
}

// Open opens the catalog stored in file, creating it if necessary.
func Open(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	// SQLite only permits a single writer
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS fragment (id INTEGER PRIMARY KEY NOT NULL, digest TEXT NOT NULL, options TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL, elements INTEGER NOT NULL, body TEXT NOT NULL, ascii TEXT NOT NULL, UNIQUE(digest, options))"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "unable to create schema")
	}

	return &Catalog{
		db: db,
	}, nil
}

// Close closes the catalog.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Find returns the entry for the given digest and key, or nil if there is
// no such entry.
func (c *Catalog) Find(digest, key string) (*Entry, error) {
	var e Entry
	switch err := c.db.QueryRow("SELECT width, height, elements, body, ascii FROM fragment WHERE digest = ? AND options = ?", digest, key).Scan(&e.Width, &e.Height, &e.Elements, &e.Body, &e.ASCII); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return &e, nil
	default:
		return nil, err
	}
}

// Add stores e under the given digest and key, replacing any existing entry.
func (c *Catalog) Add(digest, key string, e *Entry) error {
	if _, err := c.db.Exec("INSERT OR REPLACE INTO fragment (digest, options, width, height, elements, body, ascii) VALUES (?, ?, ?, ?, ?, ?, ?)", digest, key, e.Width, e.Height, e.Elements, e.Body, e.ASCII); err != nil {
		return errors.Wrap(err, "unable to add entry")
	}
	return nil
}

// Length returns the number of entries in the catalog.
func (c *Catalog) Length() (int, error) {
	var n int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM fragment").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Purge removes every entry from the catalog.
func (c *Catalog) Purge() error {
	_, err := c.db.Exec("DELETE FROM fragment")
	return err
}
