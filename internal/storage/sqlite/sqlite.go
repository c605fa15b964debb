// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// SQLite stores everything in a single file on disk. There is no
// network, no separate server process, and no installation beyond the
// driver — more than enough for a service of this size.
//
// The blank import below registers the sqlite3 driver with database/sql.
// The driver's init() function does this automatically when the package
// is loaded — we never call anything from it directly.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/aanand-mishra/persons-api/internal/config"
	"github.com/aanand-mishra/persons-api/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	// Without this the sql.Open("sqlite3", ...) call would fail with
	// "unknown driver".
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
// It holds a *sql.DB which is a connection pool managed by database/sql.
// A single *sql.DB is safe for concurrent use by multiple goroutines.
type SQLite struct {
	Db *sql.DB
}

// New opens the SQLite database at the path specified in cfg.StoragePath,
// creates the persons table if it does not already exist, and returns
// a ready-to-use *SQLite.
//
// Go has no constructors, so the community convention is a package-level
// New() function that returns an initialised instance (and an error as
// the second value).
func New(cfg *config.Config) (*SQLite, error) {
	// sql.Open does NOT open a real connection yet — it just validates
	// the driver name and data source name (DSN).
	// The first actual connection happens on the first query.
	db, err := sql.Open("sqlite3", cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// CREATE TABLE IF NOT EXISTS is idempotent — safe to run on every
	// startup.
	//
	// Schema mirrors the parsed record:
	//   id   — integer primary key, auto-incremented by SQLite
	//   name — the name field of the parsed record (never empty)
	//   age  — the age field, a non-negative integer
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS persons (
			id   INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT    NOT NULL,
			age  INTEGER NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// CreatePerson inserts a new row into the persons table.
//
// Prepared statements use placeholders (?): the driver sends the query
// and the values separately, so the database engine treats the values as
// pure data, never as SQL syntax. Names containing quotes or commas are
// stored verbatim with no injection risk.
func (s *SQLite) CreatePerson(name string, age uint) (int64, error) {
	stmt, err := s.Db.Prepare(
		"INSERT INTO persons (name, age) VALUES (?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("CreatePerson: prepare: %w", err)
	}
	// defer ensures the statement is closed when this function returns,
	// even if we return early due to an error.
	defer stmt.Close()

	result, err := stmt.Exec(name, age)
	if err != nil {
		return 0, fmt.Errorf("CreatePerson: exec: %w", err)
	}

	// LastInsertId returns the auto-generated primary key of the new row.
	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreatePerson: last insert id: %w", err)
	}

	return lastID, nil
}

// GetPersonByID fetches exactly one person row matched by primary key.
//
// QueryRow executes the query and returns a *Row — a single-row result.
// Scan reads the columns from that row into Go variables IN ORDER, so
// the variable order here must match the column order in the SELECT.
func (s *SQLite) GetPersonByID(id int64) (types.Person, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, name, age FROM persons WHERE id = ? LIMIT 1",
	)
	if err != nil {
		return types.Person{}, fmt.Errorf("GetPersonByID: prepare: %w", err)
	}
	defer stmt.Close()

	var person types.Person

	err = stmt.QueryRow(id).Scan(
		&person.ID,
		&person.Name,
		&person.Age,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			// sql.ErrNoRows is the sentinel error for "nothing matched".
			// Return a human-readable message so the handler can surface
			// it to the client without leaking internal DB details.
			return types.Person{}, fmt.Errorf("no person found with id: %d", id)
		}
		return types.Person{}, fmt.Errorf("GetPersonByID: scan: %w", err)
	}

	return person, nil
}

// GetPersons returns all person rows as a slice.
//
// Query (unlike QueryRow) returns *sql.Rows — a cursor over multiple
// rows. We iterate with rows.Next(), Scan each row inside the loop, and
// always defer rows.Close() to release the database connection.
func (s *SQLite) GetPersons() ([]types.Person, error) {
	stmt, err := s.Db.Prepare(
		// Explicitly list columns — if a column is added later,
		// SELECT * would break Scan's ordering.
		"SELECT id, name, age FROM persons",
	)
	if err != nil {
		return nil, fmt.Errorf("GetPersons: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("GetPersons: query: %w", err)
	}
	defer rows.Close()

	// Pre-allocate an empty (non-nil) slice.
	// Returning [] instead of null in JSON is better API behaviour.
	persons := make([]types.Person, 0)

	for rows.Next() {
		var person types.Person

		if err := rows.Scan(
			&person.ID,
			&person.Name,
			&person.Age,
		); err != nil {
			return nil, fmt.Errorf("GetPersons: scan row: %w", err)
		}

		persons = append(persons, person)
	}

	// rows.Err() captures any error that occurred during iteration.
	// This is separate from Scan errors.
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetPersons: rows iteration: %w", err)
	}

	return persons, nil
}

// DeletePersonByID removes a person row by primary key.
func (s *SQLite) DeletePersonByID(id int64) error {
	stmt, err := s.Db.Prepare("DELETE FROM persons WHERE id = ?")
	if err != nil {
		return fmt.Errorf("DeletePersonByID: prepare: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(id)
	if err != nil {
		return fmt.Errorf("DeletePersonByID: exec: %w", err)
	}

	return nil
}
