// Package storage defines the Storage interface — a contract that any
// database backend must satisfy to work with this application.
//
// Handlers (HTTP layer) should not know or care which database they are
// talking to. By depending only on this interface:
//
//   - Switching databases = implement the interface for the new DB,
//     change one line in main.go. Zero handler changes.
//
//   - Writing tests = pass a fake that satisfies the interface.
//     No real database needed for handler tests.
package storage

import "github.com/aanand-mishra/persons-api/internal/types"

// Storage is the database contract.
// Any concrete type that implements ALL of these methods automatically
// satisfies this interface — Go does this implicitly (no "implements"
// keyword required).
//
// There is deliberately no update method: a Person is immutable once
// parsed, so the API only ever creates, reads, and deletes records.
type Storage interface {
	// CreatePerson inserts a new person record and returns the auto-
	// generated primary-key ID. Returns an error on failure.
	CreatePerson(name string, age uint) (int64, error)

	// GetPersonByID fetches a single person by their primary key.
	// Returns an error (with a descriptive message) if not found.
	GetPersonByID(id int64) (types.Person, error)

	// GetPersons returns every person in the database.
	// Returns an empty slice (not nil) if there are no records.
	GetPersons() ([]types.Person, error)

	// DeletePersonByID removes a person record permanently.
	DeletePersonByID(id int64) error
}
