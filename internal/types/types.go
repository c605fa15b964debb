// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// the parser, handlers, and storage can all import types without
// depending on each other.
package types

// Person represents one parsed "name,age" record.
//
// A Person is only ever produced by a successful parse (see the parse
// package) and never mutated afterwards — it is a plain value type with
// no lifecycle of its own. ID is zero until the record is persisted;
// the database assigns it on insert.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  — controls how the field appears when encoded to JSON
//     (lowercase names match REST API conventions).
//
//  2. validate:"..." — rules checked by the go-playground/validator
//     package. Name carries "required" so a record with an empty name
//     can never slip past the HTTP layer into storage. Age carries no
//     rule: it is a uint, so non-negativity is guaranteed by the type
//     itself, and zero is a legitimate age.
type Person struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required"`
	Age  uint   `json:"age"`
}
