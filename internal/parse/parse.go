// Package parse turns comma-delimited "name,age" strings into Person
// records.
//
// This is the core of the application: a pure, synchronous function with
// no I/O, no shared state, and no side effects. The same input always
// produces the same Person or the same error kind, and it is safe to
// call from any number of goroutines without coordination.
//
// Every failure is reported as a *parse.Error carrying a Kind, so
// callers can branch on WHICH validation step rejected the input
// (empty string, wrong number of fields, unparseable age) instead of
// matching on message text.
package parse

import (
	"strconv"
	"strings"

	"github.com/aanand-mishra/persons-api/internal/types"
)

// Kind identifies which validation step rejected the input.
//
// The set is closed: these three constants are the only values a
// *parse.Error will ever carry. Callers can exhaustively switch on Kind.
type Kind int

const (
	// KindEmptyInput — the whole input string was empty, OR the name
	// field produced by the split was empty. The two cases share a kind
	// deliberately; see the note on Person below.
	KindEmptyInput Kind = iota

	// KindWrongFieldCount — splitting on "," did not yield exactly two
	// fields. Both "John" (one field) and "John,32,man" (three fields)
	// land here.
	KindWrongFieldCount

	// KindInvalidAge — the second field failed unsigned-integer parsing.
	// The underlying *strconv.NumError is preserved on the Error.
	KindInvalidAge
)

// String returns a stable snake_case tag for the kind, suitable for
// JSON payloads and log fields.
func (k Kind) String() string {
	switch k {
	case KindEmptyInput:
		return "empty_input"
	case KindWrongFieldCount:
		return "wrong_field_count"
	case KindInvalidAge:
		return "invalid_age"
	default:
		return "unknown"
	}
}

// Error is the typed failure returned by Person.
//
// Kind is always set. Err is non-nil only for KindInvalidAge, where it
// holds the *strconv.NumError that describes exactly why the age field
// failed to parse.
//
// Error implements Unwrap, so the numeric cause participates in the
// standard error chain:
//
//	var numErr *strconv.NumError
//	if errors.As(err, &numErr) { ... }
type Error struct {
	Kind Kind
	Err  error
}

// Error implements the error interface.
//
// The EmptyInput and WrongFieldCount messages are stable and may be
// relied on in logs; for InvalidAge the underlying strconv detail is
// appended so the message says what was actually wrong with the field.
func (e *Error) Error() string {
	switch e.Kind {
	case KindEmptyInput:
		return "Empty input string"
	case KindWrongFieldCount:
		return "Should exist 2 params"
	case KindInvalidAge:
		return "invalid age: " + e.Err.Error()
	default:
		return "unparseable person record"
	}
}

// Unwrap exposes the wrapped numeric-parse failure (nil for kinds other
// than KindInvalidAge), enabling errors.Is / errors.As on the cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Person parses input of the form "<name>,<age>" into a types.Person.
//
// The checks run in a fixed order, each one short-circuiting on failure:
//
//  1. Empty input                       → KindEmptyInput
//  2. Split on the literal "," (no limit, so "a,b,c" yields 3 fields)
//  3. Field count ≠ 2                   → KindWrongFieldCount
//  4. Empty name field                  → KindEmptyInput
//  5. Age field fails strconv.ParseUint → KindInvalidAge (cause attached)
//
// Step 4 reuses KindEmptyInput for an empty name rather than adding a
// separate kind — ",1" and "" report the same way. Because the check
// order is fixed, ",one" fails on the empty name (step 4) before the
// bad age is ever looked at.
//
// The age must be a bare non-negative decimal within the platform's
// native uint range: no sign, no whitespace, no locale formatting.
// strconv.ParseUint enforces all of that for us.
func Person(input string) (types.Person, error) {
	if len(input) == 0 {
		return types.Person{}, &Error{Kind: KindEmptyInput}
	}

	fields := strings.Split(input, ",")
	if len(fields) != 2 {
		return types.Person{}, &Error{Kind: KindWrongFieldCount}
	}

	if len(fields[0]) == 0 {
		return types.Person{}, &Error{Kind: KindEmptyInput}
	}

	// bitSize strconv.IntSize keeps the value within the native uint
	// range, so the uint conversion below can never truncate.
	age, err := strconv.ParseUint(fields[1], 10, strconv.IntSize)
	if err != nil {
		return types.Person{}, &Error{Kind: KindInvalidAge, Err: err}
	}

	return types.Person{Name: fields[0], Age: uint(age)}, nil
}
