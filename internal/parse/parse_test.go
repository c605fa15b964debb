package parse

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerson_GoodInput(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantAge  uint
	}{
		{"Mark,20", "Mark", 20},
		{"John,32", "John", 32},
		{"Olivia,0", "Olivia", 0},
		{"Åse,104", "Åse", 104},
		{"name with spaces,7", "name with spaces", 7},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := Person(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name)
			assert.Equal(t, tt.wantAge, p.Age)
			assert.Zero(t, p.ID, "ID is assigned by storage, not the parser")
		})
	}
}

func TestPerson_FailureKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Kind
	}{
		{"empty input", "", KindEmptyInput},
		{"missing comma and age", "John", KindWrongFieldCount},
		{"trailing comma", "John,32,", KindWrongFieldCount},
		{"trailing comma and some string", "John,32,man", KindWrongFieldCount},
		{"missing name", ",1", KindEmptyInput},
		{"missing name and age", ",", KindEmptyInput},
		// the empty-name check runs before the age check
		{"missing name and invalid age", ",one", KindEmptyInput},
		{"missing age", "John,", KindInvalidAge},
		{"non-numeric age", "John,twenty", KindInvalidAge},
		{"negative age", "John,-5", KindInvalidAge},
		{"age with whitespace", "John, 32", KindInvalidAge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Person(tt.input)
			require.Error(t, err)

			var perr *Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.want, perr.Kind)
		})
	}
}

// Every failure of the age field must carry the strconv cause so callers
// can diagnose WHY the number did not parse (empty, bad syntax, range).
func TestPerson_InvalidAgePreservesCause(t *testing.T) {
	_, err := Person("John,twenty")
	require.Error(t, err)

	var numErr *strconv.NumError
	require.ErrorAs(t, err, &numErr, "the strconv failure must be reachable via errors.As")
	assert.Equal(t, "twenty", numErr.Num)
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	// An age beyond the native uint range is a range failure, not syntax.
	_, err = Person("John,99999999999999999999999999")
	assert.ErrorIs(t, err, strconv.ErrRange)
}

func TestPerson_UnwrapIsNilForNonAgeKinds(t *testing.T) {
	for _, input := range []string{"", "John", ",1"} {
		_, err := Person(input)

		var perr *Error
		require.ErrorAs(t, err, &perr)
		assert.Nil(t, perr.Unwrap())
	}
}

func TestError_Messages(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty input", "", "Empty input string"},
		{"wrong field count", "John", "Should exist 2 params"},
		{"empty name", ",1", "Empty input string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Person(tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}

	// The invalid-age message embeds the strconv detail rather than a
	// fixed string, so only check the prefix and that the field shows up.
	_, err := Person("John,twenty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid age: ")
	assert.Contains(t, err.Error(), "twenty")
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "empty_input", KindEmptyInput.String())
	assert.Equal(t, "wrong_field_count", KindWrongFieldCount.String())
	assert.Equal(t, "invalid_age", KindInvalidAge.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

// Round trip: any non-empty name and in-range age survive a rebuild of
// the "name,age" line exactly.
func TestPerson_RoundTrip(t *testing.T) {
	names := []string{"a", "Mark", "Grace Hopper", "柱"}
	ages := []uint{0, 1, 20, 1<<31 - 1}

	for _, name := range names {
		for _, age := range ages {
			input := name + "," + strconv.FormatUint(uint64(age), 10)
			p, err := Person(input)
			require.NoError(t, err, "input %q", input)
			assert.Equal(t, name, p.Name)
			assert.Equal(t, age, p.Age)
		}
	}
}
