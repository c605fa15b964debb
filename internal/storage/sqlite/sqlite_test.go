package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/aanand-mishra/persons-api/internal/config"
	"github.com/aanand-mishra/persons-api/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a SQLite database in a per-test temp directory.
// t.TempDir() is removed automatically when the test finishes.
func newTestDB(t *testing.T) *SQLite {
	t.Helper()

	cfg := &config.Config{
		StoragePath: filepath.Join(t.TempDir(), "test.db"),
	}

	db, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Db.Close() })

	return db
}

func TestCreateAndGetPerson(t *testing.T) {
	db := newTestDB(t)

	id, err := db.CreatePerson("Mark", 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id, "first insert gets ID 1 from AUTOINCREMENT")

	got, err := db.GetPersonByID(id)
	require.NoError(t, err)
	assert.Equal(t, types.Person{ID: id, Name: "Mark", Age: 20}, got)
}

func TestGetPersonByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetPersonByID(42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no person found with id: 42")
}

func TestGetPersons(t *testing.T) {
	db := newTestDB(t)

	t.Run("empty table returns empty slice, not nil", func(t *testing.T) {
		persons, err := db.GetPersons()
		require.NoError(t, err)
		assert.NotNil(t, persons)
		assert.Empty(t, persons)
	})

	t.Run("returns all rows in insertion order", func(t *testing.T) {
		_, err := db.CreatePerson("Mark", 20)
		require.NoError(t, err)
		_, err = db.CreatePerson("John", 32)
		require.NoError(t, err)

		persons, err := db.GetPersons()
		require.NoError(t, err)
		require.Len(t, persons, 2)
		assert.Equal(t, "Mark", persons[0].Name)
		assert.Equal(t, "John", persons[1].Name)
	})
}

func TestDeletePersonByID(t *testing.T) {
	db := newTestDB(t)

	id, err := db.CreatePerson("Mark", 20)
	require.NoError(t, err)

	require.NoError(t, db.DeletePersonByID(id))

	_, err = db.GetPersonByID(id)
	assert.Error(t, err)

	// Deleting an absent row is not an error — DELETE affects 0 rows.
	assert.NoError(t, db.DeletePersonByID(id))
}

// Names are stored verbatim: quotes and spaces must survive the trip
// through the prepared statement untouched.
func TestCreatePerson_AwkwardNames(t *testing.T) {
	db := newTestDB(t)

	for _, name := range []string{"O'Brien", `Robert"); DROP TABLE persons;--`, "Grace Hopper"} {
		id, err := db.CreatePerson(name, 30)
		require.NoError(t, err)

		got, err := db.GetPersonByID(id)
		require.NoError(t, err)
		assert.Equal(t, name, got.Name)
	}
}
