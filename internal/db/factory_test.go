package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/scribo/internal/db"
)

func TestNewSQLiteMigrates(t *testing.T) {
	database, err := db.New("sqlite3", "file:factory_test?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, db.Migrate(database, "sqlite3"))

	var n int
	require.NoError(t, database.Get(&n, `SELECT COUNT(*) FROM generations WHERE owner = ''`))
	assert.Zero(t, n)
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	_, err := db.New("oracle", "dsn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported DB driver "oracle"`)
}
