// Package migrations holds the schema steps that differ per database, such
// as the session table whose column types each scs store expects.
package migrations

var dialect string

// SetDialect records the goose dialect ("sqlite3", "postgres" or "mysql")
// the Go migrations should emit SQL for. db.Migrate calls it before goose.Up.
func SetDialect(d string) {
	dialect = d
}
