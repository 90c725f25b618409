//go:build cgo_sqlite

package main

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// initDB opens the request-statistics database with the cgo sqlite
// driver, selected by building with the cgo_sqlite tag.
func initDB(dataSource string) (*sql.DB, error) {
	return sql.Open("sqlite3", dataSource)
}
