/*
Package sqlite3adapter provides an implementation of the Adapter
interface in the sqlcache package that works over an SQLite3 database
file.
*/
package sqlite3adapter

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/grovekit/ctrkey/cache/sqlcache"

	// Import of SQLite3 driver
	_ "github.com/mattn/go-sqlite3"
)

const (
	tableStoreCreateStmt = `CREATE TABLE IF NOT EXISTS ctrTables (
		key TEXT PRIMARY KEY,
		data BLOB NOT NULL)`
	tableStoreSetStmt    = `INSERT OR REPLACE INTO ctrTables (key, data) VALUES (?, ?)`
	tableStoreGetStmt    = `SELECT data FROM ctrTables WHERE key = ?`
	tableStoreDeleteStmt = `DELETE FROM ctrTables WHERE key = ?`
)

type adapter struct {
	db *sql.DB
}

/*
New takes a path to an SQLite3 database file and a maximum number of
open connections, and returns an Adapter that works on the database or
an error if it fails to open it.
*/
func New(filepath string, maxConns int) (sqlcache.Adapter, error) {
	db, err := sql.Open("sqlite3", filepath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite3 database %s: %v", filepath, err)
	}
	db.SetMaxOpenConns(maxConns)
	return &adapter{db}, nil
}

func (a *adapter) CreateTableStoreTable(ctx context.Context) error {
	_, err := a.db.ExecContext(ctx, tableStoreCreateStmt)
	if err != nil {
		return fmt.Errorf("running ctrTables creation statement: %v", err)
	}
	return nil
}

func (a *adapter) SetTable(ctx context.Context, key string, data []byte) error {
	_, err := a.db.ExecContext(ctx, tableStoreSetStmt, key, data)
	return err
}

func (a *adapter) GetTable(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := a.db.QueryRowContext(ctx, tableStoreGetStmt, key).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (a *adapter) DeleteTable(ctx context.Context, key string) error {
	_, err := a.db.ExecContext(ctx, tableStoreDeleteStmt, key)
	return err
}

func (a *adapter) Close() error {
	return a.db.Close()
}
