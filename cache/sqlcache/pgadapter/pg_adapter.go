/*
Package pgadapter provides an implementation of the Adapter interface
in the sqlcache package that works over a PostgreSQL database.
*/
package pgadapter

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/grovekit/ctrkey/cache/sqlcache"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

const (
	tableStoreCreateStmt = `CREATE TABLE IF NOT EXISTS ctrTables (
		key TEXT PRIMARY KEY,
		data BYTEA NOT NULL)`
	tableStoreSetStmt = `INSERT INTO ctrTables (key, data) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data`
	tableStoreGetStmt    = `SELECT data FROM ctrTables WHERE key = $1`
	tableStoreDeleteStmt = `DELETE FROM ctrTables WHERE key = $1`
)

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL database connection URL and returns an Adapter
that works on the database or an error if it fails to connect to it.
*/
func New(url string) (sqlcache.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgresql database: %v", err)
	}
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
