/*
Package sqlcache provides an implementation of cache.Store that uses a
SQL database as backend.

The store uses a single table keyed by the hex form of the canonical
serialized ctr record, with the encoded statistics table as its only
other column. Database-specific SQL lives behind the Adapter interface;
see the sqlite3adapter and pgadapter subpackages.
*/
package sqlcache

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/grovekit/ctrkey/cache"
	"github.com/grovekit/ctrkey/ctr"
)

/*
Adapter is an interface for access to a SQL database in which encoded
statistics tables can be kept by key.
*/
type Adapter interface {
	// CreateTableStoreTable creates the table holding the encoded
	// statistics tables, unless it already exists.
	CreateTableStoreTable(ctx context.Context) error
	// SetTable stores data under the given key, replacing any
	// previously stored data.
	SetTable(ctx context.Context, key string, data []byte) error
	// GetTable returns the data stored under the given key and whether
	// any data was stored at all.
	GetTable(ctx context.Context, key string) ([]byte, bool, error)
	// DeleteTable removes the data stored under the given key, if any.
	DeleteTable(ctx context.Context, key string) error
	// Close closes the underlying database handle.
	Close() error
}

type sqlStore struct {
	db      Adapter
	tencdec cache.TableEncodeDecoder
}

/*
Open takes an Adapter to a SQL backend and a TableEncodeDecoder and
returns a cache.Store backed by the adapter, creating the backing table
if needed, or an error if it cannot be created.
*/
func Open(ctx context.Context, dbAdapter Adapter, tencdec cache.TableEncodeDecoder) (cache.Store, error) {
	err := dbAdapter.CreateTableStoreTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("preparing ctr table store: %v", err)
	}
	return &sqlStore{db: dbAdapter, tencdec: tencdec}, nil
}

func (ss *sqlStore) Get(ctx context.Context, key ctr.Ctr) (*cache.Table, error) {
	k, err := keyFor(key)
	if err != nil {
		return nil, err
	}
	data, ok, err := ss.db.GetTable(ctx, k)
	if err != nil {
		return nil, fmt.Errorf("retrieving table %q: %v", k, err)
	}
	if !ok {
		return nil, nil
	}
	t, err := ss.tencdec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("retrieving table %q: decoding: %v", k, err)
	}
	return t, nil
}

func (ss *sqlStore) Put(ctx context.Context, key ctr.Ctr, t *cache.Table) error {
	k, err := keyFor(key)
	if err != nil {
		return err
	}
	data, err := ss.tencdec.Encode(t)
	if err != nil {
		return fmt.Errorf("storing table %q: encoding table: %v", k, err)
	}
	err = ss.db.SetTable(ctx, k, data)
	if err != nil {
		return fmt.Errorf("storing table %q: %v", k, err)
	}
	return nil
}

func (ss *sqlStore) Delete(ctx context.Context, key ctr.Ctr) error {
	k, err := keyFor(key)
	if err != nil {
		return err
	}
	err = ss.db.DeleteTable(ctx, k)
	if err != nil {
		return fmt.Errorf("deleting table %q: %v", k, err)
	}
	return nil
}

func (ss *sqlStore) Close(ctx context.Context) error {
	return ss.db.Close()
}

func keyFor(key ctr.Ctr) (string, error) {
	data, err := key.Bytes()
	if err != nil {
		return "", fmt.Errorf("serializing ctr key: %v", err)
	}
	return hex.EncodeToString(data), nil
}
