/*
Package cache provides stores for computed ctr statistics tables,
keyed by canonical ctr.Ctr values.

The canonical-form guarantees of the key types are what make these
stores work: equal keys serialize to identical bytes, so a statistic is
computed once per distinct combination and found again by every caller
that assembles the same combination, in whatever order.
*/
package cache

import (
	"context"
	"sync"

	"github.com/grovekit/ctrkey/ctr"
)

/*
Table holds the computed statistic for one ctr key. The cache layer
treats its contents as opaque: computing them is the job of an external
statistics engine.
*/
type Table struct {
	// Per-bucket statistic values, indexed by the bucket the encoded
	// combination falls into.
	Values []float64
	// Number of samples the statistic was computed from.
	SampleCount uint64
}

/*
Store is an interface to manage a store where computed ctr statistics
tables can be saved, retrieved and deleted by their ctr key.

All its methods take a context that may allow cancelling the operation
(thus forcing the return of an error) if the implementation allows it.
*/
type Store interface {
	// Get takes a ctr key and returns the table stored for it, nil if
	// no table is stored, or an error if the store cannot be queried.
	Get(ctx context.Context, key ctr.Ctr) (*Table, error)
	// Put takes a ctr key and a table and stores the table under the
	// key, replacing any previous table. It returns an error if the
	// table cannot be stored.
	Put(ctx context.Context, key ctr.Ctr, t *Table) error
	// Delete removes the table stored under the given key, if any. It
	// returns an error if a stored table cannot be removed.
	Delete(ctx context.Context, key ctr.Ctr) error
	// Close closes the store. Implementations should free any
	// resources in use and ensure pending changes are applied before
	// returning, unless the context expires.
	Close(ctx context.Context) error
}

type memoryStore struct {
	tables map[string]*Table
	lock   *sync.RWMutex
}

/*
NewMemoryStore returns an implementation of Store with the process
memory space as underlying backend.
*/
func NewMemoryStore() Store {
	return &memoryStore{
		tables: make(map[string]*Table),
		lock:   &sync.RWMutex{},
	}
}

func (ms *memoryStore) Get(ctx context.Context, key ctr.Ctr) (*Table, error) {
	k, err := key.Bytes()
	if err != nil {
		return nil, err
	}
	var t *Table
	err = ms.withRLock(ctx, func(ctx context.Context) error {
		t = ms.tables[string(k)]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (ms *memoryStore) Put(ctx context.Context, key ctr.Ctr, t *Table) error {
	k, err := key.Bytes()
	if err != nil {
		return err
	}
	return ms.withLock(ctx, func(ctx context.Context) error {
		ms.tables[string(k)] = t
		return nil
	})
}

func (ms *memoryStore) Delete(ctx context.Context, key ctr.Ctr) error {
	k, err := key.Bytes()
	if err != nil {
		return err
	}
	return ms.withLock(ctx, func(ctx context.Context) error {
		delete(ms.tables, string(k))
		return nil
	})
}

func (ms *memoryStore) Close(ctx context.Context) error {
	return nil
}

func (ms *memoryStore) withLock(ctx context.Context, f func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	gotLock := make(chan struct{})
	go func() {
		ms.lock.Lock()
		select {
		case <-ctx.Done():
			ms.lock.Unlock()
		case gotLock <- struct{}{}:
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gotLock:
		defer ms.lock.Unlock()
	}
	return f(ctx)
}

func (ms *memoryStore) withRLock(ctx context.Context, f func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	gotLock := make(chan struct{})
	go func() {
		ms.lock.RLock()
		select {
		case <-ctx.Done():
			ms.lock.RUnlock()
		case gotLock <- struct{}{}:
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gotLock:
		defer ms.lock.RUnlock()
	}
	return f(ctx)
}
