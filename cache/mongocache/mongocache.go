/*
Package mongocache provides an implementation of cache.Store that uses
a MongoDB database as backend.
*/
package mongocache

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/grovekit/ctrkey/cache"
	"github.com/grovekit/ctrkey/ctr"
	mgo "gopkg.in/mgo.v2"
)

const tablesCollectionName = "ctrTables"

type mongoStore struct {
	session *mgo.Session
	tencdec cache.TableEncodeDecoder
}

type tableDoc struct {
	Key  string `bson:"_id"`
	Data []byte `bson:"data"`
}

/*
Open takes a MongoDB database session and a TableEncodeDecoder and
returns a cache.Store that keeps encoded statistics tables in the
default database for that session, keyed by the hex form of the
canonical serialized ctr record.
*/
func Open(ctx context.Context, session *mgo.Session, tencdec cache.TableEncodeDecoder) (cache.Store, error) {
	return &mongoStore{session: session, tencdec: tencdec}, nil
}

func (ms *mongoStore) Get(ctx context.Context, key ctr.Ctr) (*cache.Table, error) {
	k, err := keyFor(key)
	if err != nil {
		return nil, err
	}
	doc := &tableDoc{}
	err = ms.tablesCollection().FindId(k).One(doc)
	if err != nil {
		if err == mgo.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("retrieving table %q: %v", k, err)
	}
	t, err := ms.tencdec.Decode(doc.Data)
	if err != nil {
		return nil, fmt.Errorf("retrieving table %q: decoding: %v", k, err)
	}
	return t, nil
}

func (ms *mongoStore) Put(ctx context.Context, key ctr.Ctr, t *cache.Table) error {
	k, err := keyFor(key)
	if err != nil {
		return err
	}
	data, err := ms.tencdec.Encode(t)
	if err != nil {
		return fmt.Errorf("storing table %q: encoding table: %v", k, err)
	}
	_, err = ms.tablesCollection().UpsertId(k, &tableDoc{Key: k, Data: data})
	if err != nil {
		return fmt.Errorf("storing table %q in mongo: %v", k, err)
	}
	return nil
}

func (ms *mongoStore) Delete(ctx context.Context, key ctr.Ctr) error {
	k, err := keyFor(key)
	if err != nil {
		return err
	}
	err = ms.tablesCollection().RemoveId(k)
	if err != nil && err != mgo.ErrNotFound {
		return fmt.Errorf("deleting table %q from mongo: %v", k, err)
	}
	return nil
}

func (ms *mongoStore) Close(ctx context.Context) error {
	ms.session.Close()
	return nil
}

func (ms *mongoStore) tablesCollection() *mgo.Collection {
	return ms.session.DB("").C(tablesCollectionName)
}

func keyFor(key ctr.Ctr) (string, error) {
	data, err := key.Bytes()
	if err != nil {
		return "", fmt.Errorf("serializing ctr key: %v", err)
	}
	return hex.EncodeToString(data), nil
}
