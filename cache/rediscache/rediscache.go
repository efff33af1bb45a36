/*
Package rediscache provides an implementation of cache.Store backed by
a redis database, so that statistics computed for a ctr key in one
process can be reused by every other process of a training run.
*/
package rediscache

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/grovekit/ctrkey/cache"
	"github.com/grovekit/ctrkey/ctr"
	"gopkg.in/redis.v5"
)

type redisStore struct {
	rc      *redis.Client
	prefix  string
	tencdec cache.TableEncodeDecoder
}

/*
New builds a cache.Store backed by a redis DB. Tables are stored under
keys derived from the given prefix and the hex form of the canonical
serialized ctr record, and encoded with the given TableEncodeDecoder.
*/
func New(rc *redis.Client, prefix string, tencdec cache.TableEncodeDecoder) cache.Store {
	return &redisStore{rc, prefix, tencdec}
}

func (rs *redisStore) Get(ctx context.Context, key ctr.Ctr) (*cache.Table, error) {
	rKey, err := rs.keyFor(key)
	if err != nil {
		return nil, err
	}
	data, err := rs.rc.Get(rKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("retrieving table %q: %v", rKey, err)
	}
	t, err := rs.tencdec.Decode([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("retrieving table %q: decoding: %v", rKey, err)
	}
	return t, nil
}

func (rs *redisStore) Put(ctx context.Context, key ctr.Ctr, t *cache.Table) error {
	rKey, err := rs.keyFor(key)
	if err != nil {
		return err
	}
	data, err := rs.tencdec.Encode(t)
	if err != nil {
		return fmt.Errorf("storing table %q: encoding table: %v", rKey, err)
	}
	_, err = rs.rc.Set(rKey, data, 0).Result()
	if err != nil {
		return fmt.Errorf("storing table %q in redis: %v", rKey, err)
	}
	return nil
}

func (rs *redisStore) Delete(ctx context.Context, key ctr.Ctr) error {
	rKey, err := rs.keyFor(key)
	if err != nil {
		return err
	}
	_, err = rs.rc.Del(rKey).Result()
	if err != nil {
		return fmt.Errorf("deleting table %q from redis: %v", rKey, err)
	}
	return nil
}

func (rs *redisStore) Close(ctx context.Context) error {
	return nil
}

func (rs *redisStore) keyFor(key ctr.Ctr) (string, error) {
	data, err := key.Bytes()
	if err != nil {
		return "", fmt.Errorf("serializing ctr key: %v", err)
	}
	return fmt.Sprintf("%s:%s", rs.prefix, hex.EncodeToString(data)), nil
}
