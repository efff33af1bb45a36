package cache_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovekit/ctrkey/cache"
	"github.com/grovekit/ctrkey/ctr"
	"github.com/grovekit/ctrkey/ctrconf"
	"github.com/grovekit/ctrkey/split"
	"github.com/grovekit/ctrkey/tensor"
)

var conf = ctrconf.New(ctrconf.Borders, 1, 2, 15)

func testKey() ctr.Ctr {
	t := tensor.NewBuilder().
		AddSplit(split.New(4, 2, split.ExactBin)).
		AddCatFeature(9).
		Build()
	return ctr.New(t, conf)
}

func TestMemoryStorePutGetDelete(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	defer store.Close(ctx)
	key := testKey()

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)

	table := &cache.Table{Values: []float64{0.25, 0.5, 0.75}, SampleCount: 1000}
	require.NoError(t, store.Put(ctx, key, table))

	got, err = store.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, table.Values, got.Values)
	assert.Equal(t, table.SampleCount, got.SampleCount)

	require.NoError(t, store.Delete(ctx, key))
	got, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreFindsTablesByCanonicalKey(t *testing.T) {
	// The same combination assembled in a different order must hit the
	// same cache entry.
	ctx := context.Background()
	store := cache.NewMemoryStore()
	defer store.Close(ctx)

	table := &cache.Table{Values: []float64{1}, SampleCount: 1}
	require.NoError(t, store.Put(ctx, testKey(), table))

	other := ctr.New(
		tensor.NewBuilder().
			AddCatFeature(9).
			AddSplit(split.New(4, 2, split.ExactBin)).
			AddSplit(split.New(4, 2, split.ExactBin)).
			Build(),
		conf,
	)
	got, err := store.Get(ctx, other)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, table.Values, got.Values)
}

func TestMemoryStorePutReplaces(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	defer store.Close(ctx)
	key := testKey()

	require.NoError(t, store.Put(ctx, key, &cache.Table{Values: []float64{1}}))
	require.NoError(t, store.Put(ctx, key, &cache.Table{Values: []float64{2}}))
	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []float64{2}, got.Values)
}

func TestMemoryStoreHonorsContextCancellation(t *testing.T) {
	store := cache.NewMemoryStore()
	defer store.Close(context.Background())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := store.Put(ctx, testKey(), &cache.Table{})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = store.Get(ctx, testKey())
	assert.ErrorIs(t, err, context.Canceled)
	err = store.Delete(ctx, testKey())
	assert.ErrorIs(t, err, context.Canceled)
}
