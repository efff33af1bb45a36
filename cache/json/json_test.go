package json_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovekit/ctrkey/cache"
	cachejson "github.com/grovekit/ctrkey/cache/json"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ted := cachejson.New()
	table := &cache.Table{Values: []float64{0.1, 0.9}, SampleCount: 42}
	data, err := ted.Encode(table)
	require.NoError(t, err)
	decoded, err := ted.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, table.Values, decoded.Values)
	assert.Equal(t, table.SampleCount, decoded.SampleCount)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := cachejson.New().Decode([]byte("not json"))
	assert.Error(t, err)
}
