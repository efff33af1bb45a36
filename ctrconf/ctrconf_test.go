package ctrconf_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovekit/ctrkey/ctr"
	"github.com/grovekit/ctrkey/ctrconf"
	"github.com/grovekit/ctrkey/keybin"
)

type otherConfig struct{}

func (otherConfig) Equal(ctr.Config) bool  { return false }
func (otherConfig) Compare(ctr.Config) int { return 0 }
func (otherConfig) Hash() uint64           { return 0 }
func (otherConfig) Encode(io.Writer) error { return nil }

func TestEqualAndHash(t *testing.T) {
	a := ctrconf.New(ctrconf.Borders, 1, 2, 15)
	b := ctrconf.New(ctrconf.Borders, 1, 2, 15)
	c := ctrconf.New(ctrconf.Borders, 1, 2, 16)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(otherConfig{}))
}

func TestCompareOrdersLexicographically(t *testing.T) {
	ordered := []ctrconf.Config{
		ctrconf.New(ctrconf.Borders, 0, 1, 15),
		ctrconf.New(ctrconf.Borders, 1, 1, 15),
		ctrconf.New(ctrconf.Borders, 1, 2, 15),
		ctrconf.New(ctrconf.Borders, 1, 2, 16),
		ctrconf.New(ctrconf.Buckets, 0, 1, 0),
		ctrconf.New(ctrconf.FeatureFreq, 0, 1, 0),
	}
	for i, a := range ordered {
		for j, b := range ordered {
			switch {
			case i < j:
				assert.Negative(t, a.Compare(b), "%v should order before %v", a, b)
			case i > j:
				assert.Positive(t, a.Compare(b), "%v should order after %v", a, b)
			default:
				assert.Zero(t, a.Compare(b))
			}
		}
	}
}

func TestCompareAgainstForeignConfigPanics(t *testing.T) {
	assert.Panics(t, func() {
		ctrconf.New(ctrconf.Borders, 1, 1, 15).Compare(otherConfig{})
	})
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	conf := ctrconf.New(ctrconf.FloatTargetMean, 3, 4, 255)
	var buf bytes.Buffer
	require.NoError(t, conf.Encode(&buf))
	decoded, err := ctrconf.Decode(&buf)
	require.NoError(t, err)
	assert.True(t, conf.Equal(decoded))
	assert.Equal(t, conf.Hash(), decoded.Hash())
}

func TestDecodeRejectsMalformedRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ctrconf.New(ctrconf.Borders, 1, 2, 15).Encode(&buf))
	record := buf.Bytes()
	for n := 0; n < len(record); n++ {
		_, err := ctrconf.Decode(bytes.NewReader(record[:n]))
		assert.ErrorIs(t, err, keybin.ErrMalformed, "truncation to %d bytes", n)
	}
	record[0] = 42
	_, err := ctrconf.Decode(bytes.NewReader(record))
	assert.ErrorIs(t, err, keybin.ErrMalformed)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "borders", ctrconf.Borders.String())
	assert.Equal(t, "feature-freq", ctrconf.FeatureFreq.String())
}
