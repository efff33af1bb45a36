package ctr_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovekit/ctrkey/ctr"
	"github.com/grovekit/ctrkey/ctrconf"
	"github.com/grovekit/ctrkey/keybin"
	"github.com/grovekit/ctrkey/split"
	"github.com/grovekit/ctrkey/tensor"
)

var (
	s1 = split.New(1, 0, split.GreaterThan)
	s2 = split.New(4, 2, split.ExactBin)

	confA = ctrconf.New(ctrconf.Borders, 1, 2, 15)
	confB = ctrconf.New(ctrconf.Buckets, 1, 2, 15)
)

func TestEqualityIsComponentwise(t *testing.T) {
	ts := tensor.New([]split.Split{s1, s2}, []uint32{9})
	same := tensor.NewBuilder().AddCatFeature(9).AddSplit(s2).AddSplit(s1).Build()
	a := ctr.New(ts, confA)
	b := ctr.New(same, confA)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Zero(t, a.Compare(b))

	differentConf := ctr.New(ts, confB)
	assert.False(t, a.Equal(differentConf))
	differentTensor := ctr.New(tensor.New([]split.Split{s1}, []uint32{9}), confA)
	assert.False(t, a.Equal(differentTensor))
}

func TestCompareIsLexicographicOnTensorThenConfig(t *testing.T) {
	small := tensor.New([]split.Split{s1}, nil)
	big := tensor.New([]split.Split{s2}, nil)

	// The tensor dominates: a smaller tensor with a later config still
	// orders first.
	assert.Negative(t, ctr.New(small, confB).Compare(ctr.New(big, confA)))
	// Equal tensors fall through to the config order.
	assert.Negative(t, ctr.New(small, confA).Compare(ctr.New(small, confB)))
	assert.Positive(t, ctr.New(small, confB).Compare(ctr.New(small, confA)))
	assert.True(t, ctr.New(small, confA).Less(ctr.New(small, confB)))
}

func TestIsSimpleDelegatesToTensor(t *testing.T) {
	assert.True(t, ctr.New(tensor.New(nil, []uint32{7}), confA).IsSimple())
	assert.False(t, ctr.New(tensor.New([]split.Split{s1}, []uint32{7}), confA).IsSimple())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	key := ctr.New(tensor.New([]split.Split{s2, s1}, []uint32{3, 9}), confA)
	var buf bytes.Buffer
	require.NoError(t, key.Encode(&buf))
	decoded, err := ctr.Decode(&buf, ctrconf.Decode)
	require.NoError(t, err)
	assert.True(t, key.Equal(decoded))
	assert.Equal(t, key.Hash(), decoded.Hash())
}

func TestBytesAreDeterministicAcrossAssemblyOrders(t *testing.T) {
	a := ctr.New(tensor.NewBuilder().AddSplit(s1).AddSplit(s2).AddCatFeature(9).Build(), confA)
	b := ctr.New(tensor.NewBuilder().AddCatFeature(9).AddSplit(s2).AddSplit(s1).Build(), confA)
	aBytes, err := a.Bytes()
	require.NoError(t, err)
	bBytes, err := b.Bytes()
	require.NoError(t, err)
	assert.Equal(t, aBytes, bBytes)
}

func TestDecodeTruncatedRecordIsMalformed(t *testing.T) {
	key := ctr.New(tensor.New([]split.Split{s1}, []uint32{9}), confA)
	record, err := key.Bytes()
	require.NoError(t, err)
	for n := 0; n < len(record); n++ {
		_, err := ctr.Decode(bytes.NewReader(record[:n]), ctrconf.Decode)
		assert.ErrorIs(t, err, keybin.ErrMalformed, "truncation to %d bytes", n)
	}
}
