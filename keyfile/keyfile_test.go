package keyfile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovekit/ctrkey/ctrconf"
	"github.com/grovekit/ctrkey/keyfile"
	"github.com/grovekit/ctrkey/split"
	"github.com/grovekit/ctrkey/tensor"
)

const sampleDescription = `
splits:
  - feature: 4
    bin: 2
    kind: exact-bin
  - feature: 1
    bin: 0
    kind: greater-than
cat_features: [9]
ctrs:
  - kind: borders
    prior: 1/2
    border_count: 15
  - kind: feature-freq
`

func TestReadKeys(t *testing.T) {
	keys, err := keyfile.ReadKeys([]byte(sampleDescription))
	require.NoError(t, err)
	require.Len(t, keys, 2)

	want := tensor.New([]split.Split{
		split.New(4, 2, split.ExactBin),
		split.New(1, 0, split.GreaterThan),
	}, []uint32{9})
	for _, k := range keys {
		assert.True(t, want.Equal(k.Tensor()))
	}
	assert.True(t, keys[0].Config().Equal(ctrconf.New(ctrconf.Borders, 1, 2, 15)))
	assert.True(t, keys[1].Config().Equal(ctrconf.New(ctrconf.FeatureFreq, 1, 1, 0)))
}

func TestReadTensorIgnoresCtrs(t *testing.T) {
	ts, err := keyfile.ReadTensor([]byte(sampleDescription))
	require.NoError(t, err)
	assert.Equal(t, 3, ts.Size())
	assert.Equal(t, 2, ts.Complexity())
}

func TestReadKeysWithoutCtrsYieldsNoKeys(t *testing.T) {
	keys, err := keyfile.ReadKeys([]byte("cat_features: [1, 2]\n"))
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestReadKeysRejectsUnknownSplitKind(t *testing.T) {
	_, err := keyfile.ReadKeys([]byte("splits:\n  - feature: 1\n    bin: 0\n    kind: sideways\n"))
	assert.Error(t, err)
}

func TestReadKeysRejectsUnknownCtrKind(t *testing.T) {
	_, err := keyfile.ReadKeys([]byte("ctrs:\n  - kind: telepathy\n"))
	assert.Error(t, err)
}

func TestReadKeysRejectsBadPriors(t *testing.T) {
	for _, prior := range []string{"a/b", "1/0", "-1/2", "1/2/3"} {
		_, err := keyfile.ReadKeys([]byte("ctrs:\n  - kind: borders\n    prior: \"" + prior + "\"\n"))
		assert.Error(t, err, "prior %q", prior)
	}
}

func TestReadKeysRejectsInvalidYAML(t *testing.T) {
	_, err := keyfile.ReadKeys([]byte("splits: [}"))
	assert.Error(t, err)
}
