package keyhash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grovekit/ctrkey/keyhash"
)

func TestFoldIsDeterministic(t *testing.T) {
	assert.Equal(t, keyhash.Fold(1, 2, 3), keyhash.Fold(1, 2, 3))
}

func TestFoldIsOrderSensitive(t *testing.T) {
	assert.NotEqual(t, keyhash.Fold(1, 2), keyhash.Fold(2, 1))
}

func TestFoldSeparatesLengths(t *testing.T) {
	assert.NotEqual(t, keyhash.Fold(), keyhash.Fold(0))
	assert.NotEqual(t, keyhash.Fold(1), keyhash.Fold(1, 0))
}

func TestCombineChangesAccumulator(t *testing.T) {
	h := keyhash.New()
	assert.NotEqual(t, h, keyhash.Combine(h, 0))
	assert.NotEqual(t, keyhash.Combine(h, 1), keyhash.Combine(h, 2))
}
