package tensor

import (
	"github.com/grovekit/ctrkey/split"
)

/*
Builder accumulates splits and categorical feature ids into a canonical
Tensor. Every Add and Merge re-establishes canonical form before
returning, so the order of calls and repeated insertions have no effect
on the built value.

A Builder is not safe for concurrent use; build once, then share the
resulting Tensor freely. Methods return the builder to allow chaining.
*/
type Builder struct {
	splits      []split.Split
	catFeatures []uint32
}

/*
NewBuilder returns an empty Builder.
*/
func NewBuilder() *Builder {
	return &Builder{}
}

/*
Build returns the immutable canonical Tensor holding everything added
so far. The builder remains usable; later additions do not affect
previously built tensors.
*/
func (b *Builder) Build() Tensor {
	return Tensor{
		splits:      append([]split.Split(nil), b.splits...),
		catFeatures: append([]uint32(nil), b.catFeatures...),
	}
}

/*
AddSplit inserts one split condition.
*/
func (b *Builder) AddSplit(s split.Split) *Builder {
	b.splits = append(b.splits, s)
	b.splits = sortUniqueSplits(b.splits)
	return b
}

/*
AddSplits inserts a batch of split conditions.
*/
func (b *Builder) AddSplits(splits []split.Split) *Builder {
	b.splits = append(b.splits, splits...)
	b.splits = sortUniqueSplits(b.splits)
	return b
}

/*
AddCatFeature inserts one categorical feature id.
*/
func (b *Builder) AddCatFeature(featureID uint32) *Builder {
	b.catFeatures = append(b.catFeatures, featureID)
	b.catFeatures = sortUniqueCatFeatures(b.catFeatures)
	return b
}

/*
AddCatFeatures inserts a batch of categorical feature ids.
*/
func (b *Builder) AddCatFeatures(featureIDs []uint32) *Builder {
	b.catFeatures = append(b.catFeatures, featureIDs...)
	b.catFeatures = sortUniqueCatFeatures(b.catFeatures)
	return b
}

/*
Merge unions all elements of the given tensor into the builder.
*/
func (b *Builder) Merge(t Tensor) *Builder {
	b.splits = append(b.splits, t.splits...)
	b.catFeatures = append(b.catFeatures, t.catFeatures...)
	b.splits = sortUniqueSplits(b.splits)
	b.catFeatures = sortUniqueCatFeatures(b.catFeatures)
	return b
}

/*
MergeBuilder unions everything added to the other builder so far into
b. The other builder is not modified and stays usable.
*/
func (b *Builder) MergeBuilder(other *Builder) *Builder {
	b.splits = append(b.splits, other.splits...)
	b.catFeatures = append(b.catFeatures, other.catFeatures...)
	b.splits = sortUniqueSplits(b.splits)
	b.catFeatures = sortUniqueCatFeatures(b.catFeatures)
	return b
}
