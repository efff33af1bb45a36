/*
Package split provides the Split value type, the identity of a single
binary split condition on one feature of a binarized dataset.

A Split does not interpret its feature id: ids are assigned by whatever
feature registry produced the binarization. The type exists to be
compared, ordered, hashed and serialized deterministically, so that
combinations of splits can be deduplicated and cached.
*/
package split

import (
	"fmt"
	"io"

	"github.com/grovekit/ctrkey/keybin"
	"github.com/grovekit/ctrkey/keyhash"
)

/*
Kind is the comparison a Split applies to the binarized feature value.
*/
type Kind uint8

const (
	// ExactBin selects rows whose binarized value equals the bin index.
	ExactBin Kind = iota
	// GreaterThan selects rows whose binarized value exceeds the bin index.
	GreaterThan
)

func (k Kind) String() string {
	switch k {
	case ExactBin:
		return "exact-bin"
	case GreaterThan:
		return "greater-than"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

/*
Split identifies one split condition: a feature id, a bin index and the
kind of comparison. Splits are immutable after construction and every
constructible Split is valid, there is no unset state.

The zero Split is the exact-bin condition on bin 0 of feature 0.
*/
type Split struct {
	featureID uint32
	binIdx    uint32
	kind      Kind
}

/*
New returns the Split with the given feature id, bin index and kind.
*/
func New(featureID, binIdx uint32, kind Kind) Split {
	return Split{featureID: featureID, binIdx: binIdx, kind: kind}
}

/*
FeatureID returns the id of the feature the split conditions on.
*/
func (s Split) FeatureID() uint32 {
	return s.featureID
}

/*
BinIdx returns the bin index the split compares against.
*/
func (s Split) BinIdx() uint32 {
	return s.binIdx
}

/*
Kind returns the kind of comparison the split applies.
*/
func (s Split) Kind() Kind {
	return s.kind
}

/*
Compare orders splits lexicographically on (feature id, bin index, kind)
with ExactBin ranking below GreaterThan. It returns a negative number,
zero or a positive number when s orders before, equal to or after other.
The order is total and consistent with Equal.
*/
func (s Split) Compare(other Split) int {
	if s.featureID != other.featureID {
		if s.featureID < other.featureID {
			return -1
		}
		return 1
	}
	if s.binIdx != other.binIdx {
		if s.binIdx < other.binIdx {
			return -1
		}
		return 1
	}
	if s.kind != other.kind {
		if s.kind < other.kind {
			return -1
		}
		return 1
	}
	return 0
}

/*
Less reports whether s orders strictly before other.
*/
func (s Split) Less(other Split) bool {
	return s.Compare(other) < 0
}

/*
Equal reports whether both splits have the same feature id, bin index
and kind.
*/
func (s Split) Equal(other Split) bool {
	return s == other
}

/*
Hash returns a deterministic 64-bit hash of the split. Equal splits
hash equal.
*/
func (s Split) Hash() uint64 {
	return keyhash.Fold(uint64(s.featureID), uint64(s.binIdx), uint64(s.kind))
}

/*
Encode writes the split's binary record to w: feature id, bin index and
kind in that order, fixed-width little-endian, no version tag.
*/
func (s Split) Encode(w io.Writer) error {
	if err := keybin.WriteUint32(w, s.featureID); err != nil {
		return fmt.Errorf("encoding split feature id: %v", err)
	}
	if err := keybin.WriteUint32(w, s.binIdx); err != nil {
		return fmt.Errorf("encoding split bin index: %v", err)
	}
	if err := keybin.WriteUint8(w, uint8(s.kind)); err != nil {
		return fmt.Errorf("encoding split kind: %v", err)
	}
	return nil
}

/*
Decode reads a split's binary record from r. Truncated input or a kind
tag outside the two defined kinds fails with an error matching
keybin.ErrMalformed.
*/
func Decode(r io.Reader) (Split, error) {
	featureID, err := keybin.ReadUint32(r)
	if err != nil {
		return Split{}, fmt.Errorf("decoding split feature id: %w", err)
	}
	binIdx, err := keybin.ReadUint32(r)
	if err != nil {
		return Split{}, fmt.Errorf("decoding split bin index: %w", err)
	}
	kind, err := keybin.ReadUint8(r)
	if err != nil {
		return Split{}, fmt.Errorf("decoding split kind: %w", err)
	}
	if Kind(kind) != ExactBin && Kind(kind) != GreaterThan {
		return Split{}, fmt.Errorf("%w: unknown split kind tag %d", keybin.ErrMalformed, kind)
	}
	return New(featureID, binIdx, Kind(kind)), nil
}

func (s Split) String() string {
	if s.kind == GreaterThan {
		return fmt.Sprintf("f%d > bin %d", s.featureID, s.binIdx)
	}
	return fmt.Sprintf("f%d = bin %d", s.featureID, s.binIdx)
}
