/*
Package tensor provides the Tensor value type, a canonical combination
of split conditions and raw categorical feature ids considered jointly
during tree growing.

A Tensor is the set union of its components: insertion order and
duplicate insertions leave no trace, so tensors built from the same
elements in any order compare equal, hash equal and serialize to the
same bytes. Tensors are immutable; they are assembled with a Builder
(see builder.go) and safe to share as cache keys afterwards.
*/
package tensor

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/grovekit/ctrkey/keybin"
	"github.com/grovekit/ctrkey/keyhash"
	"github.com/grovekit/ctrkey/split"
)

/*
Tensor is an immutable canonical set of split conditions and categorical
feature ids. The zero Tensor is the empty tensor, the identity element
of Merge.
*/
type Tensor struct {
	splits      []split.Split
	catFeatures []uint32
}

/*
New returns the canonical Tensor holding the given splits and
categorical feature ids. The inputs may arrive in any order and contain
duplicates; New sorts and deduplicates copies of them.
*/
func New(splits []split.Split, catFeatures []uint32) Tensor {
	t := Tensor{
		splits:      append([]split.Split(nil), splits...),
		catFeatures: append([]uint32(nil), catFeatures...),
	}
	t.splits = sortUniqueSplits(t.splits)
	t.catFeatures = sortUniqueCatFeatures(t.catFeatures)
	return t
}

/*
Splits returns a copy of the tensor's splits in canonical order.
*/
func (t Tensor) Splits() []split.Split {
	return append([]split.Split(nil), t.splits...)
}

/*
CatFeatures returns a copy of the tensor's categorical feature ids in
canonical ascending order.
*/
func (t Tensor) CatFeatures() []uint32 {
	return append([]uint32(nil), t.catFeatures...)
}

/*
IsEmpty reports whether the tensor holds no splits and no categorical
feature ids.
*/
func (t Tensor) IsEmpty() bool {
	return len(t.splits) == 0 && len(t.catFeatures) == 0
}

/*
Size returns the number of elements in the tensor, splits and
categorical feature ids together.
*/
func (t Tensor) Size() int {
	return len(t.splits) + len(t.catFeatures)
}

/*
IsSimple reports whether the tensor represents a single atomic
condition, one split or one categorical feature, rather than a
conjunction.
*/
func (t Tensor) IsSimple() bool {
	return t.Size() == 1
}

/*
Complexity returns the tensor's cost heuristic: every distinct
categorical feature contributes one unit, while all splits together
contribute at most one, since they are assumed to come from a single
tree path.
*/
func (t Tensor) Complexity() int {
	c := len(t.catFeatures)
	if len(t.splits) > 0 {
		c++
	}
	return c
}

/*
Merge returns the canonical set union of t and other. Merge is
commutative and associative, and the empty tensor is its identity.
*/
func (t Tensor) Merge(other Tensor) Tensor {
	return New(append(t.Splits(), other.splits...), append(t.CatFeatures(), other.catFeatures...))
}

/*
IsSubset reports whether every split and every categorical feature id
of t is present in other. The relation is a partial order: two tensors
may each hold elements the other lacks.
*/
func (t Tensor) IsSubset(other Tensor) bool {
	if !splitsSubset(t.splits, other.splits) {
		return false
	}
	return catFeaturesSubset(t.catFeatures, other.catFeatures)
}

/*
Equal reports whether both tensors hold exactly the same splits and
categorical feature ids.
*/
func (t Tensor) Equal(other Tensor) bool {
	if len(t.splits) != len(other.splits) || len(t.catFeatures) != len(other.catFeatures) {
		return false
	}
	for i, s := range t.splits {
		if !s.Equal(other.splits[i]) {
			return false
		}
	}
	for i, cf := range t.catFeatures {
		if cf != other.catFeatures[i] {
			return false
		}
	}
	return true
}

/*
Compare orders tensors lexicographically: first by their split
sequences, then by their categorical feature id sequences, each
sequence compared elementwise with a shorter prefix ordering before its
extensions. It returns a negative number, zero or a positive number
when t orders before, equal to or after other. The order is total and
consistent with Equal.
*/
func (t Tensor) Compare(other Tensor) int {
	n := len(t.splits)
	if len(other.splits) < n {
		n = len(other.splits)
	}
	for i := 0; i < n; i++ {
		if c := t.splits[i].Compare(other.splits[i]); c != 0 {
			return c
		}
	}
	if len(t.splits) != len(other.splits) {
		if len(t.splits) < len(other.splits) {
			return -1
		}
		return 1
	}
	n = len(t.catFeatures)
	if len(other.catFeatures) < n {
		n = len(other.catFeatures)
	}
	for i := 0; i < n; i++ {
		if t.catFeatures[i] != other.catFeatures[i] {
			if t.catFeatures[i] < other.catFeatures[i] {
				return -1
			}
			return 1
		}
	}
	if len(t.catFeatures) != len(other.catFeatures) {
		if len(t.catFeatures) < len(other.catFeatures) {
			return -1
		}
		return 1
	}
	return 0
}

/*
Less reports whether t orders strictly before other.
*/
func (t Tensor) Less(other Tensor) bool {
	return t.Compare(other) < 0
}

/*
Hash returns a deterministic 64-bit hash of the tensor. The hash folds
over the canonical sorted sequences, so tensors holding equal sets hash
equal no matter how they were assembled.
*/
func (t Tensor) Hash() uint64 {
	hs := keyhash.New()
	hs = keyhash.Combine(hs, uint64(len(t.splits)))
	for _, s := range t.splits {
		hs = keyhash.Combine(hs, s.Hash())
	}
	hc := keyhash.New()
	hc = keyhash.Combine(hc, uint64(len(t.catFeatures)))
	for _, cf := range t.catFeatures {
		hc = keyhash.Combine(hc, uint64(cf))
	}
	return keyhash.Fold(hs, hc)
}

/*
Encode writes the tensor's binary record to w: a length-prefixed list
of split records in canonical order followed by a length-prefixed list
of categorical feature ids in canonical order.
*/
func (t Tensor) Encode(w io.Writer) error {
	if err := keybin.WriteSeqLen(w, len(t.splits)); err != nil {
		return fmt.Errorf("encoding tensor split count: %v", err)
	}
	for _, s := range t.splits {
		if err := s.Encode(w); err != nil {
			return fmt.Errorf("encoding tensor: %v", err)
		}
	}
	if err := keybin.WriteSeqLen(w, len(t.catFeatures)); err != nil {
		return fmt.Errorf("encoding tensor categorical feature count: %v", err)
	}
	for _, cf := range t.catFeatures {
		if err := keybin.WriteUint32(w, cf); err != nil {
			return fmt.Errorf("encoding tensor categorical feature id: %v", err)
		}
	}
	return nil
}

/*
Decode reads a tensor's binary record from r. Records whose sequences
are not in strictly ascending canonical order, or that end early, fail
with an error matching keybin.ErrMalformed.
*/
func Decode(r io.Reader) (Tensor, error) {
	n, err := keybin.ReadSeqLen(r)
	if err != nil {
		return Tensor{}, fmt.Errorf("decoding tensor split count: %w", err)
	}
	splits := make([]split.Split, 0, n)
	for i := 0; i < n; i++ {
		s, err := split.Decode(r)
		if err != nil {
			return Tensor{}, fmt.Errorf("decoding tensor split %d: %w", i, err)
		}
		if i > 0 && splits[i-1].Compare(s) >= 0 {
			return Tensor{}, fmt.Errorf("%w: tensor splits out of canonical order", keybin.ErrMalformed)
		}
		splits = append(splits, s)
	}
	m, err := keybin.ReadSeqLen(r)
	if err != nil {
		return Tensor{}, fmt.Errorf("decoding tensor categorical feature count: %w", err)
	}
	catFeatures := make([]uint32, 0, m)
	for i := 0; i < m; i++ {
		cf, err := keybin.ReadUint32(r)
		if err != nil {
			return Tensor{}, fmt.Errorf("decoding tensor categorical feature id %d: %w", i, err)
		}
		if i > 0 && catFeatures[i-1] >= cf {
			return Tensor{}, fmt.Errorf("%w: tensor categorical feature ids out of canonical order", keybin.ErrMalformed)
		}
		catFeatures = append(catFeatures, cf)
	}
	return Tensor{splits: splits, catFeatures: catFeatures}, nil
}

func (t Tensor) String() string {
	parts := make([]string, 0, t.Size())
	for _, s := range t.splits {
		parts = append(parts, s.String())
	}
	for _, cf := range t.catFeatures {
		parts = append(parts, fmt.Sprintf("cat %d", cf))
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}

func sortUniqueSplits(splits []split.Split) []split.Split {
	sort.Slice(splits, func(i, j int) bool {
		return splits[i].Less(splits[j])
	})
	out := splits[:0]
	for i, s := range splits {
		if i == 0 || !out[len(out)-1].Equal(s) {
			out = append(out, s)
		}
	}
	return out
}

func sortUniqueCatFeatures(catFeatures []uint32) []uint32 {
	sort.Slice(catFeatures, func(i, j int) bool {
		return catFeatures[i] < catFeatures[j]
	})
	out := catFeatures[:0]
	for i, cf := range catFeatures {
		if i == 0 || out[len(out)-1] != cf {
			out = append(out, cf)
		}
	}
	return out
}

func splitsSubset(sub, super []split.Split) bool {
	if len(sub) > len(super) {
		return false
	}
	j := 0
	for _, s := range sub {
		for j < len(super) && super[j].Less(s) {
			j++
		}
		if j == len(super) || !super[j].Equal(s) {
			return false
		}
		j++
	}
	return true
}

func catFeaturesSubset(sub, super []uint32) bool {
	if len(sub) > len(super) {
		return false
	}
	j := 0
	for _, cf := range sub {
		for j < len(super) && super[j] < cf {
			j++
		}
		if j == len(super) || super[j] != cf {
			return false
		}
		j++
	}
	return true
}
