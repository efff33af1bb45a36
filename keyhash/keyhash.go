/*
Package keyhash implements the 64-bit hash combiner shared by all the
key value types in this module.

The combiner is a fixed-seed multiply-xor fold: it is deterministic
across processes and platforms, order-sensitive, and equal inputs always
produce equal outputs. Callers that need set semantics (equal sets hash
equal regardless of insertion history) must fold over a canonical sorted
representation of the set, which the tensor package guarantees.
*/
package keyhash

const (
	seed = 0x8445d61a4e774912
	mult = 0x9ddfea08eb382d69
)

/*
New returns the initial accumulator value for a hash fold.
*/
func New() uint64 {
	return seed
}

/*
Combine folds a 64-bit value into the accumulator h and returns the new
accumulator. The fold is order-sensitive: Combine(Combine(h, a), b)
differs from Combine(Combine(h, b), a) for almost all a != b.
*/
func Combine(h, v uint64) uint64 {
	h ^= v
	h *= mult
	h ^= h >> 47
	h *= mult
	return h
}

/*
Fold combines a sequence of 64-bit values into a single hash, starting
from the initial accumulator. An empty sequence hashes to a fixed value
distinct from the initial accumulator.
*/
func Fold(vs ...uint64) uint64 {
	h := New()
	h = Combine(h, uint64(len(vs)))
	for _, v := range vs {
		h = Combine(h, v)
	}
	return h
}
