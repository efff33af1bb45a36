/*
Package ctrconf provides a concrete ctr.Config implementation
describing how a target statistic is computed over a feature tensor:
the statistic kind, an additive prior expressed as an exact integer
ratio, and the number of borders used to discretize the result.

Priors are kept as numerator/denominator pairs rather than floats so
that equality, ordering and hashing stay exact, which the key contract
requires.
*/
package ctrconf

import (
	"fmt"
	"io"

	"github.com/grovekit/ctrkey/ctr"
	"github.com/grovekit/ctrkey/keybin"
	"github.com/grovekit/ctrkey/keyhash"
)

/*
Kind is the kind of target statistic a configuration describes.
*/
type Kind uint8

const (
	// Borders discretizes the mean target into border buckets.
	Borders Kind = iota
	// Buckets counts targets per discretization bucket.
	Buckets
	// FloatTargetMean keeps the raw mean target value.
	FloatTargetMean
	// FeatureFreq counts occurrences of the tensor's value combination.
	FeatureFreq
)

func (k Kind) String() string {
	switch k {
	case Borders:
		return "borders"
	case Buckets:
		return "buckets"
	case FloatTargetMean:
		return "float-target-mean"
	case FeatureFreq:
		return "feature-freq"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

/*
Config is an immutable statistics configuration. It satisfies
ctr.Config; configurations of different concrete ctr.Config types must
not be mixed in one key population.
*/
type Config struct {
	kind        Kind
	priorNum    uint32
	priorDenom  uint32
	borderCount uint32
}

/*
New returns the configuration with the given statistic kind, prior
ratio and border count.
*/
func New(kind Kind, priorNum, priorDenom, borderCount uint32) Config {
	return Config{kind: kind, priorNum: priorNum, priorDenom: priorDenom, borderCount: borderCount}
}

/*
Kind returns the kind of statistic the configuration describes.
*/
func (c Config) Kind() Kind {
	return c.kind
}

/*
Prior returns the additive prior as a numerator/denominator pair.
*/
func (c Config) Prior() (uint32, uint32) {
	return c.priorNum, c.priorDenom
}

/*
BorderCount returns the number of borders used to discretize the
statistic.
*/
func (c Config) BorderCount() uint32 {
	return c.borderCount
}

/*
Equal reports whether other is a ctrconf.Config with the same kind,
prior and border count.
*/
func (c Config) Equal(other ctr.Config) bool {
	o, ok := other.(Config)
	if !ok {
		return false
	}
	return c == o
}

/*
Compare orders configurations lexicographically on (kind, prior
numerator, prior denominator, border count). Comparing against a
different concrete ctr.Config type panics: key populations must be
homogeneous.
*/
func (c Config) Compare(other ctr.Config) int {
	o, ok := other.(Config)
	if !ok {
		panic(fmt.Sprintf("comparing ctrconf.Config against %T", other))
	}
	fields := [4][2]uint32{
		{uint32(c.kind), uint32(o.kind)},
		{c.priorNum, o.priorNum},
		{c.priorDenom, o.priorDenom},
		{c.borderCount, o.borderCount},
	}
	for _, f := range fields {
		if f[0] != f[1] {
			if f[0] < f[1] {
				return -1
			}
			return 1
		}
	}
	return 0
}

/*
Hash returns a deterministic 64-bit hash of the configuration.
*/
func (c Config) Hash() uint64 {
	return keyhash.Fold(uint64(c.kind), uint64(c.priorNum), uint64(c.priorDenom), uint64(c.borderCount))
}

/*
Encode writes the configuration's binary record to w: kind tag, prior
numerator, prior denominator and border count, in that order.
*/
func (c Config) Encode(w io.Writer) error {
	if err := keybin.WriteUint8(w, uint8(c.kind)); err != nil {
		return fmt.Errorf("encoding config kind: %v", err)
	}
	for _, v := range []uint32{c.priorNum, c.priorDenom, c.borderCount} {
		if err := keybin.WriteUint32(w, v); err != nil {
			return fmt.Errorf("encoding config: %v", err)
		}
	}
	return nil
}

/*
Decode reads a configuration record written by Encode. It satisfies
ctr.ConfigDecoder. Truncated input or an unknown kind tag fails with an
error matching keybin.ErrMalformed.
*/
func Decode(r io.Reader) (ctr.Config, error) {
	kind, err := keybin.ReadUint8(r)
	if err != nil {
		return nil, fmt.Errorf("decoding config kind: %w", err)
	}
	if kind > uint8(FeatureFreq) {
		return nil, fmt.Errorf("%w: unknown config kind tag %d", keybin.ErrMalformed, kind)
	}
	var fields [3]uint32
	for i := range fields {
		fields[i], err = keybin.ReadUint32(r)
		if err != nil {
			return nil, fmt.Errorf("decoding config: %w", err)
		}
	}
	return New(Kind(kind), fields[0], fields[1], fields[2]), nil
}

func (c Config) String() string {
	return fmt.Sprintf("%v prior %d/%d borders %d", c.kind, c.priorNum, c.priorDenom, c.borderCount)
}
