/*
Package ctr provides the Ctr value type, the full cache key identifying
one computed target statistic: a feature tensor paired with the
configuration under which the statistic is computed.

The configuration is an external collaborator modelled by the Config
interface: this package never looks inside it, it only relies on the
configuration's own equality, ordering, hashing and serialization being
deterministic. All Ctr values of one training run are expected to carry
the same concrete Config implementation.
*/
package ctr

import (
	"bytes"
	"fmt"
	"io"

	"github.com/grovekit/ctrkey/keyhash"
	"github.com/grovekit/ctrkey/tensor"
)

/*
Config is the contract a statistics configuration must satisfy to take
part in Ctr keys. Implementations must be immutable value types whose
Equal, Compare and Hash are deterministic and mutually consistent:
Equal(a, b) exactly when Compare(a, b) == 0, and equal configurations
hash equal.
*/
type Config interface {
	// Equal reports whether both configurations are the same.
	Equal(Config) bool
	// Compare orders configurations totally, returning a negative
	// number, zero or a positive number. Implementations only need to
	// order configurations of their own concrete type.
	Compare(Config) int
	// Hash returns a deterministic 64-bit hash of the configuration.
	Hash() uint64
	// Encode writes the configuration's binary record to the writer.
	Encode(io.Writer) error
}

/*
ConfigDecoder decodes a configuration record previously written by a
Config's Encode method. It is the counterpart callers supply to Decode,
since this package does not know the concrete configuration type.
*/
type ConfigDecoder func(io.Reader) (Config, error)

/*
Ctr pairs a canonical feature tensor with a statistics configuration.
It is an immutable value used purely as a cache and lookup key; build
it once with New and share it freely afterwards.
*/
type Ctr struct {
	tensor tensor.Tensor
	config Config
}

/*
New returns the Ctr pairing the given tensor and configuration. The
tensor is canonical by construction; the configuration must not be nil.
*/
func New(t tensor.Tensor, config Config) Ctr {
	return Ctr{tensor: t, config: config}
}

/*
Tensor returns the ctr's feature tensor.
*/
func (c Ctr) Tensor() tensor.Tensor {
	return c.tensor
}

/*
Config returns the ctr's statistics configuration.
*/
func (c Ctr) Config() Config {
	return c.config
}

/*
IsSimple reports whether the ctr's tensor represents a single atomic
condition.
*/
func (c Ctr) IsSimple() bool {
	return c.tensor.IsSimple()
}

/*
Equal reports whether both ctrs have equal tensors and equal
configurations.
*/
func (c Ctr) Equal(other Ctr) bool {
	return c.tensor.Equal(other.tensor) && c.config.Equal(other.config)
}

/*
Compare orders ctrs lexicographically on (tensor, configuration). It
returns a negative number, zero or a positive number when c orders
before, equal to or after other.
*/
func (c Ctr) Compare(other Ctr) int {
	if cmp := c.tensor.Compare(other.tensor); cmp != 0 {
		return cmp
	}
	return c.config.Compare(other.config)
}

/*
Less reports whether c orders strictly before other.
*/
func (c Ctr) Less(other Ctr) bool {
	return c.Compare(other) < 0
}

/*
Hash returns a deterministic 64-bit hash of the ctr. Equal ctrs hash
equal.
*/
func (c Ctr) Hash() uint64 {
	return keyhash.Fold(c.tensor.Hash(), c.config.Hash())
}

/*
Encode writes the ctr's binary record to w: the tensor record followed
by the configuration record.
*/
func (c Ctr) Encode(w io.Writer) error {
	if err := c.tensor.Encode(w); err != nil {
		return fmt.Errorf("encoding ctr tensor: %v", err)
	}
	if err := c.config.Encode(w); err != nil {
		return fmt.Errorf("encoding ctr config: %v", err)
	}
	return nil
}

/*
Decode reads a ctr's binary record from r, decoding the configuration
part with the given decoder. Malformed input fails with an error
matching keybin.ErrMalformed.
*/
func Decode(r io.Reader, decodeConfig ConfigDecoder) (Ctr, error) {
	t, err := tensor.Decode(r)
	if err != nil {
		return Ctr{}, fmt.Errorf("decoding ctr tensor: %w", err)
	}
	config, err := decodeConfig(r)
	if err != nil {
		return Ctr{}, fmt.Errorf("decoding ctr config: %w", err)
	}
	return Ctr{tensor: t, config: config}, nil
}

/*
Bytes returns the ctr's binary record as a byte slice. Because the
tensor is canonical and the configuration's encoding is deterministic,
equal ctrs produce identical bytes, which makes the record usable as an
exact-match store key.
*/
func (c Ctr) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c Ctr) String() string {
	return fmt.Sprintf("ctr %v over %v", c.config, c.tensor)
}
