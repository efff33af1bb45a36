/*
Package keybin implements the primitives of the binary record format
shared by the key value types in this module: fixed-width little-endian
unsigned integers and uint32-length-prefixed sequences, with no version
tags.

Records that end early or carry impossible field values fail decoding
with an error matching ErrMalformed, so callers can tell a bad record
apart from a failing reader.
*/
package keybin

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

/*
ErrMalformed is returned, possibly wrapped, when a record cannot be
decoded because its bytes are truncated or inconsistent. Errors from the
underlying reader other than unexpected ends of input are returned as
they are.
*/
var ErrMalformed = errors.New("malformed record")

// MaxSeqLen bounds the element count of any length-prefixed sequence.
// A larger prefix cannot come from a well-formed record and is rejected
// before any allocation takes place.
const MaxSeqLen = 1 << 24

/*
WriteUint32 writes v to w as 4 little-endian bytes.
*/
func WriteUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

/*
ReadUint32 reads 4 little-endian bytes from r. A truncated read fails
with ErrMalformed.
*/
func ReadUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, truncated(err)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

/*
WriteUint8 writes v to w as a single byte.
*/
func WriteUint8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

/*
ReadUint8 reads a single byte from r. A truncated read fails with
ErrMalformed.
*/
func ReadUint8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, truncated(err)
	}
	return buf[0], nil
}

/*
WriteSeqLen writes the element count of a length-prefixed sequence. It
returns an error if the count exceeds MaxSeqLen.
*/
func WriteSeqLen(w io.Writer, n int) error {
	if n < 0 || n > MaxSeqLen {
		return fmt.Errorf("sequence of %d elements cannot be encoded", n)
	}
	return WriteUint32(w, uint32(n))
}

/*
ReadSeqLen reads the element count of a length-prefixed sequence and
validates it against MaxSeqLen, failing with ErrMalformed if the record
declares an impossible count.
*/
func ReadSeqLen(r io.Reader) (int, error) {
	n, err := ReadUint32(r)
	if err != nil {
		return 0, err
	}
	if n > MaxSeqLen {
		return 0, fmt.Errorf("%w: sequence length %d exceeds limit", ErrMalformed, n)
	}
	return int(n), nil
}

/*
WriteBytes writes a uint32-length-prefixed byte blob to w.
*/
func WriteBytes(w io.Writer, data []byte) error {
	if err := WriteSeqLen(w, len(data)); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

/*
ReadBytes reads a uint32-length-prefixed byte blob from r. Truncated
input fails with ErrMalformed.
*/
func ReadBytes(r io.Reader) ([]byte, error) {
	n, err := ReadSeqLen(r)
	if err != nil {
		return nil, err
	}
	data := make([]byte, n)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, truncated(err)
	}
	return data, nil
}

func truncated(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: unexpected end of record", ErrMalformed)
	}
	return err
}
