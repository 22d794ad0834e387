package quadrature

import (
	"bufio"
	"encoding"
	"fmt"
	"io"

	"github.com/labquad/integral/utils/buffer"
	"github.com/labquad/integral/utils/structs"
	"github.com/zeebo/blake3"
)

// BinarySize returns the serialized size of the object in bytes.
func (i Integral) BinarySize() int {
	return i.points.BinarySize() + i.values.BinarySize()
}

// WriteTo writes the object on an io.Writer: the points then the values,
// each as a length-prefixed vector of little-endian IEEE-754 words.
// It implements the io.WriterTo interface, and will write exactly
// object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface, it will be wrapped into
// a bufio.Writer.
func (i Integral) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = i.points.WriteTo(w); err != nil {
			return inc, fmt.Errorf("points: %w", err)
		}

		n += inc

		if inc, err = i.values.WriteTo(w); err != nil {
			return n + inc, fmt.Errorf("values: %w", err)
		}

		return n + inc, nil

	default:
		return i.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface. A payload whose points and values differ in
// length is rejected with an error wrapping ErrInvalidArgument and leaves
// the object unchanged.
//
// Unless r implements the buffer.Reader interface, it will be wrapped into
// a bufio.Reader.
func (i *Integral) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var tmp Integral

		var inc int64
		if inc, err = tmp.points.ReadFrom(r); err != nil {
			return inc, fmt.Errorf("points: %w", err)
		}

		n += inc

		if inc, err = tmp.values.ReadFrom(r); err != nil {
			return n + inc, fmt.Errorf("values: %w", err)
		}

		n += inc

		if len(tmp.points) != len(tmp.values) {
			return n, fmt.Errorf("cannot ReadFrom: len(points)=%d != len(values)=%d: %w", len(tmp.points), len(tmp.values), ErrInvalidArgument)
		}

		*i = tmp

		return n, nil

	default:
		return i.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (i Integral) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(i.BinarySize())
	_, err = i.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (i *Integral) UnmarshalBinary(p []byte) (err error) {
	_, err = i.ReadFrom(buffer.NewBuffer(p))
	return
}

// Digest returns the 32-byte blake3 hash of the binary encoding of the table.
// Two tables have the same digest if and only if they are Equal, up to
// hash collisions.
func (i Integral) Digest() ([]byte, error) {
	hasher := blake3.New()
	if _, err := i.WriteTo(hasher); err != nil {
		return nil, fmt.Errorf("cannot Digest: %w", err)
	}
	return hasher.Sum(nil), nil
}

var (
	_ structs.BinarySizer         = Integral{}
	_ structs.CopyNewer[Integral] = Integral{}
	_ io.WriterTo                 = Integral{}
	_ io.ReaderFrom               = (*Integral)(nil)
	_ encoding.BinaryMarshaler    = Integral{}
	_ encoding.BinaryUnmarshaler  = (*Integral)(nil)
)
