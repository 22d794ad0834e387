package structs

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/labquad/integral/utils/buffer"
)

// Vector is a slice of 64-bit components. Its binary encoding is the
// length as an uint64 followed by each component, all little-endian.
type Vector[T buffer.Word] []T

// NewVector returns a Vector holding a copy of s.
func NewVector[T buffer.Word](s []T) Vector[T] {
	return Vector[T](s).CopyNew()
}

// CopyNew returns a deep copy of the object. It never returns nil.
func (v Vector[T]) CopyNew() (vcpy Vector[T]) {
	vcpy = make([]T, len(v))
	copy(vcpy, v)
	return
}

// BinarySize returns the serialized size of the object in bytes.
func (v Vector[T]) BinarySize() (size int) {
	return 8 + len(v)*8
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface, it will be wrapped into
// a bufio.Writer. When writing to a pre-allocated []byte, it is preferable
// to pass buffer.NewBuffer(b) as w.
func (v Vector[T]) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteUint64(w, uint64(len(v))); err != nil {
			return inc, fmt.Errorf("buffer.WriteUint64: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteAsUint64Slice[T](w, v); err != nil {
			var t T
			return n + inc, fmt.Errorf("buffer.WriteAsUint64Slice[%T]: %w", t, err)
		}

		n += inc

		return n, w.Flush()

	default:
		return v.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface, it will be wrapped into
// a bufio.Reader. When reading from a []byte, it is preferable to pass
// buffer.NewBuffer(b) as r.
func (v *Vector[T]) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		var size64 uint64

		if inc, err = buffer.ReadUint64(r, &size64); err != nil {
			return inc, fmt.Errorf("buffer.ReadUint64: %w", err)
		}

		n += inc

		if size64 > math.MaxInt32 {
			return n, fmt.Errorf("cannot ReadFrom: invalid vector size %d", size64)
		}

		size := int(size64)

		if b, ok := r.(*buffer.Buffer); ok && size > b.Size()>>3 {
			return n, fmt.Errorf("cannot ReadFrom: vector size %d exceeds the %d remaining bytes: %w", size, b.Size(), io.ErrUnexpectedEOF)
		}

		// The size is untrusted: storage grows at most readChunk components
		// ahead of the data actually read.
		*v = (*v)[:0]

		for len(*v) < size {

			start := len(*v)
			end := start + min(size-start, readChunk)

			if cap(*v) < end {
				grown := make([]T, start, max(end, 2*start))
				copy(grown, *v)
				*v = grown
			}

			*v = (*v)[:end]

			if inc, err = buffer.ReadAsUint64Slice[T](r, (*v)[start:end]); err != nil {
				var t T
				return n + inc, fmt.Errorf("buffer.ReadAsUint64Slice[%T]: %w", t, err)
			}

			n += inc
		}

		return n, nil

	default:
		return v.ReadFrom(bufio.NewReader(r))
	}
}

// readChunk is the number of components ReadFrom allocates at a time.
const readChunk = 1 << 16

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (v Vector[T]) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(v.BinarySize())
	_, err = v.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (v *Vector[T]) UnmarshalBinary(p []byte) (err error) {
	_, err = v.ReadFrom(buffer.NewBuffer(p))
	return
}

// Equal performs a component-wise bitwise comparison: NaN equals a NaN with
// the same payload, and 0 differs from -0.
func (v Vector[T]) Equal(other Vector[T]) (isEqual bool) {
	return buffer.EqualAsUint64Slice([]T(v), []T(other))
}
