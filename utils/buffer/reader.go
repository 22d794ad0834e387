package buffer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unsafe"
)

// ReadAsUint64Slice reads len(c) uint64 from r and stores them in c.
func ReadAsUint64Slice[T Word](r Reader, c []T) (n int64, err error) {
	/* #nosec G103 -- T is constrained to 64-bit types */
	return ReadUint64Slice(r, *(*[]uint64)(unsafe.Pointer(&c)))
}

// ReadUint64 reads a little-endian uint64 from r.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	nint, err := io.ReadFull(r, bb[:])
	if err != nil {
		return int64(nint), fmt.Errorf("cannot ReadUint64: %w", err)
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return int64(nint), nil
}

// ReadUint64Slice reads len(c) little-endian uint64 from r, peeking
// directly into the internal buffer of r.
func ReadUint64Slice(r Reader, c []uint64) (n int64, err error) {

	for len(c) > 0 {

		size := r.Size()
		if len(c)<<3 < size {
			size = len(c) << 3
		}

		var slice []byte
		if slice, err = r.Peek(size); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return n, fmt.Errorf("cannot ReadUint64Slice: %w", err)
		}

		buffered := len(slice) >> 3

		if buffered == 0 {
			return n, fmt.Errorf("cannot ReadUint64Slice: %w", io.ErrUnexpectedEOF)
		}

		for i, j := 0, 0; i < buffered; i, j = i+1, j+8 {
			c[i] = binary.LittleEndian.Uint64(slice[j:])
		}

		var inc int
		if inc, err = r.Discard(buffered << 3); err != nil {
			return n + int64(inc), err
		}

		n += int64(inc)
		c = c[buffered:]
	}

	return
}
