package buffer

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

// Word is the set of types that are stored on exactly 64 bits on every platform.
type Word interface {
	~uint64 | ~int64 | ~float64
}

// WriteAsUint64Slice reinterprets c as an []uint64 and writes it to w.
func WriteAsUint64Slice[T Word](w Writer, c []T) (n int64, err error) {
	/* #nosec G103 -- T is constrained to 64-bit types */
	return WriteUint64Slice(w, *(*[]uint64)(unsafe.Pointer(&c)))
}

// WriteUint64 writes c to w in little-endian order.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available()>>3 == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available()>>3 == 0 {
			return 0, fmt.Errorf("cannot WriteUint64: available buffer/8 is zero even after flush")
		}
	}

	buf := w.AvailableBuffer()[:8]

	binary.LittleEndian.PutUint64(buf, c)

	nint, err := w.Write(buf)

	return int64(nint), err
}

// WriteUint64Slice writes c to w in little-endian order, flushing w
// whenever its internal buffer is full.
func WriteUint64Slice(w Writer, c []uint64) (n int64, err error) {

	for len(c) > 0 {

		available := w.Available() >> 3

		if available == 0 {
			if err = w.Flush(); err != nil {
				return
			}

			if available = w.Available() >> 3; available == 0 {
				return n, fmt.Errorf("cannot WriteUint64Slice: available buffer/8 is zero even after flush")
			}
		}

		N := len(c)
		if N > available {
			N = available
		}

		buf := w.AvailableBuffer()[:N<<3]
		for i := 0; i < N; i++ {
			binary.LittleEndian.PutUint64(buf[i<<3:], c[i])
		}

		var inc int
		if inc, err = w.Write(buf); err != nil {
			return n + int64(inc), err
		}

		n += int64(inc)
		c = c[N:]
	}

	return
}
