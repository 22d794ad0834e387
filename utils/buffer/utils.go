package buffer

import (
	"unsafe"
)

// EqualAsUint64Slice reinterprets a and b as []uint64 and compares them
// bitwise.
func EqualAsUint64Slice[T Word](a, b []T) bool {

	if len(a) != len(b) {
		return false
	}

	/* #nosec G103 -- T is constrained to 64-bit types */
	au := *(*[]uint64)(unsafe.Pointer(&a))
	/* #nosec G103 -- T is constrained to 64-bit types */
	bu := *(*[]uint64)(unsafe.Pointer(&b))

	for i := range au {
		if au[i] != bu[i] {
			return false
		}
	}

	return true
}
