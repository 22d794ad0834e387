// Package structs implements owned vectors of 64-bit numbers with deep copy,
// equality and binary serialization.
package structs

// CopyNewer is implemented by objects that can return a deep copy of themselves.
type CopyNewer[V any] interface {
	CopyNew() *V
}

// BinarySizer is implemented by objects that know the size of their binary encoding.
type BinarySizer interface {
	BinarySize() int
}
