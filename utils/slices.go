package utils

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// IsStrictlyIncreasing returns true if every element of s is strictly
// greater than the previous one. Empty and single-element slices are
// increasing. A NaN anywhere makes s not increasing.
func IsStrictlyIncreasing[T constraints.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if !(s[i-1] < s[i]) {
			return false
		}
	}
	return true
}

// JoinFloats formats every element of s with FormatFloat and joins them with sep.
func JoinFloats[T constraints.Float](s []T, sep string) string {
	var sb strings.Builder
	for i := range s {
		if i != 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(FormatFloat(float64(s[i])))
	}
	return sb.String()
}
