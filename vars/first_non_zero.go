package vars

import "cmp"

// FirstNonZero returns the first argument that is not the zero value.
func FirstNonZero[T comparable](values ...T) T {
	return cmp.Or(values...)
}
