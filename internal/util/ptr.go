// Package util holds small generic helpers.
package util

// Ptr returns a pointer to v, for optional fields set from literals
func Ptr[T any](v T) *T {
	return &v
}

// PtrOrNil is Ptr, except the zero value yields nil so an omitempty
// field is left out
func PtrOrNil[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
