package converting

// If nil returns the default value for the type
func Unwrap[T any](x *T) (r T) {
	if x != nil {
		r = *x
	}

	return
}

// UnwrapOr returns fallback when x is nil or points at the zero value.
func UnwrapOr[T comparable](x *T, fallback T) T {
	var zero T
	if x == nil || *x == zero {
		return fallback
	}

	return *x
}

func PointerToValue[T any](v T) *T {
	return &v
}
