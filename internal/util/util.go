package util

// Pointer simply returns a pointer to the supplied value
func Pointer[T any](v T) *T {
	return &v
}

// ValueOrDefault dereferences p, falling back to def when p is nil
func ValueOrDefault[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// Clamp bounds v to the inclusive range [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
