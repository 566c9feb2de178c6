package tap

// Pipe folds transforms over v from left to right and returns the final value.
func Pipe[T any](v T, transforms ...func(T) T) T {
	result := v
	for _, transform := range transforms {
		result = transform(result)
	}
	return result
}

// Compose is left to right function composition: Compose(f, g)(x) == g(f(x)).
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Iden returns its argument. It is the unit of Pipe and Compose.
func Iden[T any](v T) T {
	return v
}

// Ptr returns a pointer to v; avoids the need for one-off variables at
// literal call sites.
func Ptr[T any](v T) *T {
	return &v
}
