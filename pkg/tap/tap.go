package tap

// Apply passes v to f and returns the result. The value is handed over to f;
// the caller should not use v afterwards.
//
//	x := tap.Apply(256, func(it int) int { return it * 2 }) // 512
func Apply[V, R any](v V, f func(V) R) R {
	return f(v)
}

// ApplyRef passes a pointer to v to f and returns the result. The pointer is
// a read-only view by convention; use AlsoMut when f needs to mutate.
//
//	n := tap.ApplyRef([]int{1, 2, 3}, func(it *[]int) int { return len(*it) }) // 3
func ApplyRef[V, R any](v V, f func(*V) R) R {
	return f(&v)
}

// Also runs effect against v and returns v unchanged. Useful for teeing a
// value into a side effect without breaking up an expression.
func Also[V any](v V, effect func(V)) V {
	effect(v)
	return v
}

// AlsoIf runs effect against v only when cond holds, returning v either way.
func AlsoIf[V any](v V, cond func(V) bool, effect func(V)) V {
	if cond(v) {
		effect(v)
	}
	return v
}

// AlsoMut runs effect against a mutable view of v and returns v with any
// mutations applied.
//
//	m := tap.AlsoMut(map[string]string{}, func(it *map[string]string) {
//		(*it)["hello"] = "world"
//	})
func AlsoMut[V any](v V, effect func(*V)) V {
	effect(&v)
	return v
}
