// Package chain provides a minimal fluent Chain[T] for composing tap-style
// operations with method chaining instead of nested calls.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain from a context and value, or a bare value
// - Map: transform the value within the same type
// - Also/AlsoIf/AlsoMut: trigger side effects, keeping the value
// - Transform: switch the value to a new type (free function)
// - Finally: reduce the chain to a concrete value
//
// Each step invokes its function exactly once, synchronously, in chaining
// order. The context is carried for the supplied functions to use; no step
// inspects it, so cancellation is entirely the callbacks' concern.
package chain
