// Package tap provides generic apply/also combinators for chaining
// construction and mutation of a value into a single expression, in the
// spirit of Kotlin's apply and also scope functions. Also can be used
// similarly to unix' tee command.
//
// Highlights:
// - Apply: pass a value to a function and return the result
// - ApplyRef: pass a read-only view of a value and return the result
// - Also/AlsoIf: run a side effect against a value, return the value
// - AlsoMut: run a mutating side effect against a value, return the value
// - Pipe/Compose/Iden/Ptr: small composition helpers
//
// Every combinator invokes its supplied function exactly once, synchronously,
// on the calling goroutine. Panics raised by the supplied function unwind
// through the combinator frame unmodified; no combinator recovers, wraps, or
// retries.
package tap
