// Package probe provides a small recorder for verifying side-effect
// delivery. A Probe[T] can be handed to Also/AlsoMut as the effect
// function; every observation is stamped with a unique id and a UTC
// timestamp, so tests can assert that an effect ran exactly once and
// saw the expected value.
//
// Common usage:
// - New: create a probe for a value type
// - Observe/ObserveMut: use as the effect in Also/AlsoMut
// - Count/Records/Last: inspect what was observed
package probe
