package chain

import (
	"context"
)

type Chain[T any] struct {
	ctx context.Context
	val T
}

func Start[T any](ctx context.Context, v T) Chain[T] {
	return Chain[T]{ctx: ctx, val: v}
}

func FromValue[T any](v T) Chain[T] {
	return Start(context.Background(), v)
}

func (c Chain[T]) Value() T {
	return c.val
}

func (c Chain[T]) Context() context.Context {
	return c.ctx
}

// Map transforms the value to a new value of the same type
func (c Chain[T]) Map(f func(ctx context.Context, t T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, val: f(c.ctx, c.val)}
}

// Also triggers a side effect without changing the value
func (c Chain[T]) Also(effect func(ctx context.Context, t T)) Chain[T] {
	effect(c.ctx, c.val)
	return c
}

// AlsoIf triggers a side effect only when cond holds
func (c Chain[T]) AlsoIf(cond func(ctx context.Context, t T) bool,
	effect func(ctx context.Context, t T)) Chain[T] {

	if cond(c.ctx, c.val) {
		effect(c.ctx, c.val)
	}
	return c
}

// AlsoMut triggers a side effect with a mutable view of the value
func (c Chain[T]) AlsoMut(effect func(ctx context.Context, t *T)) Chain[T] {
	effect(c.ctx, &c.val)
	return c
}

// Finally collapses the chain to a final value
func (c Chain[T]) Finally(f func(ctx context.Context, t T) T) T {
	return f(c.ctx, c.val)
}

// Transform switches the chain to a value of a new type. It is a free
// function because Go methods cannot carry their own type parameters.
func Transform[In, Out any](c Chain[In], f func(ctx context.Context, in In) Out) Chain[Out] {
	return Chain[Out]{ctx: c.ctx, val: f(c.ctx, c.val)}
}
