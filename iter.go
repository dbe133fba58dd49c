package lazyseq

import (
	"context"
	"errors"
	"iter"
)

// Seq provides a sequence of values from the given [Sequence], which ends cleanly once source is exhausted. The
// context is checked prior to each pull, and if it has an error, that error will be yielded once, with a zero
// value, as the final pair. Any error from source other than [ErrExhausted] is yielded in the same way.
func Seq[T any](ctx context.Context, source Sequence[T]) iter.Seq2[T, error] {
	if ctx == nil {
		panic("lazyseq.Seq requires non-nil ctx")
	}
	if source == nil {
		panic("lazyseq.Seq requires non-nil source")
	}
	return func(yield func(T, error) bool) {
		for {
			if err := ctx.Err(); err != nil {
				yield(*new(T), err)
				return
			}
			value, err := source.Next()
			if err != nil {
				if !errors.Is(err, ErrExhausted) {
					yield(*new(T), err)
				}
				return
			}
			if !yield(value, nil) {
				return
			}
		}
	}
}

// Values provides a sequence of values from the given [Sequence], consuming it.
func Values[T any](source Sequence[T]) iter.Seq[T] {
	if source == nil {
		panic("lazyseq.Values requires non-nil source")
	}
	return func(yield func(T) bool) {
		drain(source, yield)
	}
}
