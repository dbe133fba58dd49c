/*
   Copyright 2026 Joseph Cumines

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package lazyseq

import (
	"errors"
)

// Map lazily transforms each element of source, calling fn exactly once per element pulled.
func Map[T, U any](source Sequence[T], fn func(T) U) *Iterator[U] {
	if source == nil || fn == nil {
		panic(errors.New(`lazyseq.Map invalid input`))
	}
	return Generate(func(emit func(U) bool) {
		for {
			value, err := source.Next()
			if err != nil || !emit(fn(value)) {
				return
			}
		}
	})
}

// Touch passes through each element of source, after calling fn with it. This is useful for things like logging,
// recording interim values, or modifying the state of the element (e.g. if it's a pointer).
func Touch[T any](source Sequence[T], fn func(T)) *Iterator[T] {
	if source == nil || fn == nil {
		panic(errors.New(`lazyseq.Touch invalid input`))
	}
	return Generate(func(emit func(T) bool) {
		for {
			value, err := source.Next()
			if err != nil {
				return
			}
			fn(value)
			if !emit(value) {
				return
			}
		}
	})
}

// Select yields only the elements of source that satisfy pred. Note that it will never yield (or return) if
// source is infinite and no further elements match.
func Select[T any](source Sequence[T], pred func(T) bool) *Iterator[T] {
	if source == nil || pred == nil {
		panic(errors.New(`lazyseq.Select invalid input`))
	}
	return Generate(func(emit func(T) bool) {
		for {
			value, err := source.Next()
			if err != nil {
				return
			}
			if pred(value) && !emit(value) {
				return
			}
		}
	})
}

// Reject yields only the elements of source that do not satisfy pred, it is the inverse of Select.
func Reject[T any](source Sequence[T], pred func(T) bool) *Iterator[T] {
	if source == nil || pred == nil {
		panic(errors.New(`lazyseq.Reject invalid input`))
	}
	return Select(source, func(value T) bool { return !pred(value) })
}

// StartWhen discards elements until pred is satisfied, yielding that element, and all that follow.
func StartWhen[T any](source Sequence[T], pred func(T) bool) *Iterator[T] {
	if source == nil || pred == nil {
		panic(errors.New(`lazyseq.StartWhen invalid input`))
	}
	return Generate(func(emit func(T) bool) {
		for {
			value, err := source.Peek()
			if err != nil {
				return
			}
			if pred(value) {
				break
			}
			_, _ = source.Next()
		}
		drain(source, emit)
	})
}

// StartAfter discards elements until pred is satisfied, including that element, then yields all that follow.
func StartAfter[T any](source Sequence[T], pred func(T) bool) *Iterator[T] {
	if source == nil || pred == nil {
		panic(errors.New(`lazyseq.StartAfter invalid input`))
	}
	return Generate(func(emit func(T) bool) {
		for {
			value, err := source.Next()
			if err != nil {
				return
			}
			if pred(value) {
				break
			}
		}
		drain(source, emit)
	})
}

// DoWhile yields elements while they satisfy pred, stopping at the first that doesn't, which will be left
// unconsumed in source.
func DoWhile[T any](source Sequence[T], pred func(T) bool) *Iterator[T] {
	if source == nil || pred == nil {
		panic(errors.New(`lazyseq.DoWhile invalid input`))
	}
	return Generate(func(emit func(T) bool) {
		for {
			value, err := source.Peek()
			if err != nil || !pred(value) {
				return
			}
			_, _ = source.Next()
			if !emit(value) {
				return
			}
		}
	})
}

// DoUntil yields elements until one satisfies pred, which will be left unconsumed in source.
func DoUntil[T any](source Sequence[T], pred func(T) bool) *Iterator[T] {
	if source == nil || pred == nil {
		panic(errors.New(`lazyseq.DoUntil invalid input`))
	}
	return DoWhile(source, func(value T) bool { return !pred(value) })
}

// StopBefore is an alias of DoUntil.
func StopBefore[T any](source Sequence[T], pred func(T) bool) *Iterator[T] {
	return DoUntil(source, pred)
}

// StopWhen yields elements up to and including the first that satisfies pred. Each element is yielded before it
// is consumed from source.
func StopWhen[T any](source Sequence[T], pred func(T) bool) *Iterator[T] {
	if source == nil || pred == nil {
		panic(errors.New(`lazyseq.StopWhen invalid input`))
	}
	return Generate(func(emit func(T) bool) {
		for {
			value, err := source.Peek()
			if err != nil || !emit(value) {
				return
			}
			_, _ = source.Next()
			if pred(value) {
				return
			}
		}
	})
}

// Skip discards up to n elements, then yields the remainder. It is not an error for source to have fewer than
// n elements.
func Skip[T any](source Sequence[T], n int) *Iterator[T] {
	if source == nil {
		panic(errors.New(`lazyseq.Skip invalid input`))
	}
	return Generate(func(emit func(T) bool) {
		for ; n > 0; n-- {
			if _, err := source.Next(); err != nil {
				return
			}
		}
		drain(source, emit)
	})
}
