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
	"iter"
	"runtime"
)

// Generate builds an Iterator from a producer, which will be run as a coroutine, suspending at each call to emit,
// until the next call to Next or Peek. Local state captured by producer persists across suspensions. The producer
// is not started until the first pull, and the iterator is exhausted once the producer returns.
//
// Emit returns false once the iterator has been stopped, after which producer MUST return. A producer that may run
// forever must therefore check the result of every emit. A panic will occur if producer is nil.
//
// Iterators that are abandoned prior to exhaustion will be stopped once they are garbage collected, though Stop
// may be used to release them deterministically. A stop triggered by garbage collection happens on a runtime
// goroutine, meaning anything producer does after emit returns false (deferred calls, for example) will run
// concurrently with the rest of the program. Producers with such cleanup must synchronise any state it shares with
// the consumer, or be stopped explicitly.
func Generate[T any](producer func(emit func(T) bool)) *Iterator[T] {
	if producer == nil {
		panic(errors.New(`lazyseq.Generate requires non-nil producer`))
	}
	next, stop := iter.Pull(iter.Seq[T](producer))
	x := newIterator(next, stop)
	runtime.AddCleanup(x, func(stop func()) { stop() }, stop)
	return x
}

func newIterator[T any](pull func() (T, bool), stop func()) *Iterator[T] {
	return &Iterator[T]{pull: pull, stop: stop}
}

// Next implements Sequence.Next.
func (x *Iterator[T]) Next() (value T, err error) {
	if err = x.fill(); err == nil {
		value = x.value
		x.value, x.state = *new(T), lookaheadEmpty
	}
	return
}

// Peek implements Sequence.Peek. It will advance the underlying source by at most one element, to fill the
// lookahead cache.
func (x *Iterator[T]) Peek() (value T, err error) {
	if err = x.fill(); err == nil {
		value = x.value
	}
	return
}

// HasNext returns true if Next would return a value.
func (x *Iterator[T]) HasNext() bool { return HasNext[T](x) }

// IsEmpty returns true if the receiver is exhausted.
func (x *Iterator[T]) IsEmpty() bool { return IsEmpty[T](x) }

// Grab pulls up to n elements, see the Grab function.
func (x *Iterator[T]) Grab(n int) []T { return Grab[T](x, n) }

// All returns an iter.Seq that consumes the receiver, see Values.
func (x *Iterator[T]) All() iter.Seq[T] { return Values[T](x) }

// Stop exhausts the receiver, releasing the underlying source. Any buffered lookahead is discarded. It is safe to
// call Stop more than once.
func (x *Iterator[T]) Stop() {
	if x.state == lookaheadExhausted {
		return
	}
	x.value = *new(T)
	x.release()
}

func (x *Iterator[T]) fill() error {
	switch x.state {
	case lookaheadBuffered:
		return nil
	case lookaheadExhausted:
		return ErrExhausted
	}
	if x.pull == nil {
		x.release()
		return ErrExhausted
	}
	value, ok := x.pull()
	if !ok {
		x.release()
		return ErrExhausted
	}
	x.value, x.state = value, lookaheadBuffered
	return nil
}

func (x *Iterator[T]) release() {
	x.state = lookaheadExhausted
	x.pull = nil
	if stop := x.stop; stop != nil {
		x.stop = nil
		stop()
	}
}

// HasNext returns true if source has at least one more element, populating the lookahead of source if necessary.
func HasNext[T any](source Sequence[T]) bool {
	_, err := source.Peek()
	return err == nil
}

// IsEmpty returns true if source is exhausted, it is the inverse of HasNext.
func IsEmpty[T any](source Sequence[T]) bool {
	return !HasNext(source)
}

// Grab eagerly pulls up to n elements from source, in order, returning fewer if source is exhausted first. It is
// similar to taking n elements, except that source is actually advanced.
func Grab[T any](source Sequence[T], n int) []T {
	values := make([]T, 0)
	for ; n > 0; n-- {
		value, err := source.Next()
		if err != nil {
			break
		}
		values = append(values, value)
	}
	return values
}

// Collect drains source into a slice, it will never return if source is infinite.
func Collect[T any](source Sequence[T]) []T {
	values := make([]T, 0)
	for {
		value, err := source.Next()
		if err != nil {
			return values
		}
		values = append(values, value)
	}
}

// drain emits every remaining element of source, returning false if emit did.
func drain[T any](source Sequence[T], emit func(T) bool) bool {
	for {
		value, err := source.Next()
		if err != nil {
			return true
		}
		if !emit(value) {
			return false
		}
	}
}
