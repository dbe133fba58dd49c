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
	"fmt"
	"iter"
)

// Ensure coerces source into a Sequence, returning it as-is if it already is one, otherwise a new Sequence will be
// returned, positioned at the start of source. Supported sources are Sequence[T], Enumerable[T], iter.Seq[T] (or
// the equivalent unnamed func type), []T, and channels of T. A panic will occur for any other type, including nil.
func Ensure[T any](source any) Sequence[T] {
	switch source := source.(type) {
	case Sequence[T]:
		return source
	case Enumerable[T]:
		return FromSeq(source.All())
	case iter.Seq[T]:
		return FromSeq[T](source)
	case func(yield func(T) bool):
		return FromSeq[T](source)
	case []T:
		return FromSlice(source)
	case <-chan T:
		return FromChannel[T](source)
	case chan T:
		return FromChannel[T](source)
	default:
		panic(fmt.Errorf(`lazyseq.Ensure unsupported source: %T`, source))
	}
}

// FromSlice returns a new Iterator over values, which must not be modified while the iterator is in use.
func FromSlice[T any](values []T) *Iterator[T] {
	return newIterator(func() (value T, ok bool) {
		if len(values) == 0 {
			return
		}
		value, values = values[0], values[1:]
		return value, true
	}, nil)
}

// Of returns a new Iterator over the provided values.
func Of[T any](values ...T) *Iterator[T] {
	return FromSlice(values)
}

// Empty returns an Iterator that is already exhausted. It is equivalent to new(Iterator[T]).
func Empty[T any]() *Iterator[T] {
	return new(Iterator[T])
}

// FromSeq returns a new Iterator that pulls from seq, see also Generate. A panic will occur if seq is nil.
func FromSeq[T any](seq iter.Seq[T]) *Iterator[T] {
	if seq == nil {
		panic(errors.New(`lazyseq.FromSeq requires non-nil seq`))
	}
	return Generate(seq)
}

// FromChannel returns a new Iterator that receives from ch, which will be exhausted once ch is closed. Note that
// pulling will block until a value is available. A panic will occur if ch is nil.
func FromChannel[T any](ch <-chan T) *Iterator[T] {
	if ch == nil {
		panic(errors.New(`lazyseq.FromChannel requires non-nil ch`))
	}
	return newIterator(func() (value T, ok bool) {
		value, ok = <-ch
		return
	}, nil)
}
