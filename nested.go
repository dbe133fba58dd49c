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

// Cons concatenates the elements of each of the sequences provided by outer, in order. An infinite inner sequence
// will prevent any that follow it from being reached.
func Cons[T any](outer Sequence[Sequence[T]]) *Iterator[T] {
	if outer == nil {
		panic(errors.New(`lazyseq.Cons invalid input`))
	}
	return Generate(func(emit func(T) bool) {
		for {
			inner, err := outer.Next()
			if err != nil {
				return
			}
			if inner != nil && !drain(inner, emit) {
				return
			}
		}
	})
}

// Weave is similar to Cons, but takes the first element from each sequence, then the second, etc, dropping each
// sequence once it is exhausted. It is useful for a finite number of sequences, that may each be infinite. The first
// round admits one sequence from outer per element, so an infinite outer yields the first element of each sequence,
// and the second round is never reached.
func Weave[T any](outer Sequence[Sequence[T]]) *Iterator[T] {
	if outer == nil {
		panic(errors.New(`lazyseq.Weave invalid input`))
	}
	return Generate(func(emit func(T) bool) {
		var active []Sequence[T]
		for {
			inner, err := outer.Next()
			if err != nil {
				break
			}
			if inner == nil {
				continue
			}
			value, err := inner.Next()
			if err != nil {
				continue
			}
			active = append(active, inner)
			if !emit(value) {
				return
			}
		}
		for len(active) != 0 {
			var ok bool
			if active, ok = weaveRound(active, emit); !ok {
				return
			}
		}
	})
}

// Diagonalize enumerates the elements of a (possibly infinite) number of (possibly infinite) sequences, using
// Cantor's diagonalization technique. Each round admits the next sequence from outer, at the front of the
// rotation, then takes one element from each admitted sequence. Every element of every sequence is therefore
// reached after a finite number of pulls.
func Diagonalize[T any](outer Sequence[Sequence[T]]) *Iterator[T] {
	if outer == nil {
		panic(errors.New(`lazyseq.Diagonalize invalid input`))
	}
	return Generate(func(emit func(T) bool) {
		var active []Sequence[T]
		for {
			inner, err := outer.Next()
			if err != nil {
				break
			}
			active = append(active, nil)
			copy(active[1:], active)
			active[0] = inner
			var ok bool
			if active, ok = weaveRound(active, emit); !ok {
				return
			}
		}
		for len(active) != 0 {
			var ok bool
			if active, ok = weaveRound(active, emit); !ok {
				return
			}
		}
	})
}

// weaveRound emits one element from each sequence in active, filtering exhausted sequences in place, and
// returning false if emit did.
func weaveRound[T any](active []Sequence[T], emit func(T) bool) ([]Sequence[T], bool) {
	remaining := active[:0]
	for _, inner := range active {
		if inner == nil {
			continue
		}
		value, err := inner.Next()
		if err != nil {
			continue
		}
		remaining = append(remaining, inner)
		if !emit(value) {
			return nil, false
		}
	}
	clear(active[len(remaining):])
	return remaining, true
}

// Transpose zips the sequences provided by outer, yielding groups with one element from each, in order. It stops
// as soon as any sequence is exhausted, discarding any partial group. Note that outer will be collected up front,
// and that nothing will be yielded if it is empty.
func Transpose[T any](outer Sequence[Sequence[T]]) *Iterator[[]T] {
	if outer == nil {
		panic(errors.New(`lazyseq.Transpose invalid input`))
	}
	return Generate(func(emit func([]T) bool) {
		inners := Collect(outer)
		if len(inners) == 0 {
			return
		}
		for _, inner := range inners {
			if inner == nil || IsEmpty(inner) {
				return
			}
		}
		for {
			group := make([]T, len(inners))
			for i, inner := range inners {
				value, err := inner.Next()
				if err != nil {
					return
				}
				group[i] = value
			}
			if !emit(group) {
				return
			}
		}
	})
}
