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

// Package lazyseq implements lazy pull sequences, with lookahead, and a family of combinators built on them.
//
// A Sequence is pulled one element at a time, via Next, and may be inspected without consuming, via Peek. Once a
// sequence reports ErrExhausted it will continue to do so. Combinators such as Map, Weave and Diagonalize own the
// sequences they are given, and pull from them only as their own output is pulled, which means most of them are
// safe to use with infinite sources.
//
// Nothing in this package is safe for concurrent use. Each sequence must have exactly one consumer.
package lazyseq

import (
	"errors"
	"iter"
	"math/rand/v2"
)

const (
	// DefaultPoolSize is the number of elements Randomly buffers, by default.
	DefaultPoolSize = 8
)

const (
	lookaheadEmpty lookahead = iota
	lookaheadBuffered
	lookaheadExhausted
)

var (
	// ErrExhausted is returned by Sequence.Next and Sequence.Peek when no elements remain. It is sticky: every
	// subsequent call must also return it.
	ErrExhausted = errors.New(`lazyseq: sequence exhausted`)
)

type (
	// Sequence models a (possibly infinite) ordered stream of values, consumed by pulling.
	//
	// Implementations must return ErrExhausted (and a zero value) once the stream has ended, and must keep doing so.
	// The package functions HasNext, IsEmpty, Grab and Collect provide the derived operations for any Sequence.
	Sequence[T any] interface {
		// Next returns the next element and advances, or ErrExhausted.
		Next() (T, error)
		// Peek returns the next element without advancing, or ErrExhausted. Repeated calls return the same value.
		Peek() (T, error)
	}

	// Enumerable is implemented by containers that can be coerced into a Sequence, see Ensure.
	Enumerable[T any] interface {
		All() iter.Seq[T]
	}

	// Iterator is the Sequence implementation returned by this package, it wraps a pull function with a single
	// element lookahead cache. It must not be copied, and must not be used concurrently.
	Iterator[T any] struct {
		pull  func() (T, bool) // pull yields the next value from the underlying source, nil once exhausted
		stop  func()           // stop releases the underlying source (optional)
		value T                // value is the buffered lookahead, valid if state is lookaheadBuffered
		state lookahead
	}

	// RandomlyOption models a configuration option for Randomly.
	RandomlyOption func(config *randomlyConfig)

	randomlyConfig struct {
		size int
		rand *rand.Rand
	}

	lookahead uint8
)

var (
	// compile time assertions

	_ Sequence[any]   = (*Iterator[any])(nil)
	_ Enumerable[any] = (*Iterator[any])(nil)
)
