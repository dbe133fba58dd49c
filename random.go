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
	"math/rand/v2"
)

// Randomly yields the elements of source in a random order, lazily, using a pool of buffered elements (see
// DefaultPoolSize and RandomlyPoolSize). Each step yields a random element from the pool, replacing it with the
// next from source, and once source is exhausted the pool is yielded in a random order. This is not as random as
// a true shuffle, since an element can't be moved earlier than the pool size allows, but it is safe for use with
// infinite sources.
//
// The random source may be configured using RandomlySource, otherwise a randomly seeded PCG will be used.
func Randomly[T any](source Sequence[T], options ...RandomlyOption) *Iterator[T] {
	if source == nil {
		panic(errors.New(`lazyseq.Randomly invalid input`))
	}
	config := randomlyConfig{size: DefaultPoolSize}
	for _, option := range options {
		option(&config)
	}
	if config.rand == nil {
		config.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return Generate(func(emit func(T) bool) {
		pool := Grab(source, config.size)
		for HasNext(source) {
			index := config.rand.IntN(len(pool))
			if !emit(pool[index]) {
				return
			}
			pool[index], _ = source.Next()
		}
		config.rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		replay(pool, emit)
	})
}

// RandomlyPoolSize returns a RandomlyOption that sets the number of elements buffered, values less than 1 will
// be treated as 1, which disables reordering.
func RandomlyPoolSize(n int) RandomlyOption {
	return func(config *randomlyConfig) {
		config.size = max(n, 1)
	}
}

// RandomlySource returns a RandomlyOption that sets the random source, which is useful to seed it. The source
// will be used exclusively by the returned iterator, and must not be shared with anything else that may use it
// concurrently. A nil r will be ignored.
func RandomlySource(r *rand.Rand) RandomlyOption {
	return func(config *randomlyConfig) {
		if r != nil {
			config.rand = r
		}
	}
}
