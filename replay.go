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
	"math"

	"golang.org/x/exp/constraints"
)

// Cycle yields the elements of source, recording them as they pass, then repeats the recorded elements
// indefinitely. Nothing will be repeated if source is empty. An infinite source is passed through unchanged.
func Cycle[T any](source Sequence[T]) *Iterator[T] {
	if source == nil {
		panic(errors.New(`lazyseq.Cycle invalid input`))
	}
	return Generate(func(emit func(T) bool) {
		values, ok := record(source, emit)
		if !ok || len(values) == 0 {
			return
		}
		for {
			if !replay(values, emit) {
				return
			}
		}
	})
}

// Repeat yields the elements of source k times, where k is truncated towards zero, so 2.2 is treated as 2. Nothing
// is yielded if k is less than 1. As with Cycle, the elements are recorded during the first pass.
func Repeat[T any, N constraints.Integer | constraints.Float](source Sequence[T], k N) *Iterator[T] {
	if source == nil {
		panic(errors.New(`lazyseq.Repeat invalid input`))
	}
	count := repeatCount(k)
	return Generate(func(emit func(T) bool) {
		if count < 1 {
			return
		}
		values, ok := record(source, emit)
		if !ok {
			return
		}
		for i := 1; i < count; i++ {
			if !replay(values, emit) {
				return
			}
		}
	})
}

func repeatCount[N constraints.Integer | constraints.Float](k N) int {
	// NaN fails every comparison
	f := float64(k)
	if !(f >= 1) {
		return 0
	}
	if f >= math.MaxInt {
		return math.MaxInt
	}
	return int(f)
}

// record drains source, emitting and storing each element, returning false if emit did.
func record[T any](source Sequence[T], emit func(T) bool) ([]T, bool) {
	var values []T
	ok := drain(source, func(value T) bool {
		values = append(values, value)
		return emit(value)
	})
	return values, ok
}

func replay[T any](values []T, emit func(T) bool) bool {
	for _, value := range values {
		if !emit(value) {
			return false
		}
	}
	return true
}
