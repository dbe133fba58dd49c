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

// Package integers provides infinite sequences of integers, built using package lazyseq.
package integers

import (
	lazyseq "github.com/joeycumines/go-lazyseq"
)

// Positives returns 1, 2, 3, ...
func Positives() *lazyseq.Iterator[int] {
	return from(1)
}

// NonNegatives returns 0, 1, 2, ...
func NonNegatives() *lazyseq.Iterator[int] {
	return from(0)
}

// Negatives returns -1, -2, -3, ...
func Negatives() *lazyseq.Iterator[int] {
	return lazyseq.Map(Positives(), negate)
}

// NonPositives returns 0, -1, -2, ...
func NonPositives() *lazyseq.Iterator[int] {
	return lazyseq.Map(NonNegatives(), negate)
}

// All returns every integer, alternating sign, i.e. 0, 1, -1, 2, -2, ...
func All() *lazyseq.Iterator[int] {
	return lazyseq.Cons[int](lazyseq.Of[lazyseq.Sequence[int]](
		lazyseq.Of(0),
		lazyseq.Cons[int](lazyseq.Map(Positives(), func(v int) lazyseq.Sequence[int] {
			return lazyseq.Of(v, -v)
		})),
	))
}

func from(start int) *lazyseq.Iterator[int] {
	return lazyseq.Generate(func(emit func(int) bool) {
		for v := start; emit(v); v++ {
		}
	})
}

func negate(v int) int { return -v }
