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

// Deferred returns an Iterator over the values returned by producer, which will be called at most once, when the
// iterator is first pulled (via Next or Peek). If the iterator is never pulled, producer will never be called.
func Deferred[T any](producer func() []T) *Iterator[T] {
	if producer == nil {
		panic(errors.New(`lazyseq.Deferred requires non-nil producer`))
	}
	var (
		values       []T
		materialized bool
	)
	return newIterator(func() (value T, ok bool) {
		if !materialized {
			values, materialized = producer(), true
			producer = nil
		}
		if len(values) == 0 {
			return
		}
		value, values = values[0], values[1:]
		return value, true
	}, nil)
}
