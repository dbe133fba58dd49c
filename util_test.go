package lazyseq

import (
	"bytes"
	"fmt"
	"runtime"
	"runtime/pprof"
	"testing"
	"time"
)

func waitNumGoroutines(maxWait time.Duration, fn func(n int) bool) (n int) {
	const minWait = time.Millisecond * 10
	if maxWait < minWait {
		maxWait = minWait
	}
	count := int(maxWait / minWait)
	maxWait /= time.Duration(count)
	n = runtime.NumGoroutine()
	for i := 0; i < count && !fn(n); i++ {
		time.Sleep(maxWait)
		runtime.GC()
		n = runtime.NumGoroutine()
	}
	return
}

// checkNumGoroutines should be called at the start of the test, like:
//
//	t.Cleanup(checkNumGoroutines(t))
func checkNumGoroutines(t interface {
	Helper()
	Errorf(format string, values ...any)
}) func() {
	before := runtime.NumGoroutine()
	return func() {
		if t != nil {
			t.Helper()
		}
		after := waitNumGoroutines(time.Second, func(n int) bool { return n <= before })
		if after > before {
			var b bytes.Buffer
			_ = pprof.Lookup("goroutine").WriteTo(&b, 1)
			testingErrorfOrPanic(t, "%s\n\nstarted with %d goroutines finished with %d", b.Bytes(), before, after)
		}
	}
}

func testingErrorfOrPanic(t interface {
	Helper()
	Errorf(format string, values ...any)
}, format string, values ...interface{}) {
	if t == nil {
		panic(fmt.Errorf(format, values...))
	}
	t.Helper()
	t.Errorf(format, values...)
}

// expectPanic calls fn, failing t unless it panics with an error or string whose message is want.
func expectPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		var got string
		switch r := r.(type) {
		case error:
			got = r.Error()
		case string:
			got = r
		default:
			t.Fatalf("expected panic %q, got %v", want, r)
		}
		if got != want {
			t.Errorf("expected panic %q, got %q", want, got)
		}
	}()
	fn()
}

// ints returns 1..n
func ints(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i + 1
	}
	return values
}

// nested builds a sequence of sequences, one per slice.
func nested(values ...[]int) *Iterator[Sequence[int]] {
	inners := make([]Sequence[int], len(values))
	for i, v := range values {
		inners[i] = FromSlice(v)
	}
	return FromSlice(inners)
}
