package lazyseq

import (
	"errors"

	"github.com/rs/zerolog"
)

// Trace passes through each element of source, logging it at debug level with the given message, as fields
// "index" (the position in the sequence, from 0) and "value".
func Trace[T any](source Sequence[T], logger zerolog.Logger, message string) *Iterator[T] {
	if source == nil {
		panic(errors.New(`lazyseq.Trace invalid input`))
	}
	var index int
	return Touch(source, func(value T) {
		logger.Debug().
			Int("index", index).
			Interface("value", value).
			Msg(message)
		index++
	})
}
