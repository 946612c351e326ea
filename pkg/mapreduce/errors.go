package mapreduce

import (
	"errors"
	"fmt"
)

// ErrInputTooLarge is returned when the text exceeds the configured size limit.
var ErrInputTooLarge = errors.New("input too large")

// InputTooLargeError reports the size of the rejected input and the limit it
// exceeded. It matches ErrInputTooLarge with errors.Is.
type InputTooLargeError struct {
	Size  int
	Limit int
}

func (e *InputTooLargeError) Error() string {
	return fmt.Sprintf("input too large: %d bytes exceeds limit of %d bytes", e.Size, e.Limit)
}

func (e *InputTooLargeError) Is(target error) bool {
	return target == ErrInputTooLarge
}
