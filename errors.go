package fileref

import (
	"errors"
	"fmt"
)

// ErrClosed is returned when a FileRef is used after Close.
var ErrClosed = errors.New("fileref: handle is closed")

// InvalidReadStyleError indicates Open was given a ReadStyle outside
// Fast, Average and Accurate.
type InvalidReadStyleError struct {
	Style ReadStyle
}

func (e *InvalidReadStyleError) Error() string {
	return fmt.Sprintf("fileref: invalid read style %s", e.Style)
}
