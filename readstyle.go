package fileref

import (
	"fmt"

	"github.com/simonhull/audiometa"
)

// ReadStyle controls how thoroughly audio properties are read when a file
// is opened.
type ReadStyle int

const (
	// Fast reads properties and tags but discards parse warnings.
	Fast ReadStyle = iota
	// Average is the lenient default: warnings are kept, artwork is lazy.
	Average
	// Accurate additionally loads embedded artwork while opening.
	Accurate
)

// String returns the read style name.
func (s ReadStyle) String() string {
	switch s {
	case Fast:
		return "fast"
	case Average:
		return "average"
	case Accurate:
		return "accurate"
	default:
		return fmt.Sprintf("ReadStyle(%d)", int(s))
	}
}

// options maps the style onto audiometa open options.
func (s ReadStyle) options() []audiometa.Option {
	switch s {
	case Fast:
		return []audiometa.Option{audiometa.WithIgnoreWarnings()}
	case Accurate:
		return []audiometa.Option{audiometa.WithArtworkPreload()}
	default:
		return nil
	}
}
