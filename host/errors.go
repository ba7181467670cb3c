package host

import "fmt"

// EncodeError indicates a Str holds a code point the target encoding cannot
// represent.
type EncodeError struct {
	Encoding string // "utf-8" or "utf-16"
	Position int    // Index of the offending code point
	Rune     rune
	Reason   string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%s codec can't encode character U+%04X in position %d: %s",
		e.Encoding, e.Rune, e.Position, e.Reason)
}

// TypeError indicates a decode primitive was handed an object of the wrong
// host type.
type TypeError struct {
	Want string
	Got  string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("bad argument type: expected %s, got %s", e.Want, e.Got)
}

// ValueError indicates an object of the right type with contents the
// primitive refuses, such as an embedded NUL in a wide-character path.
type ValueError struct {
	Reason string
}

func (e *ValueError) Error() string {
	return e.Reason
}
