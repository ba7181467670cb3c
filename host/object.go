// Package host models the runtime that owns path values handed to the
// bridge: opaque objects, the decode primitives that turn them into native
// path buffers, and the runtime's pending-error indicator.
package host

import (
	"strings"
	"unicode/utf8"
)

// Object is an opaque value owned by the host runtime.
//
// A nil Object means the caller supplied no value at all.
type Object interface {
	// TypeName reports the host type of the value ("str", "bytes").
	TypeName() string
}

// surrogateEscape is the base code point for bytes that are not valid UTF-8.
// Byte b decodes to U+DC00+b, so 0x80..0xFF land in U+DC80..U+DCFF.
const surrogateEscape = 0xDC00

// Str is a host text value: a sequence of code points.
//
// Unlike a Go string, a Str can hold lone surrogates. They appear when the
// runtime decodes OS bytes that are not valid UTF-8, and no strict native
// encoding can represent them.
type Str struct {
	runes []rune
}

// NewStr decodes s into a Str.
//
// Each byte of an invalid UTF-8 sequence is kept as the lone surrogate
// U+DC80..U+DCFF, so undecodable file names survive the round trip into the
// runtime.
func NewStr(s string) *Str {
	runes := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			r = surrogateEscape + rune(s[i])
		}
		runes = append(runes, r)
		i += size
	}
	return &Str{runes: runes}
}

// FromRunes builds a Str from arbitrary code points.
func FromRunes(runes []rune) *Str {
	return &Str{runes: append([]rune(nil), runes...)}
}

// TypeName implements Object.
func (s *Str) TypeName() string { return "str" }

// Len returns the number of code points.
func (s *Str) Len() int {
	if s == nil {
		return 0
	}
	return len(s.runes)
}

// String renders s for display. Surrogates are shown as U+FFFD.
func (s *Str) String() string {
	if s == nil {
		return ""
	}
	var b strings.Builder
	for _, r := range s.runes {
		b.WriteRune(r)
	}
	return b.String()
}

// Bytes is a host byte string. The decode primitives reject it: a path must
// be handed over as text.
type Bytes struct {
	data []byte
}

// NewBytes copies b into a Bytes.
func NewBytes(b []byte) *Bytes {
	return &Bytes{data: append([]byte(nil), b...)}
}

// TypeName implements Object.
func (b *Bytes) TypeName() string { return "bytes" }
