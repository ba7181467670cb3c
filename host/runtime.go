package host

import (
	"sync"
	"sync/atomic"
	"unicode/utf16"
	"unicode/utf8"
)

// Runtime is the host side of the bridge.
//
// The decode primitives return a buffer the caller must release. On failure
// they return an error and also leave it pending on the runtime until
// ClearErr is called.
type Runtime interface {
	// AsWideChar encodes a Str as UTF-16 code units.
	AsWideChar(obj Object) (*WideChars, error)

	// AsUTF8String encodes a Str as strict UTF-8.
	AsUTF8String(obj Object) (*UTF8String, error)

	// Err returns the pending error, or nil.
	Err() error

	// ClearErr discards the pending error.
	ClearErr()
}

// WideChars is a wide-character buffer produced by AsWideChar.
type WideChars struct {
	chars    []uint16
	released atomic.Bool
	owner    *Interpreter
}

// Chars returns the UTF-16 code units, without a terminating NUL. The slice
// must not be used after Free.
func (w *WideChars) Chars() []uint16 { return w.chars }

// Free releases the buffer. Calling Free again has no effect.
func (w *WideChars) Free() {
	if w.released.CompareAndSwap(false, true) {
		w.chars = nil
		w.owner.live.Add(-1)
	}
}

// UTF8String is an encoded byte string produced by AsUTF8String.
type UTF8String struct {
	data     []byte
	released atomic.Bool
	owner    *Interpreter
}

// Bytes returns the encoded path. The slice must not be used after Release.
func (u *UTF8String) Bytes() []byte { return u.data }

// Release drops the reference to the buffer. Calling Release again has no
// effect.
func (u *UTF8String) Release() {
	if u.released.CompareAndSwap(false, true) {
		u.data = nil
		u.owner.live.Add(-1)
	}
}

// Interpreter is the in-process Runtime.
//
// It is safe for concurrent use. The pending error is shared by all callers
// of one Interpreter.
type Interpreter struct {
	mu      sync.Mutex
	pending error
	live    atomic.Int64
}

var _ Runtime = (*Interpreter)(nil)

var defaultInterpreter = NewInterpreter()

// NewInterpreter returns an Interpreter with no pending error.
func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// Default returns the process-wide Interpreter.
func Default() *Interpreter {
	return defaultInterpreter
}

// AsWideChar implements Runtime.
//
// Code points above U+FFFF become surrogate pairs. Lone surrogates are
// passed through unchanged. An embedded NUL is refused because the result is
// used as a NUL-terminated native path.
func (in *Interpreter) AsWideChar(obj Object) (*WideChars, error) {
	s, err := in.str(obj)
	if err != nil {
		return nil, err
	}

	chars := make([]uint16, 0, len(s.runes))
	for i, r := range s.runes {
		switch {
		case r == 0:
			return nil, in.fail(&ValueError{Reason: "embedded null character"})
		case r < 0 || r > utf8.MaxRune:
			return nil, in.fail(&EncodeError{Encoding: "utf-16", Position: i, Rune: r, Reason: "character out of range"})
		case r > 0xFFFF:
			r1, r2 := utf16.EncodeRune(r)
			chars = append(chars, uint16(r1), uint16(r2))
		default:
			chars = append(chars, uint16(r))
		}
	}

	in.live.Add(1)
	return &WideChars{chars: chars, owner: in}, nil
}

// AsUTF8String implements Runtime.
func (in *Interpreter) AsUTF8String(obj Object) (*UTF8String, error) {
	s, err := in.str(obj)
	if err != nil {
		return nil, err
	}

	data := make([]byte, 0, len(s.runes))
	for i, r := range s.runes {
		if !utf8.ValidRune(r) {
			reason := "surrogates not allowed"
			if r < 0 || r > utf8.MaxRune {
				reason = "character out of range"
			}
			return nil, in.fail(&EncodeError{Encoding: "utf-8", Position: i, Rune: r, Reason: reason})
		}
		data = utf8.AppendRune(data, r)
	}

	in.live.Add(1)
	return &UTF8String{data: data, owner: in}, nil
}

// Err implements Runtime.
func (in *Interpreter) Err() error {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.pending
}

// ClearErr implements Runtime.
func (in *Interpreter) ClearErr() {
	in.mu.Lock()
	in.pending = nil
	in.mu.Unlock()
}

// Outstanding reports how many decode buffers have not been released.
func (in *Interpreter) Outstanding() int64 {
	return in.live.Load()
}

func (in *Interpreter) str(obj Object) (*Str, error) {
	s, ok := obj.(*Str)
	if !ok || s == nil {
		got := "None"
		if obj != nil && !ok {
			got = obj.TypeName()
		}
		return nil, in.fail(&TypeError{Want: "str", Got: got})
	}
	return s, nil
}

func (in *Interpreter) fail(err error) error {
	in.mu.Lock()
	in.pending = err
	in.mu.Unlock()
	return err
}
