package fileref

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// writeM4B writes a minimal M4B (ftyp + empty moov) named name into a
// temporary directory and returns its path.
func writeM4B(t *testing.T, name string) string {
	t.Helper()

	buf := &bytes.Buffer{}

	ftyp := &bytes.Buffer{}
	ftyp.WriteString("M4B ")
	binary.Write(ftyp, binary.BigEndian, uint32(0))
	ftyp.WriteString("M4B ")

	binary.Write(buf, binary.BigEndian, uint32(8+ftyp.Len()))
	buf.WriteString("ftyp")
	buf.Write(ftyp.Bytes())

	binary.Write(buf, binary.BigEndian, uint32(8))
	buf.WriteString("moov")

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// withOpener replaces the handle constructor used by a Bridge.
func withOpener(fn openFunc) Option {
	return func(o *bridgeOptions) {
		o.open = fn
	}
}
