package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/fileref"
)

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
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

// writeFLAC writes a FLAC with a STREAMINFO block and a VORBIS_COMMENT block
// holding comments ("KEY=value").
func writeFLAC(t *testing.T, name string, comments ...string) string {
	t.Helper()

	buf := &bytes.Buffer{}
	buf.WriteString("fLaC")

	// STREAMINFO: 4096-sample blocks, 44.1kHz, stereo, 16-bit
	binary.Write(buf, binary.BigEndian, uint32(34))
	binary.Write(buf, binary.BigEndian, uint16(4096))
	binary.Write(buf, binary.BigEndian, uint16(4096))
	buf.Write(make([]byte, 6))
	binary.Write(buf, binary.BigEndian, uint64(44100)<<44|uint64(1)<<41|uint64(15)<<36)
	buf.Write(make([]byte, 16))

	vc := &bytes.Buffer{}
	vendor := "fileref"
	binary.Write(vc, binary.LittleEndian, uint32(len(vendor)))
	vc.WriteString(vendor)
	binary.Write(vc, binary.LittleEndian, uint32(len(comments)))
	for _, c := range comments {
		binary.Write(vc, binary.LittleEndian, uint32(len(c)))
		vc.WriteString(c)
	}

	// last-block flag | type 4
	binary.Write(buf, binary.BigEndian, uint32(0x84)<<24|uint32(vc.Len()))
	buf.Write(vc.Bytes())

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(fileref.VersionInfo{Version: "1.2.3", GitCommit: "abc123", GoVersion: "go1.26.0"})
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_RequiresArgs(t *testing.T) {
	_, _, err := execute(t)

	assert.Error(t, err)
}

func TestRoot_SingleFile(t *testing.T) {
	path := writeM4B(t, "book.m4b")

	stdout, stderr, err := execute(t, path)
	require.NoError(t, err)
	assert.NotContains(t, stdout, "==>")
	assert.Empty(t, stderr)
}

func TestRoot_PrintsSortedPaddedTags(t *testing.T) {
	path := writeFLAC(t, "song.flac", "TITLE=Song", "ARTIST=B", "ALBUMARTIST=Z")

	stdout, stderr, err := execute(t, path)
	require.NoError(t, err)
	assert.Equal(t, "ALBUMARTIST = Z\nARTIST      = B\nTITLE       = Song\n", stdout)
	assert.Empty(t, stderr)
}

func TestRoot_TagsUnderHeaders(t *testing.T) {
	flac := writeFLAC(t, "song.flac", "GENRE=Rock")
	m4b := writeM4B(t, "book.m4b")

	stdout, _, err := execute(t, flac, m4b)
	require.NoError(t, err)
	assert.Equal(t, "==> "+flac+" <==\nGENRE = Rock\n\n==> "+m4b+" <==\n", stdout)
}

func TestRoot_Version(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "printtags version 1.2.3 (commit abc123, go1.26.0)\n", stdout)
}

func TestRoot_MultipleFilesHaveHeaders(t *testing.T) {
	first := writeM4B(t, "one.m4b")
	second := writeM4B(t, "two.m4b")

	stdout, _, err := execute(t, first, second)
	require.NoError(t, err)
	assert.Contains(t, stdout, "==> "+first+" <==\n")
	assert.Contains(t, stdout, "\n\n==> "+second+" <==\n")
}

func TestRoot_MissingFile(t *testing.T) {
	valid := writeM4B(t, "one.m4b")
	missing := filepath.Join(t.TempDir(), "missing.mp3")

	stdout, stderr, err := execute(t, valid, missing)
	require.Error(t, err)
	assert.EqualError(t, err, "1 of 2 files could not be opened")
	assert.Contains(t, stdout, "==> "+valid+" <==")
	assert.Contains(t, stderr, "printtags: cannot open "+missing)
}

func TestRoot_VerboseLogsReason(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.mp3")

	_, stderr, err := execute(t, "--verbose", missing)
	require.Error(t, err)
	assert.Contains(t, stderr, "stage=open")
}

func TestRoot_QuietByDefault(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.mp3")

	_, stderr, err := execute(t, missing)
	require.Error(t, err)
	assert.NotContains(t, stderr, "stage=")
}
