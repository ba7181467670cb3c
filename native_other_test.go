//go:build !windows

package fileref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/fileref/host"
)

func TestNativePath_UTF8(t *testing.T) {
	in := host.NewInterpreter()

	name, release, err := nativePath(in, host.NewStr("/tmp/testöü.flac"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/testöü.flac", name)
	assert.EqualValues(t, 1, in.Outstanding())

	release()
	assert.EqualValues(t, 0, in.Outstanding())
}

func TestNativePath_EmbeddedNULPassesThrough(t *testing.T) {
	in := host.NewInterpreter()

	// UTF-8 encoding accepts NUL; the open later rejects the path.
	name, release, err := nativePath(in, host.NewStr("a\x00b"))
	require.NoError(t, err)
	defer release()
	assert.Equal(t, "a\x00b", name)
}

func TestNativePath_Surrogate(t *testing.T) {
	in := host.NewInterpreter()

	_, release, err := nativePath(in, host.NewStr("bad\xff"))
	require.Error(t, err)
	assert.Nil(t, release)
	assert.Error(t, in.Err())
}
