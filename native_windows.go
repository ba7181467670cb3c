//go:build windows

package fileref

import (
	"golang.org/x/sys/windows"

	"github.com/simonhull/fileref/host"
)

// nativePath decodes obj to a wide-character path. The returned release
// func frees the decode buffer.
func nativePath(rt host.Runtime, obj host.Object) (string, func(), error) {
	wide, err := rt.AsWideChar(obj)
	if err != nil {
		return "", nil, err
	}
	return windows.UTF16ToString(wide.Chars()), wide.Free, nil
}
