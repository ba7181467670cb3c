//go:build !windows

package fileref

import "github.com/simonhull/fileref/host"

// nativePath decodes obj to a UTF-8 byte path. The returned release func
// drops the encoded bytes.
func nativePath(rt host.Runtime, obj host.Object) (string, func(), error) {
	utf8, err := rt.AsUTF8String(obj)
	if err != nil {
		return "", nil, err
	}
	return string(utf8.Bytes()), utf8.Release, nil
}
