package fileref

import (
	"fmt"
	"log/slog"

	"github.com/simonhull/fileref/host"
)

// Bridge turns host path objects into FileRefs.
//
// A Bridge holds no per-call state and is safe for concurrent use.
type Bridge struct {
	rt     host.Runtime
	logger *slog.Logger
	open   openFunc
}

// New returns a Bridge that decodes paths with rt.
func New(rt host.Runtime, opts ...Option) *Bridge {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	return &Bridge{
		rt:     rt,
		logger: options.logger,
		open:   options.open,
	}
}

var defaultBridge = New(host.Default())

// Make bridges obj with the process-wide interpreter. See Bridge.Make.
func Make(obj host.Object) *FileRef {
	return defaultBridge.Make(obj)
}

// Make opens the file named by obj with the Average read style.
//
// obj is decoded into the platform's native path encoding: UTF-16 on
// Windows, UTF-8 elsewhere. Make returns nil if obj is nil, if decoding
// fails, or if the file cannot be opened. A decode failure leaves no error
// pending on the runtime. Make never panics.
//
// The caller owns the returned FileRef and must Close it.
func (b *Bridge) Make(obj host.Object) (ref *FileRef) {
	if obj == nil {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			b.logger.Debug("bridge failed", "stage", "panic", "err", fmt.Sprint(r))
			ref = nil
		}
	}()

	name, release, err := nativePath(b.rt, obj)
	if err != nil {
		b.rt.ClearErr()
		b.logger.Debug("bridge failed", "stage", "decode", "type", obj.TypeName(), "err", err)
		return nil
	}
	defer release()

	ref, err = b.open(name, Average)
	if err != nil {
		b.logger.Debug("bridge failed", "stage", "open", "path", name, "err", err)
		return nil
	}
	return ref
}
