package fileref

import "log/slog"

// Option configures a Bridge.
//
// Example:
//
//	b := fileref.New(host.Default(),
//	    fileref.WithLogger(slog.Default()),
//	)
type Option func(*bridgeOptions)

type bridgeOptions struct {
	logger *slog.Logger
	open   openFunc
}

// openFunc constructs a handle from a native path.
type openFunc func(path string, style ReadStyle) (*FileRef, error)

func defaultOptions() *bridgeOptions {
	return &bridgeOptions{
		logger: slog.New(slog.DiscardHandler),
		open:   Open,
	}
}

// WithLogger sets the logger that receives the reason for every failed
// bridge call, at debug level.
//
// By default nothing is logged: a failed call only yields a nil FileRef.
func WithLogger(logger *slog.Logger) Option {
	return func(o *bridgeOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
