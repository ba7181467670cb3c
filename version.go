package fileref

import "runtime"

// Version is the semantic version of the fileref module.
const Version = "0.1.0"

// VersionInfo contains detailed version information.
type VersionInfo struct {
	Version   string
	GitCommit string // set via ldflags at build time
	GoVersion string
}

// GetVersionInfo returns detailed version information.
//
//	go build -ldflags="-X github.com/simonhull/fileref.gitCommit=$(git rev-parse HEAD)"
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		GoVersion: runtime.Version(),
	}
}

var gitCommit = "unknown"
