// Package build provides version and build information for notifyctl.
// This package intentionally has no dependencies on other internal packages
// to avoid import cycles.
package build

import (
	"fmt"
	"runtime"
)

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}

// Info renders the version block printed by `notifyctl version`.
// Development builds carry a "(development build)" marker.
func Info() string {
	version := Version
	if IsDevBuild() {
		version += " (development build)"
	}
	return fmt.Sprintf("notifyctl version %s\nBuilt from commit: %s\nBuild date: %s\nGo version: %s\n",
		version, Commit, BuildDate, runtime.Version())
}
