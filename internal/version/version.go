// Package version exposes the build version of cordovagen.
package version

// version is overridden at build time with
// -ldflags "-X github.com/indaco/cordovagen/internal/version.version=1.2.3".
var version = "dev"

// GetVersion returns the build version.
func GetVersion() string {
	return version
}
