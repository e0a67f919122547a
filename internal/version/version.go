// Package version holds the build version, overridden at release time with
// -ldflags "-X github.com/paseo-app/paseo-cli/internal/version.Version=...".
package version

var Version = "dev"
