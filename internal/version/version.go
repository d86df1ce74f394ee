// Package version carries the build version, set with
// -ldflags "-X strtrace/internal/version.Version=...".
package version

var Version = "dev"
