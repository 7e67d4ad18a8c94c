// Package version holds the build version stamp.
package version

// Version is the current release tag. Release builds override it with
// -ldflags "-X github.com/tessarin/mindcanvas/pkg/version.Version=v...".
var Version = "v0.1.0"
