// Package buildinfo carries version metadata injected with -ldflags, e.g.
//
//	go build -ldflags "-X goldfire/internal/buildinfo.Version=v1.2.0 -X goldfire/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import "fmt"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the window title.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String returns the full identifier printed by -version.
func String() string {
	return fmt.Sprintf("goldfire %s (commit %s, built %s)", Short(), Commit, Date)
}
