// Package version provides build version information for tui-relay.
package version

// Version is the release version. Overridden at build time via ldflags.
var Version = "development"

// Commit is the git commit hash. Overridden at build time via ldflags.
var Commit = "unknown"

// Date is the build date. Overridden at build time via ldflags.
var Date = ""

// String returns the version, with commit hash and build date when known.
func String() string {
	s := Version
	if Commit != "unknown" && Commit != "" {
		s += "+" + Commit
	}
	if Date != "" {
		s += " (" + Date + ")"
	}
	return s
}
