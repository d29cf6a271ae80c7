// Package version provides build-time version information injected via ldflags.
//
//	go build -ldflags "-X cryptkeep/internal/version.Version=1.0.0 \
//	  -X cryptkeep/internal/version.Commit=$(git rev-parse --short HEAD)"
package version

// These variables are set at build time via -ldflags -X.
var (
	Version = "dev"
	Commit  = "unknown"
)

// String returns a human-readable version string.
func String() string {
	return "cryptkeep " + Version + " (" + Commit + ")"
}
