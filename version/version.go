// Package version exposes build information, set at link time:
//
//	go build -ldflags "-X github.com/farcloser/phare/version.version=v1.0.0 -X github.com/farcloser/phare/version.commit=$(git rev-parse --short HEAD)"
package version

//nolint:gochecknoglobals // set through ldflags
var (
	name    = "phare"
	version = "dev"
	commit  = "unknown"
)

// Name of the binary.
func Name() string {
	return name
}

// Version of the build.
func Version() string {
	return version
}

// Commit the build was made from.
func Commit() string {
	return commit
}
