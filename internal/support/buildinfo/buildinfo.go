// Package buildinfo carries release metadata stamped at build time.
package buildinfo

// Set via -ldflags, e.g.
//
//	go build -ldflags "-X hull/internal/support/buildinfo.Version=v0.2.0"
var (
	Version = "dev"
	Commit  = "none"
)
