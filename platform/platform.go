// Package platform selects, at build time, exactly one lifecycle
// implementation for the target operating system.
//
// Platform split:
//   - windows: switches the console code pages to UTF-8 on Init
//   - linux, darwin: log-only (reserved for OS-specific setup)
//   - other: silent no-op stub
//
// Each variant lives in its own build-tagged file and defines the same
// constructor, New. The tag expressions partition GOOS, so exactly one
// variant is ever linked: a target matching zero or two files fails to
// compile instead of misbehaving at runtime.
package platform

// Lifecycle is the platform lifecycle contract. Init and Cleanup are
// best-effort: they report nothing and must never abort the host
// program. Callers invoke Init once at startup and Cleanup once at
// shutdown, in that order.
type Lifecycle interface {
	Init()
	Cleanup()

	// Name returns the variant identifier: windows, linux, darwin or
	// unknown.
	Name() string
}
