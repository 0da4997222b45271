//go:build linux

package platform

import "log/slog"

type linuxLifecycle struct{}

func New() Lifecycle {
	return linuxLifecycle{}
}

func (linuxLifecycle) Name() string { return "linux" }

// Init is log-only today; OS-specific setup hooks in here when needed.
func (linuxLifecycle) Init() {
	slog.Info("platform initialized", "platform", "linux")
}

func (linuxLifecycle) Cleanup() {
	slog.Info("platform cleaned up", "platform", "linux")
}
