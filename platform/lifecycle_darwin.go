//go:build darwin

package platform

import "log/slog"

type darwinLifecycle struct{}

func New() Lifecycle {
	return darwinLifecycle{}
}

func (darwinLifecycle) Name() string { return "darwin" }

// Init is log-only today; OS-specific setup hooks in here when needed.
func (darwinLifecycle) Init() {
	slog.Info("platform initialized", "platform", "darwin")
}

func (darwinLifecycle) Cleanup() {
	slog.Info("platform cleaned up", "platform", "darwin")
}
