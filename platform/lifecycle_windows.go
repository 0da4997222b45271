//go:build windows

package platform

import (
	"log/slog"

	"golang.org/x/sys/windows"
)

// utf8CodePage is the Windows code page identifier for UTF-8 (CP_UTF8).
const utf8CodePage = 65001

type windowsLifecycle struct{}

func New() Lifecycle {
	return windowsLifecycle{}
}

func (windowsLifecycle) Name() string { return "windows" }

// Init switches the console input and output code pages to UTF-8 so
// that non-ASCII command output renders correctly. The calls are
// fire-and-forget: a console-less process (service, redirected pipes)
// makes them fail, and startup must proceed regardless.
func (windowsLifecycle) Init() {
	_ = windows.SetConsoleCP(utf8CodePage)
	_ = windows.SetConsoleOutputCP(utf8CodePage)
	slog.Info("platform initialized", "platform", "windows")
}

func (windowsLifecycle) Cleanup() {
	slog.Info("platform cleaned up", "platform", "windows")
}
