//go:build !windows && !linux && !darwin

package platform

// stubLifecycle keeps the lifecycle contract satisfiable on targets no
// specific variant matches. Both operations are true no-ops: no log
// output, no side effects.
type stubLifecycle struct{}

func New() Lifecycle {
	return stubLifecycle{}
}

func (stubLifecycle) Name() string { return "unknown" }

func (stubLifecycle) Init() {}

func (stubLifecycle) Cleanup() {}
