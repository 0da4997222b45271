package platform

import (
	"runtime"
	"testing"
)

func TestNameMatchesTarget(t *testing.T) {
	want := "unknown"
	switch runtime.GOOS {
	case "windows", "linux", "darwin":
		want = runtime.GOOS
	}

	if got := New().Name(); got != want {
		t.Fatalf("New().Name() = %q, want %q", got, want)
	}
}

func TestInitThenCleanup(t *testing.T) {
	// The contract is one Init followed by one Cleanup; neither may
	// panic or otherwise abort the host program.
	l := New()
	l.Init()
	l.Cleanup()
}

func TestRepeatedCallsTolerated(t *testing.T) {
	// Double calls are out of contract. This documents, without
	// promising, that the current variants happen to tolerate them.
	l := New()
	l.Init()
	l.Init()
	l.Cleanup()
	l.Cleanup()
}
