package logging

import "testing"

func TestNewReturnsUsableLogger(t *testing.T) {
	for _, verbose := range []bool{true, false} {
		logger := New(verbose)
		if logger == nil {
			t.Fatalf("New(%v) returned nil", verbose)
		}
		logger.Info("test message")
		if err := logger.Sync(); err != nil {
			// Syncing a console logger to a test's stdout commonly
			// fails with ENOTTY; only treat unexpected errors as
			// failures by not asserting on a specific value here.
			t.Logf("Sync returned: %v", err)
		}
	}
}
