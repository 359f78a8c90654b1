package loggertest

import (
	"testing"

	"github.com/harun/rotalog/pkg/logger"
)

// New returns a logger writing line-object records into a fresh temp
// directory, console disabled, and the directory path for assertions.
// The logger is closed automatically when the test finishes.
func New(t *testing.T) (*logger.Logger, string) {
	t.Helper()

	dir := t.TempDir()
	log, err := logger.New(logger.Config{
		Format:         logger.FormatLineObject,
		DisableConsole: true,
		Directory:      dir,
		MaxBytes:       1 << 20,
	})
	if err != nil {
		t.Fatalf("loggertest: failed to construct logger: %v", err)
	}
	t.Cleanup(func() {
		if err := log.Close(); err != nil {
			t.Errorf("loggertest: failed to close logger: %v", err)
		}
	})
	return log, dir
}

// NewNop returns a logger whose output goes to a throwaway temp directory,
// for tests that only need a non-nil logger.
func NewNop(t *testing.T) *logger.Logger {
	t.Helper()

	log, _ := New(t)
	return log
}
