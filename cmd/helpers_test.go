package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/dstairlines/flightwatch/internal/config"
)

// captureOutput swaps outWriter for a buffer for the duration of a test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := outWriter
	outWriter = &buf
	t.Cleanup(func() { outWriter = orig })
	return &buf
}

// resetFlags restores flag-backed package state: cobra only assigns
// values for flags present on the command line, so leftovers from a
// previous Execute would leak between tests.
func resetFlags(t *testing.T) {
	t.Helper()
	jsonOutput, noColor, verbose, quiet, noSave = false, false, false, false, false
	timeout, limit = 0, 0
	_ = rootCmd.Flags().Set("version", "false")
}

// setupCmdEnv points config and data at a temp directory and clears the
// credential environment.
func setupCmdEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("FLIGHTWATCH_CONFIG_DIR", filepath.Join(dir, "config"))
	t.Setenv("FLIGHTWATCH_DATA_DIR", filepath.Join(dir, "data"))
	t.Setenv("FLIGHTWATCH_API_URL", "")
	t.Setenv("FLIGHTWATCH_API_TOKEN", "")
	t.Setenv("FLIGHTWATCH_LIMIT", "")
	t.Setenv("FLIGHTWATCH_TIMEOUT", "")
	t.Setenv("FLIGHTWATCH_ENCRYPTION_KEY", "")
	config.Reload()
	return dir
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	resetFlags(t)
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(context.Background())
}
