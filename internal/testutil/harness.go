// Package testutil provides the harness shared by the integration tests:
// it materializes a track from in-memory HCL files and drives the command
// line against it.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/dcorder/internal/cli"
	"github.com/specialistvlad/dcorder/internal/hcl"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Stdout    string
	LogOutput string
	Err       error
	ExitCode  int
}

// WriteTrack writes files, keyed by relative path, below a fresh temporary
// directory and returns the directory.
func WriteTrack(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}
	return dir
}

// RunIntegrationTest writes the track files and runs the command line with
// args followed by the track directory.
func RunIntegrationTest(t *testing.T, files map[string]string, args ...string) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, args...)
}

// RunIntegrationTestWithContext is RunIntegrationTest with a caller-provided
// context.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, args ...string) *HarnessResult {
	t.Helper()

	dir := WriteTrack(t, files)
	stdout := &SafeBuffer{}
	logs := &SafeBuffer{}

	fullArgs := append(append([]string{}, args...), "--log-level", "debug", dir)
	err := cli.Execute(ctx, fullArgs, stdout, logs, hcl.NewLoader())

	result := &HarnessResult{
		Stdout:    stdout.String(),
		LogOutput: logs.String(),
		Err:       err,
	}
	if exitErr, ok := err.(*cli.ExitError); ok {
		result.ExitCode = exitErr.Code
	}

	t.Cleanup(func() {
		if os.Getenv("DCORDER_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.LogOutput)
		}
	})
	return result
}
