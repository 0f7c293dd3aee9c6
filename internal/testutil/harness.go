// Package testutil provides the shared harness for end-to-end command
// tests: build a command, feed it argv, capture everything observable.
package testutil

import (
	"bytes"
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/bargeparse"
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

// RunResult holds the observable outcomes of one command invocation.
type RunResult struct {
	Stdout   string
	Stderr   string
	Err      error
	ExitCode int
}

// RunCommand executes a built command against argv with a background
// context and captured streams. ExitCode is 0 on success, the
// ExitError's code when Run failed with one, and 1 otherwise.
func RunCommand(t *testing.T, cmd *bargeparse.Command, argv ...string) *RunResult {
	t.Helper()
	return RunCommandWithContext(context.Background(), t, cmd, argv...)
}

// RunCommandWithContext is RunCommand with a caller-provided context.
func RunCommandWithContext(ctx context.Context, t *testing.T, cmd *bargeparse.Command, argv ...string) *RunResult {
	t.Helper()

	stdout := &SafeBuffer{}
	stderr := &SafeBuffer{}
	err := cmd.Run(ctx, argv, stdout, stderr)

	res := &RunResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
		Err:    err,
	}
	if err != nil {
		var exitErr *bargeparse.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.Code
		} else {
			res.ExitCode = 1
		}
	}

	if os.Getenv("BARGEPARSE_TEST_LOGS") == "true" {
		t.Logf("--- Output for %s ---\nstdout:\n%s\nstderr:\n%s", t.Name(), res.Stdout, res.Stderr)
	}
	return res
}

// MustCommand builds a root command and fails the test on any schema
// or signature error.
func MustCommand(t *testing.T, handler any, opts ...bargeparse.Option) *bargeparse.Command {
	t.Helper()
	cmd, err := bargeparse.New(handler, opts...)
	require.NoError(t, err)
	return cmd
}
