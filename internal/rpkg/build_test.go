package rpkg

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCommander implements Commander interface for testing
type mockCommander struct {
	runFunc func() error
}

func (m *mockCommander) Run() error {
	return m.runFunc()
}

// stubExec replaces execCommand for the duration of a test and records
// every invocation.
func stubExec(t *testing.T, runErr error) *[][]string {
	t.Helper()

	var calls [][]string
	original := execCommand
	t.Cleanup(func() { execCommand = original })

	execCommand = func(name string, args ...string) Commander {
		calls = append(calls, append([]string{name}, args...))
		return &mockCommander{runFunc: func() error { return runErr }}
	}

	return &calls
}

func TestInstallPackageCommandLine(t *testing.T) {
	calls := stubExec(t, nil)

	scratch := t.TempDir()
	var sink bytes.Buffer

	result := installPackage(scratch, "/opt/spark", &sink, false)

	assert.True(t, result.Installed)
	assert.Empty(t, result.Message)

	require.Len(t, *calls, 1)
	expected := []string{
		"R", "CMD", "INSTALL",
		"-l", filepath.Join("/opt/spark", "R", "lib"),
		filepath.Join(scratch, "R", "pkg"),
	}
	assert.Equal(t, expected, (*calls)[0])
}

func TestInstallPackageVerboseLogsCommand(t *testing.T) {
	stubExec(t, nil)

	var sink bytes.Buffer
	result := installPackage(t.TempDir(), "/opt/spark", &sink, true)

	assert.True(t, result.Installed)
	assert.Contains(t, sink.String(), "Building R package with: R CMD INSTALL")
}

func TestInstallPackageLaunchFailure(t *testing.T) {
	stubExec(t, errors.New("exec: \"R\": executable file not found in $PATH"))

	var sink bytes.Buffer
	result := installPackage(t.TempDir(), "/opt/spark", &sink, false)

	assert.False(t, result.Installed)
	assert.Equal(t, -1, result.ExitCode)
	assert.Contains(t, result.Message, "failed to run R CMD INSTALL")
}

func TestDrainOutputRelaysLongLines(t *testing.T) {
	var sink bytes.Buffer
	pr, pw := io.Pipe()

	// A single 128 KB line; the relay must not impose a line-length limit
	line := strings.Repeat("x", 128*1024) + "\n"

	go func() {
		_, _ = pw.Write([]byte(line))
		pw.Close()
	}()

	drainOutput(&sink, pr)

	assert.Equal(t, line, sink.String())
}

func TestInstallPackageRepeatedInvocation(t *testing.T) {
	calls := stubExec(t, nil)

	scratch := t.TempDir()
	var sink bytes.Buffer

	first := installPackage(scratch, "/opt/spark", &sink, false)
	second := installPackage(scratch, "/opt/spark", &sink, false)

	assert.True(t, first.Installed)
	assert.True(t, second.Installed)
	assert.Len(t, *calls, 2)
}
