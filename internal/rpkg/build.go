package rpkg

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/r-infra/rpack/internal/codes"
)

// Commander interface for testing
type Commander interface {
	Run() error
}

var execCommand = func(name string, args ...string) Commander {
	return exec.Command(name, args...)
}

// BuildResult is the outcome of one R CMD INSTALL invocation.
type BuildResult struct {
	// Installed indicates the package was built and installed
	Installed bool

	// ExitCode is the subprocess exit status (-1 if it never launched)
	ExitCode int

	// Message describes the failure, empty on success
	Message string
}

// installPackage builds the extracted R package with
// R CMD INSTALL -l <sparkHome>/R/lib <scratchDir>/R/pkg.
// The child runs with a cleared environment and its stderr folded into
// stdout; the combined output is relayed live to the sink. Launch and
// wait errors are folded into a failed BuildResult rather than returned,
// so one jar's failure cannot abort a batch.
func installPackage(scratchDir, sparkHome string, sink io.Writer, verbose bool) BuildResult {
	libDir := filepath.Join(sparkHome, "R", "lib")
	pkgDir := filepath.Join(scratchDir, filepath.FromSlash(RJarEntries))
	cmdArgs := []string{"CMD", "INSTALL", "-l", libDir, pkgDir}

	if verbose {
		fmt.Fprintf(sink, "Building R package with: R %s\n", strings.Join(cmdArgs, " "))
	}

	c := execCommand("R", cmdArgs...)

	pr, pw := io.Pipe()
	if cmd, ok := c.(*exec.Cmd); ok {
		cmd.Env = []string{}
		cmd.Stdout = pw
		cmd.Stderr = pw
	}

	// Drain the child's combined output concurrently so a full pipe
	// buffer can never block the child. Joined below, before the exit
	// code is inspected, to guarantee all output reached the sink.
	done := make(chan struct{})
	go func() {
		defer close(done)
		drainOutput(sink, pr)
	}()

	err := c.Run()
	pw.Close()
	<-done

	if err == nil {
		return BuildResult{Installed: true}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if codes.IsSuccess(code) {
			return BuildResult{Installed: true, ExitCode: code}
		}

		return BuildResult{
			ExitCode: code,
			Message:  fmt.Sprintf("R CMD INSTALL exited with code %d: %s", code, codes.GetErrorMessage(code)),
		}
	}

	return BuildResult{
		ExitCode: -1,
		Message:  fmt.Sprintf("failed to run R CMD INSTALL: %v", err),
	}
}

// drainOutput relays the child's combined output to the sink. io.Copy
// imposes no line-length limit, so arbitrarily long output lines pass
// through intact.
func drainOutput(sink io.Writer, r io.Reader) {
	if _, err := io.Copy(sink, r); err != nil {
		fmt.Fprintf(sink, "output relay interrupted: %v\n", err)
	}
}
