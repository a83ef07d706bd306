package rpkg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"

	"github.com/r-infra/rpack/internal/jar"
)

// extractRSources copies every jar entry whose path contains the R/pkg
// marker into a freshly created scratch directory, preserving the path
// segment from the marker onward. The scratch directory is returned even
// when extraction fails part-way, so the caller can always clean it up.
func extractRSources(jf *jar.File, sink io.Writer, verbose bool) (string, error) {
	tempDir, err := os.MkdirTemp("", "rpack-")
	if err != nil {
		return "", fmt.Errorf("failed to create scratch directory: %w", err)
	}

	for _, entry := range jf.Entries() {
		idx := strings.Index(entry.Name, RJarEntries)
		if idx < 0 {
			continue
		}

		dest := filepath.Join(tempDir, filepath.FromSlash(entry.Name[idx:]))

		// Guard against entry paths escaping the scratch directory
		if !strings.HasPrefix(dest, tempDir+string(os.PathSeparator)) {
			return tempDir, fmt.Errorf("illegal entry path in jar: %s", entry.Name)
		}

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(dest, 0o755); err != nil {
				return tempDir, fmt.Errorf("failed to create directory %s: %w", dest, err)
			}

			if verbose {
				fmt.Fprintf(sink, "Creating directory: %s\n", dest)
			}

			continue
		}

		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return tempDir, fmt.Errorf("failed to create directory for %s: %w", dest, err)
		}

		if err := copyEntry(entry, dest); err != nil {
			return tempDir, fmt.Errorf("failed to extract %s: %w", entry.Name, err)
		}

		if verbose {
			fmt.Fprintf(sink, "Copying file: %s\n", dest)
		}
	}

	return tempDir, nil
}

func copyEntry(entry *zip.File, dest string) error {
	rc, err := entry.Open()
	if err != nil {
		return err
	}

	defer rc.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}

	defer out.Close()

	_, err = io.Copy(out, rc)

	return err
}
