// Package jar provides read-only access to Java archive files: manifest
// attributes and entry enumeration. Archives are plain zip files, read
// with the klauspost/compress drop-in reader.
package jar

import (
	"fmt"
	"strings"

	"github.com/klauspost/compress/zip"
)

// File is an open, read-only jar archive.
type File struct {
	r *zip.ReadCloser
}

// Open opens the jar at path for reading.
func Open(path string) (*File, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open jar %s: %w", path, err)
	}

	return &File{r: r}, nil
}

// Close closes the underlying archive.
func (f *File) Close() error {
	return f.r.Close()
}

// Entries returns the archive entries in archive order.
func (f *File) Entries() []*zip.File {
	return f.r.File
}

// Manifest returns the jar's main manifest attributes. A jar without a
// META-INF/MANIFEST.MF entry yields an empty attribute map rather than
// an error, so malformed archives cannot abort a whole batch.
func (f *File) Manifest() (map[string]string, error) {
	for _, e := range f.r.File {
		if e.Name != manifestPath {
			continue
		}

		rc, err := e.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest: %w", err)
		}
		defer rc.Close()

		return ParseManifest(rc)
	}

	return map[string]string{}, nil
}

// HasRPackage reports whether the jar declares bundled R source code:
// the Spark-HasRPackage attribute present with the trimmed value "true"
// (case-sensitive).
func (f *File) HasRPackage() bool {
	attrs, err := f.Manifest()
	if err != nil {
		// Unreadable manifest is treated as flag absent
		return false
	}

	return strings.TrimSpace(attrs[RPackageAttribute]) == "true"
}
