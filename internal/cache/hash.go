package cache

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"lukechampine.com/blake3"
)

// HashJar creates a unique key for a jar and the Spark installation it
// installs into. The key changes whenever the jar content changes, so a
// rebuilt jar is never skipped. blake3 keeps hashing cheap for large
// archives.
func HashJar(jarPath, sparkHome string) (string, error) {
	h := blake3.New(32, nil)

	f, err := os.Open(jarPath)
	if err != nil {
		return "", fmt.Errorf("failed to open jar: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash jar: %w", err)
	}

	h.Write([]byte(sparkHome))

	return hex.EncodeToString(h.Sum(nil)), nil
}
