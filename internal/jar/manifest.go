package jar

import (
	"bufio"
	"io"
	"strings"
)

// RPackageAttribute is the manifest attribute marking a jar that bundles
// R package sources.
const RPackageAttribute = "Spark-HasRPackage"

const manifestPath = "META-INF/MANIFEST.MF"

// ParseManifest reads the main section of a jar manifest into a key/value
// map. Manifest values are wrapped at 72 bytes with a leading space on
// continuation lines; continuations are joined back onto the previous
// attribute. Lines without a colon are ignored. Parsing stops at the
// first blank line, which ends the main section.
func ParseManifest(r io.Reader) (map[string]string, error) {
	attrs := make(map[string]string)

	scanner := bufio.NewScanner(r)
	var lastKey string

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			break
		}

		if strings.HasPrefix(line, " ") {
			// Continuation of the previous attribute's wrapped value
			if lastKey != "" {
				attrs[lastKey] += line[1:]
			}

			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		lastKey = key
		attrs[key] = strings.TrimPrefix(value, " ")
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return attrs, nil
}
