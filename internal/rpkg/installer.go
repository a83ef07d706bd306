package rpkg

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/r-infra/rpack/internal/cache"
	"github.com/r-infra/rpack/internal/jar"
)

// Installer drives R package installation for a batch of jars. Jars are
// processed one at a time; no state is shared between them.
type Installer struct {
	// SparkHome locates the R library directory the packages install into
	SparkHome string

	// Sink receives progress lines and relayed R CMD INSTALL output
	Sink io.Writer

	// Verbose enables per-file extraction progress and skip notices
	Verbose bool

	// Cache records install results per jar; nil disables caching
	Cache *cache.Cache

	logger *log.Logger
}

// NewInstaller creates an installer writing all output to sink.
func NewInstaller(sparkHome string, sink io.Writer, verbose bool) *Installer {
	logger := log.NewWithOptions(sink, log.Options{
		Prefix: "rpack",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return &Installer{
		SparkHome: sparkHome,
		Sink:      sink,
		Verbose:   verbose,
		logger:    logger,
	}
}

// Run processes a comma-separated list of jar paths sequentially. Missing
// files, jars without bundled R source, and per-jar build failures are
// reported to the sink and do not stop the batch. The only hard error is
// an unset SPARK_HOME, checked before any extraction happens.
func (in *Installer) Run(jars string) error {
	if in.SparkHome == "" {
		return fmt.Errorf("SPARK_HOME is not set; set the environment variable or pass --spark-home")
	}

	for _, path := range strings.Split(jars, ",") {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}

		in.processJar(path)
	}

	return nil
}

func (in *Installer) processJar(path string) {
	if _, err := os.Stat(path); err != nil {
		in.logger.Warnf("%s was not found, skipping R package installation", path)
		return
	}

	jf, err := jar.Open(path)
	if err != nil {
		in.logger.Warnf("%s could not be read as a jar, skipping: %v", path, err)
		return
	}
	defer jf.Close()

	if !jf.HasRPackage() {
		in.logger.Debugf("%s doesn't contain R source code, skipping...", path)
		return
	}

	var key string
	if in.Cache != nil {
		key, err = cache.HashJar(path, in.SparkHome)
		if err != nil {
			in.logger.Warnf("failed to hash %s for the install cache: %v", path, err)
			key = ""
		} else if entry, err := in.Cache.Get(key); err == nil && entry != nil && entry.Installed {
			in.logger.Infof("skipping %s: R package already installed (cached)", path)
			return
		}
	}

	in.logger.Debugf("%s contains R source code. Now installing package.", path)

	scratchDir, err := extractRSources(jf, in.Sink, in.Verbose)
	if scratchDir != "" {
		defer os.RemoveAll(scratchDir)
	}
	if err != nil {
		in.logger.Errorf("failed to extract R source code from %s, skipping: %v", path, err)
		return
	}

	result := installPackage(scratchDir, in.SparkHome, in.Sink, in.Verbose)
	if !result.Installed {
		in.logger.Errorf("Failed to build R package in %s.", path)
		if result.Message != "" {
			in.logger.Error(result.Message)
		}

		fmt.Fprintln(in.Sink, RJarDoc)
	}

	if in.Cache != nil && key != "" {
		if err := in.Cache.Store(key, path, in.SparkHome, result.Installed); err != nil {
			in.logger.Warnf("failed to record install result for %s: %v", path, err)
		}
	}
}
