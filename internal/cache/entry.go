package cache

import "time"

// Entry records the outcome of one jar's R package installation
type Entry struct {
	// Hash is the unique identifier for this cache entry
	// Computed from: jar content + SPARK_HOME
	Hash string `json:"hash"`

	// Jar is the path of the archive when it was installed
	Jar string `json:"jar"`

	// SparkHome is the installation the package was installed under
	SparkHome string `json:"spark_home"`

	// Timestamp when this entry was created
	Timestamp time.Time `json:"timestamp"`

	// Installed indicates R CMD INSTALL completed successfully
	Installed bool `json:"installed"`
}
