package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().BoolP("verbose", "v", false, "")
	cmd.Flags().String("spark-home", "", "")
	cmd.Flags().Bool("no-cache", false, "")
	cmd.Flags().String("cache-dir", "", "")

	return cmd
}

func TestLoadForInstallDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("SPARK_HOME", "")

	cfg, err := NewLoader().LoadForInstall(testCommand())
	require.NoError(t, err)

	assert.Empty(t, cfg.SparkHome)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.NoCache)
	assert.NotEmpty(t, cfg.CacheDir)
}

func TestLoadForInstallFromEnvironment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("SPARK_HOME", "/opt/spark")

	cfg, err := NewLoader().LoadForInstall(testCommand())
	require.NoError(t, err)

	assert.Equal(t, "/opt/spark", cfg.SparkHome)
}

func TestFindLocalConfig(t *testing.T) {
	tempDir := t.TempDir()
	subDir := filepath.Join(tempDir, "subdir")
	err := os.Mkdir(subDir, 0o755)
	assert.NoError(t, err)

	configYML := filepath.Join(subDir, ".rpack.yml")
	err = os.WriteFile(configYML, []byte("verbose: true"), 0o644)
	assert.NoError(t, err)

	// Found in the directory itself
	result := findLocalConfig(subDir)
	assert.Equal(t, configYML, result)

	// Found by walking up from a child directory
	result = findLocalConfig(filepath.Join(subDir, "deep"))
	assert.Equal(t, configYML, result)

	// Not found above the config file
	result = findLocalConfig(tempDir)
	assert.Equal(t, "", result)
}

func TestLoadForInstallFlagOverridesEnvironment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("SPARK_HOME", "/opt/spark")

	cmd := testCommand()
	require.NoError(t, cmd.Flags().Set("spark-home", "/opt/spark-custom"))

	cfg, err := NewLoader().LoadForInstall(cmd)
	require.NoError(t, err)

	assert.Equal(t, "/opt/spark-custom", cfg.SparkHome)
}
