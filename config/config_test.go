package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scalatools/sbtup/config"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	t.Run("should point at Maven Central with bounded concurrency", func(t *testing.T) {
		t.Parallel()

		// when
		cfg := config.Default()

		// then
		assert.Equal(t, "https://repo1.maven.org/maven2", cfg.Registry.URL)
		assert.Equal(t, 8, cfg.Concurrency)
		assert.Equal(t, 3, cfg.Registry.MaxRetries)
		assert.True(t, cfg.Backup)
	})
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestLoad(t *testing.T) {
	t.Run("should load valid config file", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		cfgFile := filepath.Join(tmpDir, "sbtup.yaml")
		content := `
registry:
  url: "https://nexus.internal/repository/maven-public"
  max_retries: 5
concurrency: 4
excludes:
  - "org.scala-lang:scala-library"
backup: false
`
		err := os.WriteFile(cfgFile, []byte(content), 0o600)
		require.NoError(t, err)

		// when
		cfg, err := config.Load(cfgFile)

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://nexus.internal/repository/maven-public", cfg.Registry.URL)
		assert.Equal(t, 5, cfg.Registry.MaxRetries)
		assert.Equal(t, 4, cfg.Concurrency)
		assert.Equal(t, []string{"org.scala-lang:scala-library"}, cfg.Excludes)
		assert.False(t, cfg.Backup)
	})

	t.Run("should fill unset fields with defaults", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		cfgFile := filepath.Join(tmpDir, "sbtup.yaml")
		err := os.WriteFile(cfgFile, []byte("concurrency: 2"), 0o600)
		require.NoError(t, err)

		// when
		cfg, err := config.Load(cfgFile)

		// then
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Concurrency)
		assert.Equal(t, "https://repo1.maven.org/maven2", cfg.Registry.URL)
		assert.Equal(t, 3, cfg.Registry.MaxRetries)
		assert.True(t, cfg.Backup)
	})

	t.Run("should expand env vars during load", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_REGISTRY_URL", "https://mirror.example.com/maven2")
		tmpDir := t.TempDir()
		cfgFile := filepath.Join(tmpDir, "sbtup.yaml")
		content := `
registry:
  url: "${TEST_REGISTRY_URL}"
`
		err := os.WriteFile(cfgFile, []byte(content), 0o600)
		require.NoError(t, err)

		// when
		cfg, err := config.Load(cfgFile)

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://mirror.example.com/maven2", cfg.Registry.URL)
	})

	t.Run("should fail for nonexistent config file", func(t *testing.T) {
		t.Parallel()

		// given
		path := "/tmp/nonexistent_sbtup_config_xyz.yaml"

		// when
		cfg, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("should fail for invalid YAML", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		cfgFile := filepath.Join(tmpDir, "bad.yaml")
		err := os.WriteFile(cfgFile, []byte("{{{{invalid yaml"), 0o600)
		require.NoError(t, err)

		// when
		cfg, err := config.Load(cfgFile)

		// then
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("should fail validation for negative retry count", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		cfgFile := filepath.Join(tmpDir, "bad_retries.yaml")
		content := `
registry:
  max_retries: -1
`
		err := os.WriteFile(cfgFile, []byte(content), 0o600)
		require.NoError(t, err)

		// when
		cfg, err := config.Load(cfgFile)

		// then
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "max_retries")
	})

	t.Run("should fail validation for negative concurrency", func(t *testing.T) {
		t.Parallel()

		// given
		tmpDir := t.TempDir()
		cfgFile := filepath.Join(tmpDir, "bad_concurrency.yaml")
		err := os.WriteFile(cfgFile, []byte("concurrency: -2"), 0o600)
		require.NoError(t, err)

		// when
		cfg, err := config.Load(cfgFile)

		// then
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "concurrency")
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Run("should return error when no config file exists", func(t *testing.T) {
		// given
		tmpDir := t.TempDir()
		t.Chdir(tmpDir)

		// when
		path, err := config.FindConfigFile()

		// then
		require.Error(t, err)
		assert.Empty(t, path)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("should find sbtup.yaml in current directory", func(t *testing.T) {
		// given
		tmpDir := t.TempDir()
		t.Chdir(tmpDir)

		cfgFile := filepath.Join(tmpDir, "sbtup.yaml")
		require.NoError(t, os.WriteFile(cfgFile, []byte("concurrency: 1"), 0o600))

		// when
		path, err := config.FindConfigFile()

		// then
		require.NoError(t, err)
		assert.Equal(t, "sbtup.yaml", path)
	})

	t.Run("should find .sbtup.yaml in current directory", func(t *testing.T) {
		// given
		tmpDir := t.TempDir()
		t.Chdir(tmpDir)

		cfgFile := filepath.Join(tmpDir, ".sbtup.yaml")
		require.NoError(t, os.WriteFile(cfgFile, []byte("concurrency: 1"), 0o600))

		// when
		path, err := config.FindConfigFile()

		// then
		require.NoError(t, err)
		assert.Equal(t, ".sbtup.yaml", path)
	})
}
