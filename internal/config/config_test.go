package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, []string{"./..."}, cfg.Patterns)
	assert.Empty(t, cfg.Manifest)
	assert.Empty(t, cfg.RegistryCache)
	assert.Equal(t, 5, cfg.HelpSampleSize)
	assert.True(t, cfg.GenerateComments)
	assert.Equal(t, "_collection.go", cfg.FileSuffix)

	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingDefaultFile(t *testing.T) {
	// No collectiongen.toml in the test working directory: defaults apply.
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collectiongen.toml")
	data := `
patterns = ["./internal/...", "./examples/..."]
manifest = "capabilities.yaml"
help_sample_size = 3
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"./internal/...", "./examples/..."}, cfg.Patterns)
	assert.Equal(t, "capabilities.yaml", cfg.Manifest)
	assert.Equal(t, 3, cfg.HelpSampleSize)

	// Keys absent from the file keep their defaults.
	assert.True(t, cfg.GenerateComments)
	assert.Equal(t, "_collection.go", cfg.FileSuffix)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collectiongen.toml")
	require.NoError(t, os.WriteFile(path, []byte("patterns = [\"./...\"]\ntypo_key = true\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "typo_key")
}

func TestValidate(t *testing.T) {
	cfg := Default()

	cfg.Patterns = nil
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.HelpSampleSize = -1
	assert.Error(t, cfg.Validate())
}
