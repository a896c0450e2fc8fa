package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()

	files := []GeneratedFile{
		{Dir: dir, Filename: "a_collection.go", Content: []byte("package a\n")},
		{Dir: filepath.Join(dir, "nested"), Filename: "b_collection.go", Content: []byte("package b\n")},
	}

	require.NoError(t, WriteFiles(files))

	gotA, err := os.ReadFile(filepath.Join(dir, "a_collection.go"))
	require.NoError(t, err)
	assert.Equal(t, "package a\n", string(gotA))

	// Missing directories are created.
	gotB, err := os.ReadFile(filepath.Join(dir, "nested", "b_collection.go"))
	require.NoError(t, err)
	assert.Equal(t, "package b\n", string(gotB))
}

func TestWriteFilesEmpty(t *testing.T) {
	assert.NoError(t, WriteFiles(nil))
}
