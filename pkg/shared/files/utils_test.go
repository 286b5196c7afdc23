package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"tilde prefix", "~/output", filepath.Join(homeDir, "output")},
		{"absolute path", "/var/lib/turbinia", "/var/lib/turbinia"},
		{"relative path", "output", "output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidatePath(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "file.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("data"), 0644))

	assert.NoError(t, ValidatePath(filePath))
	assert.Error(t, ValidatePath(tmpDir))
	assert.Error(t, ValidatePath(filepath.Join(tmpDir, "missing")))
}

func TestCreateFolderIfNotExists(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, CreateFolderIfNotExists(folder))
	info, err := os.Stat(folder)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Creating an existing folder is a no-op.
	assert.NoError(t, CreateFolderIfNotExists(folder))
}
