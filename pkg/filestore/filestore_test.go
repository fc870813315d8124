package filestore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save("Photo_1.jpg", strings.NewReader("jpeg bytes")))

	data, err := os.ReadFile(filepath.Join(dir, "Photo_1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))
}

func TestDiskStore_SaveFlattensPath(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save("../../etc/Photo_1.jpg", strings.NewReader("jpeg bytes")))

	// The file lands inside the store directory under its base name.
	_, err = os.Stat(filepath.Join(dir, "Photo_1.jpg"))
	assert.NoError(t, err)
}

func TestNewDiskStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewDiskStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
