package drivers

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_GetObject(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "grp1-tf-cp2-bucket"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "grp1-tf-cp2-bucket", "todo-data.json"), []byte(`[1,2,3]`), 0o644))

	store, err := NewLocalStorage(root)
	require.NoError(t, err)

	data, err := store.GetObject(context.Background(), "grp1-tf-cp2-bucket", "todo-data.json")
	require.NoError(t, err)
	assert.Equal(t, `[1,2,3]`, string(data))
}

func TestLocalStorage_GetObject_NotFound(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.GetObject(context.Background(), "grp1-tf-cp2-bucket", "todo-data.json")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLocalStorage_GetObject_Directory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "bucket", "dir"), 0o755))

	store, err := NewLocalStorage(root)
	require.NoError(t, err)

	_, err = store.GetObject(context.Background(), "bucket", "dir")
	assert.ErrorContains(t, err, "is a directory")
}

func TestLocalStorage_GetObject_RejectsTraversal(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	tests := []struct {
		name   string
		bucket string
		key    string
	}{
		{name: "parent key", bucket: "bucket", key: "../../etc/passwd"},
		{name: "absolute key", bucket: "bucket", key: "/etc/passwd"},
		{name: "parent bucket", bucket: "..", key: "secret.json"},
		{name: "empty bucket", bucket: "", key: "todo-data.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.GetObject(context.Background(), tt.bucket, tt.key)
			assert.ErrorContains(t, err, "invalid object path")
		})
	}
}
