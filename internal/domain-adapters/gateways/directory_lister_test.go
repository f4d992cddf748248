package gateways

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryLister_ListRegularFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.jar", "a.jar", "notes")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0750))
	touch(t, filepath.Join(dir, "nested"), "deep.jar")

	files, err := NewDirectoryLister().ListRegularFiles(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.jar", "b.jar", "notes"}, files, "only immediate regular files are listed")
}

func TestDirectoryLister_FollowsFileSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(t.TempDir(), "real-redhat-1.jar")
	require.NoError(t, os.WriteFile(target, nil, 0600))
	if err := os.Symlink(target, filepath.Join(dir, "link-redhat-1.jar")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	files, err := NewDirectoryLister().ListRegularFiles(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"link-redhat-1.jar"}, files)
}

func TestDirectoryLister_IsDirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "file.jar")
	lister := NewDirectoryLister()

	assert.True(t, lister.IsDirectory(dir))
	assert.False(t, lister.IsDirectory(filepath.Join(dir, "file.jar")))
	assert.False(t, lister.IsDirectory(filepath.Join(dir, "missing")))
}

func TestDirectoryLister_Canonicalize(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "lib"), 0750))
	lister := NewDirectoryLister()

	want, err := filepath.EvalSymlinks(filepath.Join(dir, "lib"))
	require.NoError(t, err)

	got, err := lister.Canonicalize(filepath.Join(dir, "lib", "..", "lib"))
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, filepath.IsAbs(got))

	_, err = lister.Canonicalize(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
