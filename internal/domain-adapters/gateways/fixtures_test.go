package gateways

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeZip creates a zip archive with the given entry names.
// Names ending in "/" become directory entries.
func writeZip(t *testing.T, path string, names ...string) {
	t.Helper()

	//nolint:gosec // G304: Test fixture path
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create zip: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("Failed to add zip entry %s: %v", name, err)
		}
		if !strings.HasSuffix(name, "/") {
			if _, err := w.Write([]byte("fake content")); err != nil {
				t.Fatalf("Failed to write zip entry %s: %v", name, err)
			}
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
}

// writeTarGz creates a gzipped tarball with the given entry names.
// Names ending in "/" become directory entries.
func writeTarGz(t *testing.T, path string, names ...string) {
	t.Helper()

	//nolint:gosec // G304: Test fixture path
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create tarball: %v", err)
	}
	defer f.Close()

	gw := gzip.NewWriter(f)
	tw := tar.NewWriter(gw)
	content := []byte("fake content")
	for _, name := range names {
		header := &tar.Header{Name: name, Mode: 0600, Typeflag: tar.TypeReg, Size: int64(len(content))}
		if strings.HasSuffix(name, "/") {
			header = &tar.Header{Name: name, Mode: 0750, Typeflag: tar.TypeDir}
		}
		if err := tw.WriteHeader(header); err != nil {
			t.Fatalf("Failed to write tar header %s: %v", name, err)
		}
		if header.Typeflag == tar.TypeReg {
			if _, err := tw.Write(content); err != nil {
				t.Fatalf("Failed to write tar entry %s: %v", name, err)
			}
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("Failed to close tar writer: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("Failed to close gzip writer: %v", err)
	}
}

// touch creates empty files inside dir
func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0600); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}
}
