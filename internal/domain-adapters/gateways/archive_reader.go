package gateways

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	domaingateways "github.com/ochairo/prodverify/internal/domain/interfaces/gateways"
)

// ArchiveFormat identifies how a distribution is encoded
type ArchiveFormat string

const (
	// FormatZip covers zip, jar, war and ear distributions
	FormatZip ArchiveFormat = "zip"
	// FormatTar is an uncompressed tarball
	FormatTar ArchiveFormat = "tar"
	// FormatTarGz is a gzip-compressed tarball
	FormatTarGz ArchiveFormat = "tar.gz"
)

// DetectArchiveFormat picks a format from the distribution file name.
// Anything that is not a tarball is read as a zip.
func DetectArchiveFormat(path string) ArchiveFormat {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		return FormatTarGz
	case strings.HasSuffix(lower, ".tar"):
		return FormatTar
	default:
		return FormatZip
	}
}

// ArchiveReader enumerates the entries of distribution archives
type ArchiveReader struct{}

// NewArchiveReader creates a new archive reader
func NewArchiveReader() *ArchiveReader {
	return &ArchiveReader{}
}

// Entries lists every entry of the archive at path.
// The archive is closed before Entries returns, on every path.
func (r *ArchiveReader) Entries(ctx context.Context, path string) ([]domaingateways.ArchiveEntry, error) {
	switch DetectArchiveFormat(path) {
	case FormatTarGz:
		return r.tarEntries(ctx, path, true)
	case FormatTar:
		return r.tarEntries(ctx, path, false)
	default:
		return r.zipEntries(ctx, path)
	}
}

// zipEntries reads the zip central directory
func (r *ArchiveReader) zipEntries(ctx context.Context, path string) ([]domaingateways.ArchiveEntry, error) {
	zr, err := zip.OpenReader(path)
	if err != nil && !(errors.Is(err, zip.ErrInsecurePath) && zr != nil) {
		return nil, fmt.Errorf("failed to open zip archive: %w", err)
	}
	// Backslash or absolute entry names are only listed, never extracted
	//nolint:errcheck // Defer close on read-only archive
	defer zr.Close()

	entries := make([]domaingateways.ArchiveEntry, 0, len(zr.File))
	for _, f := range zr.File {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entries = append(entries, domaingateways.ArchiveEntry{
			Name:  f.Name,
			IsDir: f.FileInfo().IsDir() || strings.HasSuffix(f.Name, "/"),
		})
	}

	return entries, nil
}

// tarEntries streams tar headers, optionally through gzip.
// Entries that are not regular files (directories, links, devices) are
// reported as markers so they are skipped like directories.
func (r *ArchiveReader) tarEntries(ctx context.Context, path string, gzipped bool) ([]domaingateways.ArchiveEntry, error) {
	//nolint:gosec // G304: path is a configured distribution
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tar archive: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer file.Close()

	var src io.Reader = file
	if gzipped {
		gzipReader, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		//nolint:errcheck // Defer close on read-only stream
		defer gzipReader.Close()
		src = gzipReader
	}

	tarReader := tar.NewReader(src)
	entries := make([]domaingateways.ArchiveEntry, 0)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		header, err := tarReader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read tar header: %w", err)
		}

		entries = append(entries, domaingateways.ArchiveEntry{
			Name:  header.Name,
			IsDir: !isRegularTarEntry(header),
		})
	}

	return entries, nil
}

func isRegularTarEntry(header *tar.Header) bool {
	//nolint:staticcheck // SA1019: TypeRegA still appears in old tarballs
	return header.Typeflag == tar.TypeReg || header.Typeflag == tar.TypeRegA
}
