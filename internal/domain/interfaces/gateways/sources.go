// Package gateways defines interfaces for external service adapters.
package gateways

import (
	"context"

	"github.com/ochairo/prodverify/internal/domain/entities"
)

// DirectoryLister provides the filesystem primitives used by directory scanning
type DirectoryLister interface {
	// IsDirectory reports whether path exists and is a directory
	IsDirectory(path string) bool

	// Canonicalize returns the absolute path with symlinks resolved
	Canonicalize(path string) (string, error)

	// ListRegularFiles returns the names of the immediate regular-file
	// children of dir. Subdirectories are not descended into.
	ListRegularFiles(ctx context.Context, dir string) ([]string, error)
}

// ArchiveEntry is one entry of a distribution archive
type ArchiveEntry struct {
	Name  string // Full entry path exactly as stored
	IsDir bool
}

// ArchiveReader opens a distribution and enumerates its entries.
// Archives store flat entry paths, so the listing is already recursive.
type ArchiveReader interface {
	Entries(ctx context.Context, path string) ([]ArchiveEntry, error)
}

// GlobMatcher evaluates shell-style ignore patterns ('*', '**', '?')
type GlobMatcher interface {
	// Match reports whether candidate matches pattern.
	// Malformed patterns never match.
	Match(pattern, candidate string) bool

	// Validate returns an error when pattern is malformed
	Validate(pattern string) error
}

// SourceScanner discovers artifact identities from configured sources
type SourceScanner interface {
	// ScanDirectory lists matching files directly inside dir
	ScanDirectory(ctx context.Context, dir string, cfg entities.Configuration) (*entities.IdentitySet, error)

	// ScanDistribution lists matching entries inside an archive
	ScanDistribution(ctx context.Context, file string, cfg entities.Configuration) (*entities.IdentitySet, error)
}
