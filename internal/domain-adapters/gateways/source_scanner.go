package gateways

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ochairo/prodverify/internal/domain/entities"
	"github.com/ochairo/prodverify/internal/domain/interfaces"
	domaingateways "github.com/ochairo/prodverify/internal/domain/interfaces/gateways"
)

// SourceScanner discovers artifact identities in directories and distributions
type SourceScanner struct {
	lister   domaingateways.DirectoryLister
	archives domaingateways.ArchiveReader
	logger   interfaces.Logger
}

// NewSourceScanner creates a scanner over the given filesystem primitives
func NewSourceScanner(lister domaingateways.DirectoryLister, archives domaingateways.ArchiveReader, logger interfaces.Logger) *SourceScanner {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &SourceScanner{
		lister:   lister,
		archives: archives,
		logger:   logger,
	}
}

// ScanDirectory returns "<canonical-dir>::<file-name>" for each regular file
// directly inside dir whose extension is a configured file type
func (s *SourceScanner) ScanDirectory(ctx context.Context, dir string, cfg entities.Configuration) (*entities.IdentitySet, error) {
	if !s.lister.IsDirectory(dir) {
		return nil, entities.NewNotADirectoryError(dir, nil)
	}

	canonical, err := s.lister.Canonicalize(dir)
	if err != nil {
		return nil, entities.NewNotADirectoryError(dir, err)
	}
	s.verbose(cfg, "Scanning directory: "+canonical)

	files, err := s.lister.ListRegularFiles(ctx, canonical)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", canonical, err)
	}

	found := entities.NewIdentitySet()
	for _, name := range files {
		if s.isDependencyFile(cfg, name) {
			found.Add(entities.NewArtifactIdentity(canonical, name))
		}
	}

	s.verbose(cfg, fmt.Sprintf("Scanned %d files in directory: %s", len(files), canonical))
	s.verbose(cfg, fmt.Sprintf("Found %d dependency files in directory: %s", found.Len(), canonical))
	s.traceKept(cfg, found)

	return found, nil
}

// ScanDistribution returns "<distribution-name>::<entry-path>" for each
// non-directory entry with a configured file type. Entry paths are kept
// exactly as stored in the archive.
func (s *SourceScanner) ScanDistribution(ctx context.Context, file string, cfg entities.Configuration) (*entities.IdentitySet, error) {
	name := filepath.Base(file)
	s.verbose(cfg, "Scanning distribution: "+name)

	archiveEntries, err := s.archives.Entries(ctx, file)
	if err != nil {
		return nil, &entities.IOError{Distribution: name, Err: err}
	}

	found := entities.NewIdentitySet()
	regular := 0
	for _, entry := range archiveEntries {
		if entry.IsDir {
			continue
		}
		regular++

		if s.isDependencyFile(cfg, entry.Name) {
			id := entities.NewArtifactIdentity(name, entry.Name)
			found.Add(id)
			s.verbose(cfg, "Found dependency in zip: "+id.String())
		}
	}

	s.verbose(cfg, fmt.Sprintf("Distribution %s: total entries=%d, regular files=%d, dependency files=%d",
		name, len(archiveEntries), regular, found.Len()))
	s.verbose(cfg, fmt.Sprintf("Found %d dependency files in distribution: %s", found.Len(), name))
	s.traceKept(cfg, found)

	return found, nil
}

// isDependencyFile checks the extension after the last '.' against the
// configured file types. Names without a '.' never match.
func (s *SourceScanner) isDependencyFile(cfg entities.Configuration, file string) bool {
	dotIdx := strings.LastIndex(file, ".")
	if dotIdx < 0 {
		return false
	}

	extension := file[dotIdx+1:]
	if !cfg.HasFileType(extension) {
		s.verbose(cfg, fmt.Sprintf("File extension '%s' not in fileTypes %v: %s", extension, cfg.FileTypes, file))
		return false
	}
	return true
}

func (s *SourceScanner) traceKept(cfg entities.Configuration, found *entities.IdentitySet) {
	if !cfg.Verbose {
		return
	}
	for _, id := range found.Sorted() {
		s.verbose(cfg, "  - "+id.String())
	}
}

func (s *SourceScanner) verbose(cfg entities.Configuration, msg string) {
	if cfg.Verbose {
		s.logger.Info(interfaces.VerbosePrefix + msg)
	}
}
