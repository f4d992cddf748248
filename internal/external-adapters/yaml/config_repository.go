package yaml

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ochairo/prodverify/internal/domain/entities"
)

// ConfigRepository implements repositories.ConfigRepository using YAML files
type ConfigRepository struct {
	parser *ConfigParser
}

// NewConfigRepository creates a new YAML-based config repository
func NewConfigRepository(parser *ConfigParser) *ConfigRepository {
	if parser == nil {
		parser = NewConfigParser(nil)
	}
	return &ConfigRepository{parser: parser}
}

// Load reads the config file at path. Relative directory and distribution
// paths are resolved against the directory holding the config file.
func (r *ConfigRepository) Load(_ context.Context, path string) (*entities.Configuration, error) {
	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &entities.ConfigurationError{Path: path, Reason: "config file not found"}
	}

	cfg, err := r.parser.ParseFile(path)
	if err != nil {
		return nil, &entities.ConfigurationError{Path: path, Reason: "invalid config file", Err: err}
	}

	baseDir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config directory: %w", err)
	}
	cfg.Directories = resolveAll(baseDir, cfg.Directories)
	cfg.Distributions = resolveAll(baseDir, cfg.Distributions)

	return cfg, nil
}

func resolveAll(baseDir string, paths []string) []string {
	if paths == nil {
		return nil
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(baseDir, p)
		}
		out = append(out, p)
	}
	return out
}
