// Package yaml provides YAML-based configuration parsing and repository implementations.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ochairo/prodverify/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// yamlConfig represents the raw YAML structure
type yamlConfig struct {
	FileTypes     []string `yaml:"fileTypes"`
	Directories   []string `yaml:"directories"`
	Distributions []string `yaml:"distributions"`
	IgnoreFiles   []string `yaml:"ignoreFiles"`
	Verbose       bool     `yaml:"verbose"`
}

// PatternValidator checks ignore patterns while parsing
type PatternValidator interface {
	Validate(pattern string) error
}

// ConfigParser parses YAML verification config files
type ConfigParser struct {
	patterns PatternValidator
}

// NewConfigParser creates a new YAML parser.
// A nil validator accepts every ignore pattern.
func NewConfigParser(patterns PatternValidator) *ConfigParser {
	return &ConfigParser{patterns: patterns}
}

// ParseFile parses a YAML config file into a Configuration entity
func (p *ConfigParser) ParseFile(filePath string) (*entities.Configuration, error) {
	//nolint:gosec // G304: filePath is the user-provided config file
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data)
}

// Parse parses YAML bytes into a Configuration entity.
// Unknown keys are rejected; an empty document yields an empty configuration.
func (p *ConfigParser) Parse(data []byte) (*entities.Configuration, error) {
	var raw yamlConfig

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate fields
	for _, fileType := range raw.FileTypes {
		if strings.TrimSpace(fileType) == "" {
			return nil, fmt.Errorf("fileTypes must not contain empty entries")
		}
	}
	for _, dir := range raw.Directories {
		if strings.TrimSpace(dir) == "" {
			return nil, fmt.Errorf("directories must not contain empty entries")
		}
	}
	for _, dist := range raw.Distributions {
		if strings.TrimSpace(dist) == "" {
			return nil, fmt.Errorf("distributions must not contain empty entries")
		}
	}
	if p.patterns != nil {
		for _, pattern := range raw.IgnoreFiles {
			if err := p.patterns.Validate(pattern); err != nil {
				return nil, err
			}
		}
	}

	// Convert to domain entity
	cfg := &entities.Configuration{
		FileTypes:     raw.FileTypes,
		Directories:   raw.Directories,
		Distributions: raw.Distributions,
		IgnoreFiles:   raw.IgnoreFiles,
		Verbose:       raw.Verbose,
	}

	return cfg, nil
}
