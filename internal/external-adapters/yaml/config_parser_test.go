package yaml

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// rejectBrackets is a stand-in validator that refuses patterns with '['
type rejectBrackets struct{}

func (rejectBrackets) Validate(pattern string) error {
	if strings.Contains(pattern, "[") {
		return errors.New("invalid ignore pattern")
	}
	return nil
}

func TestConfigParser_Parse_Valid(t *testing.T) {
	parser := NewConfigParser(rejectBrackets{})
	yamlData := []byte(`fileTypes: [jar, war]
directories:
  - target/lib
  - /opt/app/lib
distributions:
  - target/my-app-dist.zip
ignoreFiles:
  - "**/hibernate-core-1.2.3.jar"
verbose: true
`)

	cfg, err := parser.Parse(yamlData)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if !reflect.DeepEqual(cfg.FileTypes, []string{"jar", "war"}) {
		t.Errorf("FileTypes = %v, want [jar war]", cfg.FileTypes)
	}
	if len(cfg.Directories) != 2 {
		t.Errorf("Directories count = %d, want 2", len(cfg.Directories))
	}
	if cfg.Distributions[0] != "target/my-app-dist.zip" {
		t.Errorf("Distributions[0] = %v, want target/my-app-dist.zip", cfg.Distributions[0])
	}
	if cfg.IgnoreFiles[0] != "**/hibernate-core-1.2.3.jar" {
		t.Errorf("IgnoreFiles[0] = %v, want **/hibernate-core-1.2.3.jar", cfg.IgnoreFiles[0])
	}
	if !cfg.Verbose {
		t.Error("Verbose should be true")
	}
}

func TestConfigParser_Parse_Empty(t *testing.T) {
	parser := NewConfigParser(nil)

	cfg, err := parser.Parse([]byte(``))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	normalized := cfg.Normalize()
	if !reflect.DeepEqual(normalized.FileTypes, []string{"jar"}) {
		t.Errorf("FileTypes = %v, want default [jar]", normalized.FileTypes)
	}
}

func TestConfigParser_Parse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "directory: target/lib\n"},
		{"invalid yaml", "directories:\n  - a\n invalid: [broken yaml\n"},
		{"sequence document", "[]\n"},
		{"empty file type", "fileTypes: [jar, \"\"]\n"},
		{"empty directory", "directories: [\"  \"]\n"},
		{"empty distribution", "distributions: [\"\"]\n"},
		{"bad ignore pattern", "ignoreFiles: [\"lib/[x.jar\"]\n"},
	}

	parser := NewConfigParser(rejectBrackets{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parser.Parse([]byte(tt.data)); err == nil {
				t.Errorf("Parse() should return error for %s", tt.name)
			}
		})
	}
}
