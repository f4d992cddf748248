package yaml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ochairo/prodverify/internal/domain/entities"
)

func TestConfigRepository_Load_ResolvesRelativePaths(t *testing.T) {
	tmpDir := t.TempDir()

	testYAML := []byte(`directories:
  - target/lib
  - /opt/app/lib
distributions:
  - dist/app.zip
`)
	configPath := filepath.Join(tmpDir, "prodverify.yml")
	if err := os.WriteFile(configPath, testYAML, 0600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	repo := NewConfigRepository(nil)
	cfg, err := repo.Load(context.Background(), configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	base, _ := filepath.Abs(tmpDir)
	if want := filepath.Join(base, "target", "lib"); cfg.Directories[0] != want {
		t.Errorf("Directories[0] = %v, want %v", cfg.Directories[0], want)
	}
	if cfg.Directories[1] != "/opt/app/lib" {
		t.Errorf("Directories[1] = %v, want /opt/app/lib", cfg.Directories[1])
	}
	if want := filepath.Join(base, "dist", "app.zip"); cfg.Distributions[0] != want {
		t.Errorf("Distributions[0] = %v, want %v", cfg.Distributions[0], want)
	}
}

func TestConfigRepository_Load_NotFound(t *testing.T) {
	repo := NewConfigRepository(nil)

	_, err := repo.Load(context.Background(), filepath.Join(t.TempDir(), "missing.yml"))

	var cfgErr *entities.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Load() error = %v, want ConfigurationError", err)
	}
}

func TestConfigRepository_Load_Invalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "prodverify.yml")
	if err := os.WriteFile(configPath, []byte("bogus: true\n"), 0600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := NewConfigRepository(nil).Load(context.Background(), configPath)

	if entities.ExitCode(err) != entities.ExitConfiguration {
		t.Errorf("ExitCode() = %d, want %d", entities.ExitCode(err), entities.ExitConfiguration)
	}
}
