package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vivid-arch/laravel-console/internal/domain"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	def := domain.DefaultConfig()
	if cfg.Paths.SourceDir != def.Paths.SourceDir {
		t.Fatalf("expected source dir=%s, got=%s", def.Paths.SourceDir, cfg.Paths.SourceDir)
	}
	if cfg.Extension != "php" {
		t.Fatalf("expected extension=php, got=%s", cfg.Extension)
	}
	if cfg.FoundationNamespace != `Vivid\Foundation` {
		t.Fatalf("unexpected foundation namespace %q", cfg.FoundationNamespace)
	}
}

func TestLoadConfig_AppliesFileOverDefaults(t *testing.T) {
	root := t.TempDir()

	// Partial config
	content := []byte("vivid:\n  paths:\n    source_dir: src\n  extension: .inc\n")
	if err := os.WriteFile(filepath.Join(root, ConfigFile), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Paths.SourceDir != "src" {
		t.Fatalf("expected source dir=src, got=%s", cfg.Paths.SourceDir)
	}
	if cfg.Extension != "inc" {
		t.Fatalf("expected extension=inc, got=%s", cfg.Extension)
	}
	if cfg.Paths.TestsDir != "tests" {
		t.Fatalf("expected default tests dir, got=%s", cfg.Paths.TestsDir)
	}
	if cfg.Manifest != "composer.json" {
		t.Fatalf("expected default manifest, got=%s", cfg.Manifest)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ConfigFile), []byte("vivid: [unclosed"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := LoadConfig(root)
	if !domain.IsKind(err, domain.KindConfiguration) {
		t.Fatalf("expected KindConfiguration, got: %v", err)
	}
}

func TestLoadConfig_EnvironmentWins(t *testing.T) {
	root := t.TempDir()
	content := []byte("vivid:\n  paths:\n    source_dir: src\n")
	if err := os.WriteFile(filepath.Join(root, ConfigFile), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("VIVID_SOURCE_DIR", "lib")

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Paths.SourceDir != "lib" {
		t.Fatalf("expected env source dir=lib, got=%s", cfg.Paths.SourceDir)
	}
}

func TestLoadConfig_ReadsDotEnv(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte("VIVID_STUBS_DIR=resources/stubs\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	// Register a restore, then clear so .env is allowed to set it.
	t.Setenv("VIVID_STUBS_DIR", "")
	if err := os.Unsetenv("VIVID_STUBS_DIR"); err != nil {
		t.Fatalf("unsetenv: %v", err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Paths.StubsDir != "resources/stubs" {
		t.Fatalf("expected stubs dir from .env, got=%q", cfg.Paths.StubsDir)
	}
}
