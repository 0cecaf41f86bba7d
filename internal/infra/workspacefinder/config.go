package workspacefinder

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vivid-arch/laravel-console/internal/domain"
)

// ConfigFile is the optional per-project configuration file.
const ConfigFile = "vivid.yaml"

// LoadConfig loads vivid.yaml from the project root and applies defaults.
// A missing file is not an error. VIVID_* variables from the process
// environment, or from the project's .env file, take precedence over the file.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindConfiguration,
			Path: path,
			Err:  err,
		}
	default:
		var y yamlConfig
		if err := yaml.Unmarshal(b, &y); err != nil {
			return cfg, &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindConfiguration,
				Path: path,
				Err:  err,
			}
		}
		applyYAML(&cfg, y)
	}

	if err := applyEnv(root, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func applyYAML(cfg *domain.Config, y yamlConfig) {
	if y.Vivid.Paths.SourceDir != "" {
		cfg.Paths.SourceDir = y.Vivid.Paths.SourceDir
	}
	if y.Vivid.Paths.AppDir != "" {
		cfg.Paths.AppDir = y.Vivid.Paths.AppDir
	}
	if y.Vivid.Paths.TestsDir != "" {
		cfg.Paths.TestsDir = y.Vivid.Paths.TestsDir
	}
	if y.Vivid.Paths.StubsDir != "" {
		cfg.Paths.StubsDir = y.Vivid.Paths.StubsDir
	}
	if y.Vivid.Manifest != "" {
		cfg.Manifest = y.Vivid.Manifest
	}
	if y.Vivid.Extension != "" {
		cfg.Extension = strings.TrimPrefix(y.Vivid.Extension, ".")
	}
	if y.Vivid.FoundationNamespace != "" {
		cfg.FoundationNamespace = strings.Trim(y.Vivid.FoundationNamespace, `\`)
	}
}

func applyEnv(root string, cfg *domain.Config) error {
	dotenv := filepath.Join(root, ".env")
	if _, err := os.Stat(dotenv); err == nil {
		// Load never overrides variables already set in the process.
		if err := godotenv.Load(dotenv); err != nil {
			return &domain.OpError{
				Op:   "workspacefinder.loadenv",
				Kind: domain.KindConfiguration,
				Path: dotenv,
				Err:  err,
			}
		}
	}

	var e yamlVivid
	if err := cleanenv.ReadEnv(&e); err != nil {
		return &domain.OpError{
			Op:   "workspacefinder.loadenv",
			Kind: domain.KindConfiguration,
			Err:  err,
		}
	}

	applyYAML(cfg, yamlConfig{Vivid: e})
	return nil
}

type yamlConfig struct {
	Vivid yamlVivid `yaml:"vivid"`
}

type yamlVivid struct {
	Paths struct {
		SourceDir string `yaml:"source_dir" env:"VIVID_SOURCE_DIR"`
		AppDir    string `yaml:"app_dir" env:"VIVID_APP_DIR"`
		TestsDir  string `yaml:"tests_dir" env:"VIVID_TESTS_DIR"`
		StubsDir  string `yaml:"stubs_dir" env:"VIVID_STUBS_DIR"`
	} `yaml:"paths"`

	Manifest            string `yaml:"manifest" env:"VIVID_MANIFEST"`
	Extension           string `yaml:"extension" env:"VIVID_EXTENSION"`
	FoundationNamespace string `yaml:"foundation_namespace" env:"VIVID_FOUNDATION_NAMESPACE"`
}
