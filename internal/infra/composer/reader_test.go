package composer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vivid-arch/laravel-console/internal/domain"
)

func writeManifest(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, "composer.json"), []byte(content), 0o644); err != nil {
		t.Fatalf("write composer.json: %v", err)
	}
}

func TestRootNamespace_MatchesSourceDir(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `{
  "autoload": {
    "psr-4": {
      "Database\\Factories\\": "database/factories/",
      "App\\": "app/"
    }
  }
}`)

	ns, err := NewReader(root).RootNamespace("app")
	if err != nil {
		t.Fatalf("RootNamespace error: %v", err)
	}
	if ns != "App" {
		t.Fatalf("expected App, got %q", ns)
	}
}

func TestRootNamespace_ListOfDirectories(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `{"autoload": {"psr-4": {"Acme\\Shop\\": ["lib/", "./src"]}}}`)

	ns, err := NewReader(root).RootNamespace("src")
	if err != nil {
		t.Fatalf("RootNamespace error: %v", err)
	}
	if ns != `Acme\Shop` {
		t.Fatalf("expected Acme\\Shop, got %q", ns)
	}
}

func TestRootNamespace_NotMapped(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `{"autoload": {"psr-4": {"App\\": "app/"}}}`)

	_, err := NewReader(root).RootNamespace("src")
	if !domain.IsKind(err, domain.KindConfiguration) {
		t.Fatalf("expected KindConfiguration, got %v", err)
	}
	if !errors.Is(err, domain.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration in chain, got %v", err)
	}
}

func TestRootNamespace_NoAutoload(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `{"name": "acme/app"}`)

	_, err := NewReader(root).RootNamespace("app")
	if !domain.IsKind(err, domain.KindConfiguration) {
		t.Fatalf("expected KindConfiguration, got %v", err)
	}
}

func TestRootNamespace_MissingManifest(t *testing.T) {
	_, err := NewReader(t.TempDir()).RootNamespace("app")
	if !domain.IsKind(err, domain.KindConfiguration) {
		t.Fatalf("expected KindConfiguration, got %v", err)
	}
}

func TestRootNamespace_CustomManifest(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte(`{"autoload": {"psr-4": {"Svc\\": "app/"}}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	ns, err := NewReader(root, WithManifest(root, "package.json")).RootNamespace("app")
	if err != nil {
		t.Fatalf("RootNamespace error: %v", err)
	}
	if ns != "Svc" {
		t.Fatalf("expected Svc, got %q", ns)
	}
}

func TestRootNamespace_FirstMappingInManifestOrder(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `{
  "name": "acme/shop",
  "require": {"php": "^8.2", "laravel/framework": {"version": "^11"}},
  "autoload": {
    "classmap": ["database"],
    "psr-4": {
      "Zed\\": "app/",
      "Tests\\": ["tests/", "spec/"],
      "App\\": "app/"
    }
  }
}`)

	ns, err := NewReader(root).RootNamespace("app")
	if err != nil {
		t.Fatalf("RootNamespace error: %v", err)
	}
	if ns != "Zed" {
		t.Fatalf("expected the first mapping Zed, got %q", ns)
	}
}

func TestObjectKeys(t *testing.T) {
	doc := []byte(`{"a": [1, {"b": 2}], "autoload": {"files": ["x.php"], "psr-4": {"Z\\": "z/", "A\\": ["a/"], "M\\": {"odd": true}}}}`)

	got := objectKeys(doc, "autoload", "psr-4")
	want := []string{`Z\`, `A\`, `M\`}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	if keys := objectKeys(doc, "autoload", "psr-0"); keys != nil {
		t.Fatalf("expected no keys for a missing path, got %v", keys)
	}
	if keys := objectKeys([]byte(`[]`), "autoload"); keys != nil {
		t.Fatalf("expected no keys for a non-object document, got %v", keys)
	}
}
