package fsworkspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vivid-arch/laravel-console/internal/domain"
)

func TestCreateFile_CreatesParents(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "app", "Devices", "Web", ".gitkeep")

	fsys := New()
	if err := fsys.CreateFile(path, nil); err != nil {
		t.Fatalf("CreateFile error: %v", err)
	}
	if !fsys.Exists(path) {
		t.Fatalf("expected %s to exist", path)
	}

	info, err := os.Stat(filepath.Dir(path))
	if err != nil || !info.IsDir() {
		t.Fatalf("expected parent directory, err=%v", err)
	}
}

func TestCreateDirectory_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "a", "b")

	fsys := New()
	if err := fsys.CreateDirectory(dir); err != nil {
		t.Fatalf("first CreateDirectory: %v", err)
	}
	if err := fsys.CreateDirectory(dir); err != nil {
		t.Fatalf("second CreateDirectory: %v", err)
	}
}

func TestReadFile_RoundTripAndMissing(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "Job.php")

	fsys := New()
	if err := fsys.CreateFile(path, []byte("<?php\n")); err != nil {
		t.Fatalf("CreateFile error: %v", err)
	}
	b, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(b) != "<?php\n" {
		t.Fatalf("unexpected content %q", string(b))
	}

	_, err = fsys.ReadFile(filepath.Join(tmp, "missing.php"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestDelete_RemovesTree(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "Devices", "Web")

	fsys := New()
	if err := fsys.CreateFile(filepath.Join(dir, "routes", "web.php"), []byte("x")); err != nil {
		t.Fatalf("CreateFile error: %v", err)
	}
	if err := fsys.Delete(dir); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if fsys.Exists(dir) {
		t.Fatalf("expected %s to be removed", dir)
	}
	if err := fsys.Delete(dir); err != nil {
		t.Fatalf("deleting a missing path must succeed, got %v", err)
	}
}

func TestCreateFile_FailsUnderAFile(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	err := New().CreateFile(filepath.Join(blocker, "child.php"), nil)
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected KindExecution, got %v", err)
	}
}
