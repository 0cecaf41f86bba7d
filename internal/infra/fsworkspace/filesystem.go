// Package fsworkspace is the filesystem adapter used by the generators.
package fsworkspace

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vivid-arch/laravel-console/internal/domain"
	"github.com/vivid-arch/laravel-console/internal/ports"
)

const (
	dirMode  fs.FileMode = 0o755
	fileMode fs.FileMode = 0o644
)

type Filesystem struct{}

func New() *Filesystem {
	return &Filesystem{}
}

var _ ports.Filesystem = (*Filesystem)(nil)

// Exists reports whether a file or directory exists at path.
func (f *Filesystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (f *Filesystem) CreateFile(path string, contents []byte) error {
	if err := f.CreateDirectory(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, contents, fileMode); err != nil {
		return &domain.OpError{
			Op:   "fsworkspace.createfile",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

// CreateDirectory creates path and any missing parents. An existing directory is fine.
func (f *Filesystem) CreateDirectory(path string) error {
	if err := os.MkdirAll(path, dirMode); err != nil {
		return &domain.OpError{
			Op:   "fsworkspace.createdirectory",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

func (f *Filesystem) ReadFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "fsworkspace.readfile",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	return b, nil
}

// Delete removes a file or a whole directory tree. Missing paths are ignored.
func (f *Filesystem) Delete(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return &domain.OpError{
			Op:   "fsworkspace.delete",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}
