package workspacefinder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vivid-arch/laravel-console/internal/domain"
)

// Finder locates a project root by searching upward for its manifest file.
type Finder struct {
	ManifestFile string // defaults to "composer.json"
}

func NewFinder() *Finder {
	return &Finder{ManifestFile: domain.DefaultConfig().Manifest}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidArgument,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		manifest := filepath.Join(cur, f.ManifestFile)
		if info, err := os.Stat(manifest); err == nil && !info.IsDir() {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

// CheckRoot validates a directory given explicitly as the project root. It
// must exist and hold the manifest or the vivid.yaml that names one.
func (f *Finder) CheckRoot(dir string) (string, error) {
	if dir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.checkroot",
			Kind: domain.KindInvalidArgument,
			Err:  errors.New("dir is empty"),
		}
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.checkroot",
			Kind: domain.KindInvalidArgument,
			Path: dir,
			Err:  err,
		}
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", domain.NotFound("Project directory %s does not exist.", abs)
	case err != nil:
		return "", &domain.OpError{
			Op:   "workspacefinder.checkroot",
			Kind: domain.KindExecution,
			Path: abs,
			Err:  err,
		}
	case !info.IsDir():
		return "", &domain.Error{
			Kind:  domain.KindInvalidArgument,
			Msg:   fmt.Sprintf("Project path %s is not a directory.", abs),
			Cause: domain.ErrInvalidArgument,
		}
	}

	for _, marker := range []string{f.ManifestFile, ConfigFile} {
		if info, err := os.Stat(filepath.Join(abs, marker)); err == nil && !info.IsDir() {
			return abs, nil
		}
	}
	return "", domain.NotFound("No %s found in %s.", f.ManifestFile, abs)
}
