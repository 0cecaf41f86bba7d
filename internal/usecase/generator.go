package usecase

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/vivid-arch/laravel-console/internal/app/layout"
	"github.com/vivid-arch/laravel-console/internal/domain"
	"github.com/vivid-arch/laravel-console/internal/ports"
)

// Deps are shared by every generator.
type Deps struct {
	Layout *layout.Layout
	FS     ports.Filesystem
	Stubs  ports.TemplateRenderer
	Finder ports.UnitFinder
	Logger *slog.Logger
}

// generator holds the steps common to every make use case.
type generator struct {
	Deps
}

func newGenerator(d Deps) generator {
	if d.Logger == nil {
		d.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return generator{Deps: d}
}

// ensureAbsent fails with AlreadyExists when path is on disk.
func (g generator) ensureAbsent(path, format string, args ...any) error {
	if g.FS.Exists(path) {
		return domain.AlreadyExists(format, args...)
	}
	return nil
}

// device resolves the owning device; an empty name means none.
func (g generator) device(name string) (*domain.Device, error) {
	if name == "" {
		return nil, nil
	}
	d, err := g.Finder.FindDevice(name)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// requireDevice is device for units that cannot live outside one.
func (g generator) requireDevice(kind, name string) (*domain.Device, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &domain.Error{
			Kind:  domain.KindInvalidArgument,
			Msg:   kind + " requires a device",
			Cause: domain.ErrInvalidArgument,
		}
	}
	return g.device(name)
}

// writeStub renders stub with vars and writes it at path.
func (g generator) writeStub(path, stub string, vars map[string]string) (string, error) {
	content, err := g.Stubs.Render(stub, vars)
	if err != nil {
		return "", err
	}
	if err := g.FS.CreateFile(path, []byte(content)); err != nil {
		return "", err
	}
	return content, nil
}

// keep creates dir with an empty .gitkeep so that it survives in version control.
func (g generator) keep(dir string) error {
	if err := g.FS.CreateDirectory(dir); err != nil {
		return err
	}
	return g.FS.CreateFile(filepath.Join(dir, ".gitkeep"), nil)
}

func (g generator) logCreated(kind, path string, attrs ...any) {
	g.Logger.Info("make."+kind, append([]any{"path", g.Layout.Relative(path)}, attrs...)...)
}

// writeTest writes a companion test unless one is already there.
func (g generator) writeTest(path, stub string, vars map[string]string) error {
	if g.FS.Exists(path) {
		g.Logger.Debug("make.test.skipped", "path", g.Layout.Relative(path))
		return nil
	}
	_, err := g.writeStub(path, stub, vars)
	return err
}
