package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vivid-arch/laravel-console/internal/app/layout"
	"github.com/vivid-arch/laravel-console/internal/app/template"
	"github.com/vivid-arch/laravel-console/internal/domain"
	"github.com/vivid-arch/laravel-console/internal/infra/composer"
	"github.com/vivid-arch/laravel-console/internal/infra/finder"
	"github.com/vivid-arch/laravel-console/internal/infra/fsworkspace"
	"github.com/vivid-arch/laravel-console/internal/infra/logger"
	"github.com/vivid-arch/laravel-console/internal/infra/workspacefinder"
	"github.com/vivid-arch/laravel-console/internal/ports"
	"github.com/vivid-arch/laravel-console/internal/usecase"
)

// projectCtx is everything a command needs about the project it runs in.
type projectCtx struct {
	root   string
	cfg    domain.Config
	layout *layout.Layout
	fs     ports.Filesystem
	stubs  *template.Library
	finder *finder.Finder

	cleanup func() error
}

func loadProject(opts *globalOptions) (*projectCtx, error) {
	root, err := resolveProjectRoot(opts.path)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	// Logging is best effort; a read-only project still gets its files listed.
	cleanup, _ := logger.Setup(logger.Config{Root: root, Debug: opts.debug})

	manifest := composer.NewReader(root, composer.WithManifest(root, cfg.Manifest))
	l := layout.New(root, cfg, manifest)
	fsys := fsworkspace.New()

	var stubOpts []template.Option
	if dir := strings.TrimSpace(cfg.Paths.StubsDir); dir != "" {
		stubOpts = append(stubOpts, template.WithOverrideDir(inProject(root, dir)))
	}

	logger.L().Debug("project.loaded",
		"root", root,
		"source_dir", l.SourceDirName(),
		"microservice", l.IsMicroservice(),
	)

	return &projectCtx{
		root:    root,
		cfg:     cfg,
		layout:  l,
		fs:      fsys,
		stubs:   template.NewLibrary(stubOpts...),
		finder:  finder.New(l, fsys),
		cleanup: cleanup,
	}, nil
}

func (p *projectCtx) deps() usecase.Deps {
	return usecase.Deps{
		Layout: p.layout,
		FS:     p.fs,
		Stubs:  p.stubs,
		Finder: p.finder,
		Logger: logger.L(),
	}
}

func (p *projectCtx) close() {
	if p.cleanup != nil {
		_ = p.cleanup()
	}
}

// withProject loads the project, runs fn and releases the log file.
func withProject(opts *globalOptions, fn func(p *projectCtx) error) error {
	p, err := loadProject(opts)
	if err != nil {
		return err
	}
	defer p.close()

	if err := fn(p); err != nil {
		logger.L().Error("command.failed", "err", err)
		return err
	}
	return nil
}

func resolveProjectRoot(pathFlag string) (string, error) {
	if p := strings.TrimSpace(pathFlag); p != "" {
		return workspacefinder.NewFinder().CheckRoot(p)
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	var locator ports.WorkspaceLocator = workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("project not found from %q (tip: run inside a Laravel project or pass --path): %w", wd, err)
	}
	return root, nil
}

func inProject(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}
