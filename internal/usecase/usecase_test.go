package usecase

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vivid-arch/laravel-console/internal/app/layout"
	"github.com/vivid-arch/laravel-console/internal/app/template"
	"github.com/vivid-arch/laravel-console/internal/domain"
	"github.com/vivid-arch/laravel-console/internal/infra/composer"
	"github.com/vivid-arch/laravel-console/internal/infra/finder"
	"github.com/vivid-arch/laravel-console/internal/infra/fsworkspace"
)

const composerJSON = `{"autoload": {"psr-4": {"App\\": "app/"}}}`

type project struct {
	root   string
	deps   Deps
	finder *finder.Finder
	log    *bytes.Buffer
}

func newProject(t *testing.T) project {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "composer.json"), []byte(composerJSON), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "app"), 0o755))

	l := layout.New(root, domain.DefaultConfig(), composer.NewReader(root))
	fsys := fsworkspace.New()
	f := finder.New(l, fsys)

	var buf bytes.Buffer
	return project{
		root:   root,
		finder: f,
		log:    &buf,
		deps: Deps{
			Layout: l,
			FS:     fsys,
			Stubs:  template.NewLibrary(),
			Finder: f,
			Logger: slog.New(slog.NewJSONHandler(&buf, nil)),
		},
	}
}

func (p project) path(parts ...string) string {
	return filepath.Join(append([]string{p.root}, parts...)...)
}

func (p project) read(t *testing.T, parts ...string) string {
	t.Helper()
	b, err := os.ReadFile(p.path(parts...))
	require.NoError(t, err)
	return string(b)
}
