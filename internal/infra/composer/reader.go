// Package composer reads the PHP project manifest (composer.json).
package composer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/vivid-arch/laravel-console/internal/domain"
	"github.com/vivid-arch/laravel-console/internal/ports"
)

const psr4Path = `$.autoload["psr-4"]`

type Reader struct {
	path string
}

func NewReader(root string, opts ...Option) *Reader {
	r := &Reader{path: filepath.Join(root, domain.DefaultConfig().Manifest)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type Option func(*Reader)

// WithManifest overrides the manifest file name relative to root.
func WithManifest(root, name string) Option {
	return func(r *Reader) {
		if strings.TrimSpace(name) != "" {
			r.path = filepath.Join(root, name)
		}
	}
}

var _ ports.ManifestReader = (*Reader)(nil)

// RootNamespace returns the PSR-4 namespace whose directory is srcDir,
// without leading or trailing backslashes. When several namespaces map to
// srcDir the first one in the manifest wins.
func (r *Reader) RootNamespace(srcDir string) (string, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		return "", &domain.OpError{
			Op:   "composer.rootnamespace",
			Kind: domain.KindConfiguration,
			Path: r.path,
			Err:  err,
		}
	}

	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return "", &domain.OpError{
			Op:   "composer.rootnamespace",
			Kind: domain.KindConfiguration,
			Path: r.path,
			Err:  err,
		}
	}

	want := strings.Trim(filepath.ToSlash(srcDir), "/") + "/"

	// A missing autoload section is reported the same as an unmapped srcDir.
	if raw, err := jsonpath.Get(psr4Path, doc); err == nil {
		if mapping, ok := raw.(map[string]any); ok {
			for _, ns := range objectKeys(b, "autoload", "psr-4") {
				if matchesDir(mapping[ns], want) {
					return strings.Trim(ns, `\`), nil
				}
			}
		}
	}

	return "", &domain.Error{
		Kind:  domain.KindConfiguration,
		Msg:   fmt.Sprintf("App namespace not set in %s", filepath.Base(r.path)),
		Cause: domain.ErrConfiguration,
	}
}

// PSR-4 directories are a string or a list of strings.
func matchesDir(v any, want string) bool {
	switch d := v.(type) {
	case string:
		return normalizeDir(d) == want
	case []any:
		for _, item := range d {
			if s, ok := item.(string); ok && normalizeDir(s) == want {
				return true
			}
		}
	}
	return false
}

func normalizeDir(d string) string {
	d = strings.TrimPrefix(filepath.ToSlash(strings.TrimSpace(d)), "./")
	return strings.TrimSuffix(d, "/") + "/"
}

// objectKeys returns the keys of the object found at path in doc, in
// document order.
func objectKeys(doc []byte, path ...string) []string {
	dec := json.NewDecoder(bytes.NewReader(doc))
	for depth := 0; ; depth++ {
		if t, err := dec.Token(); err != nil || t != json.Delim('{') {
			return nil
		}
		if depth == len(path) {
			break
		}

		found := false
		for dec.More() {
			k, err := dec.Token()
			if err != nil {
				return nil
			}
			if k == path[depth] {
				found = true
				break
			}
			if err := skipValue(dec); err != nil {
				return nil
			}
		}
		if !found {
			return nil
		}
	}

	var keys []string
	for dec.More() {
		k, err := dec.Token()
		if err != nil {
			return keys
		}
		if s, ok := k.(string); ok {
			keys = append(keys, s)
		}
		if err := skipValue(dec); err != nil {
			return keys
		}
	}
	return keys
}

func skipValue(dec *json.Decoder) error {
	depth := 0
	for {
		t, err := dec.Token()
		if err != nil {
			return err
		}
		switch t {
		case json.Delim('{'), json.Delim('['):
			depth++
		case json.Delim('}'), json.Delim(']'):
			depth--
		}
		if depth == 0 {
			return nil
		}
	}
}
