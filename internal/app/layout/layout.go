// Package layout maps logical unit names to filesystem paths and PHP namespaces
// following the Vivid directory conventions. Path functions are pure; namespace
// functions depend on the root namespace declared in the project manifest.
package layout

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/vivid-arch/laravel-console/internal/domain"
	"github.com/vivid-arch/laravel-console/internal/ports"
)

const nsSep = `\`

type Layout struct {
	base         string
	cfg          domain.Config
	manifest     ports.ManifestReader
	microservice bool
}

// New builds the layout of the project at base. When the configured source
// directory differs from the application directory and does not exist, the
// project is a microservice and its units live under the application directory.
func New(base string, cfg domain.Config, manifest ports.ManifestReader) *Layout {
	l := &Layout{
		base:     filepath.Clean(base),
		cfg:      cfg,
		manifest: manifest,
	}
	if cfg.Paths.SourceDir != cfg.Paths.AppDir {
		if _, err := os.Stat(filepath.Join(l.base, cfg.Paths.SourceDir)); err != nil {
			l.microservice = true
		}
	}
	return l
}

func (l *Layout) Base() string                 { return l.base }
func (l *Layout) Config() domain.Config        { return l.cfg }
func (l *Layout) IsMicroservice() bool         { return l.microservice }
func (l *Layout) Extension() string            { return "." + strings.TrimPrefix(l.cfg.Extension, ".") }
func (l *Layout) FileName(class string) string { return class + l.Extension() }

// SourceDirName is the directory (relative to the base) holding devices and domains.
func (l *Layout) SourceDirName() string {
	if l.microservice {
		return l.cfg.Paths.AppDir
	}
	return l.cfg.Paths.SourceDir
}

func (l *Layout) SourceRoot() string { return filepath.Join(l.base, l.SourceDirName()) }
func (l *Layout) AppPath() string    { return filepath.Join(l.base, l.cfg.Paths.AppDir) }
func (l *Layout) TestsPath() string  { return filepath.Join(l.base, l.cfg.Paths.TestsDir) }

// Relative returns path relative to the project base, so it starts with the
// source directory name. Paths outside the base are returned unchanged.
func (l *Layout) Relative(path string) string {
	rel, err := filepath.Rel(l.base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// Devices

func (l *Layout) DevicesRoot() string { return filepath.Join(l.SourceRoot(), "Devices") }

// DevicePath is the application path when device is empty (single-service installs).
func (l *Layout) DevicePath(device string) string {
	if device == "" {
		return l.AppPath()
	}
	return filepath.Join(l.DevicesRoot(), device)
}

func (l *Layout) ResourcesPath(device string) string {
	return filepath.Join(l.base, "resources", "devices", domain.LowerFirst(device))
}

// Features

func (l *Layout) FeaturesRoot(device string) string {
	return filepath.Join(l.DevicePath(device), "Features")
}

func (l *Layout) FeaturePath(device, feature string) string {
	return filepath.Join(l.FeaturesRoot(device), l.FileName(feature))
}

func (l *Layout) FeatureTestPath(device, test string) string {
	root := l.TestsPath()
	if device != "" {
		root = filepath.Join(l.DevicePath(device), "Tests")
	}
	return filepath.Join(root, "Features", l.FileName(test))
}

// Operations

func (l *Layout) OperationsRoot(device string) string {
	if device == "" {
		return filepath.Join(l.SourceRoot(), "Operations")
	}
	return filepath.Join(l.DevicePath(device), "Operations")
}

func (l *Layout) OperationPath(device, operation string) string {
	return filepath.Join(l.OperationsRoot(device), l.FileName(operation))
}

func (l *Layout) OperationTestPath(device, test string) string {
	root := l.TestsPath()
	if device != "" {
		root = filepath.Join(l.DevicePath(device), "Tests")
	}
	return filepath.Join(root, "Operations", l.FileName(test))
}

// Domains and jobs

func (l *Layout) DomainsRoot() string { return filepath.Join(l.SourceRoot(), "Domains") }

func (l *Layout) DomainPath(name string) string {
	return filepath.Join(l.DomainsRoot(), name)
}

func (l *Layout) JobsRoot(domainName string) string {
	return filepath.Join(l.DomainPath(domainName), "Jobs")
}

func (l *Layout) JobPath(domainName, job string) string {
	return filepath.Join(l.JobsRoot(domainName), l.FileName(job))
}

// DomainTestsPath lives under the tests directory in a microservice.
func (l *Layout) DomainTestsPath(domainName string) string {
	if l.microservice {
		return filepath.Join(l.TestsPath(), "Domains", domainName)
	}
	return filepath.Join(l.DomainPath(domainName), "Tests")
}

func (l *Layout) JobTestPath(domainName, test string) string {
	return filepath.Join(l.DomainTestsPath(domainName), "Jobs", l.FileName(test))
}

// HTTP

func (l *Layout) ControllersPath(device string) string {
	return filepath.Join(l.DevicePath(device), "Http", "Controllers")
}

func (l *Layout) ControllerPath(device, controller string) string {
	return filepath.Join(l.ControllersPath(device), l.FileName(controller))
}

func (l *Layout) RequestsPath(device string) string {
	return filepath.Join(l.DevicePath(device), "Http", "Requests")
}

func (l *Layout) RequestPath(device, request string) string {
	return filepath.Join(l.RequestsPath(device), l.FileName(request))
}

// Policies and models

func (l *Layout) PoliciesPath() string { return filepath.Join(l.SourceRoot(), "Policies") }

func (l *Layout) PolicyPath(policy string) string {
	return filepath.Join(l.PoliciesPath(), l.FileName(policy))
}

func (l *Layout) ModelsPath() string { return filepath.Join(l.SourceRoot(), "Data") }

func (l *Layout) ModelPath(model string) string {
	return filepath.Join(l.ModelsPath(), l.FileName(model))
}
