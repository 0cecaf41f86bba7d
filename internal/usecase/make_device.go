package usecase

import (
	"path/filepath"

	"github.com/vivid-arch/laravel-console/internal/app/template"
	"github.com/vivid-arch/laravel-console/internal/domain"
)

// Directories created (with a .gitkeep) inside every new device.
var deviceDirectories = []string{
	"Console",
	"database",
	"database/factories",
	"database/migrations",
	"database/seeds",
	"Http",
	"Http/Controllers",
	"Http/Middleware",
	"Http/Requests",
	"Providers",
	"Features",
	"routes",
	"Tests",
	"Tests/Features",
}

var resourceDirectories = []string{"js", "lang", "sass", "views"}

type MakeDevice struct {
	generator
}

func NewMakeDevice(d Deps) *MakeDevice {
	return &MakeDevice{generator: newGenerator(d)}
}

// Execute creates the device skeleton: directories, service providers and
// route files, plus the resources tree when withAssets is set.
func (uc *MakeDevice) Execute(name string, withAssets bool) (domain.Device, error) {
	name = domain.DeviceName(name)
	if name == "" {
		return domain.Device{}, invalidName("device")
	}

	path := uc.Layout.DevicePath(name)
	if err := uc.ensureAbsent(path, "Device %s already exists!", name); err != nil {
		return domain.Device{}, err
	}

	providers, err := uc.Layout.ProvidersNamespace(name)
	if err != nil {
		return domain.Device{}, err
	}
	controllers, err := uc.Layout.ControllerNamespace(name)
	if err != nil {
		return domain.Device{}, err
	}

	slug := domain.Snake(name)
	resources := uc.Layout.ResourcesPath(name)

	if err := uc.keep(path); err != nil {
		return domain.Device{}, err
	}
	for _, dir := range deviceDirectories {
		if err := uc.keep(filepath.Join(path, filepath.FromSlash(dir))); err != nil {
			return domain.Device{}, err
		}
	}

	files := []struct {
		path string
		stub string
		vars map[string]string
	}{
		{
			path: filepath.Join(path, "Providers", uc.Layout.FileName(name+"ServiceProvider")),
			stub: template.ServiceProvider,
			vars: map[string]string{
				"name":      name,
				"slug":      slug,
				"namespace": providers,
				"resources": filepath.ToSlash(uc.Layout.Relative(resources)),
			},
		},
		{
			path: filepath.Join(path, "Providers", uc.Layout.FileName("RouteServiceProvider")),
			stub: template.RouteServiceProvider,
			vars: map[string]string{
				"name":                  name,
				"namespace":             providers,
				"controllers_namespace": controllers,
				"foundation_namespace":  uc.Layout.FoundationNamespace(),
			},
		},
		{
			path: filepath.Join(path, "routes", uc.Layout.FileName("api")),
			stub: template.RoutesAPI,
			vars: uc.routeVars(name, slug),
		},
		{
			path: filepath.Join(path, "routes", uc.Layout.FileName("web")),
			stub: template.RoutesWeb,
			vars: uc.routeVars(name, slug),
		},
	}
	for _, f := range files {
		if _, err := uc.writeStub(f.path, f.stub, f.vars); err != nil {
			return domain.Device{}, err
		}
	}

	if withAssets {
		for _, dir := range resourceDirectories {
			if err := uc.keep(filepath.Join(resources, dir)); err != nil {
				return domain.Device{}, err
			}
		}
		welcome := filepath.Join(resources, "views", "welcome.blade.php")
		if _, err := uc.writeStub(welcome, template.WelcomeView, nil); err != nil {
			return domain.Device{}, err
		}
	}

	uc.logCreated("device", path, "assets", withAssets)
	return domain.NewDevice(name, path, uc.Layout.Relative(path)), nil
}

func (uc *MakeDevice) routeVars(name, slug string) map[string]string {
	return map[string]string{
		"slug":             slug,
		"controllers_path": filepath.ToSlash(uc.Layout.Relative(uc.Layout.ControllersPath(name))),
	}
}

func invalidName(kind string) error {
	return &domain.Error{
		Kind:  domain.KindInvalidArgument,
		Msg:   "a " + kind + " name is required",
		Cause: domain.ErrInvalidArgument,
	}
}
