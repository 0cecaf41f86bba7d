package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivid-arch/laravel-console/internal/app/template"
	"github.com/vivid-arch/laravel-console/internal/domain"
)

func TestMakeDevice_CreatesSkeleton(t *testing.T) {
	p := newProject(t)

	device, err := NewMakeDevice(p.deps).Execute("admin panel", true)
	require.NoError(t, err)

	assert.Equal(t, "AdminPanel", device.Name)
	assert.Equal(t, "admin_panel", device.Slug)
	assert.Equal(t, p.path("app", "Devices", "AdminPanel"), device.RealPath)
	assert.Equal(t, filepath.Join("app", "Devices", "AdminPanel"), device.RelativePath)

	for _, dir := range deviceDirectories {
		assert.FileExists(t, filepath.Join(device.RealPath, filepath.FromSlash(dir), ".gitkeep"))
	}

	provider := p.read(t, "app", "Devices", "AdminPanel", "Providers", "AdminPanelServiceProvider.php")
	assert.Contains(t, provider, `namespace App\Devices\AdminPanel\Providers;`)
	assert.Contains(t, provider, "class AdminPanelServiceProvider extends ServiceProvider")
	assert.Contains(t, provider, "resources/devices/adminPanel/views")

	routes := p.read(t, "app", "Devices", "AdminPanel", "Providers", "RouteServiceProvider.php")
	assert.Contains(t, routes, `App\Devices\AdminPanel\Http\Controllers`)
	assert.Contains(t, routes, `use Vivid\Foundation\Providers\RouteServiceProvider as ServiceProvider;`)

	api := p.read(t, "app", "Devices", "AdminPanel", "routes", "api.php")
	assert.Contains(t, api, "'prefix' => 'admin_panel'")
	assert.Contains(t, api, "app/Devices/AdminPanel/Http/Controllers")
	assert.FileExists(t, p.path("app", "Devices", "AdminPanel", "routes", "web.php"))

	for _, dir := range resourceDirectories {
		assert.FileExists(t, p.path("resources", "devices", "adminPanel", dir, ".gitkeep"))
	}
	assert.FileExists(t, p.path("resources", "devices", "adminPanel", "views", "welcome.blade.php"))

	assert.Contains(t, p.log.String(), `"msg":"make.device"`)
}

func TestMakeDevice_WithoutAssets(t *testing.T) {
	p := newProject(t)

	_, err := NewMakeDevice(p.deps).Execute("Api", false)
	require.NoError(t, err)

	assert.NoDirExists(t, p.path("resources", "devices", "api"))
	assert.FileExists(t, p.path("app", "Devices", "Api", "routes", "api.php"))
}

func TestMakeDevice_AlreadyExists(t *testing.T) {
	p := newProject(t)
	uc := NewMakeDevice(p.deps)

	_, err := uc.Execute("Web", true)
	require.NoError(t, err)

	providerPath := p.path("app", "Devices", "Web", "Providers", "WebServiceProvider.php")
	require.NoError(t, os.WriteFile(providerPath, []byte("edited"), 0o644))

	_, err = uc.Execute("web", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.True(t, domain.IsKind(err, domain.KindAlreadyExists))
	assert.Equal(t, "edited", p.read(t, "app", "Devices", "Web", "Providers", "WebServiceProvider.php"))
}

func TestMakeDevice_RoundTrip(t *testing.T) {
	p := newProject(t)

	created, err := NewMakeDevice(p.deps).Execute("Web", false)
	require.NoError(t, err)

	found, err := p.finder.FindDevice("Web")
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestMakeDevice_EmptyName(t *testing.T) {
	p := newProject(t)

	_, err := NewMakeDevice(p.deps).Execute(" - ", true)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestMakeDevice_MissingNamespace(t *testing.T) {
	p := newProject(t)
	require.NoError(t, os.WriteFile(p.path("composer.json"), []byte(`{"name": "acme/app"}`), 0o644))

	_, err := NewMakeDevice(p.deps).Execute("Web", true)
	require.ErrorIs(t, err, domain.ErrConfiguration)
	assert.NoDirExists(t, p.path("app", "Devices", "Web"), "nothing is written when the namespace is unknown")
}

func TestMakeDevice_CustomBladeView(t *testing.T) {
	p := newProject(t)

	stubs := p.path("stubs", "vivid")
	require.NoError(t, os.MkdirAll(stubs, 0o755))
	view := "<title>{{ config('app.name') }}</title>\n<h1>{{name}}</h1>\n"
	require.NoError(t, os.WriteFile(filepath.Join(stubs, template.WelcomeView+".stub"), []byte(view), 0o644))
	p.deps.Stubs = template.NewLibrary(template.WithOverrideDir(stubs))

	_, err := NewMakeDevice(p.deps).Execute("Web", true)
	require.NoError(t, err)

	welcome := p.read(t, "resources", "devices", "web", "views", "welcome.blade.php")
	assert.Contains(t, welcome, "{{ config('app.name') }}")
}
