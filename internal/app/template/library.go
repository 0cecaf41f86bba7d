package template

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vivid-arch/laravel-console/internal/domain"
	"github.com/vivid-arch/laravel-console/internal/ports"
)

// Stub names known to the generators.
const (
	Feature              = "feature"
	FeatureTest          = "feature-test"
	Job                  = "job"
	QueueableJob         = "queueable-job"
	JobTest              = "job-test"
	Operation            = "operation"
	QueueableOperation   = "queueable-operation"
	OperationTest        = "operation-test"
	Controller           = "controller"
	PlainController      = "controller.plain"
	InvokableController  = "controller.invokable"
	Request              = "request"
	Policy               = "policy"
	Model                = "model"
	ServiceProvider      = "serviceprovider"
	RouteServiceProvider = "routeserviceprovider"
	RoutesAPI            = "routes-api"
	RoutesWeb            = "routes-web"
	WelcomeView          = "welcome.blade"
)

const stubExt = ".stub"

//go:embed stubs/*.stub
var builtin embed.FS

// Library loads named stubs, preferring <overrideDir>/<name>.stub over the
// embedded copy.
type Library struct {
	overrideDir string
}

var _ ports.TemplateRenderer = (*Library)(nil)

type Option func(*Library)

// WithOverrideDir makes project stubs in dir shadow the embedded ones.
// An empty dir disables overrides.
func WithOverrideDir(dir string) Option {
	return func(l *Library) {
		l.overrideDir = dir
	}
}

func NewLibrary(opts ...Option) *Library {
	l := &Library{}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Load returns the raw text of the named stub.
func (l *Library) Load(name string) (string, error) {
	if l.overrideDir != "" {
		path := filepath.Join(l.overrideDir, name+stubExt)
		b, err := os.ReadFile(path)
		if err == nil {
			return string(b), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", &domain.OpError{Op: "template.load", Kind: domain.KindConfiguration, Path: path, Err: err}
		}
	}

	b, err := builtin.ReadFile("stubs/" + name + stubExt)
	if err != nil {
		return "", &domain.Error{
			Kind:  domain.KindNotFound,
			Msg:   "unknown template " + name,
			Cause: domain.ErrNotFound,
		}
	}
	return string(b), nil
}

// Render loads the named stub and substitutes vars into it.
func (l *Library) Render(name string, vars map[string]string) (string, error) {
	text, err := l.Load(name)
	if err != nil {
		return "", err
	}
	return RenderString(text, vars), nil
}

// Names lists the embedded stub names.
func Names() []string {
	entries, err := fs.ReadDir(builtin, "stubs")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name()[:len(e.Name())-len(stubExt)])
	}
	return names
}
