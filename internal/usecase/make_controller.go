package usecase

import (
	"github.com/vivid-arch/laravel-console/internal/app/template"
	"github.com/vivid-arch/laravel-console/internal/domain"
)

// ControllerKind selects the controller stub.
type ControllerKind int

const (
	PlainController ControllerKind = iota
	ResourceController
	InvokableController
)

func (k ControllerKind) stub() string {
	switch k {
	case ResourceController:
		return template.Controller
	case InvokableController:
		return template.InvokableController
	default:
		return template.PlainController
	}
}

type MakeController struct {
	generator
}

func NewMakeController(d Deps) *MakeController {
	return &MakeController{generator: newGenerator(d)}
}

func (uc *MakeController) Execute(name, device string, kind ControllerKind) (domain.Controller, error) {
	className := domain.ControllerName(name)

	owner, err := uc.requireDevice("a controller", domain.DeviceName(device))
	if err != nil {
		return domain.Controller{}, err
	}

	path := uc.Layout.ControllerPath(owner.Name, className)
	if err := uc.ensureAbsent(path, "Controller %s already exists!", className); err != nil {
		return domain.Controller{}, err
	}

	namespace, err := uc.Layout.ControllerNamespace(owner.Name)
	if err != nil {
		return domain.Controller{}, err
	}

	content, err := uc.writeStub(path, kind.stub(), map[string]string{
		"controller":           className,
		"namespace":            namespace,
		"foundation_namespace": uc.Layout.FoundationNamespace(),
	})
	if err != nil {
		return domain.Controller{}, err
	}

	uc.logCreated("controller", path, "device", owner.Name)
	return domain.Controller{
		Artifact: domain.NewArtifact(className, namespace, path, uc.Layout.Relative(path), content),
		Device:   owner.Name,
	}, nil
}
