package usecase

import (
	"github.com/vivid-arch/laravel-console/internal/app/template"
	"github.com/vivid-arch/laravel-console/internal/domain"
)

type MakeRequest struct {
	generator
}

func NewMakeRequest(d Deps) *MakeRequest {
	return &MakeRequest{generator: newGenerator(d)}
}

func (uc *MakeRequest) Execute(name, device string) (domain.Request, error) {
	className := domain.RequestName(name)

	owner, err := uc.requireDevice("a request", domain.DeviceName(device))
	if err != nil {
		return domain.Request{}, err
	}

	path := uc.Layout.RequestPath(owner.Name, className)
	if err := uc.ensureAbsent(path, "Request %s already exists!", className); err != nil {
		return domain.Request{}, err
	}

	namespace, err := uc.Layout.RequestsNamespace(owner.Name)
	if err != nil {
		return domain.Request{}, err
	}

	content, err := uc.writeStub(path, template.Request, map[string]string{
		"request":              className,
		"namespace":            namespace,
		"foundation_namespace": uc.Layout.FoundationNamespace(),
	})
	if err != nil {
		return domain.Request{}, err
	}

	uc.logCreated("request", path, "device", owner.Name)
	return domain.Request{
		Artifact: domain.NewArtifact(className, namespace, path, uc.Layout.Relative(path), content),
		Device:   owner.Name,
	}, nil
}
