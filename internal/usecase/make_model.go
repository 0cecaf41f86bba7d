package usecase

import (
	"github.com/vivid-arch/laravel-console/internal/app/template"
	"github.com/vivid-arch/laravel-console/internal/domain"
)

type MakeModel struct {
	generator
}

func NewMakeModel(d Deps) *MakeModel {
	return &MakeModel{generator: newGenerator(d)}
}

func (uc *MakeModel) Execute(name string) (domain.Model, error) {
	className := domain.ModelName(name)
	if className == "" {
		return domain.Model{}, invalidName("model")
	}

	path := uc.Layout.ModelPath(className)
	if err := uc.ensureAbsent(path, "Model %s already exists!", className); err != nil {
		return domain.Model{}, err
	}

	namespace, err := uc.Layout.ModelNamespace()
	if err != nil {
		return domain.Model{}, err
	}

	content, err := uc.writeStub(path, template.Model, map[string]string{
		"model":     className,
		"namespace": namespace,
	})
	if err != nil {
		return domain.Model{}, err
	}

	uc.logCreated("model", path)
	return domain.Model{
		Artifact: domain.NewArtifact(className, namespace, path, uc.Layout.Relative(path), content),
	}, nil
}
