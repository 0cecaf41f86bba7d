package usecase

import (
	"github.com/vivid-arch/laravel-console/internal/app/template"
	"github.com/vivid-arch/laravel-console/internal/domain"
)

type MakePolicy struct {
	generator
}

func NewMakePolicy(d Deps) *MakePolicy {
	return &MakePolicy{generator: newGenerator(d)}
}

func (uc *MakePolicy) Execute(name string) (domain.Policy, error) {
	className := domain.PolicyName(name)

	path := uc.Layout.PolicyPath(className)
	if err := uc.ensureAbsent(path, "Policy %s already exists!", className); err != nil {
		return domain.Policy{}, err
	}

	namespace, err := uc.Layout.PolicyNamespace()
	if err != nil {
		return domain.Policy{}, err
	}

	content, err := uc.writeStub(path, template.Policy, map[string]string{
		"policy":    className,
		"namespace": namespace,
	})
	if err != nil {
		return domain.Policy{}, err
	}

	uc.logCreated("policy", path)
	return domain.Policy{
		Artifact: domain.NewArtifact(className, namespace, path, uc.Layout.Relative(path), content),
	}, nil
}
