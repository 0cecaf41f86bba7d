package usecase

import (
	"strings"

	"github.com/vivid-arch/laravel-console/internal/app/template"
	"github.com/vivid-arch/laravel-console/internal/domain"
)

type MakeFeature struct {
	generator
}

func NewMakeFeature(d Deps) *MakeFeature {
	return &MakeFeature{generator: newGenerator(d)}
}

// Execute writes the feature and its test. An empty device places both in
// the application's own Features directory and tests/Features.
func (uc *MakeFeature) Execute(name, device string) (domain.Feature, error) {
	className := domain.FeatureName(name)

	owner, err := uc.device(domain.DeviceName(device))
	if err != nil {
		return domain.Feature{}, err
	}
	deviceName := nameOf(owner)

	path := uc.Layout.FeaturePath(deviceName, className)
	if err := uc.ensureAbsent(path, "Feature %s already exists!", className); err != nil {
		return domain.Feature{}, err
	}

	namespace, err := uc.Layout.FeatureNamespace(deviceName)
	if err != nil {
		return domain.Feature{}, err
	}
	testNamespace, err := uc.Layout.FeatureTestNamespace(deviceName)
	if err != nil {
		return domain.Feature{}, err
	}

	content, err := uc.writeStub(path, template.Feature, map[string]string{
		"feature":              className,
		"namespace":            namespace,
		"foundation_namespace": uc.Layout.FoundationNamespace(),
	})
	if err != nil {
		return domain.Feature{}, err
	}

	testClass := className + "Test"
	err = uc.writeTest(uc.Layout.FeatureTestPath(deviceName, testClass), template.FeatureTest, map[string]string{
		"namespace":         testNamespace,
		"testclass":         testClass,
		"feature":           strings.ToLower(className),
		"feature_namespace": namespace + `\` + className,
	})
	if err != nil {
		return domain.Feature{}, err
	}

	uc.logCreated("feature", path, "device", deviceName)
	return domain.NewFeature(domain.Feature{
		Title:        domain.RealName(className, domain.FeatureSuffix),
		File:         uc.Layout.FileName(className),
		RealPath:     path,
		RelativePath: uc.Layout.Relative(path),
		Device:       owner,
		Content:      content,
	}), nil
}

func nameOf(d *domain.Device) string {
	if d == nil {
		return ""
	}
	return d.Name
}
