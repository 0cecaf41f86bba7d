package finder

import (
	"fmt"
	"path/filepath"

	"github.com/vivid-arch/laravel-console/internal/domain"
)

// FindDevice returns the device directory named name.
func (f *Finder) FindDevice(name string) (domain.Device, error) {
	if name == "" {
		return domain.Device{}, domain.NotFound("Device %q could not be found.", name)
	}
	dirs, err := globDirs(f.layout.DevicesRoot(), name)
	if err != nil {
		return domain.Device{}, err
	}
	if len(dirs) == 0 {
		return domain.Device{}, domain.NotFound("Device %q could not be found.", name)
	}
	return f.device(dirs[0]), nil
}

// FindDomain returns the domain directory named name.
func (f *Finder) FindDomain(name string) (domain.Domain, error) {
	if name == "" {
		return domain.Domain{}, domain.NotFound("Domain %q could not be found.", name)
	}
	dirs, err := globDirs(f.layout.DomainsRoot(), name)
	if err != nil {
		return domain.Domain{}, err
	}
	if len(dirs) == 0 {
		return domain.Domain{}, domain.NotFound("Domain %q could not be found.", name)
	}
	return f.domain(dirs[0])
}

// FindFeature looks for the feature file in every device, then in the
// application's own Features directory. The shallowest match wins.
func (f *Finder) FindFeature(name string) (domain.Feature, error) {
	file := f.layout.FileName(domain.FeatureName(name))

	root := f.layout.DevicesRoot()
	matches, err := globFiles(root, "**/"+file)
	if err != nil {
		return domain.Feature{}, err
	}
	if len(matches) > 0 {
		device, err := f.FindDevice(firstSegment(root, matches[0]))
		if err != nil {
			return domain.Feature{}, err
		}
		return f.feature(matches[0], &device, true)
	}

	matches, err = globFiles(f.layout.FeaturesRoot(""), "**/"+file)
	if err != nil {
		return domain.Feature{}, err
	}
	if len(matches) == 0 {
		return domain.Feature{}, domain.NotFound("Feature %q could not be found.", domain.FeatureName(name))
	}
	return f.feature(matches[0], nil, true)
}

// FindJob looks for the job file in every domain.
func (f *Finder) FindJob(name string) (domain.Job, error) {
	file := f.layout.FileName(domain.JobName(name))

	root := f.layout.DomainsRoot()
	matches, err := globFiles(root, "**/"+file)
	if err != nil {
		return domain.Job{}, err
	}
	if len(matches) == 0 {
		return domain.Job{}, domain.NotFound("Job %q could not be found.", domain.JobName(name))
	}

	d, err := f.FindDomain(firstSegment(root, matches[0]))
	if err != nil {
		return domain.Job{}, err
	}
	return f.job(matches[0], &d, true)
}

// FindOperation looks in the shared operations directory first, then in
// every device.
func (f *Finder) FindOperation(name string) (domain.Operation, error) {
	file := f.layout.FileName(domain.OperationName(name))

	matches, err := globFiles(f.layout.OperationsRoot(""), "**/"+file)
	if err != nil {
		return domain.Operation{}, err
	}
	if len(matches) > 0 {
		return f.operation(matches[0], nil)
	}

	root := f.layout.DevicesRoot()
	matches, err = globFiles(root, "*/Operations/**/"+file)
	if err != nil {
		return domain.Operation{}, err
	}
	if len(matches) == 0 {
		return domain.Operation{}, domain.NotFound("Operation %q could not be found.", domain.OperationName(name))
	}

	device, err := f.FindDevice(firstSegment(root, matches[0]))
	if err != nil {
		return domain.Operation{}, err
	}
	return f.operation(matches[0], &device)
}

func (f *Finder) device(path string) domain.Device {
	return domain.NewDevice(filepath.Base(path), path, f.layout.Relative(path))
}

func (f *Finder) domain(path string) (domain.Domain, error) {
	name := filepath.Base(path)
	ns, err := f.layout.DomainNamespace(name)
	if err != nil {
		return domain.Domain{}, err
	}
	return domain.NewDomain(name, ns, path, f.layout.Relative(path)), nil
}

func (f *Finder) feature(path string, device *domain.Device, withContent bool) (domain.Feature, error) {
	feature := domain.NewFeature(domain.Feature{
		Title:        domain.RealName(filepath.Base(path), domain.FeatureSuffix),
		File:         filepath.Base(path),
		RealPath:     path,
		RelativePath: f.layout.Relative(path),
		Device:       device,
	})
	if withContent {
		content, err := f.read(path)
		if err != nil {
			return domain.Feature{}, err
		}
		feature.Content = content
	}
	return feature, nil
}

func (f *Finder) job(path string, d *domain.Domain, withContent bool) (domain.Job, error) {
	job := domain.NewJob(domain.Job{
		Title:        domain.RealName(filepath.Base(path), domain.JobSuffix),
		File:         filepath.Base(path),
		RealPath:     path,
		RelativePath: f.layout.Relative(path),
		Domain:       d,
	})
	if d != nil {
		ns, err := f.layout.JobsNamespace(d.Name)
		if err != nil {
			return domain.Job{}, err
		}
		job.Namespace = ns
	}
	if withContent {
		content, err := f.read(path)
		if err != nil {
			return domain.Job{}, err
		}
		job.Content = content
	}
	return job, nil
}

func (f *Finder) operation(path string, device *domain.Device) (domain.Operation, error) {
	var deviceName string
	if device != nil {
		deviceName = device.Name
	}
	ns, err := f.layout.OperationNamespace(deviceName)
	if err != nil {
		return domain.Operation{}, err
	}
	content, err := f.read(path)
	if err != nil {
		return domain.Operation{}, fmt.Errorf("read operation: %w", err)
	}
	return domain.NewOperation(domain.Operation{
		Title:        domain.RealName(filepath.Base(path), domain.OperationSuffix),
		Namespace:    ns,
		File:         filepath.Base(path),
		RealPath:     path,
		RelativePath: f.layout.Relative(path),
		Device:       device,
		Content:      content,
	}), nil
}
