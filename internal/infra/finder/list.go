package finder

import (
	"fmt"
	"path/filepath"

	"github.com/vivid-arch/laravel-console/internal/domain"
)

// DeviceFeatures groups the features found in one device.
type DeviceFeatures struct {
	Device   domain.Device
	Features []domain.Feature
}

// DomainJobs groups the jobs found in one domain.
type DomainJobs struct {
	Domain domain.Domain
	Jobs   []domain.Job
}

// ListDevices returns every immediate subdirectory of the devices root.
func (f *Finder) ListDevices() ([]domain.Device, error) {
	dirs, err := globDirs(f.layout.DevicesRoot(), "*")
	if err != nil {
		return nil, err
	}

	devices := make([]domain.Device, 0, len(dirs))
	for _, dir := range dirs {
		devices = append(devices, f.device(dir))
	}
	return devices, nil
}

// ListDomains returns every immediate subdirectory of the domains root.
func (f *Finder) ListDomains() ([]domain.Domain, error) {
	dirs, err := globDirs(f.layout.DomainsRoot(), "*")
	if err != nil {
		return nil, err
	}

	domains := make([]domain.Domain, 0, len(dirs))
	for _, dir := range dirs {
		d, err := f.domain(dir)
		if err != nil {
			return nil, err
		}
		domains = append(domains, d)
	}
	return domains, nil
}

// ListJobs returns the jobs of every domain, or of domainName only when it
// is not empty. Job contents are read eagerly.
func (f *Finder) ListJobs(domainName string) ([]DomainJobs, error) {
	var domains []domain.Domain
	if domainName != "" {
		d, err := f.FindDomain(domain.DomainName(domainName))
		if err != nil {
			return nil, err
		}
		domains = []domain.Domain{d}
	} else {
		var err error
		if domains, err = f.ListDomains(); err != nil {
			return nil, err
		}
	}

	out := make([]DomainJobs, 0, len(domains))
	for i := range domains {
		d := domains[i]
		files, err := globFiles(filepath.Join(d.RealPath, "Jobs"), "**/*"+domain.JobSuffix+f.ext())
		if err != nil {
			return nil, err
		}

		group := DomainJobs{Domain: d, Jobs: make([]domain.Job, 0, len(files))}
		for _, path := range files {
			job, err := f.job(path, &d, true)
			if err != nil {
				return nil, err
			}
			group.Jobs = append(group.Jobs, job)
		}
		out = append(out, group)
	}
	return out, nil
}

// ListFeatures returns the features of every device. A non-empty filter
// keeps only the device whose name or slug equals it, and fails when none does.
func (f *Finder) ListFeatures(filter string) ([]DeviceFeatures, error) {
	devices, err := f.ListDevices()
	if err != nil {
		return nil, err
	}

	if filter != "" {
		kept := devices[:0]
		for _, d := range devices {
			if d.Name == filter || d.Slug == filter {
				kept = append(kept, d)
			}
		}
		if len(kept) == 0 {
			return nil, &domain.Error{
				Kind:  domain.KindInvalidArgument,
				Msg:   fmt.Sprintf("Device %q could not be found.", filter),
				Cause: domain.ErrNotFound,
			}
		}
		devices = kept
	}

	out := make([]DeviceFeatures, 0, len(devices))
	for i := range devices {
		d := devices[i]
		files, err := globFiles(f.layout.FeaturesRoot(d.Name), "**/*"+domain.FeatureSuffix+f.ext())
		if err != nil {
			return nil, err
		}

		group := DeviceFeatures{Device: d, Features: make([]domain.Feature, 0, len(files))}
		for _, path := range files {
			feature, err := f.feature(path, &d, false)
			if err != nil {
				return nil, err
			}
			group.Features = append(group.Features, feature)
		}
		out = append(out, group)
	}
	return out, nil
}

// ListOperations returns the operations of device, or every operation of
// the project (device-less ones first) when device is empty.
func (f *Finder) ListOperations(device string) ([]domain.Operation, error) {
	var devices []domain.Device
	var out []domain.Operation

	if device != "" {
		d, err := f.FindDevice(domain.DeviceName(device))
		if err != nil {
			return nil, err
		}
		devices = []domain.Device{d}
	} else {
		ops, err := f.operationsIn(f.layout.OperationsRoot(""), nil)
		if err != nil {
			return nil, err
		}
		out = append(out, ops...)

		if devices, err = f.ListDevices(); err != nil {
			return nil, err
		}
	}

	for i := range devices {
		d := devices[i]
		ops, err := f.operationsIn(f.layout.OperationsRoot(d.Name), &d)
		if err != nil {
			return nil, err
		}
		out = append(out, ops...)
	}
	return out, nil
}

func (f *Finder) operationsIn(root string, device *domain.Device) ([]domain.Operation, error) {
	files, err := globFiles(root, "**/*"+domain.OperationSuffix+f.ext())
	if err != nil {
		return nil, err
	}
	ops := make([]domain.Operation, 0, len(files))
	for _, path := range files {
		op, err := f.operation(path, device)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}
