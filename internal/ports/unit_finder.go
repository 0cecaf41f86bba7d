package ports

import "github.com/vivid-arch/laravel-console/internal/domain"

// UnitFinder locates existing units in the source tree.
type UnitFinder interface {
	FindDevice(name string) (domain.Device, error)
	FindDomain(name string) (domain.Domain, error)
	FindFeature(name string) (domain.Feature, error)
	FindJob(name string) (domain.Job, error)
}
