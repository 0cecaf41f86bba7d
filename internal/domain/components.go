package domain

import "path/filepath"

// Device is a top-level deployable unit (e.g. "Web", "Api").
type Device struct {
	Name         string
	Slug         string
	RealPath     string
	RelativePath string
}

func NewDevice(name, realPath, relativePath string) Device {
	return Device{
		Name:         name,
		Slug:         Snake(name),
		RealPath:     realPath,
		RelativePath: relativePath,
	}
}

// Domain groups business logic and owns jobs.
type Domain struct {
	Name         string
	Slug         string
	Namespace    string
	RealPath     string
	RelativePath string
}

func NewDomain(name, namespace, realPath, relativePath string) Domain {
	return Domain{
		Name:         name,
		Slug:         Snake(name),
		Namespace:    namespace,
		RealPath:     realPath,
		RelativePath: relativePath,
	}
}

// Feature is a single use case served by a device.
// Device is nil for features living outside any device.
type Feature struct {
	Title        string
	ClassName    string
	File         string
	RealPath     string
	RelativePath string
	Device       *Device
	Content      string
}

// NewFeature fills the derived class name from f.Title.
func NewFeature(f Feature) Feature {
	f.ClassName = ClassName(f.Title, FeatureSuffix)
	return f
}

// Job is a reusable unit of domain logic.
// Domain is nil for jobs living outside any domain.
type Job struct {
	Title        string
	ClassName    string
	Namespace    string
	File         string
	RealPath     string
	RelativePath string
	Domain       *Domain
	Content      string
}

// NewJob fills the derived class name from j.Title.
func NewJob(j Job) Job {
	j.ClassName = ClassName(j.Title, JobSuffix)
	return j
}

// FQCN is the fully qualified class name of the job.
func (j Job) FQCN() string {
	if j.Namespace == "" {
		return j.ClassName
	}
	return j.Namespace + `\` + j.ClassName
}

// Operation composes jobs and belongs to a device.
type Operation struct {
	Title        string
	ClassName    string
	Namespace    string
	File         string
	RealPath     string
	RelativePath string
	Device       *Device
	Content      string
}

// NewOperation fills the derived class name from o.Title.
func NewOperation(o Operation) Operation {
	o.ClassName = ClassName(o.Title, OperationSuffix)
	return o
}

// Artifact is a plain generated class without nested ownership:
// requests, controllers, policies and models.
type Artifact struct {
	ClassName    string
	Namespace    string
	File         string
	RealPath     string
	RelativePath string
	Content      string
}

type Request struct {
	Artifact
	Device string
}

type Controller struct {
	Artifact
	Device string
}

type Policy struct {
	Artifact
}

type Model struct {
	Artifact
}

// NewArtifact builds an artifact record for a file written at realPath.
func NewArtifact(className, namespace, realPath, relativePath, content string) Artifact {
	return Artifact{
		ClassName:    className,
		Namespace:    namespace,
		File:         filepath.Base(realPath),
		RealPath:     realPath,
		RelativePath: relativePath,
		Content:      content,
	}
}
