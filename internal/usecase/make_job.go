package usecase

import (
	"github.com/vivid-arch/laravel-console/internal/app/template"
	"github.com/vivid-arch/laravel-console/internal/domain"
)

type MakeJob struct {
	generator
}

func NewMakeJob(d Deps) *MakeJob {
	return &MakeJob{generator: newGenerator(d)}
}

// Execute writes the job and its test, creating the domain when it does
// not exist yet.
func (uc *MakeJob) Execute(name, domainName string, queueable bool) (domain.Job, error) {
	className := domain.JobName(name)
	domainName = domain.DomainName(domainName)
	if domainName == "" {
		return domain.Job{}, invalidName("domain")
	}

	path := uc.Layout.JobPath(domainName, className)
	if err := uc.ensureAbsent(path, "Job %s already exists!", className); err != nil {
		return domain.Job{}, err
	}

	namespace, err := uc.Layout.JobsNamespace(domainName)
	if err != nil {
		return domain.Job{}, err
	}
	testNamespace, err := uc.Layout.JobsTestNamespace(domainName)
	if err != nil {
		return domain.Job{}, err
	}

	if err := uc.FS.CreateDirectory(uc.Layout.DomainPath(domainName)); err != nil {
		return domain.Job{}, err
	}

	stub := template.Job
	if queueable {
		stub = template.QueueableJob
	}
	content, err := uc.writeStub(path, stub, map[string]string{
		"job":                  className,
		"namespace":            namespace,
		"foundation_namespace": uc.Layout.FoundationNamespace(),
	})
	if err != nil {
		return domain.Job{}, err
	}

	testClass := className + "Test"
	err = uc.writeTest(uc.Layout.JobTestPath(domainName, testClass), template.JobTest, map[string]string{
		"namespace":     testNamespace,
		"testclass":     testClass,
		"job":           domain.Snake(className),
		"job_namespace": namespace + `\` + className,
	})
	if err != nil {
		return domain.Job{}, err
	}

	owner, err := uc.Finder.FindDomain(domainName)
	if err != nil {
		return domain.Job{}, err
	}

	uc.logCreated("job", path, "domain", domainName, "queueable", queueable)
	return domain.NewJob(domain.Job{
		Title:        domain.RealName(className, domain.JobSuffix),
		Namespace:    namespace,
		File:         uc.Layout.FileName(className),
		RealPath:     path,
		RelativePath: uc.Layout.Relative(path),
		Domain:       &owner,
		Content:      content,
	}), nil
}
