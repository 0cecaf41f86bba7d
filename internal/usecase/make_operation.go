package usecase

import (
	"strings"

	"github.com/vivid-arch/laravel-console/internal/app/template"
	"github.com/vivid-arch/laravel-console/internal/domain"
)

type OperationInput struct {
	Name      string
	Device    string
	Queueable bool
	// Jobs are run by the operation in the given order.
	Jobs []string
}

type MakeOperation struct {
	generator
}

func NewMakeOperation(d Deps) *MakeOperation {
	return &MakeOperation{generator: newGenerator(d)}
}

// Execute writes the operation and its test. Every job in in.Jobs must
// already exist; nothing is written otherwise.
func (uc *MakeOperation) Execute(in OperationInput) (domain.Operation, error) {
	className := domain.OperationName(in.Name)

	owner, err := uc.device(domain.DeviceName(in.Device))
	if err != nil {
		return domain.Operation{}, err
	}
	deviceName := nameOf(owner)

	path := uc.Layout.OperationPath(deviceName, className)
	if err := uc.ensureAbsent(path, "Operation %s already exists!", className); err != nil {
		return domain.Operation{}, err
	}

	jobs := make([]domain.Job, 0, len(in.Jobs))
	for _, name := range in.Jobs {
		job, err := uc.Finder.FindJob(name)
		if err != nil {
			return domain.Operation{}, err
		}
		jobs = append(jobs, job)
	}

	namespace, err := uc.Layout.OperationNamespace(deviceName)
	if err != nil {
		return domain.Operation{}, err
	}
	testNamespace, err := uc.Layout.OperationTestNamespace(deviceName)
	if err != nil {
		return domain.Operation{}, err
	}

	useJobs, runJobs := jobStatements(jobs)

	stub := template.Operation
	if in.Queueable {
		stub = template.QueueableOperation
	}
	content, err := uc.writeStub(path, stub, map[string]string{
		"operation":            className,
		"namespace":            namespace,
		"foundation_namespace": uc.Layout.FoundationNamespace(),
		"use_jobs":             useJobs,
		"run_jobs":             runJobs,
	})
	if err != nil {
		return domain.Operation{}, err
	}

	testClass := className + "Test"
	err = uc.writeTest(uc.Layout.OperationTestPath(deviceName, testClass), template.OperationTest, map[string]string{
		"namespace":           testNamespace,
		"testclass":           testClass,
		"operation":           strings.ToLower(className),
		"operation_namespace": namespace + `\` + className,
	})
	if err != nil {
		return domain.Operation{}, err
	}

	uc.logCreated("operation", path, "device", deviceName, "queueable", in.Queueable, "jobs", len(jobs))
	return domain.NewOperation(domain.Operation{
		Title:        domain.RealName(className, domain.OperationSuffix),
		Namespace:    namespace,
		File:         uc.Layout.FileName(className),
		RealPath:     path,
		RelativePath: uc.Layout.Relative(path),
		Device:       owner,
		Content:      content,
	}), nil
}

// jobStatements renders the import lines and the run calls for jobs.
func jobStatements(jobs []domain.Job) (string, string) {
	var use strings.Builder
	run := make([]string, 0, len(jobs))
	for _, job := range jobs {
		use.WriteString("use " + job.FQCN() + ";\n")
		run = append(run, "        $this->run("+job.ClassName+"::class);")
	}
	return use.String(), strings.Join(run, "\n\n")
}
