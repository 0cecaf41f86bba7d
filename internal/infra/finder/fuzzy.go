package finder

import (
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/vivid-arch/laravel-console/internal/domain"
)

// FuzzyThreshold is the similarity percentage a candidate must exceed.
const FuzzyThreshold = 35.0

// FuzzyResult holds the matches of a fuzzy search, best match first.
type FuzzyResult struct {
	Features []domain.Feature
	Jobs     []domain.Job
}

func (r FuzzyResult) Empty() bool { return len(r.Features) == 0 && len(r.Jobs) == 0 }

type scored[T any] struct {
	unit  T
	score float64
}

// FuzzyFind scores every feature and job file name against query and keeps
// those above FuzzyThreshold. No match is not an error.
func (f *Finder) FuzzyFind(query string) (FuzzyResult, error) {
	q := fuzzyKey(query)

	var features []scored[domain.Feature]
	devicesRoot := f.layout.DevicesRoot()
	files, err := globFiles(devicesRoot, "*/Features/**/*"+domain.FeatureSuffix+f.ext())
	if err != nil {
		return FuzzyResult{}, err
	}
	devices := map[string]*domain.Device{}
	for _, path := range files {
		score := domain.SimilarityPercent(q, fuzzyKey(f.stem(path)))
		if score <= FuzzyThreshold {
			continue
		}
		name := firstSegment(devicesRoot, path)
		device, ok := devices[name]
		if !ok {
			d := f.device(filepath.Join(devicesRoot, name))
			device = &d
			devices[name] = device
		}
		feature, err := f.feature(path, device, true)
		if err != nil {
			return FuzzyResult{}, err
		}
		features = append(features, scored[domain.Feature]{feature, score})
	}

	var jobs []scored[domain.Job]
	domainsRoot := f.layout.DomainsRoot()
	files, err = globFiles(domainsRoot, "*/Jobs/**/*"+domain.JobSuffix+f.ext())
	if err != nil {
		return FuzzyResult{}, err
	}
	domains := map[string]*domain.Domain{}
	for _, path := range files {
		score := domain.SimilarityPercent(q, fuzzyKey(f.stem(path)))
		if score <= FuzzyThreshold {
			continue
		}
		name := firstSegment(domainsRoot, path)
		owner, ok := domains[name]
		if !ok {
			d, err := f.domain(filepath.Join(domainsRoot, name))
			if err != nil {
				return FuzzyResult{}, err
			}
			owner = &d
			domains[name] = owner
		}
		job, err := f.job(path, owner, true)
		if err != nil {
			return FuzzyResult{}, err
		}
		jobs = append(jobs, scored[domain.Job]{job, score})
	}

	return FuzzyResult{
		Features: rank(features),
		Jobs:     rank(jobs),
	}, nil
}

// rank orders candidates by descending score. Equal scores keep their
// discovery order.
func rank[T any](candidates []scored[T]) []T {
	slices.SortStableFunc(candidates, func(a, b scored[T]) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return 0
	})

	out := make([]T, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.unit)
	}
	return out
}

func (f *Finder) stem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), f.ext())
}

// fuzzyKey drops whitespace and folds case so "Charge card" and "chargeCard" compare equal.
func fuzzyKey(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), ""))
}
