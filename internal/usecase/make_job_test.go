package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivid-arch/laravel-console/internal/domain"
)

func TestMakeJob_WritesJobAndTest(t *testing.T) {
	p := newProject(t)

	job, err := NewMakeJob(p.deps).Execute("charge card", "billing", false)
	require.NoError(t, err)

	assert.Equal(t, "ChargeCardJob", job.ClassName)
	assert.Equal(t, "Charge Card", job.Title)
	assert.Equal(t, `App\Domains\Billing\Jobs`, job.Namespace)
	assert.Equal(t, "ChargeCardJob.php", job.File)
	assert.Equal(t, filepath.Join("app", "Domains", "Billing", "Jobs", "ChargeCardJob.php"), job.RelativePath)
	require.NotNil(t, job.Domain)
	assert.Equal(t, "Billing", job.Domain.Name)

	assert.Contains(t, job.Content, "class ChargeCardJob extends Job")
	assert.Contains(t, job.Content, `use Vivid\Foundation\Job;`)

	test := p.read(t, "app", "Domains", "Billing", "Tests", "Jobs", "ChargeCardJobTest.php")
	assert.Contains(t, test, `namespace App\Domains\Billing\Tests\Jobs;`)
	assert.Contains(t, test, `use App\Domains\Billing\Jobs\ChargeCardJob;`)
	assert.Contains(t, test, "class ChargeCardJobTest extends TestCase")
	assert.Contains(t, test, "test_charge_card_job")
}

func TestMakeJob_Queueable(t *testing.T) {
	p := newProject(t)

	job, err := NewMakeJob(p.deps).Execute("SendInvoiceJob.php", "Billing", true)
	require.NoError(t, err)
	assert.Equal(t, "SendInvoiceJob", job.ClassName)
	assert.Contains(t, job.Content, "extends QueueableJob")
}

func TestMakeJob_RoundTrip(t *testing.T) {
	p := newProject(t)

	created, err := NewMakeJob(p.deps).Execute("ChargeCard", "Billing", false)
	require.NoError(t, err)

	found, err := p.finder.FindJob("ChargeCardJob")
	require.NoError(t, err)
	assert.Equal(t, created.ClassName, found.ClassName)
	assert.Equal(t, created.RealPath, found.RealPath)
	assert.Equal(t, created.Namespace, found.Namespace)
	assert.Equal(t, created.Content, found.Content)

	groups, err := p.finder.ListJobs("Billing")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Jobs, 1)
}

func TestMakeJob_AlreadyExists(t *testing.T) {
	p := newProject(t)
	uc := NewMakeJob(p.deps)

	_, err := uc.Execute("ChargeCard", "Billing", false)
	require.NoError(t, err)

	_, err = uc.Execute("ChargeCardJob", "Billing", true)
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Equal(t, "Job ChargeCardJob already exists!", err.Error())
}

func TestMakeJob_KeepsExistingTest(t *testing.T) {
	p := newProject(t)
	testPath := p.path("app", "Domains", "Billing", "Tests", "Jobs", "ChargeCardJobTest.php")
	require.NoError(t, os.MkdirAll(filepath.Dir(testPath), 0o755))
	require.NoError(t, os.WriteFile(testPath, []byte("mine"), 0o644))

	_, err := NewMakeJob(p.deps).Execute("ChargeCard", "Billing", false)
	require.NoError(t, err)
	assert.Equal(t, "mine", p.read(t, "app", "Domains", "Billing", "Tests", "Jobs", "ChargeCardJobTest.php"))
}

func TestMakeJob_RequiresDomain(t *testing.T) {
	p := newProject(t)

	_, err := NewMakeJob(p.deps).Execute("ChargeCard", "", false)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}
