package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivid-arch/laravel-console/internal/domain"
)

func TestMakeOperation_RunsJobs(t *testing.T) {
	p := newProject(t)
	jobs := NewMakeJob(p.deps)
	_, err := jobs.Execute("ChargeCard", "Billing", false)
	require.NoError(t, err)
	_, err = jobs.Execute("SendReceipt", "Mail", false)
	require.NoError(t, err)

	op, err := NewMakeOperation(p.deps).Execute(OperationInput{
		Name: "checkout",
		Jobs: []string{"charge card", "SendReceiptJob"},
	})
	require.NoError(t, err)

	assert.Equal(t, "CheckoutOperation", op.ClassName)
	assert.Equal(t, `App\Operations`, op.Namespace)
	assert.Nil(t, op.Device)
	assert.Contains(t, op.Content, `use App\Domains\Billing\Jobs\ChargeCardJob;`)
	assert.Contains(t, op.Content, `use App\Domains\Mail\Jobs\SendReceiptJob;`)
	assert.Contains(t, op.Content, "        $this->run(ChargeCardJob::class);\n\n        $this->run(SendReceiptJob::class);")
	assert.Contains(t, op.Content, "extends Operation")

	test := p.read(t, "tests", "Operations", "CheckoutOperationTest.php")
	assert.Contains(t, test, `use App\Operations\CheckoutOperation;`)

	found, err := p.finder.FindOperation("Checkout")
	require.NoError(t, err)
	assert.Equal(t, op.RealPath, found.RealPath)
}

func TestMakeOperation_InDeviceQueueable(t *testing.T) {
	p := newProject(t)
	_, err := NewMakeDevice(p.deps).Execute("Api", false)
	require.NoError(t, err)

	op, err := NewMakeOperation(p.deps).Execute(OperationInput{Name: "Import", Device: "api", Queueable: true})
	require.NoError(t, err)

	require.NotNil(t, op.Device)
	assert.Equal(t, `App\Devices\Api\Operations`, op.Namespace)
	assert.Contains(t, op.Content, "extends QueueableOperation")
	assert.FileExists(t, p.path("app", "Devices", "Api", "Tests", "Operations", "ImportOperationTest.php"))
}

func TestMakeOperation_UnknownJobWritesNothing(t *testing.T) {
	p := newProject(t)

	_, err := NewMakeOperation(p.deps).Execute(OperationInput{Name: "Checkout", Jobs: []string{"Missing"}})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoFileExists(t, p.path("app", "Operations", "CheckoutOperation.php"))
}
