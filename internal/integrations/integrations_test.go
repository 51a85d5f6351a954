package integrations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboarding-agent/internal/logging"
	"onboarding-agent/pkg/models"
)

func TestMockCRM_GetAccount(t *testing.T) {
	crm := NewMockCRM(FaultConfig{}, logging.NewLogger())
	ctx := context.Background()

	t.Run("known account", func(t *testing.T) {
		account, rec := crm.GetAccount(ctx, "ACME-001")
		require.Nil(t, rec)
		require.NotNil(t, account)
		assert.Equal(t, "ACME Corp", account.Name)
		assert.Equal(t, "0058Z000001OWNER", account.OwnerID)
	})

	t.Run("unknown account is not found, not an error", func(t *testing.T) {
		account, rec := crm.GetAccount(ctx, "MISSING-999")
		assert.Nil(t, account)
		assert.Nil(t, rec)
	})

	t.Run("deleted account is still returned", func(t *testing.T) {
		account, rec := crm.GetAccount(ctx, "DELETED-005")
		require.Nil(t, rec)
		require.NotNil(t, account)
		assert.True(t, account.Deleted)
	})
}

func TestMockCRM_RelatedRecords(t *testing.T) {
	crm := NewMockCRM(FaultConfig{}, logging.NewLogger())
	ctx := context.Background()

	user, rec := crm.GetUser(ctx, "0058Z000001OWNER")
	require.Nil(t, rec)
	require.NotNil(t, user)
	assert.True(t, user.Active)
	assert.Equal(t, "Sarah", user.FirstName)

	opp, rec := crm.GetOpportunityByAccount(ctx, "ACME-001")
	require.Nil(t, rec)
	require.NotNil(t, opp)
	assert.Equal(t, "Closed Won", opp.Stage)
	assert.True(t, opp.Won)

	opp, rec = crm.GetOpportunityByAccount(ctx, "DELETED-005")
	assert.Nil(t, opp)
	assert.Nil(t, rec)
}

func TestSentinelAccounts_ForceFaults(t *testing.T) {
	logger := logging.NewLogger()
	ctx := context.Background()

	cases := []struct {
		accountID string
		category  models.ErrorCategory
		status    int
	}{
		{AccountAuthError, models.ErrorCategoryAuth, 401},
		{AccountPermError, models.ErrorCategoryAuthorization, 403},
		{AccountServerError, models.ErrorCategoryServerError, 500},
	}

	for _, tc := range cases {
		t.Run(tc.accountID, func(t *testing.T) {
			crm := NewMockCRM(FaultConfig{}, logger)
			account, rec := crm.GetAccount(ctx, tc.accountID)
			assert.Nil(t, account)
			require.NotNil(t, rec)
			assert.Equal(t, SystemCRM, rec.System)
			assert.Equal(t, tc.category, rec.Category)
			assert.Equal(t, tc.status, rec.HTTPStatus)

			contracts := NewMockContractSystem(FaultConfig{}, logger)
			contract, rec := contracts.GetContractByAccount(ctx, tc.accountID)
			assert.Nil(t, contract)
			require.NotNil(t, rec)
			assert.Equal(t, SystemContract, rec.System)
			assert.Equal(t, tc.category, rec.Category)

			billing := NewMockBilling(FaultConfig{}, logger)
			invoice, rec := billing.GetInvoiceByAccount(ctx, tc.accountID)
			assert.Nil(t, invoice)
			require.NotNil(t, rec)
			assert.Equal(t, SystemBilling, rec.System)
			assert.Equal(t, tc.category, rec.Category)
		})
	}
}

func TestForcedFaults_OverrideLookups(t *testing.T) {
	logger := logging.NewLogger()
	ctx := context.Background()

	t.Run("crm rate limit", func(t *testing.T) {
		crm := NewMockCRM(FaultConfig{CRM: FaultRateLimit}, logger)
		account, rec := crm.GetAccount(ctx, "ACME-001")
		assert.Nil(t, account)
		require.NotNil(t, rec)
		assert.Equal(t, "REQUEST_LIMIT_EXCEEDED", rec.Code)
		assert.Equal(t, 429, rec.HTTPStatus)
	})

	t.Run("contract auth", func(t *testing.T) {
		contracts := NewMockContractSystem(FaultConfig{Contract: FaultAuth}, logger)
		contract, rec := contracts.GetContractByAccount(ctx, "ACME-001")
		assert.Nil(t, contract)
		require.NotNil(t, rec)
		assert.Equal(t, "UNAUTHORIZED", rec.Code)
	})

	t.Run("billing server error", func(t *testing.T) {
		billing := NewMockBilling(FaultConfig{Billing: FaultServerError}, logger)
		invoice, rec := billing.GetInvoiceByAccount(ctx, "ACME-001")
		assert.Nil(t, invoice)
		require.NotNil(t, rec)
		assert.Equal(t, "UNEXPECTED_ERROR", rec.Code)
		assert.Equal(t, 500, rec.HTTPStatus)
	})

	t.Run("fault on one system does not leak to another", func(t *testing.T) {
		crm := NewMockCRM(FaultConfig{Billing: FaultServerError}, logger)
		account, rec := crm.GetAccount(ctx, "ACME-001")
		assert.Nil(t, rec)
		assert.NotNil(t, account)
	})
}

func TestMockBilling_OverdueMapping(t *testing.T) {
	logger := logging.NewLogger()
	ctx := context.Background()

	t.Run("open invoice past due becomes overdue", func(t *testing.T) {
		billing := NewMockBilling(FaultConfig{}, logger)
		billing.now = func() time.Time {
			return time.Date(2024, 2, 26, 12, 0, 0, 0, time.UTC)
		}
		invoice, rec := billing.GetInvoiceByAccount(ctx, "BETA-002")
		require.Nil(t, rec)
		require.NotNil(t, invoice)
		assert.Equal(t, models.InvoiceStatusOverdue, invoice.Status)
		assert.Equal(t, 12, invoice.DaysOverdue)
	})

	t.Run("open invoice before due date stays open", func(t *testing.T) {
		billing := NewMockBilling(FaultConfig{}, logger)
		billing.now = func() time.Time {
			return time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
		}
		invoice, rec := billing.GetInvoiceByAccount(ctx, "BETA-002")
		require.Nil(t, rec)
		require.NotNil(t, invoice)
		assert.Equal(t, models.InvoiceStatusOpen, invoice.Status)
		assert.Zero(t, invoice.DaysOverdue)
	})

	t.Run("paid invoice is untouched", func(t *testing.T) {
		billing := NewMockBilling(FaultConfig{}, logger)
		invoice, rec := billing.GetInvoiceByAccount(ctx, "ACME-001")
		require.Nil(t, rec)
		require.NotNil(t, invoice)
		assert.Equal(t, models.InvoiceStatusPaid, invoice.Status)
	})

	t.Run("mapping does not mutate seed data", func(t *testing.T) {
		billing := NewMockBilling(FaultConfig{}, logger)
		billing.now = func() time.Time {
			return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		}
		_, _ = billing.GetInvoiceByAccount(ctx, "BETA-002")
		assert.Equal(t, models.InvoiceStatusOpen, billing.invoices["BETA-002"].Status)
	})

	t.Run("missing invoice is not found", func(t *testing.T) {
		billing := NewMockBilling(FaultConfig{}, logger)
		invoice, rec := billing.GetInvoiceByAccount(ctx, "GAMMA-003")
		assert.Nil(t, invoice)
		assert.Nil(t, rec)
	})
}

func TestMockContractSystem_GetContractByAccount(t *testing.T) {
	contracts := NewMockContractSystem(FaultConfig{}, logging.NewLogger())
	ctx := context.Background()

	t.Run("executed contract", func(t *testing.T) {
		contract, rec := contracts.GetContractByAccount(ctx, "ACME-001")
		require.Nil(t, rec)
		require.NotNil(t, contract)
		assert.Equal(t, models.ContractStatusExecuted, contract.Status)
		assert.Equal(t, "Enterprise", contract.KeyTerms.SLATier)
		assert.Empty(t, contract.PendingSignatories())
	})

	t.Run("unsigned contract has pending signatories", func(t *testing.T) {
		contract, rec := contracts.GetContractByAccount(ctx, "BETA-002")
		require.Nil(t, rec)
		require.NotNil(t, contract)
		assert.Equal(t, models.ContractStatusPendingSignature, contract.Status)
		assert.NotEmpty(t, contract.PendingSignatories())
	})

	t.Run("draft contract", func(t *testing.T) {
		contract, rec := contracts.GetContractByAccount(ctx, "GAMMA-003")
		require.Nil(t, rec)
		require.NotNil(t, contract)
		assert.Equal(t, models.ContractStatusDraft, contract.Status)
	})

	t.Run("unknown account", func(t *testing.T) {
		contract, rec := contracts.GetContractByAccount(ctx, "MISSING-999")
		assert.Nil(t, contract)
		assert.Nil(t, rec)
	})
}
