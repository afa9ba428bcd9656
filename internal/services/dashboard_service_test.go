package services

import (
	"context"
	"testing"
	"time"

	"github.com/bwsolucoes/carteira-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Summarize(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()

	client := seedClient(t, svcs, "Acme")
	contract, err := svcs.Contract.SaveContract(ctx, "alice", &models.Contract{
		ClientID:       client.ID,
		ContractNumber: "CT-1",
	})
	require.NoError(t, err)

	soon := time.Now().UTC().AddDate(0, 0, 10).Format("2006-01-02")
	expired := time.Now().UTC().AddDate(0, 0, -3).Format("2006-01-02")
	far := time.Now().UTC().AddDate(0, 6, 0).Format("2006-01-02")

	for _, end := range []string{soon, expired, far} {
		endDate := end
		_, err = svcs.Contract.SaveService(ctx, "alice", &models.Service{
			ContractID:  contract.ID,
			ServiceType: "Onboarding",
			Status:      models.StatusActive,
			EndDate:     &endDate,
		})
		require.NoError(t, err)
	}

	// Dateless service: the sentinel keeps it out of both buckets
	_, err = svcs.Contract.SaveService(ctx, "alice", &models.Service{
		ContractID:  contract.ID,
		ServiceType: "Assessment",
		Status:      models.StatusActive,
	})
	require.NoError(t, err)

	// Inactive services never count toward renewals
	soonCopy := soon
	_, err = svcs.Contract.SaveService(ctx, "alice", &models.Service{
		ContractID:  contract.ID,
		ServiceType: "Suporte",
		Status:      models.StatusInactive,
		EndDate:     &soonCopy,
	})
	require.NoError(t, err)

	summary, err := svcs.Dashboard.Summarize(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.TotalClients)
	assert.Equal(t, int64(1), summary.TotalContracts)
	assert.Equal(t, int64(5), summary.TotalServices)
	assert.Equal(t, 1, summary.RenewalsIn30Days)
	assert.Equal(t, 1, summary.ExpiredServices)
}

func TestDashboardService_LogUpcomingRenewals(t *testing.T) {
	svcs, _ := newTestServices()

	// Smoke: runs clean on an empty portfolio
	require.NoError(t, svcs.Dashboard.LogUpcomingRenewals(context.Background()))
}
