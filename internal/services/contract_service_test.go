package services

import (
	"context"
	"testing"
	"time"

	"github.com/bwsolucoes/carteira-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func seedClient(t *testing.T, svcs *Services, name string) *models.Client {
	t.Helper()
	client, err := svcs.Client.Save(context.Background(), "alice", &models.Client{
		CompanyName:   name,
		ContactPerson: "Bob",
		ContactEmail:  "bob@example.com",
	})
	require.NoError(t, err)
	return client
}

func TestContractService_SaveContract_RequiresNumber(t *testing.T) {
	svcs, _ := newTestServices()
	client := seedClient(t, svcs, "Acme")

	_, err := svcs.Contract.SaveContract(context.Background(), "alice", &models.Contract{
		ClientID:       client.ID,
		ContractNumber: "   ",
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "O número do contrato é obrigatório.", err.Error())
}

func TestContractService_SaveContract_CreateAlwaysActive(t *testing.T) {
	svcs, _ := newTestServices()
	client := seedClient(t, svcs, "Acme")
	ctx := context.Background()

	contract, err := svcs.Contract.SaveContract(ctx, "alice", &models.Contract{
		ClientID:       client.ID,
		ContractNumber: "CT-1",
		Status:         models.StatusCancelled,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, contract.Status)

	events, err := svcs.Audit.Query(ctx, "Contrato")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Contrato 'CT-1' criado.", events[0].Details)
	assert.Equal(t, "Acme", events[0].ClientName)
}

func TestContractService_SaveContract_UpdateReplaces(t *testing.T) {
	svcs, _ := newTestServices()
	client := seedClient(t, svcs, "Acme")
	ctx := context.Background()

	contract, err := svcs.Contract.SaveContract(ctx, "alice", &models.Contract{
		ClientID:       client.ID,
		ContractNumber: "CT-1",
	})
	require.NoError(t, err)

	updated := *contract
	updated.ContractNumber = "CT-1-REV"
	updated.Status = models.StatusInactive
	saved, err := svcs.Contract.SaveContract(ctx, "alice", &updated)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInactive, saved.Status)

	events, err := svcs.Audit.Query(ctx, "atualizado")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Contrato 'CT-1-REV' atualizado.", events[0].Details)
}

func TestContractService_SaveContract_MissingIDIsNoOp(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()

	before, err := svcs.Audit.Query(ctx, "")
	require.NoError(t, err)

	_, err = svcs.Contract.SaveContract(ctx, "alice", &models.Contract{
		ID:             "ghost",
		ContractNumber: "CT-X",
	})
	require.NoError(t, err)

	after, err := svcs.Audit.Query(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after))
}

func TestContractService_DeleteContract_CascadesServices(t *testing.T) {
	svcs, repos := newTestServices()
	client := seedClient(t, svcs, "Acme")
	ctx := context.Background()

	contract, err := svcs.Contract.SaveContract(ctx, "alice", &models.Contract{
		ClientID:       client.ID,
		ContractNumber: "CT-1",
	})
	require.NoError(t, err)

	_, err = svcs.Contract.SaveService(ctx, "alice", &models.Service{
		ContractID:  contract.ID,
		ServiceType: "Onboarding",
		Status:      models.StatusActive,
	})
	require.NoError(t, err)

	require.NoError(t, svcs.Contract.DeleteContract(ctx, "alice", contract.ID))

	services, err := repos.Service.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, services)

	events, err := svcs.Audit.Query(ctx, "excluídos")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Contrato 'CT-1' e seus serviços foram excluídos.", events[0].Details)
}

func TestContractService_SaveService_NormalizesConditionalFields(t *testing.T) {
	svcs, _ := newTestServices()
	client := seedClient(t, svcs, "Acme")
	ctx := context.Background()

	contract, err := svcs.Contract.SaveContract(ctx, "alice", &models.Contract{
		ClientID:       client.ID,
		ContractNumber: "CT-1",
	})
	require.NoError(t, err)

	support := "Premium"
	service, err := svcs.Contract.SaveService(ctx, "alice", &models.Service{
		ContractID:  contract.ID,
		ServiceType: models.ServiceTypeTAM,
		Status:      models.StatusActive,
		TamHours:    intPtr(40),
		SupportType: &support,
	})
	require.NoError(t, err)
	require.NotNil(t, service.TamHours)
	assert.Equal(t, 40, *service.TamHours)
	assert.Nil(t, service.SupportType, "support_type only applies to Suporte")
	assert.Nil(t, service.LicensingProvider)

	events, err := svcs.Audit.Query(ctx, "adicionado")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Serviço 'TAM' adicionado.", events[0].Details)
}

func TestContractService_SaveService_RequiresType(t *testing.T) {
	svcs, _ := newTestServices()

	_, err := svcs.Contract.SaveService(context.Background(), "alice", &models.Service{
		ContractID: "whatever",
	})
	require.Error(t, err)
	assert.Equal(t, "O tipo de serviço é obrigatório.", err.Error())
}

func TestContractService_CancelAndReactivate(t *testing.T) {
	svcs, _ := newTestServices()
	client := seedClient(t, svcs, "Acme")
	ctx := context.Background()

	contract, err := svcs.Contract.SaveContract(ctx, "alice", &models.Contract{
		ClientID:       client.ID,
		ContractNumber: "CT-1",
	})
	require.NoError(t, err)

	// ativo cannot reactivate
	_, err = svcs.Contract.ReactivateContract(ctx, "alice", contract.ID)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	cancelled, err := svcs.Contract.CancelContract(ctx, "alice", contract.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)

	// cancelado is terminal
	_, err = svcs.Contract.ReactivateContract(ctx, "alice", contract.ID)
	require.Error(t, err)
	_, err = svcs.Contract.CancelContract(ctx, "alice", contract.ID)
	require.Error(t, err)
}

func TestContractService_MigrateLegacyData(t *testing.T) {
	svcs, repos := newTestServices()
	ctx := context.Background()

	legacy := []models.LegacyClient{
		{
			ID:                "c1",
			CompanyName:       "Acme",
			Notes:             "cliente antigo",
			Services:          []string{models.ServiceTypeTAM, "", models.ServiceTypeSupport},
			ContractStartDate: "2023-01-01",
			ContractEndDate:   "2024-01-01",
			TamHours:          intPtr(20),
			SupportType:       "Standard",
			LicensingProvider: "AWS",
		},
		{
			// Start date only: legacy contract with no services
			ID:                "c2",
			CompanyName:       "Beta",
			ContractStartDate: "2022-06-01",
		},
		{
			// Bare service_name without a start date does not qualify
			ID:          "c3",
			CompanyName: "Gama",
			ServiceName: "Onboarding",
		},
	}

	migrated, err := svcs.Contract.MigrateLegacyData(ctx, legacy)
	require.NoError(t, err)
	assert.Equal(t, 2, migrated)

	contracts, err := repos.Contract.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, contracts, 2)
	for _, c := range contracts {
		assert.Equal(t, models.LegacyContractNumber, c.ContractNumber)
		assert.Equal(t, models.StatusActive, c.Status)
	}

	services, err := repos.Service.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, services, 2, "empty service names are skipped")

	byType := map[string]models.Service{}
	for _, s := range services {
		byType[s.ServiceType] = s
	}

	tam := byType[models.ServiceTypeTAM]
	require.NotNil(t, tam.TamHours)
	assert.Equal(t, 20, *tam.TamHours)
	assert.Nil(t, tam.SupportType)
	require.NotNil(t, tam.StartDate)
	assert.Equal(t, "2023-01-01", *tam.StartDate)

	sup := byType[models.ServiceTypeSupport]
	require.NotNil(t, sup.SupportType)
	assert.Equal(t, "Standard", *sup.SupportType)
	assert.Nil(t, sup.TamHours)
	assert.Nil(t, sup.LicensingProvider)
}

func TestContractService_MigrateLegacyData_Idempotent(t *testing.T) {
	svcs, repos := newTestServices()
	ctx := context.Background()

	legacy := []models.LegacyClient{
		{ID: "c1", CompanyName: "Acme", Services: []string{"Onboarding"}, ContractStartDate: "2023-01-01"},
	}

	_, err := svcs.Contract.MigrateLegacyData(ctx, legacy)
	require.NoError(t, err)

	// Second call is a no-op: the completion flag short-circuits
	migrated, err := svcs.Contract.MigrateLegacyData(ctx, legacy)
	require.NoError(t, err)
	assert.Zero(t, migrated)

	// Even with the flag cleared, the per-client legacy contract guard holds
	svcs.Contract.migrationCompleted = false
	migrated, err = svcs.Contract.MigrateLegacyData(ctx, legacy)
	require.NoError(t, err)
	assert.Zero(t, migrated)

	contracts, err := repos.Contract.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, contracts, 1)

	services, err := repos.Service.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, services, 1)
}

func TestContractService_MigrateLegacyData_EmptyInputKeepsFlagClear(t *testing.T) {
	svcs, _ := newTestServices()
	ctx := context.Background()

	_, err := svcs.Contract.MigrateLegacyData(ctx, nil)
	require.NoError(t, err)
	assert.False(t, svcs.Contract.migrationCompleted)
}

func TestContractService_DaysRemaining(t *testing.T) {
	svcs, _ := newTestServices()

	assert.Equal(t, models.NoExpirationDays, svcs.Contract.DaysRemaining(""))
	assert.Equal(t, models.NoExpirationDays, svcs.Contract.DaysRemaining("not-a-date"))
	assert.Equal(t, models.NoExpirationDays, svcs.Contract.DaysRemaining("01/02/2024"))

	in10 := time.Now().UTC().AddDate(0, 0, 10).Format("2006-01-02")
	days := svcs.Contract.DaysRemaining(in10)
	assert.InDelta(t, 10, days, 1)

	past := time.Now().UTC().AddDate(0, 0, -5).Format("2006-01-02")
	assert.Less(t, svcs.Contract.DaysRemaining(past), 0)
}

func TestContractService_ContractsForClient_GroupsServices(t *testing.T) {
	svcs, _ := newTestServices()
	client := seedClient(t, svcs, "Acme")
	ctx := context.Background()

	first, err := svcs.Contract.SaveContract(ctx, "alice", &models.Contract{
		ClientID:       client.ID,
		ContractNumber: "B-2",
	})
	require.NoError(t, err)
	second, err := svcs.Contract.SaveContract(ctx, "alice", &models.Contract{
		ClientID:       client.ID,
		ContractNumber: "A-1",
	})
	require.NoError(t, err)

	end := time.Now().UTC().AddDate(0, 0, 5).Format("2006-01-02")
	_, err = svcs.Contract.SaveService(ctx, "alice", &models.Service{
		ContractID:  first.ID,
		ServiceType: "Onboarding",
		Status:      models.StatusActive,
		EndDate:     &end,
	})
	require.NoError(t, err)

	out, err := svcs.Contract.ContractsForClient(ctx, client.ID)
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Ordered by contract number
	assert.Equal(t, "A-1", out[0].ContractNumber)
	assert.Equal(t, second.ID, out[0].ID)
	assert.Empty(t, out[0].Services)

	require.Len(t, out[1].Services, 1)
	svc := out[1].Services[0]
	assert.Equal(t, models.RenewalLevelExpiring, svc.RenewalLevel)
	assert.InDelta(t, 5, svc.DaysRemaining, 1)
}

// Full lifecycle: create, migrate, edit, delete; the audit trail keeps one
// event per mutation and the delete leaves no orphans.
func TestContractService_FullScenario(t *testing.T) {
	svcs, repos := newTestServices()
	ctx := context.Background()

	client := seedClient(t, svcs, "Acme")

	_, err := svcs.Contract.MigrateLegacyData(ctx, []models.LegacyClient{
		{ID: client.ID, CompanyName: "Acme", Services: []string{"Onboarding"}, ContractStartDate: "2023-01-01"},
	})
	require.NoError(t, err)

	updated := *client
	updated.Notes = "prioridade alta"
	_, err = svcs.Client.Save(ctx, "alice", &updated)
	require.NoError(t, err)

	require.NoError(t, svcs.Client.Delete(ctx, "alice", client.ID))

	contracts, err := repos.Contract.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, contracts)
	services, err := repos.Service.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, services)

	events, err := svcs.Audit.Query(ctx, "")
	require.NoError(t, err)
	// create, update diff, delete; the migration itself is not audited
	require.Len(t, events, 3)
	assert.Equal(t, models.ActionDelete, events[0].Action)
	for _, e := range events {
		assert.Equal(t, "Acme", e.ClientName)
	}
}
