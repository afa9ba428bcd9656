package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bwsolucoes/carteira-api/internal/models"
	"github.com/bwsolucoes/carteira-api/internal/repository"
	"github.com/bwsolucoes/carteira-api/internal/statemachine"
	"github.com/bwsolucoes/carteira-api/pkg/logger"
	"github.com/google/uuid"
)

// ContractService handles contracts and their services, including the
// one-shot legacy data migration.
type ContractService struct {
	repo        repository.ContractRepository
	serviceRepo repository.ServiceRepository
	clientRepo  repository.ClientRepository
	auditSvc    *AuditService

	migrationMu        sync.Mutex
	migrationCompleted bool
}

// NewContractService creates a new contract service
func NewContractService(
	repo repository.ContractRepository,
	serviceRepo repository.ServiceRepository,
	clientRepo repository.ClientRepository,
	auditSvc *AuditService,
) *ContractService {
	return &ContractService{
		repo:        repo,
		serviceRepo: serviceRepo,
		clientRepo:  clientRepo,
		auditSvc:    auditSvc,
	}
}

// FindContractByID gets a contract by ID
func (s *ContractService) FindContractByID(ctx context.Context, id string) (*models.Contract, error) {
	contract, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return contract, nil
}

// ContractsForClient returns the client's contracts ordered by contract
// number, each with its services grouped under it and renewal info computed.
func (s *ContractService) ContractsForClient(ctx context.Context, clientID string) ([]models.ContractResponse, error) {
	contracts, err := s.repo.FindByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	contractIDs := make([]string, 0, len(contracts))
	for _, c := range contracts {
		contractIDs = append(contractIDs, c.ID)
	}
	services, err := s.serviceRepo.FindByContractIDs(ctx, contractIDs)
	if err != nil {
		return nil, err
	}

	byContract := make(map[string][]models.ServiceResponse, len(contracts))
	for i := range services {
		svc := services[i]
		days := s.DaysRemaining(derefString(svc.EndDate))
		byContract[svc.ContractID] = append(byContract[svc.ContractID], svc.ToResponse(days))
	}

	out := make([]models.ContractResponse, 0, len(contracts))
	for i := range contracts {
		grouped := byContract[contracts[i].ID]
		if grouped == nil {
			grouped = []models.ServiceResponse{}
		}
		out = append(out, contracts[i].ToResponse(grouped))
	}
	return out, nil
}

// SaveContract creates or updates a contract. New contracts always start
// ativo regardless of the submitted status; updates replace the stored
// record with the submitted one.
func (s *ContractService) SaveContract(ctx context.Context, actor string, input *models.Contract) (*models.Contract, error) {
	input.ContractNumber = strings.TrimSpace(input.ContractNumber)
	if input.ContractNumber == "" {
		return nil, ErrContractNumberRequired
	}

	if input.ID == "" {
		client, err := s.clientRepo.FindByID(ctx, input.ClientID)
		if err != nil {
			if err == repository.ErrRecordNotFound {
				return nil, ErrNotFound
			}
			return nil, err
		}

		input.ID = uuid.NewString()
		input.Status = models.StatusActive
		if err := s.repo.Create(ctx, input); err != nil {
			return nil, err
		}

		details := fmt.Sprintf("Contrato '%s' criado.", input.ContractNumber)
		if err := s.auditSvc.Append(ctx, actor, models.ActionCreate, client.ID, client.CompanyName, details); err != nil {
			return nil, err
		}
		return input, nil
	}

	existing, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		if err == repository.ErrRecordNotFound {
			logger.Warn(fmt.Sprintf("[ContractService] Update for missing contract %s ignored", input.ID))
			return input, nil
		}
		return nil, err
	}

	input.ClientID = existing.ClientID
	input.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, input); err != nil {
		return nil, err
	}

	details := fmt.Sprintf("Contrato '%s' atualizado.", input.ContractNumber)
	if err := s.appendClientEvent(ctx, actor, models.ActionUpdate, existing.ClientID, details); err != nil {
		return nil, err
	}
	return input, nil
}

// DeleteContract removes a contract and every service attached to it
func (s *ContractService) DeleteContract(ctx context.Context, actor, id string) error {
	contract, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrRecordNotFound {
			logger.Warn(fmt.Sprintf("[ContractService] Delete for missing contract %s ignored", id))
			return nil
		}
		return err
	}

	if err := s.serviceRepo.DeleteByContract(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	details := fmt.Sprintf("Contrato '%s' e seus serviços foram excluídos.", contract.ContractNumber)
	return s.appendClientEvent(ctx, actor, models.ActionDelete, contract.ClientID, details)
}

// CancelContract transitions a contract to cancelado through the state
// machine. Cancelado is terminal.
func (s *ContractService) CancelContract(ctx context.Context, actor, id string) (*models.Contract, error) {
	contract, err := s.FindContractByID(ctx, id)
	if err != nil {
		return nil, err
	}

	machine := statemachine.NewContractFSM(contract)
	if err := machine.Cancel(ctx); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	if err := s.repo.Update(ctx, contract); err != nil {
		return nil, err
	}

	details := fmt.Sprintf("Contrato '%s' cancelado.", contract.ContractNumber)
	if err := s.appendClientEvent(ctx, actor, models.ActionUpdate, contract.ClientID, details); err != nil {
		return nil, err
	}
	return contract, nil
}

// ReactivateContract transitions an inativo contract back to ativo
func (s *ContractService) ReactivateContract(ctx context.Context, actor, id string) (*models.Contract, error) {
	contract, err := s.FindContractByID(ctx, id)
	if err != nil {
		return nil, err
	}

	machine := statemachine.NewContractFSM(contract)
	if err := machine.Reactivate(ctx); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	if err := s.repo.Update(ctx, contract); err != nil {
		return nil, err
	}

	details := fmt.Sprintf("Contrato '%s' reativado.", contract.ContractNumber)
	if err := s.appendClientEvent(ctx, actor, models.ActionUpdate, contract.ClientID, details); err != nil {
		return nil, err
	}
	return contract, nil
}

// SaveService creates or updates a service under a contract. Fields that
// only apply to another service type are cleared before saving.
func (s *ContractService) SaveService(ctx context.Context, actor string, input *models.Service) (*models.Service, error) {
	input.ServiceType = strings.TrimSpace(input.ServiceType)
	if input.ServiceType == "" {
		return nil, ErrServiceTypeRequired
	}

	normalizeServiceFields(input)

	creating := input.ID == ""
	if creating {
		contract, err := s.repo.FindByID(ctx, input.ContractID)
		if err != nil {
			if err == repository.ErrRecordNotFound {
				return nil, ErrNotFound
			}
			return nil, err
		}

		input.ID = uuid.NewString()
		if err := s.serviceRepo.Create(ctx, input); err != nil {
			return nil, err
		}

		details := fmt.Sprintf("Serviço '%s' adicionado.", input.ServiceType)
		if err := s.appendClientEvent(ctx, actor, models.ActionCreate, contract.ClientID, details); err != nil {
			return nil, err
		}
		return input, nil
	}

	existing, err := s.serviceRepo.FindByID(ctx, input.ID)
	if err != nil {
		if err == repository.ErrRecordNotFound {
			logger.Warn(fmt.Sprintf("[ContractService] Update for missing service %s ignored", input.ID))
			return input, nil
		}
		return nil, err
	}

	contract, err := s.repo.FindByID(ctx, existing.ContractID)
	if err != nil {
		return nil, err
	}

	input.ContractID = existing.ContractID
	input.CreatedAt = existing.CreatedAt
	if err := s.serviceRepo.Update(ctx, input); err != nil {
		return nil, err
	}

	details := fmt.Sprintf("Serviço '%s' atualizado.", input.ServiceType)
	if err := s.appendClientEvent(ctx, actor, models.ActionUpdate, contract.ClientID, details); err != nil {
		return nil, err
	}
	return input, nil
}

// DeleteService removes a single service
func (s *ContractService) DeleteService(ctx context.Context, actor, id string) error {
	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrRecordNotFound {
			logger.Warn(fmt.Sprintf("[ContractService] Delete for missing service %s ignored", id))
			return nil
		}
		return err
	}

	contract, err := s.repo.FindByID(ctx, service.ContractID)
	if err != nil && err != repository.ErrRecordNotFound {
		return err
	}

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		return err
	}

	clientID := ""
	if contract != nil {
		clientID = contract.ClientID
	}
	details := fmt.Sprintf("Serviço '%s' foi excluído.", service.ServiceType)
	return s.appendClientEvent(ctx, actor, models.ActionDelete, clientID, details)
}

// DeleteContractsForClient removes every contract of the client together
// with all services hanging off those contracts. The contract id set is
// collected first so both deletes cover exactly the same contracts. No
// audit event is written here; the client-level cascade records one.
func (s *ContractService) DeleteContractsForClient(ctx context.Context, clientID string) error {
	contracts, err := s.repo.FindByClient(ctx, clientID)
	if err != nil {
		return err
	}

	contractIDs := make([]string, 0, len(contracts))
	seen := make(map[string]struct{}, len(contracts))
	for _, c := range contracts {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		contractIDs = append(contractIDs, c.ID)
	}

	if err := s.serviceRepo.DeleteByContractIDs(ctx, contractIDs); err != nil {
		return err
	}
	return s.repo.DeleteByClient(ctx, clientID)
}

// MigrateLegacyData converts flat legacy client records into contracts and
// services. It runs at most once per process (the completion flag is set
// even when individual records are skipped) and is idempotent per client
// through the "Contrato Legacy" guard. Returns the number of clients that
// produced a legacy contract.
func (s *ContractService) MigrateLegacyData(ctx context.Context, legacy []models.LegacyClient) (int, error) {
	s.migrationMu.Lock()
	defer s.migrationMu.Unlock()

	if s.migrationCompleted || len(legacy) == 0 {
		return 0, nil
	}
	logger.Info(fmt.Sprintf("Starting data migration for %d clients", len(legacy)))

	migrated := 0
	for i := range legacy {
		lc := &legacy[i]

		exists, err := s.repo.HasLegacyContract(ctx, lc.ID)
		if err != nil {
			return migrated, err
		}
		if exists {
			continue
		}
		if !lc.Migratable() {
			continue
		}

		contract := &models.Contract{
			ID:             uuid.NewString(),
			ClientID:       lc.ID,
			ContractNumber: models.LegacyContractNumber,
			Status:         models.StatusActive,
			Notes:          lc.Notes,
		}
		if err := s.repo.Create(ctx, contract); err != nil {
			return migrated, err
		}

		for _, name := range lc.ServiceNames() {
			if name == "" {
				continue
			}
			service := &models.Service{
				ID:          uuid.NewString(),
				ContractID:  contract.ID,
				ServiceType: name,
				StartDate:   optionalString(lc.ContractStartDate),
				EndDate:     optionalString(lc.ContractEndDate),
				Status:      models.StatusActive,
			}
			switch name {
			case models.ServiceTypeTAM:
				service.TamHours = lc.TamHours
			case models.ServiceTypeSupport:
				service.SupportType = optionalString(lc.SupportType)
			case models.ServiceTypeLicensing:
				service.LicensingProvider = optionalString(lc.LicensingProvider)
			}
			if err := s.serviceRepo.Create(ctx, service); err != nil {
				return migrated, err
			}
		}
		migrated++
	}

	s.migrationCompleted = true
	logger.Info("Data migration completed successfully")
	return migrated, nil
}

// DaysRemaining computes whole days until an end date in YYYY-MM-DD form.
// Empty or unparseable dates yield the no-expiration sentinel; parse
// failures are logged, never surfaced.
func (s *ContractService) DaysRemaining(endDate string) int {
	if endDate == "" {
		return models.NoExpirationDays
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		logger.Error(fmt.Sprintf("Error parsing date '%s': %v", endDate, err))
		return models.NoExpirationDays
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	return int(end.Sub(today).Hours() / 24)
}

// appendClientEvent writes an audit event tagged with the owning client,
// resolving the client name snapshot first.
func (s *ContractService) appendClientEvent(ctx context.Context, actor, action, clientID, details string) error {
	clientName := ""
	if clientID != "" {
		if client, err := s.clientRepo.FindByID(ctx, clientID); err == nil {
			clientName = client.CompanyName
		}
	}
	return s.auditSvc.Append(ctx, actor, action, clientID, clientName, details)
}

// normalizeServiceFields clears type-conditional fields that do not apply
// to the service's type.
func normalizeServiceFields(svc *models.Service) {
	if svc.ServiceType != models.ServiceTypeTAM {
		svc.TamHours = nil
	}
	if svc.ServiceType != models.ServiceTypeSupport {
		svc.SupportType = nil
	}
	if svc.ServiceType != models.ServiceTypeLicensing {
		svc.LicensingProvider = nil
	}
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
