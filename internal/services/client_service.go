package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwsolucoes/carteira-api/internal/models"
	"github.com/bwsolucoes/carteira-api/internal/repository"
	"github.com/bwsolucoes/carteira-api/pkg/logger"
	"github.com/google/uuid"
)

// ClientService handles client CRUD with audit recording
type ClientService struct {
	repo        repository.ClientRepository
	contractSvc *ContractService
	auditSvc    *AuditService
}

// NewClientService creates a new client service
func NewClientService(repo repository.ClientRepository, contractSvc *ContractService, auditSvc *AuditService) *ClientService {
	return &ClientService{
		repo:        repo,
		contractSvc: contractSvc,
		auditSvc:    auditSvc,
	}
}

// FindByID gets a client by ID
func (s *ClientService) FindByID(ctx context.Context, id string) (*models.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return client, nil
}

// List returns clients ordered by company name, optionally filtered by a
// case-insensitive search over company name, contact person and email.
func (s *ClientService) List(ctx context.Context, search string) ([]models.Client, error) {
	return s.repo.List(ctx, search)
}

// Save creates or updates a client. A blank ID means create. The audit
// event is appended only after the mutation succeeds; updates that change
// nothing produce no event.
func (s *ClientService) Save(ctx context.Context, actor string, input *models.Client) (*models.Client, error) {
	input.CompanyName = strings.TrimSpace(input.CompanyName)
	input.ContactPerson = strings.TrimSpace(input.ContactPerson)
	input.ContactEmail = strings.TrimSpace(input.ContactEmail)

	if input.CompanyName == "" || input.ContactPerson == "" || input.ContactEmail == "" {
		return nil, ErrClientFieldsRequired
	}

	if input.ID == "" {
		input.ID = uuid.NewString()
		if err := s.repo.Create(ctx, input); err != nil {
			return nil, err
		}
		details := fmt.Sprintf("Cliente '%s' criado.", input.CompanyName)
		if err := s.auditSvc.Append(ctx, actor, models.ActionCreate, input.ID, input.CompanyName, details); err != nil {
			return nil, err
		}
		return input, nil
	}

	existing, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		if err == repository.ErrRecordNotFound {
			logger.Warn(fmt.Sprintf("[ClientService] Update for missing client %s ignored", input.ID))
			return input, nil
		}
		return nil, err
	}

	changes := changedFields(existing, input)

	input.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, input); err != nil {
		return nil, err
	}

	if len(changes) > 0 {
		details := strings.Join(changes, "; ")
		if err := s.auditSvc.Append(ctx, actor, models.ActionUpdate, input.ID, input.CompanyName, details); err != nil {
			return nil, err
		}
	}
	return input, nil
}

// Delete removes a client and cascades over its contracts and services.
// The audit event is recorded only after every delete has gone through.
func (s *ClientService) Delete(ctx context.Context, actor, id string) error {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrRecordNotFound {
			logger.Warn(fmt.Sprintf("[ClientService] Delete for missing client %s ignored", id))
			return nil
		}
		return err
	}

	if err := s.contractSvc.DeleteContractsForClient(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	details := fmt.Sprintf("Cliente '%s' e todos os seus contratos foram excluídos.", client.CompanyName)
	return s.auditSvc.Append(ctx, actor, models.ActionDelete, client.ID, client.CompanyName, details)
}

// diffFieldOrder fixes the order fields appear in update descriptions
var diffFieldOrder = []string{
	"company_name",
	"contact_person",
	"contact_email",
	"datadog_channel",
	"bw_account_manager",
	"notes",
}

// changedFields builds one human-readable line per changed field, in the
// fixed diff order, formatted "<Label>: de '<old>' para '<new>'" with N/A
// standing in for empty values.
func changedFields(old, new *models.Client) []string {
	oldValues := clientFieldValues(old)
	newValues := clientFieldValues(new)

	var changes []string
	for _, field := range diffFieldOrder {
		before, after := oldValues[field], newValues[field]
		if before == after {
			continue
		}
		changes = append(changes, fmt.Sprintf("%s: de '%s' para '%s'",
			models.FieldLabels[field], displayValue(before), displayValue(after)))
	}
	return changes
}

func clientFieldValues(c *models.Client) map[string]string {
	return map[string]string{
		"company_name":       c.CompanyName,
		"contact_person":     c.ContactPerson,
		"contact_email":      c.ContactEmail,
		"datadog_channel":    c.DatadogChannel,
		"bw_account_manager": c.BWAccountManager,
		"notes":              c.Notes,
	}
}

func displayValue(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
