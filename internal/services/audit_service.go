package services

import (
	"context"
	"time"

	"github.com/bwsolucoes/carteira-api/internal/models"
	"github.com/bwsolucoes/carteira-api/internal/repository"
	"github.com/google/uuid"
)

// AuditService records and queries the append-only audit trail
type AuditService struct {
	repo repository.AuditRepository
}

// NewAuditService creates a new audit service
func NewAuditService(repo repository.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

// Append records an audit event. Events are never updated or deleted; the
// client name is snapshotted at event time.
func (s *AuditService) Append(ctx context.Context, user, action, clientID, clientName, details string) error {
	event := &models.AuditEvent{
		ID:         uuid.NewString(),
		Timestamp:  time.Now().UTC(),
		User:       user,
		Action:     action,
		ClientID:   clientID,
		ClientName: clientName,
		Details:    details,
	}
	return s.repo.Append(ctx, event)
}

// Query returns events newest first, filtered by a case-insensitive
// substring match over user, action, client name and details.
func (s *AuditService) Query(ctx context.Context, search string) ([]models.AuditEvent, error) {
	return s.repo.Query(ctx, search)
}
