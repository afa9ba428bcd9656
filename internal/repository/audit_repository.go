package repository

import (
	"context"

	"github.com/bwsolucoes/carteira-api/internal/models"
	"gorm.io/gorm"
)

// AuditRepository defines the interface for audit event data access.
// Append is the only write path; events are never updated or deleted.
type AuditRepository interface {
	Append(ctx context.Context, event *models.AuditEvent) error
	Query(ctx context.Context, search string) ([]models.AuditEvent, error)
}

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Append(ctx context.Context, event *models.AuditEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *auditRepository) Query(ctx context.Context, search string) ([]models.AuditEvent, error) {
	var events []models.AuditEvent
	db := r.db.WithContext(ctx).Model(&models.AuditEvent{})

	if search != "" {
		term := "%" + search + "%"
		// "user" needs quoting: it is a reserved word in Postgres
		db = db.Where(`"user" ILIKE ? OR action ILIKE ? OR client_name ILIKE ? OR details ILIKE ?`,
			term, term, term, term)
	}

	err := db.Order("timestamp DESC").Find(&events).Error
	return events, err
}
