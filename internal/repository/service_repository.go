package repository

import (
	"context"
	"errors"

	"github.com/bwsolucoes/carteira-api/internal/models"
	"gorm.io/gorm"
)

// ServiceRepository defines the interface for service data access
type ServiceRepository interface {
	FindByID(ctx context.Context, id string) (*models.Service, error)
	FindByContract(ctx context.Context, contractID string) ([]models.Service, error)
	FindByContractIDs(ctx context.Context, contractIDs []string) ([]models.Service, error)
	FindAll(ctx context.Context) ([]models.Service, error)
	Create(ctx context.Context, service *models.Service) error
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, id string) error
	DeleteByContract(ctx context.Context, contractID string) error
	DeleteByContractIDs(ctx context.Context, contractIDs []string) error
	Count(ctx context.Context) (int64, error)
}

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) FindByID(ctx context.Context, id string) (*models.Service, error) {
	var service models.Service
	err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) FindByContract(ctx context.Context, contractID string) ([]models.Service, error) {
	var services []models.Service
	err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("created_at ASC").
		Find(&services).Error
	return services, err
}

func (r *serviceRepository) FindByContractIDs(ctx context.Context, contractIDs []string) ([]models.Service, error) {
	if len(contractIDs) == 0 {
		return nil, nil
	}
	var services []models.Service
	err := r.db.WithContext(ctx).
		Where("contract_id IN ?", contractIDs).
		Order("created_at ASC").
		Find(&services).Error
	return services, err
}

func (r *serviceRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := r.db.WithContext(ctx).Find(&services).Error
	return services, err
}

func (r *serviceRepository) Create(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *serviceRepository) Update(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Save(service).Error
}

func (r *serviceRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Service{}, "id = ?", id).Error
}

func (r *serviceRepository) DeleteByContract(ctx context.Context, contractID string) error {
	return r.db.WithContext(ctx).Delete(&models.Service{}, "contract_id = ?", contractID).Error
}

func (r *serviceRepository) DeleteByContractIDs(ctx context.Context, contractIDs []string) error {
	if len(contractIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&models.Service{}, "contract_id IN ?", contractIDs).Error
}

func (r *serviceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Service{}).Count(&count).Error
	return count, err
}
