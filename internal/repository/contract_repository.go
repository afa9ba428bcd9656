package repository

import (
	"context"
	"errors"

	"github.com/bwsolucoes/carteira-api/internal/models"
	"gorm.io/gorm"
)

// ContractRepository defines the interface for contract data access
type ContractRepository interface {
	FindByID(ctx context.Context, id string) (*models.Contract, error)
	FindByClient(ctx context.Context, clientID string) ([]models.Contract, error)
	FindAll(ctx context.Context) ([]models.Contract, error)
	HasLegacyContract(ctx context.Context, clientID string) (bool, error)
	Create(ctx context.Context, contract *models.Contract) error
	Update(ctx context.Context, contract *models.Contract) error
	Delete(ctx context.Context, id string) error
	DeleteByClient(ctx context.Context, clientID string) error
	Count(ctx context.Context) (int64, error)
}

type contractRepository struct {
	db *gorm.DB
}

// NewContractRepository creates a new contract repository
func NewContractRepository(db *gorm.DB) ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) FindByID(ctx context.Context, id string) (*models.Contract, error) {
	var contract models.Contract
	err := r.db.WithContext(ctx).First(&contract, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &contract, nil
}

func (r *contractRepository) FindByClient(ctx context.Context, clientID string) ([]models.Contract, error) {
	var contracts []models.Contract
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("contract_number ASC").
		Find(&contracts).Error
	return contracts, err
}

func (r *contractRepository) FindAll(ctx context.Context) ([]models.Contract, error) {
	var contracts []models.Contract
	err := r.db.WithContext(ctx).Find(&contracts).Error
	return contracts, err
}

func (r *contractRepository) HasLegacyContract(ctx context.Context, clientID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Contract{}).
		Where("client_id = ? AND contract_number = ?", clientID, models.LegacyContractNumber).
		Count(&count).Error
	return count > 0, err
}

func (r *contractRepository) Create(ctx context.Context, contract *models.Contract) error {
	return r.db.WithContext(ctx).Create(contract).Error
}

func (r *contractRepository) Update(ctx context.Context, contract *models.Contract) error {
	return r.db.WithContext(ctx).Save(contract).Error
}

func (r *contractRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Contract{}, "id = ?", id).Error
}

func (r *contractRepository) DeleteByClient(ctx context.Context, clientID string) error {
	return r.db.WithContext(ctx).Delete(&models.Contract{}, "client_id = ?", clientID).Error
}

func (r *contractRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Contract{}).Count(&count).Error
	return count, err
}
