package repository

import (
	"context"
	"errors"

	"github.com/bwsolucoes/carteira-api/internal/models"
	"gorm.io/gorm"
)

// ErrRecordNotFound is returned by FindByID lookups when no row matches.
var ErrRecordNotFound = errors.New("record not found")

// ClientRepository defines the interface for client data access
type ClientRepository interface {
	FindByID(ctx context.Context, id string) (*models.Client, error)
	FindAll(ctx context.Context) ([]models.Client, error)
	List(ctx context.Context, search string) ([]models.Client, error)
	Create(ctx context.Context, client *models.Client) error
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) FindByID(ctx context.Context, id string) (*models.Client, error) {
	var client models.Client
	err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) FindAll(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	err := r.db.WithContext(ctx).Order("company_name ASC").Find(&clients).Error
	return clients, err
}

func (r *clientRepository) List(ctx context.Context, search string) ([]models.Client, error) {
	var clients []models.Client
	db := r.db.WithContext(ctx).Model(&models.Client{})

	if search != "" {
		term := "%" + search + "%"
		db = db.Where("company_name ILIKE ? OR contact_person ILIKE ? OR contact_email ILIKE ?", term, term, term)
	}

	err := db.Order("company_name ASC").Find(&clients).Error
	return clients, err
}

func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepository) Update(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

func (r *clientRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Client{}, "id = ?", id).Error
}

func (r *clientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Client{}).Count(&count).Error
	return count, err
}
