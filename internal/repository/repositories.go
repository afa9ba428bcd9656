package repository

import (
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	User     UserRepository
	Client   ClientRepository
	Contract ContractRepository
	Service  ServiceRepository
	Audit    AuditRepository
}

// NewRepositories creates all repository instances backed by the database
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Client:   NewClientRepository(db),
		Contract: NewContractRepository(db),
		Service:  NewServiceRepository(db),
		Audit:    NewAuditRepository(db),
	}
}

// NewMemoryRepositories creates all repository instances backed by process
// memory. Used by the test suite and for running without a database.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		User:     NewMemoryUserRepository(),
		Client:   NewMemoryClientRepository(),
		Contract: NewMemoryContractRepository(),
		Service:  NewMemoryServiceRepository(),
		Audit:    NewMemoryAuditRepository(),
	}
}
