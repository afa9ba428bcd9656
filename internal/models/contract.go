package models

import (
	"time"
)

// Contract represents a commercial contract held by a client
type Contract struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	ClientID       string    `gorm:"size:36;not null;index" json:"client_id"`
	ContractNumber string    `gorm:"size:255;not null" json:"contract_number"`
	Status         string    `gorm:"size:20;default:ativo;index" json:"status"`
	Notes          string    `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName specifies the table name for Contract
func (Contract) TableName() string {
	return "contracts"
}

// Contract and service status constants
const (
	StatusActive    = "ativo"
	StatusInactive  = "inativo"
	StatusCancelled = "cancelado"
)

// StatusOptions lists the selectable statuses for contracts and services
var StatusOptions = []string{StatusActive, StatusInactive, StatusCancelled}

// LegacyContractNumber marks contracts produced by the one-shot legacy
// client migration.
const LegacyContractNumber = "Contrato Legacy"

// MayCancel returns true if the contract can transition to cancelled
func (c *Contract) MayCancel() bool {
	return c.Status == StatusActive || c.Status == StatusInactive
}

// MayReactivate returns true if the contract can transition back to active.
// Cancelled is terminal.
func (c *Contract) MayReactivate() bool {
	return c.Status == StatusInactive
}

// ContractResponse is the JSON response format for contracts, with the
// contract's services grouped under it.
type ContractResponse struct {
	ID             string            `json:"id"`
	ClientID       string            `json:"client_id"`
	ContractNumber string            `json:"contract_number"`
	Status         string            `json:"status"`
	Notes          string            `json:"notes"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	Services       []ServiceResponse `json:"services"`
}

// ToResponse converts Contract to ContractResponse
func (c *Contract) ToResponse(services []ServiceResponse) ContractResponse {
	return ContractResponse{
		ID:             c.ID,
		ClientID:       c.ClientID,
		ContractNumber: c.ContractNumber,
		Status:         c.Status,
		Notes:          c.Notes,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
		Services:       services,
	}
}
