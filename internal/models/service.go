package models

import (
	"time"
)

// Service represents a service attached to a contract. The three
// type-conditional fields (TamHours, SupportType, LicensingProvider) are
// only meaningful for their matching service type; the rest stay null.
type Service struct {
	ID                string    `gorm:"primaryKey;size:36" json:"id"`
	ContractID        string    `gorm:"size:36;not null;index" json:"contract_id"`
	ServiceType       string    `gorm:"size:100;not null" json:"service_type"`
	StartDate         *string   `gorm:"size:10" json:"start_date"`
	EndDate           *string   `gorm:"size:10" json:"end_date"`
	Status            string    `gorm:"size:20;default:ativo;index" json:"status"`
	TamHours          *int      `json:"tam_hours"`
	SupportType       *string   `gorm:"size:50" json:"support_type"`
	LicensingProvider *string   `gorm:"size:50" json:"licensing_provider"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName specifies the table name for Service
func (Service) TableName() string {
	return "services"
}

// Service types with type-conditional fields
const (
	ServiceTypeTAM       = "TAM"
	ServiceTypeSupport   = "Suporte"
	ServiceTypeLicensing = "Licenciamento"
)

// Service form option lists
var (
	ServiceTypeOptions = []string{
		ServiceTypeLicensing,
		"Onboarding",
		ServiceTypeSupport,
		"Atendimento 24x7",
		"Gestão Cloud",
		"Assessment",
		ServiceTypeTAM,
		"Alocação de Recurso",
	}
	SupportTypeOptions       = []string{"Starter", "Standard", "Premium", "Outro"}
	LicensingProviderOptions = []string{"BW Soluções", "AWS", "GCP", "Datadog"}
)

// NoExpirationDays is the days-remaining sentinel for services without an
// end date (or with an unparseable one). It sorts after every real value
// and never trips the renewal urgency thresholds.
const NoExpirationDays = 9999

// Renewal urgency levels derived from days remaining
const (
	RenewalLevelExpiring = "expiring" // fewer than 7 days
	RenewalLevelSoon     = "soon"     // fewer than 30 days
	RenewalLevelOK       = "ok"
)

// RenewalLevel classifies a days-remaining value
func RenewalLevel(days int) string {
	if days < 7 {
		return RenewalLevelExpiring
	}
	if days < 30 {
		return RenewalLevelSoon
	}
	return RenewalLevelOK
}

// ServiceResponse is the JSON response format for services
type ServiceResponse struct {
	ID                string  `json:"id"`
	ContractID        string  `json:"contract_id"`
	ServiceType       string  `json:"service_type"`
	StartDate         *string `json:"start_date"`
	EndDate           *string `json:"end_date"`
	Status            string  `json:"status"`
	TamHours          *int    `json:"tam_hours"`
	SupportType       *string `json:"support_type"`
	LicensingProvider *string `json:"licensing_provider"`
	DaysRemaining     int     `json:"days_remaining"`
	RenewalLevel      string  `json:"renewal_level"`
}

// ToResponse converts Service to ServiceResponse given its computed
// days-remaining value.
func (s *Service) ToResponse(daysRemaining int) ServiceResponse {
	return ServiceResponse{
		ID:                s.ID,
		ContractID:        s.ContractID,
		ServiceType:       s.ServiceType,
		StartDate:         s.StartDate,
		EndDate:           s.EndDate,
		Status:            s.Status,
		TamHours:          s.TamHours,
		SupportType:       s.SupportType,
		LicensingProvider: s.LicensingProvider,
		DaysRemaining:     daysRemaining,
		RenewalLevel:      RenewalLevel(daysRemaining),
	}
}
