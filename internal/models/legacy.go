package models

// LegacyClient is the pre-migration flat client record with service fields
// embedded directly. It only exists as input to the legacy data migration
// and is never persisted in this shape.
type LegacyClient struct {
	ID                string   `json:"id"`
	CompanyName       string   `json:"company_name"`
	Notes             string   `json:"notes"`
	Services          []string `json:"services"`
	ServiceName       string   `json:"service_name"`
	ContractStartDate string   `json:"contract_start_date"`
	ContractEndDate   string   `json:"contract_end_date"`
	TamHours          *int     `json:"tam_hours"`
	SupportType       string   `json:"support_type"`
	LicensingProvider string   `json:"licensing_provider"`
}

// ServiceNames resolves the service-name list for migration: the services
// list when present, otherwise the singular service_name as a one-element
// list, otherwise nothing.
func (lc *LegacyClient) ServiceNames() []string {
	if len(lc.Services) > 0 {
		return lc.Services
	}
	if lc.ServiceName != "" {
		return []string{lc.ServiceName}
	}
	return nil
}

// Migratable reports whether this record produces a legacy contract at all:
// it must carry either embedded services or a contract start date. A bare
// service_name without a start date does not qualify.
func (lc *LegacyClient) Migratable() bool {
	return len(lc.Services) > 0 || lc.ContractStartDate != ""
}
