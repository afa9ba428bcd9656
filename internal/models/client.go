package models

import (
	"time"
)

// Client represents a managed client account
type Client struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	CompanyName      string    `gorm:"size:255;not null" json:"company_name"`
	ContactPerson    string    `gorm:"size:255;not null" json:"contact_person"`
	ContactEmail     string    `gorm:"size:255;not null" json:"contact_email"`
	DatadogChannel   string    `gorm:"size:100" json:"datadog_channel"`
	BWAccountManager string    `gorm:"size:100" json:"bw_account_manager"`
	Notes            string    `gorm:"type:text" json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName specifies the table name for Client
func (Client) TableName() string {
	return "clients"
}

// Account manager and Datadog channel option lists shown in the client form
var (
	AccountManagerOptions = []string{
		"Camila Nogueira",
		"Isabela Morassi",
		"Carolina Cunha",
		"Raphael Terra",
	}
	DatadogChannelOptions = []string{"Enterprise", "Mid-Market", "Comercial", "Outro"}
)

// FieldLabels maps client field identifiers to the display names used in
// audit diff descriptions.
var FieldLabels = map[string]string{
	"company_name":       "Nome da Empresa",
	"contact_person":     "Contratante",
	"contact_email":      "E-mail",
	"datadog_channel":    "Canal Datadog",
	"bw_account_manager": "AM BW Soluções",
	"notes":              "Observações",
}
