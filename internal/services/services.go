package services

import (
	"github.com/bwsolucoes/carteira-api/internal/repository"
)

// Services holds all service instances
type Services struct {
	Auth      *AuthService
	Client    *ClientService
	Contract  *ContractService
	Audit     *AuditService
	Dashboard *DashboardService
	Export    *ExportService
	Report    *ReportService
}

// NewServices creates all service instances
func NewServices(repos *repository.Repositories) *Services {
	auditSvc := NewAuditService(repos.Audit)
	contractSvc := NewContractService(repos.Contract, repos.Service, repos.Client, auditSvc)
	clientSvc := NewClientService(repos.Client, contractSvc, auditSvc)

	return &Services{
		Auth:      NewAuthService(repos.User),
		Client:    clientSvc,
		Contract:  contractSvc,
		Audit:     auditSvc,
		Dashboard: NewDashboardService(repos.Client, repos.Contract, repos.Service, contractSvc),
		Export:    NewExportService(auditSvc, clientSvc),
		Report:    NewReportService(clientSvc, contractSvc),
	}
}
