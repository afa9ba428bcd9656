package services

import (
	"context"
	"fmt"

	"github.com/bwsolucoes/carteira-api/internal/models"
	"github.com/bwsolucoes/carteira-api/internal/repository"
	"github.com/bwsolucoes/carteira-api/pkg/logger"
)

// DashboardService computes the portfolio summary counters
type DashboardService struct {
	clientRepo   repository.ClientRepository
	contractRepo repository.ContractRepository
	serviceRepo  repository.ServiceRepository
	contractSvc  *ContractService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	clientRepo repository.ClientRepository,
	contractRepo repository.ContractRepository,
	serviceRepo repository.ServiceRepository,
	contractSvc *ContractService,
) *DashboardService {
	return &DashboardService{
		clientRepo:   clientRepo,
		contractRepo: contractRepo,
		serviceRepo:  serviceRepo,
		contractSvc:  contractSvc,
	}
}

// Summary holds the dashboard counters
type Summary struct {
	TotalClients     int64 `json:"total_clients"`
	TotalContracts   int64 `json:"total_contracts"`
	TotalServices    int64 `json:"total_services"`
	RenewalsIn30Days int   `json:"renewals_in_30_days"`
	ExpiredServices  int   `json:"expired_services"`
}

// Summarize computes counts and renewal buckets over active services. The
// no-expiration sentinel keeps dateless services out of both buckets.
func (s *DashboardService) Summarize(ctx context.Context) (*Summary, error) {
	clients, err := s.clientRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	contracts, err := s.contractRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	services, err := s.serviceRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	all, err := s.serviceRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalClients:   clients,
		TotalContracts: contracts,
		TotalServices:  services,
	}
	for i := range all {
		if all[i].Status != models.StatusActive {
			continue
		}
		days := s.contractSvc.DaysRemaining(derefString(all[i].EndDate))
		switch {
		case days < 0:
			summary.ExpiredServices++
		case days < 30:
			summary.RenewalsIn30Days++
		}
	}
	return summary, nil
}

// LogUpcomingRenewals is the renewal-radar job body. It logs every active
// service expiring within 30 days so the team sees them on the daily run.
func (s *DashboardService) LogUpcomingRenewals(ctx context.Context) error {
	all, err := s.serviceRepo.FindAll(ctx)
	if err != nil {
		return err
	}

	upcoming := 0
	for i := range all {
		svc := &all[i]
		if svc.Status != models.StatusActive {
			continue
		}
		days := s.contractSvc.DaysRemaining(derefString(svc.EndDate))
		if days < 0 || days >= 30 {
			continue
		}
		upcoming++
		logger.Warn(fmt.Sprintf("[RenewalRadar] Service %s (%s) expires in %d days",
			svc.ID, svc.ServiceType, days))
	}
	logger.Info(fmt.Sprintf("[RenewalRadar] %d services expiring within 30 days", upcoming))
	return nil
}
