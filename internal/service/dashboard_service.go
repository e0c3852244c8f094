package service

import (
	"context"

	"github.com/xbl/lead-tracker/internal/domain"
	"github.com/xbl/lead-tracker/internal/mapper"
	"github.com/xbl/lead-tracker/internal/repository"
	"go.uber.org/zap"
)

// upcomingFollowUpLimit caps the follow-ups embedded in the summary
const upcomingFollowUpLimit = 5

type DashboardService struct {
	leadRepo     *repository.LeadRepository
	customerRepo *repository.CustomerRepository
	employeeRepo *repository.EmployeeRepository
	logger       *zap.Logger
}

func NewDashboardService(
	leadRepo *repository.LeadRepository,
	customerRepo *repository.CustomerRepository,
	employeeRepo *repository.EmployeeRepository,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		leadRepo:     leadRepo,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// Summary returns headline counts and the earliest due follow-ups as of the given date
func (s *DashboardService) Summary(ctx context.Context, asOf domain.Date) (*domain.DashboardSummaryDTO, error) {
	if asOf.IsZero() {
		asOf = domain.Today()
	}

	totalLeads, err := s.leadRepo.Count(ctx)
	if err != nil {
		return nil, storeError("count leads", err)
	}
	totalCustomers, err := s.customerRepo.Count(ctx)
	if err != nil {
		return nil, storeError("count customers", err)
	}
	totalEmployees, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return nil, storeError("count employees", err)
	}
	counts, err := s.leadRepo.CountByStatus(ctx)
	if err != nil {
		return nil, storeError("count leads by status", err)
	}
	due, err := s.leadRepo.ListNeedingFollowUp(ctx, asOf)
	if err != nil {
		return nil, storeError("list follow-ups", err)
	}

	byStatus := make([]domain.StatusCountDTO, 0, len(domain.LeadStatuses()))
	for _, status := range domain.LeadStatuses() {
		byStatus = append(byStatus, domain.StatusCountDTO{Status: status, Count: counts[status]})
	}

	upcoming := due
	if len(upcoming) > upcomingFollowUpLimit {
		upcoming = upcoming[:upcomingFollowUpLimit]
	}

	return &domain.DashboardSummaryDTO{
		TotalLeads:        totalLeads,
		TotalCustomers:    totalCustomers,
		TotalEmployees:    totalEmployees,
		WonLeads:          counts[domain.LeadStatusWon],
		LeadsByStatus:     byStatus,
		FollowUpsDue:      len(due),
		UpcomingFollowUps: mapper.ToFollowUpSummaryDTOs(upcoming),
		AsOf:              asOf,
	}, nil
}
