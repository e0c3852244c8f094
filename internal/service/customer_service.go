package service

import (
	"context"
	"strings"

	"github.com/xbl/lead-tracker/internal/domain"
	"github.com/xbl/lead-tracker/internal/mapper"
	"github.com/xbl/lead-tracker/internal/repository"
	"go.uber.org/zap"
)

type CustomerService struct {
	customerRepo *repository.CustomerRepository
	logger       *zap.Logger
}

func NewCustomerService(
	customerRepo *repository.CustomerRepository,
	logger *zap.Logger,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create adds a customer. Fails with ErrDuplicateName when the name is taken.
func (s *CustomerService) Create(ctx context.Context, req *domain.CreateCustomerRequest) (*domain.CustomerDTO, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalidInput("customer name is required")
	}

	customer := &domain.Customer{
		Name:          name,
		ContactPerson: strings.TrimSpace(req.ContactPerson),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       sanitizeText(req.Address),
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateName
		}
		s.logger.Error("failed to create customer", zap.String("name", name), zap.Error(err))
		return nil, storeError("create customer", err)
	}

	s.logger.Info("customer created", zap.Uint("id", customer.ID), zap.String("name", customer.Name))

	dto := mapper.ToCustomerDTO(customer)
	return &dto, nil
}

// ListNames returns customer names in ascending order
func (s *CustomerService) ListNames(ctx context.Context) ([]string, error) {
	names, err := s.customerRepo.ListNames(ctx)
	if err != nil {
		return nil, storeError("list customers", err)
	}
	return names, nil
}

// GetID resolves a customer name to its id
func (s *CustomerService) GetID(ctx context.Context, name string) (uint, error) {
	customer, err := s.customerRepo.GetByName(ctx, name)
	if err != nil {
		if isNotFound(err) {
			return 0, ErrCustomerNotFound
		}
		return 0, storeError("get customer", err)
	}
	return customer.ID, nil
}

// GetDetails returns the contact fields of the named customer
func (s *CustomerService) GetDetails(ctx context.Context, name string) (*domain.CustomerDetailsDTO, error) {
	customer, err := s.customerRepo.GetByName(ctx, name)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCustomerNotFound
		}
		return nil, storeError("get customer", err)
	}
	dto := mapper.ToCustomerDetailsDTO(customer)
	return &dto, nil
}

// UpdateDetails overwrites all four contact fields. The customer is never renamed.
func (s *CustomerService) UpdateDetails(ctx context.Context, req *domain.UpdateCustomerRequest) (*domain.CustomerDetailsDTO, error) {
	details := domain.CustomerDetailsDTO{
		ContactPerson: strings.TrimSpace(req.ContactPerson),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       sanitizeText(req.Address),
	}

	found, err := s.customerRepo.UpdateContactDetails(ctx, req.Name, details)
	if err != nil {
		s.logger.Error("failed to update customer", zap.String("name", req.Name), zap.Error(err))
		return nil, storeError("update customer", err)
	}
	if !found {
		return nil, ErrCustomerNotFound
	}

	s.logger.Info("customer updated", zap.String("name", req.Name))
	return &details, nil
}
