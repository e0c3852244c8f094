package service

import (
	"context"
	"strings"

	"github.com/xbl/lead-tracker/internal/domain"
	"github.com/xbl/lead-tracker/internal/mapper"
	"github.com/xbl/lead-tracker/internal/repository"
	"go.uber.org/zap"
)

type EmployeeService struct {
	employeeRepo *repository.EmployeeRepository
	logger       *zap.Logger
}

func NewEmployeeService(
	employeeRepo *repository.EmployeeRepository,
	logger *zap.Logger,
) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// Create adds an employee. Fails with ErrDuplicateName when the name is taken;
// the store is left unchanged in that case.
func (s *EmployeeService) Create(ctx context.Context, req *domain.CreateEmployeeRequest) (*domain.EmployeeDTO, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalidInput("employee name is required")
	}

	employee := &domain.Employee{
		Name:  name,
		Email: strings.TrimSpace(req.Email),
		Phone: strings.TrimSpace(req.Phone),
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateName
		}
		s.logger.Error("failed to create employee", zap.String("name", name), zap.Error(err))
		return nil, storeError("create employee", err)
	}

	s.logger.Info("employee created", zap.Uint("id", employee.ID), zap.String("name", employee.Name))

	dto := mapper.ToEmployeeDTO(employee)
	return &dto, nil
}

// ListNames returns employee names in ascending order
func (s *EmployeeService) ListNames(ctx context.Context) ([]string, error) {
	names, err := s.employeeRepo.ListNames(ctx)
	if err != nil {
		return nil, storeError("list employees", err)
	}
	return names, nil
}

// Delete removes the named employee. Deleting an unknown name is a no-op and
// leads that mention the employee are left untouched.
func (s *EmployeeService) Delete(ctx context.Context, name string) error {
	deleted, err := s.employeeRepo.DeleteByName(ctx, name)
	if err != nil {
		return storeError("delete employee", err)
	}
	if deleted {
		s.logger.Info("employee deleted", zap.String("name", name))
	}
	return nil
}
