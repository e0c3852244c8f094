package repository

import (
	"context"

	"github.com/xbl/lead-tracker/internal/domain"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create inserts an employee. A duplicate name surfaces as gorm.ErrDuplicatedKey.
func (r *EmployeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

// ListNames returns every employee name in ascending order
func (r *EmployeeRepository) ListNames(ctx context.Context) ([]string, error) {
	names := []string{}
	err := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Order("name ASC").
		Pluck("name", &names).Error
	return names, err
}

// DeleteByName removes the named employee and reports whether a row was deleted.
// Leads keep the name as plain text.
func (r *EmployeeRepository) DeleteByName(ctx context.Context, name string) (bool, error) {
	result := r.db.WithContext(ctx).Where("name = ?", name).Delete(&domain.Employee{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Employee{}).Count(&count).Error
	return count, err
}
