package repository

import (
	"context"

	"github.com/xbl/lead-tracker/internal/domain"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *CustomerRepository) WithTx(tx *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: tx}
}

// Create inserts a customer. A duplicate name surfaces as gorm.ErrDuplicatedKey.
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// GetByName returns gorm.ErrRecordNotFound when no customer has the exact name
func (r *CustomerRepository) GetByName(ctx context.Context, name string) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// ListNames returns every customer name in ascending order
func (r *CustomerRepository) ListNames(ctx context.Context) ([]string, error) {
	names := []string{}
	err := r.db.WithContext(ctx).
		Model(&domain.Customer{}).
		Order("name ASC").
		Pluck("name", &names).Error
	return names, err
}

// UpdateContactDetails overwrites the contact fields of the named customer and
// reports whether a row matched
func (r *CustomerRepository) UpdateContactDetails(ctx context.Context, name string, details domain.CustomerDetailsDTO) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("name = ?", name).
		Updates(map[string]interface{}{
			"contact_person": details.ContactPerson,
			"email":          details.Email,
			"phone":          details.Phone,
			"address":        details.Address,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Customer{}).Count(&count).Error
	return count, err
}
