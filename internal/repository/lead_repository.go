package repository

import (
	"context"

	"github.com/xbl/lead-tracker/internal/domain"
	"gorm.io/gorm"
)

// LeadFilter narrows lead listings
type LeadFilter struct {
	Status *domain.LeadStatus
}

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *LeadRepository) WithTx(tx *gorm.DB) *LeadRepository {
	return &LeadRepository{db: tx}
}

// Create inserts a lead. Omitting the Customer association keeps gorm from
// upserting the customer row. A duplicate serial surfaces as gorm.ErrDuplicatedKey.
func (r *LeadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	return r.db.WithContext(ctx).Omit("Customer").Create(lead).Error
}

func (r *LeadRepository) GetByID(ctx context.Context, id uint) (*domain.Lead, error) {
	var lead domain.Lead
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("id = ?", id).
		First(&lead).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// List returns leads with the customer resolved, most recently created first
func (r *LeadRepository) List(ctx context.Context, filter LeadFilter) ([]domain.Lead, error) {
	var leads []domain.Lead
	query := r.db.WithContext(ctx).Preload("Customer")
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	err := query.Order("created_at DESC, id DESC").Find(&leads).Error
	return leads, err
}

// ListNeedingFollowUp returns open leads whose next follow-up date is on or
// before asOf, earliest first. Leads without a next follow-up date never match.
func (r *LeadRepository) ListNeedingFollowUp(ctx context.Context, asOf domain.Date) ([]domain.Lead, error) {
	var leads []domain.Lead
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("next_follow_up_date IS NOT NULL AND next_follow_up_date <= ?", asOf).
		Where("status NOT IN ?", domain.ClosedLeadStatuses()).
		Order("next_follow_up_date ASC, id ASC").
		Find(&leads).Error
	return leads, err
}

// Updates writes the given columns of a lead and reports whether it exists
func (r *LeadRepository) Updates(ctx context.Context, id uint, fields map[string]interface{}) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Lead{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountByStatus returns the number of leads per status. Statuses without
// leads are absent from the map.
func (r *LeadRepository) CountByStatus(ctx context.Context) (map[domain.LeadStatus]int64, error) {
	var rows []struct {
		Status domain.LeadStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Lead{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.LeadStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *LeadRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Lead{}).Count(&count).Error
	return count, err
}
