package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xbl/lead-tracker/internal/domain"
	"gorm.io/gorm"
)

// OfferNumberRepository reads the offer numbers already issued for a
// customer/category pair. Numbers are derived from the leads table; there is
// no separate sequence table, so callers serialize allocation themselves.
type OfferNumberRepository struct {
	db *gorm.DB
}

// NewOfferNumberRepository creates a new OfferNumberRepository
func NewOfferNumberRepository(db *gorm.DB) *OfferNumberRepository {
	return &OfferNumberRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *OfferNumberRepository) WithTx(tx *gorm.DB) *OfferNumberRepository {
	return &OfferNumberRepository{db: tx}
}

// MaxInitialOfferNumber returns the highest initial offer number issued to the
// customer in the category, or 0 when none exists.
func (r *OfferNumberRepository) MaxInitialOfferNumber(ctx context.Context, customerName string, category domain.ProjectCategory) (int, error) {
	var highest sql.NullInt64
	err := r.db.WithContext(ctx).
		Model(&domain.Lead{}).
		Select("MAX(leads.initial_offer_number)").
		Joins("JOIN customers ON customers.id = leads.customer_id").
		Where("customers.name = ? AND leads.project_category = ?", customerName, category).
		Row().
		Scan(&highest)
	if err != nil {
		return 0, fmt.Errorf("failed to read max initial offer number: %w", err)
	}
	if !highest.Valid {
		return 0, nil
	}
	return int(highest.Int64), nil
}

// MaxRevisionNumber returns the highest numeric suffix of the "R<k>" revisions
// recorded for the offer, or 0 when the offer has no revisions yet.
func (r *OfferNumberRepository) MaxRevisionNumber(ctx context.Context, customerName string, category domain.ProjectCategory, initialOfferNumber int) (int, error) {
	var highest sql.NullInt64
	err := r.db.WithContext(ctx).
		Model(&domain.Lead{}).
		Select("MAX(CAST(SUBSTR(leads.offer_revision_number, 2) AS INTEGER))").
		Joins("JOIN customers ON customers.id = leads.customer_id").
		Where("customers.name = ? AND leads.project_category = ? AND leads.initial_offer_number = ?",
			customerName, category, initialOfferNumber).
		Where("leads.offer_revision_number LIKE ?", "R%").
		Row().
		Scan(&highest)
	if err != nil {
		return 0, fmt.Errorf("failed to read max revision number: %w", err)
	}
	if !highest.Valid {
		return 0, nil
	}
	return int(highest.Int64), nil
}
