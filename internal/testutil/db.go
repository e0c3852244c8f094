package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xbl/lead-tracker/internal/database"
	"github.com/xbl/lead-tracker/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB opens a private in-memory SQLite database with the schema migrated.
// The database lives as long as its single pooled connection, which is closed
// when the test ends.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := database.Open(sqlite.Open(dsn))
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, database.AutoMigrate(db), "failed to migrate test database")

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

// CreateTestEmployee creates an employee with the given name
func CreateTestEmployee(t *testing.T, db *gorm.DB, name string) *domain.Employee {
	t.Helper()
	employee := &domain.Employee{Name: name}
	require.NoError(t, db.Create(employee).Error)
	return employee
}

// CreateTestCustomer creates a customer with placeholder contact details
func CreateTestCustomer(t *testing.T, db *gorm.DB, name string) *domain.Customer {
	t.Helper()
	customer := &domain.Customer{
		Name:          name,
		ContactPerson: "Jane Doe",
		Email:         "jane@example.com",
		Phone:         "12345678",
		Address:       "1 Main Street",
	}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

// LeadOption customizes a lead built by CreateTestLead
type LeadOption func(*domain.Lead)

// WithStatus sets the lead status
func WithStatus(status domain.LeadStatus) LeadOption {
	return func(l *domain.Lead) { l.Status = status }
}

// WithOffer sets the initial offer and revision numbers
func WithOffer(initial int, revision string) LeadOption {
	return func(l *domain.Lead) {
		l.InitialOfferNumber = initial
		l.OfferRevisionNumber = revision
	}
}

// WithNextFollowUp sets the next follow-up date
func WithNextFollowUp(d domain.Date) LeadOption {
	return func(l *domain.Lead) { l.NextFollowUpDate = d }
}

// WithSerial sets the serial number
func WithSerial(serial string) LeadOption {
	return func(l *domain.Lead) { l.SerialNumber = &serial }
}

// CreateTestLead inserts a lead for the customer directly, bypassing numbering.
// Defaults: EPC, Connected, P-2, offer 1/R1, created 2024-03-05.
func CreateTestLead(t *testing.T, db *gorm.DB, customer *domain.Customer, category domain.ProjectCategory, opts ...LeadOption) *domain.Lead {
	t.Helper()
	lead := &domain.Lead{
		CustomerID:          customer.ID,
		ProjectCategory:     category,
		AssignedSalesPerson: "Sam Seller",
		OfferCreated:        domain.NewDate(2024, 3, 5),
		LeadThrough:         "Referral",
		Status:              domain.LeadStatusConnected,
		InitialOfferNumber:  1,
		OfferRevisionNumber: "R1",
		Priority:            domain.LeadPriorityP2,
		FollowUpBy:          "Sam Seller",
	}
	for _, opt := range opts {
		opt(lead)
	}
	require.NoError(t, db.Omit("Customer").Create(lead).Error)
	return lead
}
