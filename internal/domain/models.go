package domain

import (
	"time"
)

// ProjectCategory classifies the line of business a lead belongs to.
// The set is closed; there is no backing table.
type ProjectCategory string

const (
	ProjectCategoryEPC ProjectCategory = "EPC"
	ProjectCategoryISS ProjectCategory = "ISS"
	ProjectCategoryPSE ProjectCategory = "PSE"
	ProjectCategorySPP ProjectCategory = "SPP"
)

// ProjectCategories returns every category in display order
func ProjectCategories() []ProjectCategory {
	return []ProjectCategory{
		ProjectCategoryEPC,
		ProjectCategoryISS,
		ProjectCategoryPSE,
		ProjectCategorySPP,
	}
}

// IsValid reports whether c is one of the known categories
func (c ProjectCategory) IsValid() bool {
	for _, known := range ProjectCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// LeadStatus is the pipeline position of a lead
type LeadStatus string

const (
	LeadStatusConnected         LeadStatus = "Connected"
	LeadStatusTechnicalAnalysis LeadStatus = "Technical Analysis"
	LeadStatusPriceOffered      LeadStatus = "Price Offered"
	LeadStatusWon               LeadStatus = "Won"
	LeadStatusCompleted         LeadStatus = "Completed"
	LeadStatusLost              LeadStatus = "Lost"
)

// LeadStatuses returns every status in pipeline order
func LeadStatuses() []LeadStatus {
	return []LeadStatus{
		LeadStatusConnected,
		LeadStatusTechnicalAnalysis,
		LeadStatusPriceOffered,
		LeadStatusWon,
		LeadStatusCompleted,
		LeadStatusLost,
	}
}

// IsValid reports whether s is one of the known statuses
func (s LeadStatus) IsValid() bool {
	for _, known := range LeadStatuses() {
		if s == known {
			return true
		}
	}
	return false
}

// IsClosed reports whether the lead no longer needs follow-up
func (s LeadStatus) IsClosed() bool {
	return s == LeadStatusWon || s == LeadStatusLost || s == LeadStatusCompleted
}

// ClosedLeadStatuses are excluded from follow-up reminders
func ClosedLeadStatuses() []LeadStatus {
	return []LeadStatus{LeadStatusWon, LeadStatusLost, LeadStatusCompleted}
}

// LeadPriority ranks leads, P-1 being the most urgent
type LeadPriority string

const (
	LeadPriorityP1 LeadPriority = "P-1"
	LeadPriorityP2 LeadPriority = "P-2"
	LeadPriorityP3 LeadPriority = "P-3"
	LeadPriorityP4 LeadPriority = "P-4"
)

// LeadPriorities returns every priority from most to least urgent
func LeadPriorities() []LeadPriority {
	return []LeadPriority{LeadPriorityP1, LeadPriorityP2, LeadPriorityP3, LeadPriorityP4}
}

// IsValid reports whether p is one of the known priorities
func (p LeadPriority) IsValid() bool {
	for _, known := range LeadPriorities() {
		if p == known {
			return true
		}
	}
	return false
}

// Defaults applied when a lead is created without an explicit value
const (
	DefaultLeadStatus   = LeadStatusConnected
	DefaultLeadPriority = LeadPriorityP2
)

// Employee is a member of staff. Leads refer to employees by name only.
type Employee struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(200);not null;uniqueIndex"`
	Email     string    `gorm:"type:varchar(255)"`
	Phone     string    `gorm:"type:varchar(50)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Customer represents an organization that leads are tracked for
type Customer struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	Name          string    `gorm:"type:varchar(200);not null;uniqueIndex"`
	ContactPerson string    `gorm:"type:varchar(200);column:contact_person"`
	Email         string    `gorm:"type:varchar(255)"`
	Phone         string    `gorm:"type:varchar(50)"`
	Address       string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

// Lead is a tracked sales opportunity for one customer and project category
type Lead struct {
	ID                  uint            `gorm:"primaryKey;autoIncrement"`
	CustomerID          uint            `gorm:"not null;index;column:customer_id"`
	Customer            *Customer       `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ProjectCategory     ProjectCategory `gorm:"type:varchar(10);not null;column:project_category"`
	AssignedSalesPerson string          `gorm:"type:varchar(200);not null;column:assigned_sales_person"`
	OfferCreated        Date            `gorm:"not null;column:offer_created"`
	LeadThrough         string          `gorm:"type:varchar(200);not null;column:lead_through"`
	ScopeOfWork         string          `gorm:"type:text;column:scope_of_work"`
	Status              LeadStatus      `gorm:"type:varchar(50);not null;default:'Connected';index"`
	InitialOfferNumber  int             `gorm:"not null;column:initial_offer_number"`
	OfferRevisionNumber string          `gorm:"type:varchar(20);not null;column:offer_revision_number"`
	OfferedValue        *float64        `gorm:"column:offered_value"`
	Priority            LeadPriority    `gorm:"type:varchar(10);not null;default:'P-2'"`
	FollowUpBy          string          `gorm:"type:varchar(200);column:follow_up_by"`
	FollowUpStatus      string          `gorm:"type:text;column:follow_up_status"`
	FollowUpDate        Date            `gorm:"column:follow_up_date"`
	NextFollowUpDate    Date            `gorm:"column:next_follow_up_date;index"`
	SerialNumber        *string         `gorm:"type:varchar(500);uniqueIndex;column:serial_number"`
	CreatedAt           time.Time       `gorm:"autoCreateTime"`
	UpdatedAt           time.Time       `gorm:"autoUpdateTime"`
}

// CustomerName returns the resolved customer name, or "" when not loaded
func (l *Lead) CustomerName() string {
	if l.Customer == nil {
		return ""
	}
	return l.Customer.Name
}

// HasSerialNumber reports whether a serial has been minted for the lead
func (l *Lead) HasSerialNumber() bool {
	return l.SerialNumber != nil && *l.SerialNumber != ""
}
