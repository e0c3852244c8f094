package domain

// Request and response payloads exchanged with the presentation layer

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// MessageResponse carries the outcome message of a write operation
type MessageResponse struct {
	Message string `json:"message"`
}

// NamesResponse lists entity names in ascending order
type NamesResponse struct {
	Data  []string `json:"data"`
	Total int      `json:"total"`
}

// Employees

type CreateEmployeeRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone string `json:"phone,omitempty" validate:"max=50"`
}

type EmployeeDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt string `json:"createdAt"` // ISO 8601
}

// Customers

type CreateCustomerRequest struct {
	Name          string `json:"name" validate:"required,max=200"`
	ContactPerson string `json:"contactPerson,omitempty" validate:"max=200"`
	Email         string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone         string `json:"phone,omitempty" validate:"max=50"`
	Address       string `json:"address,omitempty" validate:"max=1000"`
}

// UpdateCustomerRequest overwrites every contact field of the named customer
type UpdateCustomerRequest struct {
	Name          string `json:"name" validate:"required,max=200"`
	ContactPerson string `json:"contactPerson" validate:"max=200"`
	Email         string `json:"email" validate:"omitempty,email,max=255"`
	Phone         string `json:"phone" validate:"max=50"`
	Address       string `json:"address" validate:"max=1000"`
}

type CustomerDTO struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	CreatedAt     string `json:"createdAt"` // ISO 8601
}

// CustomerDetailsDTO holds the editable contact fields of a customer
type CustomerDetailsDTO struct {
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

type CustomerIDResponse struct {
	ID uint `json:"id"`
}

// Offer numbering

type NextOfferNumberResponse struct {
	Customer           string          `json:"customer"`
	ProjectCategory    ProjectCategory `json:"projectCategory"`
	InitialOfferNumber int             `json:"initialOfferNumber"`
}

type NextRevisionResponse struct {
	Customer            string          `json:"customer"`
	ProjectCategory     ProjectCategory `json:"projectCategory"`
	InitialOfferNumber  int             `json:"initialOfferNumber"`
	OfferRevisionNumber string          `json:"offerRevisionNumber"`
}

type GenerateSerialRequest struct {
	ProjectCategory     ProjectCategory `json:"projectCategory" validate:"required"`
	CustomerName        string          `json:"customerName" validate:"required,max=200"`
	OfferCreated        Date            `json:"offerCreated"`
	InitialOfferNumber  int             `json:"initialOfferNumber" validate:"required,gt=0"`
	OfferRevisionNumber string          `json:"offerRevisionNumber" validate:"required,max=20"`
}

type SerialNumberResponse struct {
	SerialNumber string `json:"serialNumber"`
}

// Leads

// CreateLeadRequest carries the fields of a new lead. InitialOfferNumber and
// OfferRevisionNumber are computed when omitted.
type CreateLeadRequest struct {
	CustomerName        string          `json:"customerName" validate:"required,max=200"`
	ProjectCategory     ProjectCategory `json:"projectCategory" validate:"required"`
	AssignedSalesPerson string          `json:"assignedSalesPerson" validate:"required,max=200"`
	OfferCreated        Date            `json:"offerCreated"`
	LeadThrough         string          `json:"leadThrough" validate:"required,max=200"`
	ScopeOfWork         string          `json:"scopeOfWork,omitempty" validate:"max=5000"`
	Status              LeadStatus      `json:"status,omitempty"`
	InitialOfferNumber  *int            `json:"initialOfferNumber,omitempty" validate:"omitempty,gt=0"`
	OfferRevisionNumber *string         `json:"offerRevisionNumber,omitempty" validate:"omitempty,max=20"`
	OfferedValue        *float64        `json:"offeredValue,omitempty" validate:"omitempty,gte=0"`
	Priority            LeadPriority    `json:"priority,omitempty"`
	FollowUpBy          string          `json:"followUpBy" validate:"required,max=200"`
	FollowUpStatus      string          `json:"followUpStatus,omitempty" validate:"max=2000"`
	FollowUpDate        Date            `json:"followUpDate"`
	NextFollowUpDate    Date            `json:"nextFollowUpDate"`
	SerialNumber        *string         `json:"serialNumber,omitempty" validate:"omitempty,max=500"`
}

// UpdateLeadRequest is a patch: only non-nil fields are written. A zero date
// ("" or null inside a present field) clears the stored date.
type UpdateLeadRequest struct {
	Status              *LeadStatus   `json:"status,omitempty"`
	Priority            *LeadPriority `json:"priority,omitempty"`
	OfferedValue        *float64      `json:"offeredValue,omitempty" validate:"omitempty,gte=0"`
	ScopeOfWork         *string       `json:"scopeOfWork,omitempty" validate:"omitempty,max=5000"`
	AssignedSalesPerson *string       `json:"assignedSalesPerson,omitempty" validate:"omitempty,min=1,max=200"`
	LeadThrough         *string       `json:"leadThrough,omitempty" validate:"omitempty,min=1,max=200"`
	FollowUpBy          *string       `json:"followUpBy,omitempty" validate:"omitempty,min=1,max=200"`
	FollowUpStatus      *string       `json:"followUpStatus,omitempty" validate:"omitempty,max=2000"`
	FollowUpDate        *Date         `json:"followUpDate,omitempty"`
	NextFollowUpDate    *Date         `json:"nextFollowUpDate,omitempty"`
	SerialNumber        *string       `json:"serialNumber,omitempty" validate:"omitempty,max=500"`
}

// IsEmpty reports whether the patch carries no fields
func (r *UpdateLeadRequest) IsEmpty() bool {
	return r.Status == nil &&
		r.Priority == nil &&
		r.OfferedValue == nil &&
		r.ScopeOfWork == nil &&
		r.AssignedSalesPerson == nil &&
		r.LeadThrough == nil &&
		r.FollowUpBy == nil &&
		r.FollowUpStatus == nil &&
		r.FollowUpDate == nil &&
		r.NextFollowUpDate == nil &&
		r.SerialNumber == nil
}

// LeadDTO is the full lead record with the resolved customer name
type LeadDTO struct {
	ID                  uint            `json:"id"`
	CustomerID          uint            `json:"customerId"`
	CustomerName        string          `json:"customerName"`
	ProjectCategory     ProjectCategory `json:"projectCategory"`
	AssignedSalesPerson string          `json:"assignedSalesPerson"`
	OfferCreated        Date            `json:"offerCreated"`
	LeadThrough         string          `json:"leadThrough"`
	ScopeOfWork         string          `json:"scopeOfWork,omitempty"`
	Status              LeadStatus      `json:"status"`
	InitialOfferNumber  int             `json:"initialOfferNumber"`
	OfferRevisionNumber string          `json:"offerRevisionNumber"`
	OfferedValue        *float64        `json:"offeredValue"`
	Priority            LeadPriority    `json:"priority"`
	FollowUpBy          string          `json:"followUpBy,omitempty"`
	FollowUpStatus      string          `json:"followUpStatus,omitempty"`
	FollowUpDate        Date            `json:"followUpDate"`
	NextFollowUpDate    Date            `json:"nextFollowUpDate"`
	SerialNumber        *string         `json:"serialNumber"`
	CreatedAt           string          `json:"createdAt"` // ISO 8601
	UpdatedAt           string          `json:"updatedAt"` // ISO 8601
}

// LeadSummaryDTO is the row shape of lead listings
type LeadSummaryDTO struct {
	ID                  uint            `json:"id"`
	CustomerName        string          `json:"customerName"`
	ProjectCategory     ProjectCategory `json:"projectCategory"`
	AssignedSalesPerson string          `json:"assignedSalesPerson"`
	OfferCreated        Date            `json:"offerCreated"`
	Status              LeadStatus      `json:"status"`
	InitialOfferNumber  int             `json:"initialOfferNumber"`
	OfferRevisionNumber string          `json:"offerRevisionNumber"`
	Priority            LeadPriority    `json:"priority"`
	FollowUpDate        Date            `json:"followUpDate"`
	NextFollowUpDate    Date            `json:"nextFollowUpDate"`
	SerialNumber        *string         `json:"serialNumber"`
}

// FollowUpSummaryDTO is the row shape of the follow-up reminder list
type FollowUpSummaryDTO struct {
	ID                  uint            `json:"id"`
	CustomerName        string          `json:"customerName"`
	ProjectCategory     ProjectCategory `json:"projectCategory"`
	AssignedSalesPerson string          `json:"assignedSalesPerson"`
	OfferCreated        Date            `json:"offerCreated"`
	Status              LeadStatus      `json:"status"`
	FollowUpDate        Date            `json:"followUpDate"`
	NextFollowUpDate    Date            `json:"nextFollowUpDate"`
}

type LeadListResponse struct {
	Data  []LeadSummaryDTO `json:"data"`
	Total int              `json:"total"`
}

type FollowUpListResponse struct {
	AsOf  Date                 `json:"asOf"`
	Data  []FollowUpSummaryDTO `json:"data"`
	Total int                  `json:"total"`
}

// CreateLeadResponse reports the id and minted numbers of a new lead
type CreateLeadResponse struct {
	Message string  `json:"message"`
	Lead    LeadDTO `json:"lead"`
}

// Dashboard

type StatusCountDTO struct {
	Status LeadStatus `json:"status"`
	Count  int64      `json:"count"`
}

type DashboardSummaryDTO struct {
	TotalLeads        int64                `json:"totalLeads"`
	TotalCustomers    int64                `json:"totalCustomers"`
	TotalEmployees    int64                `json:"totalEmployees"`
	WonLeads          int64                `json:"wonLeads"`
	LeadsByStatus     []StatusCountDTO     `json:"leadsByStatus"`
	FollowUpsDue      int                  `json:"followUpsDue"`
	UpcomingFollowUps []FollowUpSummaryDTO `json:"upcomingFollowUps"`
	AsOf              Date                 `json:"asOf"`
}
