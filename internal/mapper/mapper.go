package mapper

import (
	"github.com/xbl/lead-tracker/internal/domain"
)

const timestampLayout = "2006-01-02T15:04:05Z"

// ToEmployeeDTO converts Employee to EmployeeDTO
func ToEmployeeDTO(employee *domain.Employee) domain.EmployeeDTO {
	return domain.EmployeeDTO{
		ID:        employee.ID,
		Name:      employee.Name,
		Email:     employee.Email,
		Phone:     employee.Phone,
		CreatedAt: employee.CreatedAt.UTC().Format(timestampLayout),
	}
}

// ToCustomerDTO converts Customer to CustomerDTO
func ToCustomerDTO(customer *domain.Customer) domain.CustomerDTO {
	return domain.CustomerDTO{
		ID:            customer.ID,
		Name:          customer.Name,
		ContactPerson: customer.ContactPerson,
		Email:         customer.Email,
		Phone:         customer.Phone,
		Address:       customer.Address,
		CreatedAt:     customer.CreatedAt.UTC().Format(timestampLayout),
	}
}

// ToCustomerDetailsDTO extracts the editable contact fields of a customer
func ToCustomerDetailsDTO(customer *domain.Customer) domain.CustomerDetailsDTO {
	return domain.CustomerDetailsDTO{
		ContactPerson: customer.ContactPerson,
		Email:         customer.Email,
		Phone:         customer.Phone,
		Address:       customer.Address,
	}
}

// ToLeadDTO converts Lead to LeadDTO. The Customer association should be loaded.
func ToLeadDTO(lead *domain.Lead) domain.LeadDTO {
	return domain.LeadDTO{
		ID:                  lead.ID,
		CustomerID:          lead.CustomerID,
		CustomerName:        lead.CustomerName(),
		ProjectCategory:     lead.ProjectCategory,
		AssignedSalesPerson: lead.AssignedSalesPerson,
		OfferCreated:        lead.OfferCreated,
		LeadThrough:         lead.LeadThrough,
		ScopeOfWork:         lead.ScopeOfWork,
		Status:              lead.Status,
		InitialOfferNumber:  lead.InitialOfferNumber,
		OfferRevisionNumber: lead.OfferRevisionNumber,
		OfferedValue:        lead.OfferedValue,
		Priority:            lead.Priority,
		FollowUpBy:          lead.FollowUpBy,
		FollowUpStatus:      lead.FollowUpStatus,
		FollowUpDate:        lead.FollowUpDate,
		NextFollowUpDate:    lead.NextFollowUpDate,
		SerialNumber:        lead.SerialNumber,
		CreatedAt:           lead.CreatedAt.UTC().Format(timestampLayout),
		UpdatedAt:           lead.UpdatedAt.UTC().Format(timestampLayout),
	}
}

// ToLeadSummaryDTO converts Lead to the listing row
func ToLeadSummaryDTO(lead *domain.Lead) domain.LeadSummaryDTO {
	return domain.LeadSummaryDTO{
		ID:                  lead.ID,
		CustomerName:        lead.CustomerName(),
		ProjectCategory:     lead.ProjectCategory,
		AssignedSalesPerson: lead.AssignedSalesPerson,
		OfferCreated:        lead.OfferCreated,
		Status:              lead.Status,
		InitialOfferNumber:  lead.InitialOfferNumber,
		OfferRevisionNumber: lead.OfferRevisionNumber,
		Priority:            lead.Priority,
		FollowUpDate:        lead.FollowUpDate,
		NextFollowUpDate:    lead.NextFollowUpDate,
		SerialNumber:        lead.SerialNumber,
	}
}

// ToFollowUpSummaryDTO converts Lead to the follow-up reminder row
func ToFollowUpSummaryDTO(lead *domain.Lead) domain.FollowUpSummaryDTO {
	return domain.FollowUpSummaryDTO{
		ID:                  lead.ID,
		CustomerName:        lead.CustomerName(),
		ProjectCategory:     lead.ProjectCategory,
		AssignedSalesPerson: lead.AssignedSalesPerson,
		OfferCreated:        lead.OfferCreated,
		Status:              lead.Status,
		FollowUpDate:        lead.FollowUpDate,
		NextFollowUpDate:    lead.NextFollowUpDate,
	}
}

// ToLeadSummaryDTOs converts a slice of leads, never returning nil
func ToLeadSummaryDTOs(leads []domain.Lead) []domain.LeadSummaryDTO {
	dtos := make([]domain.LeadSummaryDTO, 0, len(leads))
	for i := range leads {
		dtos = append(dtos, ToLeadSummaryDTO(&leads[i]))
	}
	return dtos
}

// ToFollowUpSummaryDTOs converts a slice of leads, never returning nil
func ToFollowUpSummaryDTOs(leads []domain.Lead) []domain.FollowUpSummaryDTO {
	dtos := make([]domain.FollowUpSummaryDTO, 0, len(leads))
	for i := range leads {
		dtos = append(dtos, ToFollowUpSummaryDTO(&leads[i]))
	}
	return dtos
}
