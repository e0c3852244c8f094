package mapper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xbl/lead-tracker/internal/domain"
	"github.com/xbl/lead-tracker/internal/mapper"
)

func TestToLeadDTO(t *testing.T) {
	serial := "XBL/EPC/Acme/20240305/7/R2"
	value := 125000.0
	created := time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)

	lead := &domain.Lead{
		ID:                  3,
		CustomerID:          9,
		Customer:            &domain.Customer{ID: 9, Name: "Acme"},
		ProjectCategory:     domain.ProjectCategoryEPC,
		AssignedSalesPerson: "Sam",
		OfferCreated:        domain.NewDate(2024, time.March, 5),
		LeadThrough:         "Referral",
		Status:              domain.LeadStatusPriceOffered,
		InitialOfferNumber:  7,
		OfferRevisionNumber: "R2",
		OfferedValue:        &value,
		Priority:            domain.LeadPriorityP1,
		NextFollowUpDate:    domain.NewDate(2024, time.March, 12),
		SerialNumber:        &serial,
		CreatedAt:           created,
		UpdatedAt:           created,
	}

	dto := mapper.ToLeadDTO(lead)
	assert.Equal(t, uint(3), dto.ID)
	assert.Equal(t, "Acme", dto.CustomerName)
	assert.Equal(t, 7, dto.InitialOfferNumber)
	assert.Equal(t, "R2", dto.OfferRevisionNumber)
	assert.Equal(t, &serial, dto.SerialNumber)
	assert.Equal(t, "2024-03-12", dto.NextFollowUpDate.String())
	assert.True(t, dto.FollowUpDate.IsZero())
	assert.Equal(t, "2024-03-05T09:30:00Z", dto.CreatedAt)
}

func TestToLeadSummaryDTOs_NeverNil(t *testing.T) {
	assert.NotNil(t, mapper.ToLeadSummaryDTOs(nil))
	assert.Empty(t, mapper.ToLeadSummaryDTOs(nil))
	assert.NotNil(t, mapper.ToFollowUpSummaryDTOs(nil))
}

func TestToFollowUpSummaryDTOs(t *testing.T) {
	leads := []domain.Lead{
		{ID: 1, Customer: &domain.Customer{Name: "Acme"}, Status: domain.LeadStatusConnected},
		{ID: 2, Status: domain.LeadStatusTechnicalAnalysis},
	}

	out := mapper.ToFollowUpSummaryDTOs(leads)
	assert.Len(t, out, 2)
	assert.Equal(t, "Acme", out[0].CustomerName)
	assert.Equal(t, "", out[1].CustomerName)
	assert.Equal(t, domain.LeadStatusTechnicalAnalysis, out[1].Status)
}

func TestToCustomerDetailsDTO(t *testing.T) {
	details := mapper.ToCustomerDetailsDTO(&domain.Customer{
		Name:          "Acme",
		ContactPerson: "Jane",
		Email:         "jane@acme.test",
		Phone:         "555",
		Address:       "1 Main St",
	})
	assert.Equal(t, domain.CustomerDetailsDTO{
		ContactPerson: "Jane",
		Email:         "jane@acme.test",
		Phone:         "555",
		Address:       "1 Main St",
	}, details)
}
