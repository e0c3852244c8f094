package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/xbl/lead-tracker/internal/domain"
	"github.com/xbl/lead-tracker/internal/mapper"
	"github.com/xbl/lead-tracker/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var revisionPattern = regexp.MustCompile(`^R[1-9][0-9]*$`)

type LeadService struct {
	leadRepo        *repository.LeadRepository
	customerRepo    *repository.CustomerRepository
	offerNumberRepo *repository.OfferNumberRepository
	offerNumbers    *OfferNumberService
	db              *gorm.DB
	logger          *zap.Logger
}

func NewLeadService(
	leadRepo *repository.LeadRepository,
	customerRepo *repository.CustomerRepository,
	offerNumberRepo *repository.OfferNumberRepository,
	offerNumbers *OfferNumberService,
	db *gorm.DB,
	logger *zap.Logger,
) *LeadService {
	return &LeadService{
		leadRepo:        leadRepo,
		customerRepo:    customerRepo,
		offerNumberRepo: offerNumberRepo,
		offerNumbers:    offerNumbers,
		db:              db,
		logger:          logger,
	}
}

// Create records a new lead for an existing customer.
//
// Missing offer numbers are derived from the stored leads of the same
// customer/category, and a lead created as "Price Offered" without a serial
// gets one generated from its own fields. Number derivation and the insert
// run in one transaction under a per customer/category lock.
func (s *LeadService) Create(ctx context.Context, req *domain.CreateLeadRequest) (*domain.LeadDTO, error) {
	lead, err := s.newLead(req)
	if err != nil {
		return nil, err
	}
	customerName := strings.TrimSpace(req.CustomerName)

	unlock := s.offerNumbers.lockGroup(customerName, lead.ProjectCategory)
	defer unlock()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customer, err := s.customerRepo.WithTx(tx).GetByName(ctx, customerName)
		if err != nil {
			if isNotFound(err) {
				return fmt.Errorf("%w: %s", ErrCustomerNotFound, customerName)
			}
			return storeError("get customer", err)
		}
		lead.CustomerID = customer.ID
		lead.Customer = customer

		numbers := s.offerNumberRepo.WithTx(tx)
		if req.InitialOfferNumber == nil {
			next, err := s.offerNumbers.nextInitial(ctx, numbers, customer.Name, lead.ProjectCategory)
			if err != nil {
				return err
			}
			lead.InitialOfferNumber = next
		}
		if req.OfferRevisionNumber == nil {
			next, err := s.offerNumbers.nextRevision(ctx, numbers, customer.Name, lead.ProjectCategory, lead.InitialOfferNumber)
			if err != nil {
				return err
			}
			lead.OfferRevisionNumber = next
		}

		if lead.Status == domain.LeadStatusPriceOffered && !lead.HasSerialNumber() {
			serial := GenerateSerialNumber(lead.ProjectCategory, customer.Name, lead.OfferCreated,
				lead.InitialOfferNumber, lead.OfferRevisionNumber)
			lead.SerialNumber = &serial
		}

		if err := s.leadRepo.WithTx(tx).Create(ctx, lead); err != nil {
			if isDuplicateKey(err) {
				return ErrDuplicateSerial
			}
			return storeError("create lead", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("lead creation failed",
			zap.String("customer", customerName),
			zap.String("category", string(lead.ProjectCategory)),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("lead created",
		zap.Uint("id", lead.ID),
		zap.String("customer", customerName),
		zap.String("category", string(lead.ProjectCategory)),
		zap.Int("initialOfferNumber", lead.InitialOfferNumber),
		zap.String("revision", lead.OfferRevisionNumber),
		zap.Bool("serialAssigned", lead.HasSerialNumber()))

	dto := mapper.ToLeadDTO(lead)
	return &dto, nil
}

// newLead validates the request and builds the lead without store lookups
func (s *LeadService) newLead(req *domain.CreateLeadRequest) (*domain.Lead, error) {
	required := []struct {
		label string
		value string
	}{
		{"customer name", req.CustomerName},
		{"assigned sales person", req.AssignedSalesPerson},
		{"lead through", req.LeadThrough},
		{"follow up by", req.FollowUpBy},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return nil, invalidInput("%s is required", field.label)
		}
	}
	if !req.ProjectCategory.IsValid() {
		return nil, invalidInput("unknown project category %q", req.ProjectCategory)
	}
	if req.OfferCreated.IsZero() {
		return nil, invalidInput("offer created date is required")
	}

	status := req.Status
	if status == "" {
		status = domain.DefaultLeadStatus
	}
	if !status.IsValid() {
		return nil, invalidInput("unknown status %q", status)
	}
	priority := req.Priority
	if priority == "" {
		priority = domain.DefaultLeadPriority
	}
	if !priority.IsValid() {
		return nil, invalidInput("unknown priority %q", priority)
	}
	if req.OfferedValue != nil && *req.OfferedValue < 0 {
		return nil, invalidInput("offered value must not be negative")
	}

	lead := &domain.Lead{
		ProjectCategory:     req.ProjectCategory,
		AssignedSalesPerson: strings.TrimSpace(req.AssignedSalesPerson),
		OfferCreated:        req.OfferCreated,
		LeadThrough:         strings.TrimSpace(req.LeadThrough),
		ScopeOfWork:         sanitizeText(req.ScopeOfWork),
		Status:              status,
		OfferedValue:        req.OfferedValue,
		Priority:            priority,
		FollowUpBy:          strings.TrimSpace(req.FollowUpBy),
		FollowUpStatus:      sanitizeText(req.FollowUpStatus),
		FollowUpDate:        req.FollowUpDate,
		NextFollowUpDate:    req.NextFollowUpDate,
	}

	if req.InitialOfferNumber != nil {
		if *req.InitialOfferNumber <= 0 {
			return nil, invalidInput("initial offer number must be positive")
		}
		lead.InitialOfferNumber = *req.InitialOfferNumber
	}
	if req.OfferRevisionNumber != nil {
		rev := strings.TrimSpace(*req.OfferRevisionNumber)
		if !revisionPattern.MatchString(rev) {
			return nil, invalidInput("offer revision number must look like R1, R2, ...")
		}
		lead.OfferRevisionNumber = rev
	}
	if req.SerialNumber != nil {
		if serial := strings.TrimSpace(*req.SerialNumber); serial != "" {
			lead.SerialNumber = &serial
		}
	}

	return lead, nil
}

// Update applies a partial update to a lead and stamps updated_at.
//
// When the resulting status is "Price Offered" and the lead has no serial yet,
// a serial is generated from the lead's own fields in the same write. Once a
// serial is assigned it cannot be replaced.
func (s *LeadService) Update(ctx context.Context, id uint, req *domain.UpdateLeadRequest) (*domain.LeadDTO, error) {
	if req.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}
	fields, err := patchFields(req)
	if err != nil {
		return nil, err
	}

	var updated *domain.Lead
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		leads := s.leadRepo.WithTx(tx)

		lead, err := leads.GetByID(ctx, id)
		if err != nil {
			if isNotFound(err) {
				return ErrLeadNotFound
			}
			return storeError("get lead", err)
		}

		if serial, ok := fields["serial_number"].(string); ok {
			switch {
			case lead.HasSerialNumber() && serial != *lead.SerialNumber:
				return fmt.Errorf("%w: %w", ErrInvalidInput, ErrSerialImmutable)
			case lead.HasSerialNumber() || serial == "":
				delete(fields, "serial_number")
			}
		}

		status := lead.Status
		if next, ok := fields["status"].(domain.LeadStatus); ok {
			status = next
		}
		_, patchHasSerial := fields["serial_number"]
		if status == domain.LeadStatusPriceOffered && !lead.HasSerialNumber() && !patchHasSerial {
			fields["serial_number"] = GenerateSerialNumber(lead.ProjectCategory, lead.CustomerName(),
				lead.OfferCreated, lead.InitialOfferNumber, lead.OfferRevisionNumber)
		}

		if len(fields) == 0 {
			updated = lead
			return nil
		}

		if _, err := leads.Updates(ctx, id, fields); err != nil {
			if isDuplicateKey(err) {
				return ErrDuplicateSerial
			}
			return storeError("update lead", err)
		}

		updated, err = leads.GetByID(ctx, id)
		if err != nil {
			return storeError("reload lead", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("lead update failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("lead updated",
		zap.Uint("id", id),
		zap.String("status", string(updated.Status)),
		zap.Int("fields", len(fields)))

	dto := mapper.ToLeadDTO(updated)
	return &dto, nil
}

// patchFields converts a patch into column assignments, validating each field
func patchFields(req *domain.UpdateLeadRequest) (map[string]interface{}, error) {
	fields := make(map[string]interface{})

	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, invalidInput("unknown status %q", *req.Status)
		}
		fields["status"] = *req.Status
	}
	if req.Priority != nil {
		if !req.Priority.IsValid() {
			return nil, invalidInput("unknown priority %q", *req.Priority)
		}
		fields["priority"] = *req.Priority
	}
	if req.OfferedValue != nil {
		if *req.OfferedValue < 0 {
			return nil, invalidInput("offered value must not be negative")
		}
		fields["offered_value"] = *req.OfferedValue
	}
	if req.ScopeOfWork != nil {
		fields["scope_of_work"] = *sanitizeTextPtr(req.ScopeOfWork)
	}
	if req.FollowUpStatus != nil {
		fields["follow_up_status"] = *sanitizeTextPtr(req.FollowUpStatus)
	}

	names := []struct {
		column string
		label  string
		value  *string
	}{
		{"assigned_sales_person", "assigned sales person", req.AssignedSalesPerson},
		{"lead_through", "lead through", req.LeadThrough},
		{"follow_up_by", "follow up by", req.FollowUpBy},
	}
	for _, n := range names {
		if n.value == nil {
			continue
		}
		v := strings.TrimSpace(*n.value)
		if v == "" {
			return nil, invalidInput("%s must not be empty", n.label)
		}
		fields[n.column] = v
	}

	if req.FollowUpDate != nil {
		fields["follow_up_date"] = *req.FollowUpDate
	}
	if req.NextFollowUpDate != nil {
		fields["next_follow_up_date"] = *req.NextFollowUpDate
	}
	if req.SerialNumber != nil {
		fields["serial_number"] = strings.TrimSpace(*req.SerialNumber)
	}

	return fields, nil
}

// Get returns a lead with its customer name
func (s *LeadService) Get(ctx context.Context, id uint) (*domain.LeadDTO, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrLeadNotFound
		}
		return nil, storeError("get lead", err)
	}
	dto := mapper.ToLeadDTO(lead)
	return &dto, nil
}

// List returns lead summaries newest first, optionally filtered by status
func (s *LeadService) List(ctx context.Context, status *domain.LeadStatus) ([]domain.LeadSummaryDTO, error) {
	leads, err := s.list(ctx, status)
	if err != nil {
		return nil, err
	}
	return mapper.ToLeadSummaryDTOs(leads), nil
}

func (s *LeadService) list(ctx context.Context, status *domain.LeadStatus) ([]domain.Lead, error) {
	if status != nil && !status.IsValid() {
		return nil, invalidInput("unknown status %q", *status)
	}
	leads, err := s.leadRepo.List(ctx, repository.LeadFilter{Status: status})
	if err != nil {
		return nil, storeError("list leads", err)
	}
	return leads, nil
}

// ListNeedingFollowUp returns open leads due for follow-up on or before asOf,
// soonest first. A zero asOf means today.
func (s *LeadService) ListNeedingFollowUp(ctx context.Context, asOf domain.Date) ([]domain.FollowUpSummaryDTO, error) {
	if asOf.IsZero() {
		asOf = domain.Today()
	}
	leads, err := s.leadRepo.ListNeedingFollowUp(ctx, asOf)
	if err != nil {
		return nil, storeError("list follow-ups", err)
	}
	return mapper.ToFollowUpSummaryDTOs(leads), nil
}
