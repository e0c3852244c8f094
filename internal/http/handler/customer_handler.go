package handler

import (
	"net/http"

	"github.com/xbl/lead-tracker/internal/domain"
	"github.com/xbl/lead-tracker/internal/service"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	customerService *service.CustomerService
	logger          *zap.Logger
}

func NewCustomerHandler(customerService *service.CustomerService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
	}
}

// Create godoc
// @Summary Add customer
// @Description Add a customer with contact details. Names are unique.
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body domain.CreateCustomerRequest true "Customer data"
// @Success 201 {object} domain.CustomerDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /customers [post]
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCustomerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	customer, err := h.customerService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create customer")
		return
	}

	respondJSON(w, http.StatusCreated, customer)
}

// List godoc
// @Summary List customers
// @Description Customer names in ascending order
// @Tags Customers
// @Produce json
// @Success 200 {object} domain.NamesResponse
// @Failure 500 {object} domain.APIError
// @Router /customers [get]
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	names, err := h.customerService.ListNames(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "list customers")
		return
	}

	respondJSON(w, http.StatusOK, domain.NamesResponse{Data: names, Total: len(names)})
}

// Lookup godoc
// @Summary Resolve customer id
// @Description Resolve an exact customer name to its id
// @Tags Customers
// @Produce json
// @Param name query string true "Customer name"
// @Success 200 {object} domain.CustomerIDResponse
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /customers/lookup [get]
func (h *CustomerHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	name, ok := requiredQuery(w, r, "name")
	if !ok {
		return
	}

	id, err := h.customerService.GetID(r.Context(), name)
	if err != nil {
		respondServiceError(w, h.logger, err, "look up customer")
		return
	}

	respondJSON(w, http.StatusOK, domain.CustomerIDResponse{ID: id})
}

// GetDetails godoc
// @Summary Get customer contact details
// @Tags Customers
// @Produce json
// @Param name query string true "Customer name"
// @Success 200 {object} domain.CustomerDetailsDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /customers/details [get]
func (h *CustomerHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	name, ok := requiredQuery(w, r, "name")
	if !ok {
		return
	}

	details, err := h.customerService.GetDetails(r.Context(), name)
	if err != nil {
		respondServiceError(w, h.logger, err, "get customer details")
		return
	}

	respondJSON(w, http.StatusOK, details)
}

// UpdateDetails godoc
// @Summary Update customer contact details
// @Description Overwrite contact person, email, phone and address. The customer is not renamed.
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body domain.UpdateCustomerRequest true "Contact details"
// @Success 200 {object} domain.CustomerDetailsDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /customers/details [put]
func (h *CustomerHandler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateCustomerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	details, err := h.customerService.UpdateDetails(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update customer")
		return
	}

	respondJSON(w, http.StatusOK, details)
}
