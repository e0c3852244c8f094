package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/xbl/lead-tracker/internal/domain"
	"github.com/xbl/lead-tracker/internal/service"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type LeadHandler struct {
	leadService   *service.LeadService
	exportService *service.LeadExportService
	logger        *zap.Logger
}

func NewLeadHandler(leadService *service.LeadService, exportService *service.LeadExportService, logger *zap.Logger) *LeadHandler {
	return &LeadHandler{
		leadService:   leadService,
		exportService: exportService,
		logger:        logger,
	}
}

// Create godoc
// @Summary Create lead
// @Description Create a lead for an existing customer. Offer numbers are computed when omitted and a "Price Offered" lead gets a serial number.
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body domain.CreateLeadRequest true "Lead data"
// @Success 201 {object} domain.CreateLeadResponse
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError "Customer not found"
// @Failure 409 {object} domain.APIError "Serial number already exists"
// @Failure 500 {object} domain.APIError
// @Router /leads [post]
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateLeadRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	lead, err := h.leadService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create lead")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/leads/%d", lead.ID))
	respondJSON(w, http.StatusCreated, domain.CreateLeadResponse{
		Message: "Lead created successfully",
		Lead:    *lead,
	})
}

// List godoc
// @Summary List leads
// @Description All leads, most recently created first, optionally filtered by status
// @Tags Leads
// @Produce json
// @Param status query string false "Filter by status" Enums(Connected, Technical Analysis, Price Offered, Won, Completed, Lost)
// @Success 200 {object} domain.LeadListResponse
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /leads [get]
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	status, ok := optionalStatus(w, r)
	if !ok {
		return
	}

	leads, err := h.leadService.List(r.Context(), status)
	if err != nil {
		respondServiceError(w, h.logger, err, "list leads")
		return
	}

	respondJSON(w, http.StatusOK, domain.LeadListResponse{Data: leads, Total: len(leads)})
}

// ListFollowUps godoc
// @Summary List leads needing follow-up
// @Description Open leads whose next follow-up date is on or before asOf (default today), soonest first
// @Tags Leads
// @Produce json
// @Param asOf query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} domain.FollowUpListResponse
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /leads/follow-ups [get]
func (h *LeadHandler) ListFollowUps(w http.ResponseWriter, r *http.Request) {
	asOf, ok := optionalDate(w, r, "asOf")
	if !ok {
		return
	}
	if asOf.IsZero() {
		asOf = domain.Today()
	}

	leads, err := h.leadService.ListNeedingFollowUp(r.Context(), asOf)
	if err != nil {
		respondServiceError(w, h.logger, err, "list follow-ups")
		return
	}

	respondJSON(w, http.StatusOK, domain.FollowUpListResponse{AsOf: asOf, Data: leads, Total: len(leads)})
}

// Export godoc
// @Summary Export leads as XLSX
// @Tags Leads
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param status query string false "Filter by status"
// @Success 200 {file} file
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /leads/export [get]
func (h *LeadHandler) Export(w http.ResponseWriter, r *http.Request) {
	status, ok := optionalStatus(w, r)
	if !ok {
		return
	}

	// Buffer the workbook so a failure can still produce a JSON error
	var buf bytes.Buffer
	if _, err := h.exportService.WriteXLSX(r.Context(), status, &buf); err != nil {
		respondServiceError(w, h.logger, err, "export leads")
		return
	}

	filename := fmt.Sprintf("leads_%s.xlsx", domain.Today().Compact())
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// Get godoc
// @Summary Get lead
// @Tags Leads
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {object} domain.LeadDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /leads/{id} [get]
func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := leadID(w, r)
	if !ok {
		return
	}

	lead, err := h.leadService.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get lead")
		return
	}

	respondJSON(w, http.StatusOK, lead)
}

// Update godoc
// @Summary Update lead
// @Description Patch the supplied fields. Moving to "Price Offered" assigns a serial number if the lead has none. An assigned serial cannot be changed.
// @Tags Leads
// @Accept json
// @Produce json
// @Param id path int true "Lead ID"
// @Param request body domain.UpdateLeadRequest true "Fields to update"
// @Success 200 {object} domain.LeadDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /leads/{id} [patch]
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := leadID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateLeadRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	lead, err := h.leadService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update lead")
		return
	}

	respondJSON(w, http.StatusOK, lead)
}

func leadID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		respondWithError(w, http.StatusBadRequest, "Invalid lead ID")
		return 0, false
	}
	return uint(id), true
}
