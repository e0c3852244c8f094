package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/xbl/lead-tracker/internal/domain"
	"github.com/xbl/lead-tracker/internal/service"
	"go.uber.org/zap"
)

// OfferNumberHandler serves project categories, offer numbering and serial previews
type OfferNumberHandler struct {
	offerNumberService *service.OfferNumberService
	logger             *zap.Logger
}

func NewOfferNumberHandler(offerNumberService *service.OfferNumberService, logger *zap.Logger) *OfferNumberHandler {
	return &OfferNumberHandler{
		offerNumberService: offerNumberService,
		logger:             logger,
	}
}

// ListProjectCategories godoc
// @Summary List project categories
// @Tags Offer Numbers
// @Produce json
// @Success 200 {array} string
// @Router /project-categories [get]
func (h *OfferNumberHandler) ListProjectCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.ProjectCategories())
}

// NextInitial godoc
// @Summary Next initial offer number
// @Description 1 + the highest initial offer number of the customer in the category, or 1
// @Tags Offer Numbers
// @Produce json
// @Param customer query string true "Customer name"
// @Param category query string true "Project category" Enums(EPC, ISS, PSE, SPP)
// @Success 200 {object} domain.NextOfferNumberResponse
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /offer-numbers/next [get]
func (h *OfferNumberHandler) NextInitial(w http.ResponseWriter, r *http.Request) {
	customer, category, ok := customerAndCategory(w, r)
	if !ok {
		return
	}

	next, err := h.offerNumberService.NextInitialOfferNumber(r.Context(), customer, category)
	if err != nil {
		respondServiceError(w, h.logger, err, "compute next offer number")
		return
	}

	respondJSON(w, http.StatusOK, domain.NextOfferNumberResponse{
		Customer:           customer,
		ProjectCategory:    category,
		InitialOfferNumber: next,
	})
}

// NextRevision godoc
// @Summary Next offer revision
// @Description "R" + (1 + the highest revision of the offer), or R1
// @Tags Offer Numbers
// @Produce json
// @Param customer query string true "Customer name"
// @Param category query string true "Project category" Enums(EPC, ISS, PSE, SPP)
// @Param initialOfferNumber query int true "Initial offer number"
// @Success 200 {object} domain.NextRevisionResponse
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /offer-numbers/next-revision [get]
func (h *OfferNumberHandler) NextRevision(w http.ResponseWriter, r *http.Request) {
	customer, category, ok := customerAndCategory(w, r)
	if !ok {
		return
	}
	raw, ok := requiredQuery(w, r, "initialOfferNumber")
	if !ok {
		return
	}
	initial, err := strconv.Atoi(raw)
	if err != nil || initial <= 0 {
		respondWithError(w, http.StatusBadRequest, "initialOfferNumber must be a positive integer")
		return
	}

	revision, err := h.offerNumberService.NextOfferRevisionNumber(r.Context(), customer, category, initial)
	if err != nil {
		respondServiceError(w, h.logger, err, "compute next revision")
		return
	}

	respondJSON(w, http.StatusOK, domain.NextRevisionResponse{
		Customer:            customer,
		ProjectCategory:     category,
		InitialOfferNumber:  initial,
		OfferRevisionNumber: revision,
	})
}

// GenerateSerial godoc
// @Summary Preview a serial number
// @Description Format XBL/{category}/{customer}/{YYYYMMDD}/{initial}/{revision}. Nothing is stored.
// @Tags Offer Numbers
// @Accept json
// @Produce json
// @Param request body domain.GenerateSerialRequest true "Serial inputs"
// @Success 200 {object} domain.SerialNumberResponse
// @Failure 400 {object} domain.APIError
// @Router /offer-numbers/serial [post]
func (h *OfferNumberHandler) GenerateSerial(w http.ResponseWriter, r *http.Request) {
	var req domain.GenerateSerialRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if !req.ProjectCategory.IsValid() {
		respondWithError(w, http.StatusBadRequest, "Unknown project category")
		return
	}
	if req.OfferCreated.IsZero() {
		respondWithError(w, http.StatusBadRequest, "offerCreated is required")
		return
	}

	serial := service.GenerateSerialNumber(req.ProjectCategory, req.CustomerName, req.OfferCreated,
		req.InitialOfferNumber, req.OfferRevisionNumber)

	respondJSON(w, http.StatusOK, domain.SerialNumberResponse{SerialNumber: serial})
}

func customerAndCategory(w http.ResponseWriter, r *http.Request) (string, domain.ProjectCategory, bool) {
	customer, ok := requiredQuery(w, r, "customer")
	if !ok {
		return "", "", false
	}
	category := domain.ProjectCategory(strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("category"))))
	if !category.IsValid() {
		respondWithError(w, http.StatusBadRequest, "Query parameter \"category\" must be one of EPC, ISS, PSE, SPP")
		return "", "", false
	}
	return customer, category, true
}
