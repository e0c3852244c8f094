package handler

import (
	"net/http"

	"github.com/xbl/lead-tracker/internal/domain"
	"github.com/xbl/lead-tracker/internal/service"
	"go.uber.org/zap"
)

type EmployeeHandler struct {
	employeeService *service.EmployeeService
	logger          *zap.Logger
}

func NewEmployeeHandler(employeeService *service.EmployeeService, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		logger:          logger,
	}
}

// Create godoc
// @Summary Add employee
// @Description Add a member of staff. Names are unique.
// @Tags Employees
// @Accept json
// @Produce json
// @Param request body domain.CreateEmployeeRequest true "Employee data"
// @Success 201 {object} domain.EmployeeDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /employees [post]
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateEmployeeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	employee, err := h.employeeService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create employee")
		return
	}

	respondJSON(w, http.StatusCreated, employee)
}

// List godoc
// @Summary List employees
// @Description Employee names in ascending order
// @Tags Employees
// @Produce json
// @Success 200 {object} domain.NamesResponse
// @Failure 500 {object} domain.APIError
// @Router /employees [get]
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	names, err := h.employeeService.ListNames(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "list employees")
		return
	}

	respondJSON(w, http.StatusOK, domain.NamesResponse{Data: names, Total: len(names)})
}

// Delete godoc
// @Summary Delete employee
// @Description Remove an employee by name. Unknown names are ignored and leads keep the name.
// @Tags Employees
// @Param name query string true "Employee name"
// @Success 204
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /employees [delete]
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name, ok := requiredQuery(w, r, "name")
	if !ok {
		return
	}

	if err := h.employeeService.Delete(r.Context(), name); err != nil {
		respondServiceError(w, h.logger, err, "delete employee")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
