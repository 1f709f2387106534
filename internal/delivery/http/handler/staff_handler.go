package handler

import (
	"net/http"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/listquery"
	"hospital-management/pkg/response"
	"hospital-management/pkg/validator"
)

var staffFilters = []string{entity.FilterDepartment, entity.FilterRole, entity.FilterIsActive}

type StaffHandler struct {
	staffUsecase usecase.StaffUsecase
	validator    *validator.CustomValidator
}

func NewStaffHandler(staffUsecase usecase.StaffUsecase, validator *validator.CustomValidator) *StaffHandler {
	return &StaffHandler{
		staffUsecase: staffUsecase,
		validator:    validator,
	}
}

func (h *StaffHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	page, err := h.staffUsecase.List(r.Context(), listquery.FromValues(r.URL.Query(), staffFilters...))
	if err != nil {
		response.InternalServerError(w, "Failed to get staff")
		return
	}

	writePage(w, "Staff retrieved successfully", page)
}

// Departments returns head counts per department.
func (h *StaffHandler) Departments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.staffUsecase.Departments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get departments")
		return
	}

	response.Success(w, http.StatusOK, "Departments retrieved successfully", departments)
}

func (h *StaffHandler) GetStaff(w http.ResponseWriter, r *http.Request) {
	staffID, ok := pathID(w, r, "id", "staff")
	if !ok {
		return
	}

	member, err := h.staffUsecase.GetByID(r.Context(), staffID)
	if err != nil {
		h.writeError(w, err, "Failed to get staff member")
		return
	}

	response.Success(w, http.StatusOK, "Staff member retrieved successfully", member)
}

func (h *StaffHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStaffRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	member, err := h.staffUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create staff member")
		return
	}

	response.Success(w, http.StatusCreated, "Staff member created successfully", member)
}

func (h *StaffHandler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	staffID, ok := pathID(w, r, "id", "staff")
	if !ok {
		return
	}

	var req dto.UpdateStaffRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	member, err := h.staffUsecase.Update(r.Context(), staffID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update staff member")
		return
	}

	response.Success(w, http.StatusOK, "Staff member updated successfully", member)
}

func (h *StaffHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	staffID, ok := pathID(w, r, "id", "staff")
	if !ok {
		return
	}

	if err := h.staffUsecase.Delete(r.Context(), staffID); err != nil {
		h.writeError(w, err, "Failed to delete staff member")
		return
	}

	response.Success(w, http.StatusOK, "Staff member deleted successfully", nil)
}

func (h *StaffHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	if err == usecase.ErrStaffNotFound {
		response.NotFound(w, "Staff member not found")
		return
	}
	if !writeInputError(w, err) {
		response.InternalServerError(w, fallback)
	}
}
