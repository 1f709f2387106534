package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/listquery"
	"hospital-management/pkg/response"
	"hospital-management/pkg/validator"
)

var admissionFilters = []string{entity.FilterStatus, entity.FilterPatientID, entity.FilterDoctorID, entity.FilterWardType}

type AdmissionHandler struct {
	admissionUsecase usecase.AdmissionUsecase
	validator        *validator.CustomValidator
}

func NewAdmissionHandler(admissionUsecase usecase.AdmissionUsecase, validator *validator.CustomValidator) *AdmissionHandler {
	return &AdmissionHandler{
		admissionUsecase: admissionUsecase,
		validator:        validator,
	}
}

func (h *AdmissionHandler) ListAdmissions(w http.ResponseWriter, r *http.Request) {
	page, err := h.admissionUsecase.List(r.Context(), listquery.FromValues(r.URL.Query(), admissionFilters...))
	if err != nil {
		response.InternalServerError(w, "Failed to get admissions")
		return
	}

	writePage(w, "Admissions retrieved successfully", page)
}

func (h *AdmissionHandler) ListPatientAdmissions(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(w, r, "id", "patient")
	if !ok {
		return
	}

	page, err := h.admissionUsecase.ListByPatient(r.Context(), patientID, listquery.FromValues(r.URL.Query(), entity.FilterStatus))
	if err != nil {
		if writeInputError(w, err) {
			return
		}
		response.InternalServerError(w, "Failed to get admissions")
		return
	}

	writePage(w, "Admissions retrieved successfully", page)
}

func (h *AdmissionHandler) GetAdmission(w http.ResponseWriter, r *http.Request) {
	admissionID, ok := pathID(w, r, "id", "admission")
	if !ok {
		return
	}

	admission, err := h.admissionUsecase.GetByID(r.Context(), admissionID)
	if err != nil {
		h.writeError(w, err, "Failed to get admission")
		return
	}

	response.Success(w, http.StatusOK, "Admission retrieved successfully", admission)
}

func (h *AdmissionHandler) CreateAdmission(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAdmissionRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	admission, err := h.admissionUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create admission")
		return
	}

	response.Success(w, http.StatusCreated, "Admission created successfully", admission)
}

func (h *AdmissionHandler) UpdateAdmission(w http.ResponseWriter, r *http.Request) {
	admissionID, ok := pathID(w, r, "id", "admission")
	if !ok {
		return
	}

	var req dto.UpdateAdmissionRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	admission, err := h.admissionUsecase.Update(r.Context(), admissionID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update admission")
		return
	}

	response.Success(w, http.StatusOK, "Admission updated successfully", admission)
}

// DischargePatient closes an admission
// @Summary Discharge patient
// @Description Marks the admission discharged. An empty body discharges today.
// @Tags Admissions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Admission ID"
// @Param request body dto.DischargeRequest false "Discharge Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admissions/{id}/discharge [put]
func (h *AdmissionHandler) DischargePatient(w http.ResponseWriter, r *http.Request) {
	admissionID, ok := pathID(w, r, "id", "admission")
	if !ok {
		return
	}

	var req dto.DischargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	admission, err := h.admissionUsecase.Discharge(r.Context(), admissionID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to discharge patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient discharged successfully", admission)
}

func (h *AdmissionHandler) DeleteAdmission(w http.ResponseWriter, r *http.Request) {
	admissionID, ok := pathID(w, r, "id", "admission")
	if !ok {
		return
	}

	if err := h.admissionUsecase.Delete(r.Context(), admissionID); err != nil {
		h.writeError(w, err, "Failed to delete admission")
		return
	}

	response.Success(w, http.StatusOK, "Admission deleted successfully", nil)
}

func (h *AdmissionHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrAdmissionNotFound:
		response.NotFound(w, "Admission not found")
	case usecase.ErrAlreadyDischarged:
		response.Conflict(w, "Patient already discharged")
	case usecase.ErrInvalidDischargeDate:
		response.BadRequest(w, err.Error())
	default:
		if !writeInputError(w, err) {
			response.InternalServerError(w, fallback)
		}
	}
}
