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

var labReportFilters = []string{entity.FilterStatus, entity.FilterTestType, entity.FilterPatientID, entity.FilterDoctorID}

type LabReportHandler struct {
	labReportUsecase usecase.LabReportUsecase
	validator        *validator.CustomValidator
}

func NewLabReportHandler(labReportUsecase usecase.LabReportUsecase, validator *validator.CustomValidator) *LabReportHandler {
	return &LabReportHandler{
		labReportUsecase: labReportUsecase,
		validator:        validator,
	}
}

func (h *LabReportHandler) ListLabReports(w http.ResponseWriter, r *http.Request) {
	page, err := h.labReportUsecase.List(r.Context(), listquery.FromValues(r.URL.Query(), labReportFilters...))
	if err != nil {
		response.InternalServerError(w, "Failed to get lab reports")
		return
	}

	writePage(w, "Lab reports retrieved successfully", page)
}

func (h *LabReportHandler) ListPatientLabReports(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(w, r, "id", "patient")
	if !ok {
		return
	}

	page, err := h.labReportUsecase.ListByPatient(r.Context(), patientID, listquery.FromValues(r.URL.Query(), entity.FilterStatus, entity.FilterTestType))
	if err != nil {
		h.writeError(w, err, "Failed to get lab reports")
		return
	}

	writePage(w, "Lab reports retrieved successfully", page)
}

func (h *LabReportHandler) ListDoctorLabReports(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathID(w, r, "id", "doctor")
	if !ok {
		return
	}

	page, err := h.labReportUsecase.ListByDoctor(r.Context(), doctorID, listquery.FromValues(r.URL.Query(), entity.FilterStatus, entity.FilterTestType))
	if err != nil {
		h.writeError(w, err, "Failed to get lab reports")
		return
	}

	writePage(w, "Lab reports retrieved successfully", page)
}

func (h *LabReportHandler) RecentLabReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.labReportUsecase.Recent(r.Context(), listquery.Limit(r.URL.Query(), defaultRecentLimit))
	if err != nil {
		response.InternalServerError(w, "Failed to get lab reports")
		return
	}

	response.Success(w, http.StatusOK, "Lab reports retrieved successfully", reports)
}

func (h *LabReportHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.labReportUsecase.Stats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get lab report statistics")
		return
	}

	response.Success(w, http.StatusOK, "Lab report statistics retrieved successfully", stats)
}

func (h *LabReportHandler) GetLabReport(w http.ResponseWriter, r *http.Request) {
	reportID, ok := pathID(w, r, "id", "lab report")
	if !ok {
		return
	}

	report, err := h.labReportUsecase.GetByID(r.Context(), reportID)
	if err != nil {
		h.writeError(w, err, "Failed to get lab report")
		return
	}

	response.Success(w, http.StatusOK, "Lab report retrieved successfully", report)
}

func (h *LabReportHandler) CreateLabReport(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLabReportRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	report, err := h.labReportUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create lab report")
		return
	}

	response.Success(w, http.StatusCreated, "Lab report created successfully", report)
}

func (h *LabReportHandler) UpdateLabReport(w http.ResponseWriter, r *http.Request) {
	reportID, ok := pathID(w, r, "id", "lab report")
	if !ok {
		return
	}

	var req dto.UpdateLabReportRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	report, err := h.labReportUsecase.Update(r.Context(), reportID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update lab report")
		return
	}

	response.Success(w, http.StatusOK, "Lab report updated successfully", report)
}

func (h *LabReportHandler) UpdateLabReportStatus(w http.ResponseWriter, r *http.Request) {
	reportID, ok := pathID(w, r, "id", "lab report")
	if !ok {
		return
	}

	var req dto.UpdateLabReportStatusRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	report, err := h.labReportUsecase.UpdateStatus(r.Context(), reportID, req.Status)
	if err != nil {
		h.writeError(w, err, "Failed to update lab report status")
		return
	}

	response.Success(w, http.StatusOK, "Lab report status updated successfully", report)
}

func (h *LabReportHandler) DeleteLabReport(w http.ResponseWriter, r *http.Request) {
	reportID, ok := pathID(w, r, "id", "lab report")
	if !ok {
		return
	}

	if err := h.labReportUsecase.Delete(r.Context(), reportID); err != nil {
		h.writeError(w, err, "Failed to delete lab report")
		return
	}

	response.Success(w, http.StatusOK, "Lab report deleted successfully", nil)
}

func (h *LabReportHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	if err == usecase.ErrLabReportNotFound {
		response.NotFound(w, "Lab report not found")
		return
	}
	if !writeInputError(w, err) {
		response.InternalServerError(w, fallback)
	}
}
