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

const defaultRecentLimit = 5

var appointmentFilters = []string{
	entity.FilterStatus,
	entity.FilterDoctorID,
	entity.FilterPatientID,
	entity.FilterDate,
	entity.FilterType,
}

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// ListAppointments handles the appointment list
// @Summary List appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param search query string false "Matches patient name, doctor name or type"
// @Param status query string false "Status"
// @Param doctorId query string false "Doctor ID"
// @Param patientId query string false "Patient ID"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	page, err := h.appointmentUsecase.List(r.Context(), listquery.FromValues(r.URL.Query(), appointmentFilters...))
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	writePage(w, "Appointments retrieved successfully", page)
}

func (h *AppointmentHandler) ListPatientAppointments(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(w, r, "id", "patient")
	if !ok {
		return
	}

	page, err := h.appointmentUsecase.ListByPatient(r.Context(), patientID, listquery.FromValues(r.URL.Query(), entity.FilterStatus))
	if err != nil {
		if writeInputError(w, err) {
			return
		}
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	writePage(w, "Appointments retrieved successfully", page)
}

func (h *AppointmentHandler) ListDoctorAppointments(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathID(w, r, "id", "doctor")
	if !ok {
		return
	}

	page, err := h.appointmentUsecase.ListByDoctor(r.Context(), doctorID, listquery.FromValues(r.URL.Query(), entity.FilterStatus))
	if err != nil {
		if writeInputError(w, err) {
			return
		}
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	writePage(w, "Appointments retrieved successfully", page)
}

// TodayAppointments lists today's appointments, earliest slot first.
func (h *AppointmentHandler) TodayAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.Today(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) RecentAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.Recent(r.Context(), listquery.Limit(r.URL.Query(), defaultRecentLimit))
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := pathID(w, r, "id", "appointment")
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.GetByID(r.Context(), appointmentID)
	if err != nil {
		if err == usecase.ErrAppointmentNotFound {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

// CreateAppointment books an appointment
// @Summary Create appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		if writeInputError(w, err) {
			return
		}
		response.InternalServerError(w, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := pathID(w, r, "id", "appointment")
	if !ok {
		return
	}

	var req dto.UpdateAppointmentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.Update(r.Context(), appointmentID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func (h *AppointmentHandler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := pathID(w, r, "id", "appointment")
	if !ok {
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.UpdateStatus(r.Context(), appointmentID, req.Status)
	if err != nil {
		h.writeError(w, err, "Failed to update appointment status")
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", appointment)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := pathID(w, r, "id", "appointment")
	if !ok {
		return
	}

	if err := h.appointmentUsecase.Delete(r.Context(), appointmentID); err != nil {
		h.writeError(w, err, "Failed to delete appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}

func (h *AppointmentHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	if err == usecase.ErrAppointmentNotFound {
		response.NotFound(w, "Appointment not found")
		return
	}
	if writeInputError(w, err) {
		return
	}
	response.InternalServerError(w, fallback)
}
