package handler

import (
	"net/http"
	"strconv"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/listquery"
	"hospital-management/pkg/response"
	"hospital-management/pkg/validator"

	"github.com/gorilla/mux"
)

const (
	defaultLowStockLimit = 10
	defaultExpiringDays  = 30
	defaultExpiringLimit = 10
)

var medicineFilters = []string{entity.FilterCategory, entity.FilterRequiresPrescription}

type MedicineHandler struct {
	medicineUsecase usecase.MedicineUsecase
	validator       *validator.CustomValidator
}

func NewMedicineHandler(medicineUsecase usecase.MedicineUsecase, validator *validator.CustomValidator) *MedicineHandler {
	return &MedicineHandler{
		medicineUsecase: medicineUsecase,
		validator:       validator,
	}
}

func (h *MedicineHandler) ListMedicines(w http.ResponseWriter, r *http.Request) {
	page, err := h.medicineUsecase.List(r.Context(), listquery.FromValues(r.URL.Query(), medicineFilters...))
	if err != nil {
		response.InternalServerError(w, "Failed to get medicines")
		return
	}

	writePage(w, "Medicines retrieved successfully", page)
}

func (h *MedicineHandler) ListMedicinesByCategory(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	page, err := h.medicineUsecase.ListByCategory(r.Context(), category, listquery.FromValues(r.URL.Query(), entity.FilterRequiresPrescription))
	if err != nil {
		response.InternalServerError(w, "Failed to get medicines")
		return
	}

	writePage(w, "Medicines retrieved successfully", page)
}

func (h *MedicineHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	medicines, err := h.medicineUsecase.LowStock(r.Context(), listquery.Limit(r.URL.Query(), defaultLowStockLimit))
	if err != nil {
		response.InternalServerError(w, "Failed to get low stock medicines")
		return
	}

	response.Success(w, http.StatusOK, "Low stock medicines retrieved successfully", medicines)
}

// Expiring lists medicines expiring within ?days= (default 30).
func (h *MedicineHandler) Expiring(w http.ResponseWriter, r *http.Request) {
	days := defaultExpiringDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.BadRequest(w, "Invalid days")
			return
		}
		days = parsed
	}

	medicines, err := h.medicineUsecase.Expiring(r.Context(), days, listquery.Limit(r.URL.Query(), defaultExpiringLimit))
	if err != nil {
		response.InternalServerError(w, "Failed to get expiring medicines")
		return
	}

	response.Success(w, http.StatusOK, "Expiring medicines retrieved successfully", medicines)
}

func (h *MedicineHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.medicineUsecase.Stats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get medicine statistics")
		return
	}

	response.Success(w, http.StatusOK, "Medicine statistics retrieved successfully", stats)
}

func (h *MedicineHandler) GetMedicine(w http.ResponseWriter, r *http.Request) {
	medicineID, ok := pathID(w, r, "id", "medicine")
	if !ok {
		return
	}

	medicine, err := h.medicineUsecase.GetByID(r.Context(), medicineID)
	if err != nil {
		h.writeError(w, err, "Failed to get medicine")
		return
	}

	response.Success(w, http.StatusOK, "Medicine retrieved successfully", medicine)
}

func (h *MedicineHandler) CreateMedicine(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicineRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	medicine, err := h.medicineUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create medicine")
		return
	}

	response.Success(w, http.StatusCreated, "Medicine created successfully", medicine)
}

func (h *MedicineHandler) UpdateMedicine(w http.ResponseWriter, r *http.Request) {
	medicineID, ok := pathID(w, r, "id", "medicine")
	if !ok {
		return
	}

	var req dto.UpdateMedicineRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	medicine, err := h.medicineUsecase.Update(r.Context(), medicineID, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update medicine")
		return
	}

	response.Success(w, http.StatusOK, "Medicine updated successfully", medicine)
}

// AdjustStock applies a signed stock delta
// @Summary Adjust medicine stock
// @Description Adds stock_delta to the stock. Negative values dispense.
// @Tags Pharmacy
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Medicine ID"
// @Param request body dto.AdjustStockRequest true "Adjust Stock Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /pharmacy/medicines/{id}/stock [patch]
func (h *MedicineHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	medicineID, ok := pathID(w, r, "id", "medicine")
	if !ok {
		return
	}

	var req dto.AdjustStockRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	medicine, err := h.medicineUsecase.AdjustStock(r.Context(), medicineID, req.StockDelta)
	if err != nil {
		h.writeError(w, err, "Failed to adjust stock")
		return
	}

	response.Success(w, http.StatusOK, "Stock updated successfully", medicine)
}

func (h *MedicineHandler) DeleteMedicine(w http.ResponseWriter, r *http.Request) {
	medicineID, ok := pathID(w, r, "id", "medicine")
	if !ok {
		return
	}

	if err := h.medicineUsecase.Delete(r.Context(), medicineID); err != nil {
		h.writeError(w, err, "Failed to delete medicine")
		return
	}

	response.Success(w, http.StatusOK, "Medicine deleted successfully", nil)
}

func (h *MedicineHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrMedicineNotFound:
		response.NotFound(w, "Medicine not found")
	case usecase.ErrInsufficientStock:
		response.Conflict(w, "Insufficient stock")
	default:
		if !writeInputError(w, err) {
			response.InternalServerError(w, fallback)
		}
	}
}
