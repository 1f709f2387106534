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
)

var billingFilters = []string{entity.FilterStatus, entity.FilterPatientID}

type BillingHandler struct {
	billingUsecase usecase.BillingUsecase
	validator      *validator.CustomValidator
}

func NewBillingHandler(billingUsecase usecase.BillingUsecase, validator *validator.CustomValidator) *BillingHandler {
	return &BillingHandler{
		billingUsecase: billingUsecase,
		validator:      validator,
	}
}

type billingListData struct {
	Transactions []dto.BillingTransactionResponse `json:"transactions"`
	Summary      dto.BillingSummary               `json:"summary"`
}

// ListTransactions handles the billing list
// @Summary List billing transactions
// @Description Paginated transactions plus totals over every matching transaction
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status"
// @Param patientId query string false "Patient ID"
// @Param startDate query string false "Invoice date lower bound (YYYY-MM-DD)"
// @Param endDate query string false "Invoice date upper bound (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /billing/transactions [get]
func (h *BillingHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	dates := usecase.DateRange{Start: values.Get("startDate"), End: values.Get("endDate")}

	res, err := h.billingUsecase.List(r.Context(), listquery.FromValues(values, billingFilters...), dates)
	if err != nil {
		h.writeError(w, err, "Failed to get billing transactions")
		return
	}

	page := res.Page
	response.SuccessWithMeta(w, http.StatusOK, "Billing transactions retrieved successfully",
		billingListData{Transactions: page.Items, Summary: res.Summary},
		response.NewMeta(page.Page, page.Limit, page.Total, page.TotalPages))
}

func (h *BillingHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID, ok := pathID(w, r, "id", "transaction")
	if !ok {
		return
	}

	transaction, err := h.billingUsecase.GetByID(r.Context(), transactionID)
	if err != nil {
		h.writeError(w, err, "Failed to get billing transaction")
		return
	}

	response.Success(w, http.StatusOK, "Billing transaction retrieved successfully", transaction)
}

func (h *BillingHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBillingTransactionRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	transaction, err := h.billingUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create billing transaction")
		return
	}

	response.Success(w, http.StatusCreated, "Billing transaction created successfully", transaction)
}

func (h *BillingHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	transactionID, ok := pathID(w, r, "id", "transaction")
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	transaction, err := h.billingUsecase.RecordPayment(r.Context(), transactionID, req.Amount)
	if err != nil {
		h.writeError(w, err, "Failed to record payment")
		return
	}

	response.Success(w, http.StatusOK, "Payment recorded successfully", transaction)
}

func (h *BillingHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID, ok := pathID(w, r, "id", "transaction")
	if !ok {
		return
	}

	if err := h.billingUsecase.Delete(r.Context(), transactionID); err != nil {
		h.writeError(w, err, "Failed to delete billing transaction")
		return
	}

	response.Success(w, http.StatusOK, "Billing transaction deleted successfully", nil)
}

// Revenue reports monthly collected amounts for ?year= (default current).
func (h *BillingHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	year := 0
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequest(w, "Invalid year")
			return
		}
		year = parsed
	}

	revenue, err := h.billingUsecase.Revenue(r.Context(), year)
	if err != nil {
		response.InternalServerError(w, "Failed to get revenue")
		return
	}

	response.Success(w, http.StatusOK, "Revenue retrieved successfully", revenue)
}

func (h *BillingHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrTransactionNotFound:
		response.NotFound(w, "Billing transaction not found")
	case usecase.ErrOverpayment, usecase.ErrInvalidDateRange, usecase.ErrInvalidDueDate:
		response.BadRequest(w, err.Error())
	case usecase.ErrInvoiceNumberExists:
		response.Conflict(w, "Invoice number already exists")
	default:
		if !writeInputError(w, err) {
			response.InternalServerError(w, fallback)
		}
	}
}
