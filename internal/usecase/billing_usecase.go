package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"
	"hospital-management/internal/service"
	"hospital-management/pkg/listquery"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrTransactionNotFound = errors.New("billing transaction not found")
	ErrOverpayment         = errors.New("payment exceeds outstanding balance")
	ErrInvalidDateRange    = errors.New("start date is after end date")
	ErrInvalidDueDate      = errors.New("due date is before invoice date")
	ErrInvoiceNumberExists = errors.New("invoice number already exists")
)

// DateRange narrows a transaction list by invoice date. Empty bounds are open.
type DateRange struct {
	Start string
	End   string
}

type BillingUsecase interface {
	List(ctx context.Context, q listquery.Query, dates DateRange) (*dto.BillingListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.BillingTransactionResponse, error)
	Create(ctx context.Context, req *dto.CreateBillingTransactionRequest) (*dto.BillingTransactionResponse, error)
	RecordPayment(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*dto.BillingTransactionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Revenue(ctx context.Context, year int) (*dto.RevenueResponse, error)
	// MarkOverdue persists the derived status of every transaction and
	// reports how many changed.
	MarkOverdue(ctx context.Context) (int, error)
}

type billingUsecase struct {
	log          *logrus.Logger
	billingRepo  repository.BillingTransactionRepository
	participants participants
	auditService service.AuditService
	now          Clock
}

func NewBillingUsecase(
	log *logrus.Logger,
	billingRepo repository.BillingTransactionRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
	now Clock,
) BillingUsecase {
	return &billingUsecase{
		log:          log,
		billingRepo:  billingRepo,
		participants: participants{patientRepo: patientRepo},
		auditService: auditService,
		now:          now,
	}
}

func (u *billingUsecase) List(ctx context.Context, q listquery.Query, dates DateRange) (*dto.BillingListResponse, error) {
	start, err := parseOptionalDate(dates.Start)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate(dates.End)
	if err != nil {
		return nil, err
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, ErrInvalidDateRange
	}

	transactions, err := u.findAll(ctx)
	if err != nil {
		return nil, err
	}

	day := today(u.now)
	inRange := make([]entity.BillingTransaction, 0, len(transactions))
	for _, t := range transactions {
		if start != nil && t.Date.Before(*start) {
			continue
		}
		if end != nil && t.Date.After(*end) {
			continue
		}
		// status may be stale until the overdue job has run
		t.RefreshStatus(day)
		inRange = append(inRange, t)
	}

	summary := dto.BillingSummary{
		TotalBilled:  decimal.Zero,
		TotalPaid:    decimal.Zero,
		TotalBalance: decimal.Zero,
	}
	for _, t := range listquery.Match(inRange, q, entity.BillingTransactionSchema) {
		summary.TotalBilled = summary.TotalBilled.Add(t.TotalAmount)
		summary.TotalPaid = summary.TotalPaid.Add(t.PaidAmount)
		summary.TotalBalance = summary.TotalBalance.Add(t.Balance())
	}

	res := listquery.Evaluate(inRange, q, entity.BillingTransactionSchema)
	return &dto.BillingListResponse{
		Page:    converter.ToPage(res, converter.BillingTransactionToResponse),
		Summary: summary,
	}, nil
}

func (u *billingUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.BillingTransactionResponse, error) {
	transaction, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	transaction.RefreshStatus(today(u.now))
	return converter.BillingTransactionToResponse(transaction), nil
}

func (u *billingUsecase) Create(ctx context.Context, req *dto.CreateBillingTransactionRequest) (*dto.BillingTransactionResponse, error) {
	date := today(u.now)
	if req.Date != "" {
		var err error
		if date, err = parseDate(req.Date); err != nil {
			return nil, err
		}
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return nil, err
	}
	if dueDate.Before(date) {
		return nil, ErrInvalidDueDate
	}
	if req.PaidAmount.GreaterThan(req.TotalAmount) {
		return nil, ErrOverpayment
	}

	patient, err := u.participants.patient(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	invoiceNumber := req.InvoiceNumber
	if invoiceNumber == "" {
		invoiceNumber = entity.InvoiceNumber(date, id)
	}
	if err := u.ensureUniqueInvoice(ctx, invoiceNumber); err != nil {
		return nil, err
	}

	transaction := &entity.BillingTransaction{
		Model:         entity.Model{ID: id},
		InvoiceNumber: invoiceNumber,
		PatientID:     patient.ID,
		PatientName:   patient.Name,
		Description:   req.Description,
		Date:          date,
		DueDate:       dueDate,
		TotalAmount:   req.TotalAmount,
		PaidAmount:    req.PaidAmount,
	}
	transaction.RefreshStatus(today(u.now))

	if err := u.billingRepo.Create(ctx, transaction); err != nil {
		if isDuplicateKeyError(err, "invoice_number") {
			return nil, ErrInvoiceNumberExists
		}
		u.log.Warnf("Failed to create billing transaction: %+v", err)
		return nil, err
	}

	res := converter.BillingTransactionToResponse(transaction)
	if err := u.auditService.LogCreate(ctx, entity.AuditEntityBilling, transaction.ID, res); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return res, nil
}

func (u *billingUsecase) ensureUniqueInvoice(ctx context.Context, invoiceNumber string) error {
	transactions, err := u.findAll(ctx)
	if err != nil {
		return err
	}
	for _, t := range transactions {
		if t.InvoiceNumber == invoiceNumber {
			return ErrInvoiceNumberExists
		}
	}
	return nil
}

// RecordPayment adds amount to the paid amount. The balance is checked again
// by the repository when the payment is applied.
func (u *billingUsecase) RecordPayment(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*dto.BillingTransactionResponse, error) {
	if !amount.IsPositive() {
		return nil, ErrOverpayment
	}

	transaction, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if amount.GreaterThan(transaction.Balance()) {
		return nil, ErrOverpayment
	}
	oldValue := converter.BillingTransactionToResponse(transaction)

	transaction, err = u.billingRepo.ApplyPayment(ctx, id, amount, today(u.now))
	if err != nil {
		if errors.Is(err, repository.ErrPaymentExceedsBalance) {
			return nil, ErrOverpayment
		}
		u.log.Warnf("Failed to record payment: %+v", err)
		return nil, err
	}
	if transaction == nil {
		return nil, ErrTransactionNotFound
	}

	newValue := converter.BillingTransactionToResponse(transaction)
	if err := u.auditService.LogUpdate(ctx, entity.AuditEntityBilling, transaction.ID, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}

func (u *billingUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	transaction, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	if _, err := u.billingRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete billing transaction: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, entity.AuditEntityBilling, id, converter.BillingTransactionToResponse(transaction)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

// Revenue reports the amounts collected per month of year, by invoice date.
// A zero year means the current one.
func (u *billingUsecase) Revenue(ctx context.Context, year int) (*dto.RevenueResponse, error) {
	if year == 0 {
		year = u.now().Year()
	}

	transactions, err := u.findAll(ctx)
	if err != nil {
		return nil, err
	}

	return revenueReport(transactions, year), nil
}

func (u *billingUsecase) MarkOverdue(ctx context.Context) (int, error) {
	transactions, err := u.findAll(ctx)
	if err != nil {
		return 0, err
	}

	day := today(u.now)
	changed := 0
	for i := range transactions {
		t := &transactions[i]
		if !t.RefreshStatus(day) {
			continue
		}
		if err := u.billingRepo.Update(ctx, t); err != nil {
			u.log.Warnf("Failed to update billing status: %+v", err)
			return changed, err
		}
		changed++
	}

	return changed, nil
}

func (u *billingUsecase) findAll(ctx context.Context) ([]entity.BillingTransaction, error) {
	transactions, err := u.billingRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find billing transactions: %+v", err)
		return nil, err
	}
	return transactions, nil
}

func (u *billingUsecase) find(ctx context.Context, id uuid.UUID) (*entity.BillingTransaction, error) {
	transaction, err := u.billingRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find billing transaction by ID: %+v", err)
		return nil, err
	}
	if transaction == nil {
		return nil, ErrTransactionNotFound
	}
	return transaction, nil
}

// monthlyRevenue sums paid amounts per calendar month of year. All twelve
// months are present.
func monthlyRevenue(transactions []entity.BillingTransaction, year int) []entity.MonthlyRevenue {
	months := make([]entity.MonthlyRevenue, 12)
	for i := range months {
		months[i] = entity.MonthlyRevenue{
			Month:  i + 1,
			Name:   time.Month(i + 1).String(),
			Amount: decimal.Zero,
		}
	}
	for _, t := range transactions {
		if t.Date.Year() != year {
			continue
		}
		m := &months[t.Date.Month()-1]
		m.Amount = m.Amount.Add(t.PaidAmount)
	}
	return months
}

func revenueReport(transactions []entity.BillingTransaction, year int) *dto.RevenueResponse {
	months := monthlyRevenue(transactions, year)
	total := decimal.Zero
	for _, m := range months {
		total = total.Add(m.Amount)
	}
	return &dto.RevenueResponse{
		Year:   year,
		Total:  total,
		Months: converter.ToSlice(months, converter.MonthlyRevenueToResponse),
	}
}
