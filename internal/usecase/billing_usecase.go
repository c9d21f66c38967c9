package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"hospital-admin-console/internal/converter"
	"hospital-admin-console/internal/delivery/dto"
	"hospital-admin-console/internal/delivery/http/middleware"
	"hospital-admin-console/internal/domain/entity"
	"hospital-admin-console/internal/domain/repository"
	"hospital-admin-console/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvoiceNotFound       = errors.New("invoice not found")
	ErrInvoiceAlreadyPaid    = errors.New("invoice is already paid")
	ErrInvoiceCancelled      = errors.New("invoice is cancelled")
	ErrPaymentAmountMismatch = errors.New("payment amount does not match invoice total")
)

type BillingUsecase interface {
	CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetAllInvoices(ctx context.Context, patientID int64, status string, page, limit int) (*dto.InvoiceListResponse, error)
	GetInvoice(ctx context.Context, id int64) (*dto.InvoiceResponse, error)
	PayInvoice(ctx context.Context, id int64, req *dto.PayInvoiceRequest) (*dto.InvoiceResponse, error)
	CancelInvoice(ctx context.Context, id int64) error
	GetPaymentHistory(ctx context.Context, page, limit int) (*dto.PaymentListResponse, error)
	GetServiceFees(ctx context.Context) ([]dto.ServiceFeeResponse, error)
	UpsertServiceFee(ctx context.Context, req *dto.UpsertServiceFeeRequest) (*dto.ServiceFeeResponse, error)
}

type billingUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	invoiceRepo    repository.InvoiceRepository
	paymentRepo    repository.PaymentRepository
	serviceFeeRepo repository.ServiceFeeRepository
	patientRepo    repository.PatientRepository
	auditService   service.AuditService
}

func NewBillingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	serviceFeeRepo repository.ServiceFeeRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) BillingUsecase {
	return &billingUsecase{
		db:             db,
		log:            log,
		invoiceRepo:    invoiceRepo,
		paymentRepo:    paymentRepo,
		serviceFeeRepo: serviceFeeRepo,
		patientRepo:    patientRepo,
		auditService:   auditService,
	}
}

func (u *billingUsecase) CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	// Total is always derived from the lines, never taken from the client
	lines := make(entity.InvoiceLines, len(req.Lines))
	total := decimal.Zero
	for i, line := range req.Lines {
		lines[i] = entity.InvoiceLine{
			Description: line.Description,
			Amount:      line.Amount,
		}
		total = total.Add(line.Amount)
	}

	invoice := &entity.Invoice{
		PatientID:   req.PatientID,
		Lines:       lines,
		TotalAmount: total,
		Status:      entity.InvoiceStatusPending,
	}

	if err := u.invoiceRepo.Create(u.db.WithContext(ctx), invoice); err != nil {
		u.log.Warnf("Failed to create invoice: %+v", err)
		return nil, err
	}

	return converter.InvoiceToResponse(invoice), nil
}

func (u *billingUsecase) GetAllInvoices(ctx context.Context, patientID int64, status string, page, limit int) (*dto.InvoiceListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	invoices, total, err := u.invoiceRepo.FindAll(u.db.WithContext(ctx), patientID, status, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find all invoices: %+v", err)
		return nil, err
	}

	return &dto.InvoiceListResponse{
		Content:       converter.InvoicesToResponses(invoices),
		TotalElements: total,
		TotalPages:    int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (u *billingUsecase) GetInvoice(ctx context.Context, id int64) (*dto.InvoiceResponse, error) {
	invoice, err := u.invoiceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find invoice: %+v", err)
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	return converter.InvoiceToResponse(invoice), nil
}

// PayInvoice settles an invoice: the payment insert and the status flip
// commit together or not at all.
func (u *billingUsecase) PayInvoice(ctx context.Context, id int64, req *dto.PayInvoiceRequest) (*dto.InvoiceResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	invoice, err := u.invoiceRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find invoice: %+v", err)
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}
	if invoice.IsPaid() {
		return nil, ErrInvoiceAlreadyPaid
	}
	if invoice.Status == entity.InvoiceStatusCancelled {
		return nil, ErrInvoiceCancelled
	}
	if !req.Amount.Equal(invoice.TotalAmount) {
		return nil, ErrPaymentAmountMismatch
	}

	oldValue := converter.InvoiceToResponse(invoice)

	payment := &entity.Payment{
		InvoiceID: invoice.ID,
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: req.Reference,
	}
	if err := u.paymentRepo.Create(tx, payment); err != nil {
		u.log.Warnf("Failed to create payment: %+v", err)
		return nil, err
	}

	invoice.MarkPaid(time.Now())
	if err := u.invoiceRepo.Update(tx, invoice); err != nil {
		u.log.Warnf("Failed to update invoice: %+v", err)
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionInvoicePay, "invoice", strconv.FormatInt(id, 10), oldValue, converter.InvoiceToResponse(invoice)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.InvoiceToResponse(invoice), nil
}

func (u *billingUsecase) CancelInvoice(ctx context.Context, id int64) error {
	invoice, err := u.invoiceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find invoice: %+v", err)
		return err
	}
	if invoice == nil {
		return ErrInvoiceNotFound
	}
	if invoice.IsPaid() {
		return ErrInvoiceAlreadyPaid
	}

	invoice.Status = entity.InvoiceStatusCancelled
	if err := u.invoiceRepo.Update(u.db.WithContext(ctx), invoice); err != nil {
		u.log.Warnf("Failed to cancel invoice: %+v", err)
		return err
	}

	return nil
}

func (u *billingUsecase) GetPaymentHistory(ctx context.Context, page, limit int) (*dto.PaymentListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	payments, total, err := u.paymentRepo.FindAll(u.db.WithContext(ctx), limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find payments: %+v", err)
		return nil, err
	}

	return &dto.PaymentListResponse{
		Content:       converter.PaymentsToResponses(payments),
		TotalElements: total,
		TotalPages:    int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (u *billingUsecase) GetServiceFees(ctx context.Context) ([]dto.ServiceFeeResponse, error) {
	fees, err := u.serviceFeeRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find service fees: %+v", err)
		return nil, err
	}

	return converter.ServiceFeesToResponses(fees), nil
}

func (u *billingUsecase) UpsertServiceFee(ctx context.Context, req *dto.UpsertServiceFeeRequest) (*dto.ServiceFeeResponse, error) {
	fee := &entity.ServiceFee{
		ServiceName: req.ServiceName,
		Category:    req.Category,
		Fee:         req.Fee,
	}

	if err := u.serviceFeeRepo.Upsert(ctx, fee); err != nil {
		u.log.Warnf("Failed to upsert service fee: %+v", err)
		return nil, err
	}

	return converter.ServiceFeeToResponse(fee), nil
}
