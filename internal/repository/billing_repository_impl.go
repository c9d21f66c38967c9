package repository

import (
	"context"
	"errors"

	"hospital-admin-console/internal/domain/entity"
	domainRepo "hospital-admin-console/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type invoiceRepository struct{}

func NewInvoiceRepository() domainRepo.InvoiceRepository {
	return &invoiceRepository{}
}

func (r *invoiceRepository) Create(db *gorm.DB, invoice *entity.Invoice) error {
	return db.Create(invoice).Error
}

func (r *invoiceRepository) FindAll(db *gorm.DB, patientID int64, status string, limit, offset int) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := db.Model(&entity.Invoice{})
	if patientID != 0 {
		query = query.Where("patient_id = ?", patientID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Limit(limit).Offset(offset).Order("issued_at DESC").Find(&invoices).Error; err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}

func (r *invoiceRepository) FindByID(db *gorm.DB, id int64) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := db.Where("id = ?", id).First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) Update(db *gorm.DB, invoice *entity.Invoice) error {
	return db.Save(invoice).Error
}

func (r *invoiceRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Invoice{})
	return result.RowsAffected, result.Error
}

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	return db.Create(payment).Error
}

func (r *paymentRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.Payment, int64, error) {
	var payments []entity.Payment
	var total int64

	if err := db.Model(&entity.Payment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Limit(limit).Offset(offset).Order("paid_at DESC").Find(&payments).Error; err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

func (r *paymentRepository) FindByInvoiceID(db *gorm.DB, invoiceID int64) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := db.Where("invoice_id = ?", invoiceID).Order("paid_at ASC").Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

type serviceFeeRepository struct {
	db *gorm.DB
}

func NewServiceFeeRepository(db *gorm.DB) domainRepo.ServiceFeeRepository {
	return &serviceFeeRepository{db: db}
}

func (r *serviceFeeRepository) FindAll(ctx context.Context) ([]entity.ServiceFee, error) {
	var fees []entity.ServiceFee
	err := r.db.WithContext(ctx).Order("category ASC, service_name ASC").Find(&fees).Error
	if err != nil {
		return nil, err
	}
	return fees, nil
}

func (r *serviceFeeRepository) Upsert(ctx context.Context, fee *entity.ServiceFee) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "service_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"category", "fee"}),
	}).Create(fee).Error
}
