package repository

import (
	"context"

	"hospital-admin-console/internal/domain/entity"

	"gorm.io/gorm"
)

// InvoiceRepository is db-passed so paying an invoice can compose with the
// payment insert inside one transaction.
type InvoiceRepository interface {
	Create(db *gorm.DB, invoice *entity.Invoice) error
	FindAll(db *gorm.DB, patientID int64, status string, limit, offset int) ([]entity.Invoice, int64, error)
	FindByID(db *gorm.DB, id int64) (*entity.Invoice, error)
	Update(db *gorm.DB, invoice *entity.Invoice) error
	Delete(db *gorm.DB, id int64) (int64, error)
}

type PaymentRepository interface {
	Create(db *gorm.DB, payment *entity.Payment) error
	FindAll(db *gorm.DB, limit, offset int) ([]entity.Payment, int64, error)
	FindByInvoiceID(db *gorm.DB, invoiceID int64) ([]entity.Payment, error)
}

type ServiceFeeRepository interface {
	FindAll(ctx context.Context) ([]entity.ServiceFee, error)
	Upsert(ctx context.Context, fee *entity.ServiceFee) error
}
