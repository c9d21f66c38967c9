package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// InvoiceLine is one billed service line
type InvoiceLine struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceLines is a JSONB-backed list of billed lines
type InvoiceLines []InvoiceLine

// Value implements driver.Valuer
func (l InvoiceLines) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *InvoiceLines) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	var result []InvoiceLine
	err := json.Unmarshal(bytes, &result)
	*l = InvoiceLines(result)
	return err
}

// Invoice represents a patient bill
type Invoice struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID   int64           `gorm:"not null;index" json:"patient_id"`
	Lines       InvoiceLines    `gorm:"type:jsonb" json:"lines,omitempty"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status      InvoiceStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	IssuedAt    time.Time       `gorm:"autoCreateTime" json:"issued_at"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// IsPaid checks if the invoice has been settled
func (i *Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}

// MarkPaid settles the invoice at the given time
func (i *Invoice) MarkPaid(at time.Time) {
	i.Status = InvoiceStatusPaid
	i.PaidAt = &at
}

// Payment represents a settlement against an invoice
type Payment struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceID int64           `gorm:"not null;index" json:"invoice_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Method    string          `gorm:"type:varchar(50)" json:"method,omitempty"`
	Reference string          `gorm:"type:varchar(100)" json:"reference,omitempty"`
	PaidAt    time.Time       `gorm:"autoCreateTime" json:"paid_at"`
}

func (Payment) TableName() string {
	return "payments"
}

// ServiceFee is one entry of the hospital fee schedule. The fee schedule is
// the source of truth for billable service options shown by the console.
type ServiceFee struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ServiceName string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"service_name"`
	Category    string          `gorm:"type:varchar(100);index" json:"category,omitempty"`
	Fee         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"fee"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ServiceFee) TableName() string {
	return "service_fees"
}
