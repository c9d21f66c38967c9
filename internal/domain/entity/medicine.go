package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medicine represents an inventory entry in the hospital pharmacy
type Medicine struct {
	ID           int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string          `gorm:"type:varchar(255);not null;index" json:"name"`
	Category     string          `gorm:"type:varchar(100);index" json:"category,omitempty"`
	Manufacturer string          `gorm:"type:varchar(255)" json:"manufacturer,omitempty"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock        int             `gorm:"default:0" json:"stock"`
	ExpiryDate   *time.Time      `gorm:"type:date" json:"expiry_date,omitempty"`
	Status       string          `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Medicine) TableName() string {
	return "medicines"
}
