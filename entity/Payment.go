package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	Model
	OrderID string          `gorm:"size:36;not null;uniqueIndex" json:"orderId"`
	Method  PaymentMethod   `gorm:"size:20;not null" json:"method"`
	Status  PaymentStatus   `gorm:"size:20;not null" json:"status"`
	Amount  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaidAt  *time.Time      `json:"paidAt,omitempty"`
}
