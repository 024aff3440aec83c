package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment 表示租约下的一笔付款。与 Lease 一样只保留表结构
type Payment struct {
	BaseModel
	LeaseID     uint            `gorm:"not null;index" json:"lease_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentDate time.Time       `json:"payment_date"`
	PaymentType string          `gorm:"type:varchar(50)" json:"payment_type"`
	Status      string          `gorm:"type:varchar(20);default:'completed'" json:"status"`
}
