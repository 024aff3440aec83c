package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lease 表示已确认的租约。表结构保留用于后续结算功能，
// 当前没有任何接口读写该表
type Lease struct {
	BaseModel
	BookingID       *uint           `json:"booking_id"`
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	UnitID          uint            `gorm:"not null;index" json:"unit_id"`
	StartDate       time.Time       `gorm:"type:date;not null" json:"start_date"`
	EndDate         time.Time       `gorm:"type:date;not null" json:"end_date"`
	RentAmount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"rent_amount"`
	SecurityDeposit decimal.Decimal `gorm:"type:decimal(10,2)" json:"security_deposit"`
	Status          string          `gorm:"type:varchar(20);default:'active'" json:"status"`

	// 关联关系
	Payments []Payment `gorm:"foreignKey:LeaseID" json:"payments,omitempty"`
}
