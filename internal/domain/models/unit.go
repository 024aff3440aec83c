package models

import (
	"github.com/shopspring/decimal"
)

// Unit 表示一套可出租的房源
type Unit struct {
	BaseModel
	TowerID     uint            `gorm:"not null;index" json:"tower_id"`                // 所属楼栋ID
	UnitNumber  string          `gorm:"type:varchar(20);not null" json:"unit_number"`  // 房号，如"A101"
	Floor       int             `gorm:"not null" json:"floor"`                         // 所在楼层
	Bedrooms    int             `gorm:"not null" json:"bedrooms"`                      // 卧室数
	Bathrooms   int             `gorm:"not null" json:"bathrooms"`                     // 卫生间数
	AreaSqft    int             `json:"area_sqft"`                                     // 面积（平方英尺）
	RentAmount  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"rent_amount"` // 月租金
	IsAvailable bool            `gorm:"not null" json:"is_available"`                  // 是否可预订，创建时由调用方显式设置，之后仅由管理员审批变更
	Description string          `gorm:"type:text" json:"description"`

	// 关联关系
	Tower    *Tower    `gorm:"foreignKey:TowerID" json:"tower,omitempty"`   // 所属楼栋（多对一）
	Bookings []Booking `gorm:"foreignKey:UnitID" json:"bookings,omitempty"` // 房源的预订记录（一对多）
}
