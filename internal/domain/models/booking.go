package models

import "time"

// 预订状态：pending 为初始状态，只能由管理员改为 approved 或 declined，
// 没有任何操作会把状态改回 pending
const (
	BookingStatusPending  = "pending"
	BookingStatusApproved = "approved"
	BookingStatusDeclined = "declined"
)

// Booking 表示用户对某套房源的预订申请
type Booking struct {
	BaseModel
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	UnitID     uint      `gorm:"not null;index" json:"unit_id"`
	MoveInDate time.Time `gorm:"type:date;not null" json:"move_in_date"`                       // 期望入住日期
	Status     string    `gorm:"type:varchar(20);default:'pending'" json:"status"`             // pending, approved, declined
	Notes      string    `gorm:"type:text" json:"notes"`                                       // 用户备注
	AdminNotes string    `gorm:"column:admin_notes;type:text" json:"admin_notes"`              // 管理员审批备注

	// 关联关系
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"` // 提交预订的用户（多对一）
	Unit *Unit `gorm:"foreignKey:UnitID" json:"unit,omitempty"` // 预订的房源（多对一）
}
