package models

import (
	"gorm.io/gorm"
)

// User 表示注册用户，IsAdmin 标记管理员
type User struct {
	BaseModel
	Username string `gorm:"type:varchar(80);unique;not null" json:"username"`
	Email    string `gorm:"type:varchar(120);unique;not null" json:"email"`
	Password string `gorm:"column:password_hash;type:varchar(255);not null" json:"-"` // 不在JSON中暴露密码
	FullName string `gorm:"type:varchar(120)" json:"full_name"`
	Phone    string `gorm:"type:varchar(20)" json:"phone"`
	IsAdmin  bool   `gorm:"default:false" json:"is_admin"`

	// 关联关系
	Bookings []Booking `gorm:"foreignKey:UserID" json:"bookings,omitempty"` // 用户提交的预订（一对多）
}

// BeforeSave 是一个GORM钩子，在保存记录前运行。
// GORM在插入时也会先触发BeforeSave，所以创建和更新都经过这里，
// 已经是bcrypt哈希（60字符）的密码不会被二次哈希
func (u *User) BeforeSave(tx *gorm.DB) error {
	// 如果提供了密码且不是已哈希的，对其进行哈希处理
	if u.Password != "" && len(u.Password) < 60 {
		hashedPassword, err := HashPassword(u.Password)
		if err != nil {
			return err
		}
		u.Password = hashedPassword
	}
	return nil
}
