package models

// Amenity 表示小区配套设施，独立于楼栋和房源
type Amenity struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	IsAvailable bool   `gorm:"not null" json:"is_available"`
	Icon        string `gorm:"type:varchar(50)" json:"icon"` // 前端展示的图标名，如"droplet"
}
