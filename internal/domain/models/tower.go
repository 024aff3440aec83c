package models

// Tower 表示一栋楼，楼下挂若干房源
type Tower struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null" json:"name"` // 楼栋名称，如"Tower A"
	Floors      int    `gorm:"not null" json:"floors"`                 // 楼层数
	Description string `gorm:"type:text" json:"description"`

	// 关联关系
	Units []Unit `gorm:"foreignKey:TowerID" json:"units,omitempty"` // 楼栋下的房源（一对多），删除楼栋时级联删除
}
