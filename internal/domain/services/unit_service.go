package services

import (
	"errors"

	"apartment-rental-portal/internal/domain/models"
	"apartment-rental-portal/internal/infrastructure/config"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrUnitNotFound 表示房源不存在
var ErrUnitNotFound = errors.New("房源不存在")

// UnitInfo 房源列表项，附带冗余的楼栋名称用于展示
type UnitInfo struct {
	ID          uint            `json:"id"`
	TowerID     uint            `json:"tower_id"`
	TowerName   string          `json:"tower_name"`
	UnitNumber  string          `json:"unit_number"`
	Floor       int             `json:"floor"`
	Bedrooms    int             `json:"bedrooms"`
	Bathrooms   int             `json:"bathrooms"`
	AreaSqft    int             `json:"area_sqft"`
	RentAmount  decimal.Decimal `json:"rent_amount"`
	IsAvailable bool            `json:"is_available"`
	Description string          `json:"description"`
}

// InterfaceUnitService 定义房源服务接口
type InterfaceUnitService interface {
	GetAllUnits(availableOnly bool) ([]UnitInfo, error)
	GetUnitInfoByID(id uint) (*UnitInfo, error)
	GetUnitByID(id uint) (*models.Unit, error)
	CreateUnit(unit *models.Unit) error
	UpdateUnit(id uint, updates map[string]interface{}) (*models.Unit, error)
	DeleteUnit(id uint) error
}

// UnitService 提供房源相关的服务
type UnitService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUnitService 创建一个新的房源服务
func NewUnitService(db *gorm.DB, cfg *config.Config) InterfaceUnitService {
	return &UnitService{
		DB:     db,
		Config: cfg,
	}
}

// unitInfoFromModel 把房源模型转换为带楼栋名称的列表项
func unitInfoFromModel(u *models.Unit) UnitInfo {
	info := UnitInfo{
		ID:          u.ID,
		TowerID:     u.TowerID,
		UnitNumber:  u.UnitNumber,
		Floor:       u.Floor,
		Bedrooms:    u.Bedrooms,
		Bathrooms:   u.Bathrooms,
		AreaSqft:    u.AreaSqft,
		RentAmount:  u.RentAmount,
		IsAvailable: u.IsAvailable,
		Description: u.Description,
	}
	if u.Tower != nil {
		info.TowerName = u.Tower.Name
	}
	return info
}

// 1. GetAllUnits 获取所有房源，availableOnly 为 true 时只返回可预订的
func (s *UnitService) GetAllUnits(availableOnly bool) ([]UnitInfo, error) {
	query := s.DB.Preload("Tower").Order("id")
	if availableOnly {
		query = query.Where("is_available = ?", true)
	}

	var units []models.Unit
	if err := query.Find(&units).Error; err != nil {
		return nil, err
	}

	infos := make([]UnitInfo, 0, len(units))
	for i := range units {
		infos = append(infos, unitInfoFromModel(&units[i]))
	}
	return infos, nil
}

// 2. GetUnitInfoByID 获取单个房源详情（含楼栋名称）
func (s *UnitService) GetUnitInfoByID(id uint) (*UnitInfo, error) {
	var unit models.Unit
	if err := s.DB.Preload("Tower").First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}

	info := unitInfoFromModel(&unit)
	return &info, nil
}

// 3. GetUnitByID 根据ID获取房源
func (s *UnitService) GetUnitByID(id uint) (*models.Unit, error) {
	var unit models.Unit
	if err := s.DB.First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}
	return &unit, nil
}

// 4. CreateUnit 创建新房源，所属楼栋必须存在
func (s *UnitService) CreateUnit(unit *models.Unit) error {
	var count int64
	if err := s.DB.Model(&models.Tower{}).Where("id = ?", unit.TowerID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrTowerNotFound
	}

	return s.DB.Create(unit).Error
}

// 5. UpdateUnit 更新房源信息，只修改请求携带的字段
func (s *UnitService) UpdateUnit(id uint, updates map[string]interface{}) (*models.Unit, error) {
	unit, err := s.GetUnitByID(id)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.DB.Model(unit).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetUnitByID(id)
}

// 6. DeleteUnit 删除房源
func (s *UnitService) DeleteUnit(id uint) error {
	unit, err := s.GetUnitByID(id)
	if err != nil {
		return err
	}

	return s.DB.Delete(unit).Error
}
