package services

import (
	"errors"

	"apartment-rental-portal/internal/domain/models"
	"apartment-rental-portal/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ErrTowerNotFound 表示楼栋不存在
var ErrTowerNotFound = errors.New("楼栋不存在")

// TowerInfo 楼栋列表项，附带房源数量
type TowerInfo struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Floors      int    `json:"floors"`
	Description string `json:"description"`
	UnitCount   int64  `json:"unit_count"`
}

// InterfaceTowerService 定义楼栋服务接口
type InterfaceTowerService interface {
	GetAllTowers() ([]TowerInfo, error)
	GetTowerByID(id uint) (*models.Tower, error)
	CreateTower(tower *models.Tower) error
	UpdateTower(id uint, updates map[string]interface{}) (*models.Tower, error)
	DeleteTower(id uint) error
}

// TowerService 提供楼栋相关的服务
type TowerService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewTowerService 创建一个新的楼栋服务
func NewTowerService(db *gorm.DB, cfg *config.Config) InterfaceTowerService {
	return &TowerService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllTowers 获取所有楼栋及其房源数量
func (s *TowerService) GetAllTowers() ([]TowerInfo, error) {
	var towers []models.Tower
	if err := s.DB.Order("id").Find(&towers).Error; err != nil {
		return nil, err
	}

	infos := make([]TowerInfo, 0, len(towers))
	for _, t := range towers {
		var unitCount int64
		if err := s.DB.Model(&models.Unit{}).Where("tower_id = ?", t.ID).Count(&unitCount).Error; err != nil {
			return nil, err
		}
		infos = append(infos, TowerInfo{
			ID:          t.ID,
			Name:        t.Name,
			Floors:      t.Floors,
			Description: t.Description,
			UnitCount:   unitCount,
		})
	}

	return infos, nil
}

// 2. GetTowerByID 根据ID获取楼栋
func (s *TowerService) GetTowerByID(id uint) (*models.Tower, error) {
	var tower models.Tower
	if err := s.DB.First(&tower, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTowerNotFound
		}
		return nil, err
	}
	return &tower, nil
}

// 3. CreateTower 创建新楼栋
func (s *TowerService) CreateTower(tower *models.Tower) error {
	return s.DB.Create(tower).Error
}

// 4. UpdateTower 更新楼栋信息，只修改请求携带的字段
func (s *TowerService) UpdateTower(id uint, updates map[string]interface{}) (*models.Tower, error) {
	tower, err := s.GetTowerByID(id)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.DB.Model(tower).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	// 重新获取更新后的楼栋信息
	return s.GetTowerByID(id)
}

// 5. DeleteTower 删除楼栋并级联删除其下的所有房源。
// 引用这些房源的预订记录不做处理，会成为孤儿记录
func (s *TowerService) DeleteTower(id uint) error {
	tower, err := s.GetTowerByID(id)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tower_id = ?", id).Delete(&models.Unit{}).Error; err != nil {
			return err
		}
		return tx.Delete(tower).Error
	})
}
