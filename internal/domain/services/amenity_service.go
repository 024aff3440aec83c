package services

import (
	"errors"

	"apartment-rental-portal/internal/domain/models"
	"apartment-rental-portal/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ErrAmenityNotFound 表示配套设施不存在
var ErrAmenityNotFound = errors.New("配套设施不存在")

// InterfaceAmenityService 定义配套设施服务接口
type InterfaceAmenityService interface {
	GetAllAmenities() ([]models.Amenity, error)
	GetAmenityByID(id uint) (*models.Amenity, error)
	CreateAmenity(amenity *models.Amenity) error
	UpdateAmenity(id uint, updates map[string]interface{}) (*models.Amenity, error)
	DeleteAmenity(id uint) error
}

// AmenityService 提供配套设施相关的服务
type AmenityService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAmenityService 创建一个新的配套设施服务
func NewAmenityService(db *gorm.DB, cfg *config.Config) InterfaceAmenityService {
	return &AmenityService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllAmenities 获取所有配套设施
func (s *AmenityService) GetAllAmenities() ([]models.Amenity, error) {
	var amenities []models.Amenity
	if err := s.DB.Order("id").Find(&amenities).Error; err != nil {
		return nil, err
	}
	return amenities, nil
}

// 2. GetAmenityByID 根据ID获取配套设施
func (s *AmenityService) GetAmenityByID(id uint) (*models.Amenity, error) {
	var amenity models.Amenity
	if err := s.DB.First(&amenity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAmenityNotFound
		}
		return nil, err
	}
	return &amenity, nil
}

// 3. CreateAmenity 创建新配套设施，未指定图标时默认为"star"
func (s *AmenityService) CreateAmenity(amenity *models.Amenity) error {
	if amenity.Icon == "" {
		amenity.Icon = "star"
	}
	return s.DB.Create(amenity).Error
}

// 4. UpdateAmenity 更新配套设施信息，只修改请求携带的字段
func (s *AmenityService) UpdateAmenity(id uint, updates map[string]interface{}) (*models.Amenity, error) {
	amenity, err := s.GetAmenityByID(id)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.DB.Model(amenity).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetAmenityByID(id)
}

// 5. DeleteAmenity 删除配套设施
func (s *AmenityService) DeleteAmenity(id uint) error {
	amenity, err := s.GetAmenityByID(id)
	if err != nil {
		return err
	}

	return s.DB.Delete(amenity).Error
}
