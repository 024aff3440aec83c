package services

import (
	"errors"

	"apartment-rental-portal/internal/domain/models"
	"apartment-rental-portal/internal/infrastructure/config"

	"gorm.io/gorm"
)

var (
	// ErrUsernameTaken 表示用户名已被占用
	ErrUsernameTaken = errors.New("用户名已存在")
	// ErrEmailTaken 表示邮箱已被占用
	ErrEmailTaken = errors.New("邮箱已存在")
	// ErrBadCredentials 表示用户名或密码错误
	ErrBadCredentials = errors.New("用户名或密码错误")
	// ErrUserNotFound 表示用户不存在
	ErrUserNotFound = errors.New("用户不存在")
)

// InterfaceUserService 定义用户服务接口
type InterfaceUserService interface {
	Register(user *models.User) error
	VerifyCredentials(username, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
}

// UserService 提供用户注册和身份验证相关的服务
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService 创建一个新的用户服务
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// 1. Register 注册新用户，用户名和邮箱都必须唯一
func (s *UserService) Register(user *models.User) error {
	// 验证用户名唯一性
	var count int64
	if err := s.DB.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrUsernameTaken
	}

	// 验证邮箱唯一性
	if err := s.DB.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}

	// 密码哈希由模型的 BeforeCreate 钩子完成
	return s.DB.Create(user).Error
}

// 2. VerifyCredentials 校验用户名和密码，成功时返回用户记录
func (s *UserService) VerifyCredentials(username, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}

	if !models.CheckPasswordHash(password, user.Password) {
		return nil, ErrBadCredentials
	}

	return &user, nil
}

// 3. GetUserByID 根据ID获取用户
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
