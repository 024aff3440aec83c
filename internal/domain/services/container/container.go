package container

import (
	"sync"

	"apartment-rental-portal/internal/domain/services"
	"apartment-rental-portal/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// 基础服务
	sessionService services.InterfaceSessionService

	// 业务服务
	userService    services.InterfaceUserService
	towerService   services.InterfaceTowerService
	unitService    services.InterfaceUnitService
	amenityService services.InterfaceAmenityService
	bookingService services.InterfaceBookingService
	reportService  services.InterfaceReportService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化会话服务，Redis不可用时内部自动降级为进程内存储
	c.sessionService = services.NewSessionService(c.config)

	// 初始化业务服务
	c.userService = services.NewUserService(c.db, c.config)
	c.towerService = services.NewTowerService(c.db, c.config)
	c.unitService = services.NewUnitService(c.db, c.config)
	c.amenityService = services.NewAmenityService(c.db, c.config)
	c.bookingService = services.NewBookingService(c.db, c.config)
	c.reportService = services.NewReportService(c.db, c.config)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "session":
		return c.sessionService
	case "user":
		return c.userService
	case "tower":
		return c.towerService
	case "unit":
		return c.unitService
	case "amenity":
		return c.amenityService
	case "booking":
		return c.bookingService
	case "report":
		return c.reportService
	default:
		return nil
	}
}

// SetSessionService 替换会话服务，供测试注入进程内实现
func (c *ServiceContainer) SetSessionService(s services.InterfaceSessionService) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessionService = s
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
