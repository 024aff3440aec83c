package routes

import (
	"time"

	_ "apartment-rental-portal/docs"
	"apartment-rental-portal/internal/app/controllers"
	"apartment-rental-portal/internal/app/middleware"
	"apartment-rental-portal/internal/domain/services"
	"apartment-rental-portal/internal/domain/services/container"
	"apartment-rental-portal/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With, X-Session-Token")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg)
	// 初始化认证中间件
	middleware.InitAuthMiddleware(serviceContainer.GetService("session").(services.InterfaceSessionService))

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)
	registerAdminRoutes(api, container)
}

// registerPublicRoutes 注册公共路由：健康检查、注册登录与目录浏览
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// IP限流 - 每秒10个请求，最多突发20个
	api.Use(middleware.IPRateLimiter(10, 20))

	// 健康检查路由
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health/status", controllers.HandleHealthFunc(container, "status"))

	// 认证路由，注册登录单独收紧限流
	authLimit := middleware.PathRateLimiter(5, 10)
	api.POST("/register", authLimit, controllers.HandleAuthFunc(container, "register"))
	api.POST("/login", authLimit, controllers.HandleAuthFunc(container, "login"))

	// 目录浏览路由，列表接口带短期缓存
	listCache := middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second})
	api.GET("/towers", listCache, controllers.HandleTowerFunc(container, "getTowers"))
	api.GET("/towers/:id", controllers.HandleTowerFunc(container, "getTower"))
	api.GET("/units", listCache, controllers.HandleUnitFunc(container, "getUnits"))
	api.GET("/units/:id", controllers.HandleUnitFunc(container, "getUnit"))
	api.GET("/amenities", listCache, controllers.HandleAmenityFunc(container, "getAmenities"))
}

// registerAuthenticatedRoutes 注册需要登录的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("/")
	auth.Use(middleware.Authentication())
	auth.Use(middleware.IPRateLimiter(30, 50))

	// 会话路由
	auth.POST("/logout", controllers.HandleAuthFunc(container, "logout"))
	auth.GET("/me", controllers.HandleAuthFunc(container, "getCurrentUser"))

	// 预订路由
	auth.GET("/bookings", controllers.HandleBookingFunc(container, "getBookings"))
	auth.POST("/bookings", controllers.HandleBookingFunc(container, "createBooking"))
}

// registerAdminRoutes 注册仅管理员可用的路由
func registerAdminRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	admin := api.Group("/")
	admin.Use(middleware.AuthenticateAdmin())
	admin.Use(middleware.IPRateLimiter(30, 50))

	// 预订审批
	admin.PATCH("/bookings/:id", controllers.HandleBookingFunc(container, "updateBooking"))

	// 楼栋管理
	admin.POST("/towers", controllers.HandleTowerFunc(container, "createTower"))
	admin.PUT("/towers/:id", controllers.HandleTowerFunc(container, "updateTower"))
	admin.DELETE("/towers/:id", controllers.HandleTowerFunc(container, "deleteTower"))

	// 单元管理
	admin.POST("/units", controllers.HandleUnitFunc(container, "createUnit"))
	admin.PUT("/units/:id", controllers.HandleUnitFunc(container, "updateUnit"))
	admin.DELETE("/units/:id", controllers.HandleUnitFunc(container, "deleteUnit"))

	// 配套设施管理
	admin.POST("/amenities", controllers.HandleAmenityFunc(container, "createAmenity"))
	admin.PUT("/amenities/:id", controllers.HandleAmenityFunc(container, "updateAmenity"))
	admin.DELETE("/amenities/:id", controllers.HandleAmenityFunc(container, "deleteAmenity"))

	// 管理报表
	admin.GET("/reports/occupancy", controllers.HandleReportFunc(container, "getOccupancyReport"))
	admin.GET("/reports/bookings", controllers.HandleReportFunc(container, "getBookingReport"))
}
