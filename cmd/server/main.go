// @title           Apartment Rental Portal API
// @version         1.0
// @description     公寓租赁门户服务，提供用户注册登录、房源目录、预订审批与管理报表

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"apartment-rental-portal/internal/app/routes"
	"apartment-rental-portal/internal/domain/models"
	"apartment-rental-portal/internal/infrastructure/config"
	"apartment-rental-portal/internal/infrastructure/database"
	Logger "apartment-rental-portal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	// 初始化日志配置
	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}

	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		Logger.Warning("无法加载.env文件: %v", err)
		// 即使加载失败也继续执行，环境变量可能已通过其他方式设置
	} else {
		Logger.Info("成功加载.env文件")
	}

	cfg := config.GetConfig()

	// 创建数据库连接池
	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("无法创建数据库连接池: %v", err)
	}
	db := pool.GetDB()

	// 根据配置执行不同的数据库迁移
	if cfg.DBMigrationMode == "drop" {
		log.Println("警告: 在drop模式下运行，将删除并重建所有表")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("删除并重建表失败: %v", err)
		}
	} else {
		log.Println("在标准模式下运行，将只添加新列和新表")
		if err := autoMigrate(db); err != nil {
			log.Fatalf("自动迁移失败: %v", err)
		}
	}

	// 确保系统中有管理员账户
	ensureAdminExists(db, cfg)

	// 按需写入示例数据
	if cfg.DBSeedData {
		seedSampleData(db)
	}

	r := routes.SetupRouter(db, cfg)

	port := cfg.ServerPort

	printSystemInfo(pool)

	Logger.Info("服务器启动在: http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("启动服务器失败: %v", err)
		os.Exit(1)
	}
}

// autoMigrate 自动迁移所有模型（只添加新列和新表）
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Tower{},
		&models.Unit{},
		&models.Amenity{},
		&models.Booking{},
		&models.Lease{},
		&models.Payment{},
	)

	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// dropAndRecreateTables 删除并重建所有表
func dropAndRecreateTables(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get DB connection: %w", err)
	}

	// 禁用外键约束检查
	if _, err = sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 0"); err != nil {
		log.Printf("禁用外键约束检查失败: %v", err)
	}
	defer sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 1")

	tables := []string{
		"payments", "leases", "bookings", "units", "towers", "amenities", "users",
	}

	for _, table := range tables {
		log.Printf("删除表: %s", table)
		if _, err := sqlDB.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
			log.Printf("删除表失败: %v", err)
		}
	}

	return autoMigrate(db)
}

// ensureAdminExists 确保系统中有管理员账户
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.User{}).Where("is_admin = ?", true).Count(&count)

	if count == 0 {
		admin := models.User{
			Username: "admin",
			Email:    "admin@rental.local",
			Password: cfg.DefaultAdminPassword,
			FullName: "System Administrator",
			IsAdmin:  true,
		}

		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("创建默认管理员失败: %v", err)
		}

		log.Println("已创建默认管理员账户")
	}
}

// seedSampleData 写入示例楼栋、单元与配套设施，仅在空库时执行
func seedSampleData(db *gorm.DB) {
	var towerCount int64
	db.Model(&models.Tower{}).Count(&towerCount)
	if towerCount > 0 {
		return
	}

	log.Println("写入示例数据")

	towerA := models.Tower{Name: "Tower A", Floors: 10, Description: "East wing tower"}
	towerB := models.Tower{Name: "Tower B", Floors: 15, Description: "West wing tower"}
	if err := db.Create(&towerA).Error; err != nil {
		log.Printf("写入示例楼栋失败: %v", err)
		return
	}
	if err := db.Create(&towerB).Error; err != nil {
		log.Printf("写入示例楼栋失败: %v", err)
		return
	}

	units := []models.Unit{
		{TowerID: towerA.ID, UnitNumber: "A101", Floor: 1, Bedrooms: 2, Bathrooms: 1, AreaSqft: 850, RentAmount: decimal.NewFromFloat(2000.00), IsAvailable: true},
		{TowerID: towerA.ID, UnitNumber: "A201", Floor: 2, Bedrooms: 3, Bathrooms: 2, AreaSqft: 1100, RentAmount: decimal.NewFromFloat(2800.00), IsAvailable: true},
		{TowerID: towerB.ID, UnitNumber: "B101", Floor: 1, Bedrooms: 1, Bathrooms: 1, AreaSqft: 600, RentAmount: decimal.NewFromFloat(1500.00), IsAvailable: true},
		{TowerID: towerB.ID, UnitNumber: "B301", Floor: 3, Bedrooms: 2, Bathrooms: 2, AreaSqft: 950, RentAmount: decimal.NewFromFloat(2300.00), IsAvailable: true},
	}
	for i := range units {
		if err := db.Create(&units[i]).Error; err != nil {
			log.Printf("写入示例单元失败: %v", err)
		}
	}

	amenities := []models.Amenity{
		{Name: "Swimming Pool", Description: "Olympic-size pool open year round", IsAvailable: true, Icon: "pool"},
		{Name: "Gym", Description: "24-hour fitness center", IsAvailable: true, Icon: "fitness"},
		{Name: "Parking", Description: "Covered parking garage", IsAvailable: true, Icon: "parking"},
		{Name: "Clubhouse", Description: "Community clubhouse with lounge", IsAvailable: true, Icon: "club"},
	}
	for i := range amenities {
		if err := db.Create(&amenities[i]).Error; err != nil {
			log.Printf("写入示例配套设施失败: %v", err)
		}
	}
}

// printSystemInfo 打印系统信息
func printSystemInfo(pool *database.ConnectionPool) {
	stats, err := pool.Stats()
	if err == nil {
		log.Printf("数据库连接池状态: %+v", stats)
	}

	log.Printf("系统CPU核心数: %d", runtime.NumCPU())
	log.Printf("当前Go协程数: %d", runtime.NumGoroutine())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("系统内存使用: Alloc=%v MiB, TotalAlloc=%v MiB, Sys=%v MiB",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024)

	log.Printf("启动时间: %s", time.Now().Format(time.RFC3339))
}
