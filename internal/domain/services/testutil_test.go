package services

import (
	"path/filepath"
	"testing"

	"apartment-rental-portal/internal/domain/models"
	"apartment-rental-portal/internal/infrastructure/config"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 在临时目录中建立一个迁移完成的SQLite数据库
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Tower{},
		&models.Unit{},
		&models.Amenity{},
		&models.Booking{},
		&models.Lease{},
		&models.Payment{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func testConfig() *config.Config {
	return &config.Config{}
}
