package services

import (
	"errors"
	"testing"

	"apartment-rental-portal/internal/domain/models"

	"github.com/shopspring/decimal"
)

func TestTowerCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTowerService(db, testConfig())

	tower := &models.Tower{Name: "Tower A", Floors: 10, Description: "East wing"}
	if err := svc.CreateTower(tower); err != nil {
		t.Fatalf("create tower: %v", err)
	}

	updated, err := svc.UpdateTower(tower.ID, map[string]interface{}{"floors": 12})
	if err != nil {
		t.Fatalf("update tower: %v", err)
	}
	if updated.Floors != 12 {
		t.Fatalf("expected 12 floors, got %d", updated.Floors)
	}

	if _, err := svc.UpdateTower(9999, map[string]interface{}{"floors": 1}); !errors.Is(err, ErrTowerNotFound) {
		t.Fatalf("expected ErrTowerNotFound, got %v", err)
	}
	if _, err := svc.GetTowerByID(9999); !errors.Is(err, ErrTowerNotFound) {
		t.Fatalf("expected ErrTowerNotFound, got %v", err)
	}
}

func TestGetAllTowersReportsUnitCount(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTowerService(db, testConfig())

	tower := &models.Tower{Name: "Tower A", Floors: 10}
	if err := svc.CreateTower(tower); err != nil {
		t.Fatalf("create tower: %v", err)
	}
	for _, number := range []string{"A101", "A102"} {
		unit := &models.Unit{TowerID: tower.ID, UnitNumber: number, Floor: 1, Bedrooms: 1, Bathrooms: 1, RentAmount: decimal.NewFromInt(1500), IsAvailable: true}
		if err := db.Create(unit).Error; err != nil {
			t.Fatalf("seed unit: %v", err)
		}
	}

	towers, err := svc.GetAllTowers()
	if err != nil {
		t.Fatalf("get all towers: %v", err)
	}
	if len(towers) != 1 {
		t.Fatalf("expected 1 tower, got %d", len(towers))
	}
	if towers[0].UnitCount != 2 {
		t.Fatalf("expected unit count 2, got %d", towers[0].UnitCount)
	}
}

func TestDeleteTowerCascadesUnits(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTowerService(db, testConfig())

	tower := &models.Tower{Name: "Tower A", Floors: 10}
	if err := svc.CreateTower(tower); err != nil {
		t.Fatalf("create tower: %v", err)
	}
	unit := &models.Unit{TowerID: tower.ID, UnitNumber: "A101", Floor: 1, Bedrooms: 1, Bathrooms: 1, RentAmount: decimal.NewFromInt(1500), IsAvailable: true}
	if err := db.Create(unit).Error; err != nil {
		t.Fatalf("seed unit: %v", err)
	}

	if err := svc.DeleteTower(tower.ID); err != nil {
		t.Fatalf("delete tower: %v", err)
	}

	var towerCount, unitCount int64
	db.Model(&models.Tower{}).Count(&towerCount)
	db.Model(&models.Unit{}).Count(&unitCount)
	if towerCount != 0 {
		t.Fatalf("expected tower removed, found %d", towerCount)
	}
	if unitCount != 0 {
		t.Fatalf("expected units removed with tower, found %d", unitCount)
	}

	if err := svc.DeleteTower(9999); !errors.Is(err, ErrTowerNotFound) {
		t.Fatalf("expected ErrTowerNotFound, got %v", err)
	}
}
