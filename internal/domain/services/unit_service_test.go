package services

import (
	"errors"
	"testing"

	"apartment-rental-portal/internal/domain/models"

	"github.com/shopspring/decimal"
)

func TestGetAllUnitsAvailableFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUnitService(db, testConfig())

	tower := &models.Tower{Name: "Tower A", Floors: 10}
	if err := db.Create(tower).Error; err != nil {
		t.Fatalf("seed tower: %v", err)
	}

	units := []models.Unit{
		{TowerID: tower.ID, UnitNumber: "A101", Floor: 1, Bedrooms: 2, Bathrooms: 1, RentAmount: decimal.NewFromInt(2000), IsAvailable: true},
		{TowerID: tower.ID, UnitNumber: "A102", Floor: 1, Bedrooms: 1, Bathrooms: 1, RentAmount: decimal.NewFromInt(1500), IsAvailable: false},
	}
	for i := range units {
		if err := db.Create(&units[i]).Error; err != nil {
			t.Fatalf("seed unit: %v", err)
		}
	}

	all, err := svc.GetAllUnits(false)
	if err != nil {
		t.Fatalf("get all units: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 units, got %d", len(all))
	}
	if all[0].TowerName != "Tower A" {
		t.Fatalf("expected tower name resolved, got %q", all[0].TowerName)
	}

	available, err := svc.GetAllUnits(true)
	if err != nil {
		t.Fatalf("get available units: %v", err)
	}
	if len(available) != 1 || available[0].UnitNumber != "A101" {
		t.Fatalf("expected only A101, got %+v", available)
	}
}

func TestCreateUnitRequiresTower(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUnitService(db, testConfig())

	unit := &models.Unit{TowerID: 9999, UnitNumber: "X101", Floor: 1, Bedrooms: 1, Bathrooms: 1, RentAmount: decimal.NewFromInt(1000), IsAvailable: true}
	if err := svc.CreateUnit(unit); !errors.Is(err, ErrTowerNotFound) {
		t.Fatalf("expected ErrTowerNotFound, got %v", err)
	}

	tower := &models.Tower{Name: "Tower A", Floors: 10}
	if err := db.Create(tower).Error; err != nil {
		t.Fatalf("seed tower: %v", err)
	}
	unit.TowerID = tower.ID
	if err := svc.CreateUnit(unit); err != nil {
		t.Fatalf("create unit: %v", err)
	}
}

func TestCreateUnitPersistsUnavailableFlag(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUnitService(db, testConfig())

	tower := &models.Tower{Name: "Tower A", Floors: 10}
	if err := db.Create(tower).Error; err != nil {
		t.Fatalf("seed tower: %v", err)
	}

	unit := &models.Unit{TowerID: tower.ID, UnitNumber: "A101", Floor: 1, Bedrooms: 1, Bathrooms: 1, RentAmount: decimal.NewFromInt(2000), IsAvailable: false}
	if err := svc.CreateUnit(unit); err != nil {
		t.Fatalf("create unit: %v", err)
	}

	// 落库后重新读取，false不能被吞掉变成true
	var got models.Unit
	if err := db.First(&got, unit.ID).Error; err != nil {
		t.Fatalf("reload unit: %v", err)
	}
	if got.IsAvailable {
		t.Fatal("unit created unavailable must stay unavailable after insert")
	}
}

func TestUpdateUnitAvailability(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUnitService(db, testConfig())

	tower := &models.Tower{Name: "Tower A", Floors: 10}
	if err := db.Create(tower).Error; err != nil {
		t.Fatalf("seed tower: %v", err)
	}
	unit := &models.Unit{TowerID: tower.ID, UnitNumber: "A101", Floor: 1, Bedrooms: 1, Bathrooms: 1, RentAmount: decimal.NewFromInt(2000), IsAvailable: true}
	if err := db.Create(unit).Error; err != nil {
		t.Fatalf("seed unit: %v", err)
	}

	updated, err := svc.UpdateUnit(unit.ID, map[string]interface{}{"is_available": false, "rent_amount": decimal.NewFromInt(2200)})
	if err != nil {
		t.Fatalf("update unit: %v", err)
	}
	if updated.IsAvailable {
		t.Fatal("expected unit to be unavailable after update")
	}
	if !updated.RentAmount.Equal(decimal.NewFromInt(2200)) {
		t.Fatalf("expected rent 2200, got %s", updated.RentAmount)
	}

	if _, err := svc.UpdateUnit(9999, map[string]interface{}{"floor": 2}); !errors.Is(err, ErrUnitNotFound) {
		t.Fatalf("expected ErrUnitNotFound, got %v", err)
	}

	if err := svc.DeleteUnit(unit.ID); err != nil {
		t.Fatalf("delete unit: %v", err)
	}
	if _, err := svc.GetUnitInfoByID(unit.ID); !errors.Is(err, ErrUnitNotFound) {
		t.Fatalf("expected ErrUnitNotFound after delete, got %v", err)
	}
}
