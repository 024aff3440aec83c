package services

import (
	"errors"
	"testing"

	"apartment-rental-portal/internal/domain/models"
)

func TestAmenityCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAmenityService(db, testConfig())

	amenity := &models.Amenity{Name: "Swimming Pool", Description: "Open year round", IsAvailable: true}
	if err := svc.CreateAmenity(amenity); err != nil {
		t.Fatalf("create amenity: %v", err)
	}
	if amenity.Icon != "star" {
		t.Fatalf("expected default icon star, got %q", amenity.Icon)
	}

	updated, err := svc.UpdateAmenity(amenity.ID, map[string]interface{}{"is_available": false, "icon": "pool"})
	if err != nil {
		t.Fatalf("update amenity: %v", err)
	}
	if updated.IsAvailable || updated.Icon != "pool" {
		t.Fatalf("unexpected amenity after update: %+v", updated)
	}

	all, err := svc.GetAllAmenities()
	if err != nil {
		t.Fatalf("get amenities: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 amenity, got %d", len(all))
	}

	if err := svc.DeleteAmenity(amenity.ID); err != nil {
		t.Fatalf("delete amenity: %v", err)
	}
	if err := svc.DeleteAmenity(amenity.ID); !errors.Is(err, ErrAmenityNotFound) {
		t.Fatalf("expected ErrAmenityNotFound, got %v", err)
	}
}

func TestCreateAmenityPersistsUnavailableFlag(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAmenityService(db, testConfig())

	amenity := &models.Amenity{Name: "Sauna", IsAvailable: false}
	if err := svc.CreateAmenity(amenity); err != nil {
		t.Fatalf("create amenity: %v", err)
	}

	var got models.Amenity
	if err := db.First(&got, amenity.ID).Error; err != nil {
		t.Fatalf("reload amenity: %v", err)
	}
	if got.IsAvailable {
		t.Fatal("amenity created unavailable must stay unavailable after insert")
	}
}
