package services

import (
	"errors"
	"testing"
	"time"

	"apartment-rental-portal/internal/domain/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func seedUnit(t *testing.T, db *gorm.DB, available bool) *models.Unit {
	t.Helper()

	tower := &models.Tower{Name: "Tower A", Floors: 10}
	if err := db.Create(tower).Error; err != nil {
		t.Fatalf("seed tower: %v", err)
	}

	unit := &models.Unit{
		TowerID:     tower.ID,
		UnitNumber:  "A101",
		Floor:       1,
		Bedrooms:    2,
		Bathrooms:   1,
		AreaSqft:    850,
		RentAmount:  decimal.NewFromFloat(2000.00),
		IsAvailable: available,
	}
	if err := db.Create(unit).Error; err != nil {
		t.Fatalf("seed unit: %v", err)
	}
	return unit
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{Username: username, Email: username + "@example.com", Password: "secret123"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func strPtr(s string) *string { return &s }

func TestCreateBookingStaysPendingAndKeepsUnitAvailable(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db, testConfig())

	unit := seedUnit(t, db, true)
	user := seedUser(t, db, "tenant")

	moveIn, _ := time.Parse("2006-01-02", "2025-10-01")
	booking, err := svc.CreateBooking(user.ID, unit.ID, moveIn, "early move-in preferred")
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if booking.Status != models.BookingStatusPending {
		t.Fatalf("expected pending status, got %s", booking.Status)
	}

	// 提交申请不应改变单元的可租状态
	var got models.Unit
	if err := db.First(&got, unit.ID).Error; err != nil {
		t.Fatalf("reload unit: %v", err)
	}
	if !got.IsAvailable {
		t.Fatal("creating a pending booking must not mark the unit unavailable")
	}
}

func TestCreateBookingRejectsUnavailableUnit(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db, testConfig())

	unit := seedUnit(t, db, false)
	user := seedUser(t, db, "tenant")

	moveIn, _ := time.Parse("2006-01-02", "2025-10-01")
	if _, err := svc.CreateBooking(user.ID, unit.ID, moveIn, ""); !errors.Is(err, ErrUnitUnavailable) {
		t.Fatalf("expected ErrUnitUnavailable, got %v", err)
	}

	// 不存在的单元同样拒绝
	if _, err := svc.CreateBooking(user.ID, 9999, moveIn, ""); !errors.Is(err, ErrUnitUnavailable) {
		t.Fatalf("expected ErrUnitUnavailable for missing unit, got %v", err)
	}
}

func TestUpdateBookingSyncsUnitAvailability(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db, testConfig())

	unit := seedUnit(t, db, true)
	user := seedUser(t, db, "tenant")

	moveIn, _ := time.Parse("2006-01-02", "2025-10-01")
	booking, err := svc.CreateBooking(user.ID, unit.ID, moveIn, "")
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	// 审批通过后单元置为不可租
	updated, err := svc.UpdateBooking(booking.ID, strPtr(models.BookingStatusApproved), strPtr("documents verified"))
	if err != nil {
		t.Fatalf("approve booking: %v", err)
	}
	if updated.Status != models.BookingStatusApproved {
		t.Fatalf("expected approved, got %s", updated.Status)
	}
	if updated.AdminNotes != "documents verified" {
		t.Fatalf("expected admin notes to be stored, got %q", updated.AdminNotes)
	}

	var got models.Unit
	if err := db.First(&got, unit.ID).Error; err != nil {
		t.Fatalf("reload unit: %v", err)
	}
	if got.IsAvailable {
		t.Fatal("approved booking must mark the unit unavailable")
	}

	// 拒绝同一单元的另一笔申请会把单元重新置为可租
	second, err := svc.CreateBooking(user.ID, unit.ID, moveIn, "")
	if !errors.Is(err, ErrUnitUnavailable) {
		// 单元此时不可租，创建应失败；直接落库构造第二笔申请
		t.Fatalf("expected ErrUnitUnavailable, got %v (booking=%v)", err, second)
	}
	raw := &models.Booking{UserID: user.ID, UnitID: unit.ID, MoveInDate: moveIn, Status: models.BookingStatusPending}
	if err := db.Create(raw).Error; err != nil {
		t.Fatalf("seed second booking: %v", err)
	}

	if _, err := svc.UpdateBooking(raw.ID, strPtr(models.BookingStatusDeclined), nil); err != nil {
		t.Fatalf("decline booking: %v", err)
	}
	if err := db.First(&got, unit.ID).Error; err != nil {
		t.Fatalf("reload unit: %v", err)
	}
	if !got.IsAvailable {
		t.Fatal("declined booking must release the unit")
	}
}

func TestUpdateBookingValidatesStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db, testConfig())

	unit := seedUnit(t, db, true)
	user := seedUser(t, db, "tenant")

	moveIn, _ := time.Parse("2006-01-02", "2025-10-01")
	booking, err := svc.CreateBooking(user.ID, unit.ID, moveIn, "")
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	// 不允许回退到 pending，也不允许任意状态
	if _, err := svc.UpdateBooking(booking.ID, strPtr("pending"), nil); !errors.Is(err, ErrInvalidBookingStatus) {
		t.Fatalf("expected ErrInvalidBookingStatus for pending, got %v", err)
	}
	if _, err := svc.UpdateBooking(booking.ID, strPtr("cancelled"), nil); !errors.Is(err, ErrInvalidBookingStatus) {
		t.Fatalf("expected ErrInvalidBookingStatus for cancelled, got %v", err)
	}

	if _, err := svc.UpdateBooking(9999, strPtr(models.BookingStatusApproved), nil); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestUpdateBookingWithoutStatusOnlySetsNotes(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db, testConfig())

	unit := seedUnit(t, db, true)
	user := seedUser(t, db, "tenant")

	moveIn, _ := time.Parse("2006-01-02", "2025-10-01")
	booking, err := svc.CreateBooking(user.ID, unit.ID, moveIn, "")
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	updated, err := svc.UpdateBooking(booking.ID, nil, strPtr("pending review"))
	if err != nil {
		t.Fatalf("notes-only update: %v", err)
	}
	if updated.Status != models.BookingStatusPending {
		t.Fatalf("status must stay pending, got %s", updated.Status)
	}
	if updated.AdminNotes != "pending review" {
		t.Fatalf("expected notes stored, got %q", updated.AdminNotes)
	}

	// 未做出审批决定时不得触碰房源可租状态
	var got models.Unit
	if err := db.First(&got, unit.ID).Error; err != nil {
		t.Fatalf("reload unit: %v", err)
	}
	if !got.IsAvailable {
		t.Fatal("notes-only update must not change unit availability")
	}
}

func TestGetUserBookingsFiltersByUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db, testConfig())

	unit := seedUnit(t, db, true)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	moveIn, _ := time.Parse("2006-01-02", "2025-10-01")
	if _, err := svc.CreateBooking(alice.ID, unit.ID, moveIn, ""); err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if _, err := svc.CreateBooking(bob.ID, unit.ID, moveIn, ""); err != nil {
		t.Fatalf("create booking: %v", err)
	}

	all, err := svc.GetAllBookings()
	if err != nil {
		t.Fatalf("get all bookings: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(all))
	}
	if all[0].TowerName != "Tower A" || all[0].UnitNumber != "A101" {
		t.Fatalf("expected tower/unit names resolved, got %+v", all[0])
	}

	mine, err := svc.GetUserBookings(alice.ID)
	if err != nil {
		t.Fatalf("get user bookings: %v", err)
	}
	if len(mine) != 1 || mine[0].Username != "alice" {
		t.Fatalf("expected only alice's booking, got %+v", mine)
	}
	if mine[0].MoveInDate != "2025-10-01" {
		t.Fatalf("expected move-in date 2025-10-01, got %s", mine[0].MoveInDate)
	}
}
