package services

import (
	"errors"
	"time"

	"apartment-rental-portal/internal/domain/models"
	"apartment-rental-portal/internal/infrastructure/config"

	"gorm.io/gorm"
)

var (
	// ErrUnitUnavailable 表示房源不存在或当前不可预订
	ErrUnitUnavailable = errors.New("房源当前不可预订")
	// ErrBookingNotFound 表示预订记录不存在
	ErrBookingNotFound = errors.New("预订记录不存在")
	// ErrInvalidBookingStatus 表示审批状态不合法，只接受 approved 和 declined
	ErrInvalidBookingStatus = errors.New("预订状态不合法")
)

// BookingInfo 预订列表项，附带冗余的用户名、房号和楼栋名称用于展示
type BookingInfo struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
	UnitID      uint   `json:"unit_id"`
	UnitNumber  string `json:"unit_number"`
	TowerName   string `json:"tower_name"`
	BookingDate string `json:"booking_date"`
	MoveInDate  string `json:"move_in_date"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
	AdminNotes  string `json:"admin_notes"`
}

// InterfaceBookingService 定义预订服务接口
type InterfaceBookingService interface {
	CreateBooking(userID, unitID uint, moveInDate time.Time, notes string) (*models.Booking, error)
	GetAllBookings() ([]BookingInfo, error)
	GetUserBookings(userID uint) ([]BookingInfo, error)
	UpdateBooking(id uint, status, adminNotes *string) (*models.Booking, error)
}

// BookingService 提供预订申请和审批相关的服务
type BookingService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewBookingService 创建一个新的预订服务
func NewBookingService(db *gorm.DB, cfg *config.Config) InterfaceBookingService {
	return &BookingService{
		DB:     db,
		Config: cfg,
	}
}

// 1. CreateBooking 提交预订申请。房源不存在或不可预订时拒绝；
// 成功时写入 pending 状态的预订记录。申请阶段不改变房源的可预订标记，
// 同一房源可以同时存在多条 pending 预订，冲突在管理员审批时才显现
func (s *BookingService) CreateBooking(userID, unitID uint, moveInDate time.Time, notes string) (*models.Booking, error) {
	var unit models.Unit
	if err := s.DB.First(&unit, unitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnitUnavailable
		}
		return nil, err
	}
	if !unit.IsAvailable {
		return nil, ErrUnitUnavailable
	}

	booking := &models.Booking{
		UserID:     userID,
		UnitID:     unitID,
		MoveInDate: moveInDate,
		Status:     models.BookingStatusPending,
		Notes:      notes,
	}

	if err := s.DB.Create(booking).Error; err != nil {
		return nil, err
	}

	return booking, nil
}

// bookingInfoFromModel 把预订模型转换为带展示字段的列表项
func bookingInfoFromModel(b *models.Booking) BookingInfo {
	info := BookingInfo{
		ID:          b.ID,
		UserID:      b.UserID,
		UnitID:      b.UnitID,
		BookingDate: b.CreatedAt.Format(time.RFC3339),
		MoveInDate:  b.MoveInDate.Format("2006-01-02"),
		Status:      b.Status,
		Notes:       b.Notes,
		AdminNotes:  b.AdminNotes,
	}
	if b.User != nil {
		info.Username = b.User.Username
	}
	if b.Unit != nil {
		info.UnitNumber = b.Unit.UnitNumber
		if b.Unit.Tower != nil {
			info.TowerName = b.Unit.Tower.Name
		}
	}
	return info
}

// listBookings 按条件查询预订并填充展示字段
func (s *BookingService) listBookings(conds ...interface{}) ([]BookingInfo, error) {
	var bookings []models.Booking
	query := s.DB.Preload("User").Preload("Unit").Preload("Unit.Tower").Order("id")
	if err := query.Find(&bookings, conds...).Error; err != nil {
		return nil, err
	}

	infos := make([]BookingInfo, 0, len(bookings))
	for i := range bookings {
		infos = append(infos, bookingInfoFromModel(&bookings[i]))
	}
	return infos, nil
}

// 2. GetAllBookings 获取全部预订记录（管理员视角），不分页
func (s *BookingService) GetAllBookings() ([]BookingInfo, error) {
	return s.listBookings()
}

// 3. GetUserBookings 获取某个用户自己的预订记录
func (s *BookingService) GetUserBookings(userID uint) ([]BookingInfo, error) {
	return s.listBookings("user_id = ?", userID)
}

// 4. UpdateBooking 管理员审批预订。approved 把房源置为不可预订，
// declined 把房源置回可预订。审批只看当前这条预订，不校验同一房源
// 是否已被其他预订占用
func (s *BookingService) UpdateBooking(id uint, status, adminNotes *string) (*models.Booking, error) {
	if status != nil && *status != models.BookingStatusApproved && *status != models.BookingStatusDeclined {
		return nil, ErrInvalidBookingStatus
	}

	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if status != nil {
			booking.Status = *status

			available := *status == models.BookingStatusDeclined
			if err := tx.Model(&models.Unit{}).Where("id = ?", booking.UnitID).
				Update("is_available", available).Error; err != nil {
				return err
			}
		}

		if adminNotes != nil {
			booking.AdminNotes = *adminNotes
		}

		return tx.Save(&booking).Error
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}
