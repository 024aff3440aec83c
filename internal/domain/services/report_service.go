package services

import (
	"math"

	"apartment-rental-portal/internal/domain/models"
	"apartment-rental-portal/internal/infrastructure/config"

	"gorm.io/gorm"
)

// OccupancyReport 房源入住率报表
type OccupancyReport struct {
	TotalUnits     int64   `json:"total_units"`
	OccupiedUnits  int64   `json:"occupied_units"`
	AvailableUnits int64   `json:"available_units"`
	OccupancyRate  float64 `json:"occupancy_rate"`
}

// BookingReport 预订状态分布报表
type BookingReport struct {
	TotalBookings int64 `json:"total_bookings"`
	Pending       int64 `json:"pending"`
	Approved      int64 `json:"approved"`
	Declined      int64 `json:"declined"`
}

// InterfaceReportService 定义报表服务接口
type InterfaceReportService interface {
	GetOccupancyReport() (*OccupancyReport, error)
	GetBookingReport() (*BookingReport, error)
}

// ReportService 提供只读的统计报表
type ReportService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewReportService 创建一个新的报表服务
func NewReportService(db *gorm.DB, cfg *config.Config) InterfaceReportService {
	return &ReportService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetOccupancyReport 统计入住率。没有房源时入住率为0，不报错
func (s *ReportService) GetOccupancyReport() (*OccupancyReport, error) {
	var total, occupied int64

	if err := s.DB.Model(&models.Unit{}).Count(&total).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Unit{}).Where("is_available = ?", false).Count(&occupied).Error; err != nil {
		return nil, err
	}

	var rate float64
	if total > 0 {
		rate = float64(occupied) / float64(total) * 100
		// 保留两位小数
		rate = math.Round(rate*100) / 100
	}

	return &OccupancyReport{
		TotalUnits:     total,
		OccupiedUnits:  occupied,
		AvailableUnits: total - occupied,
		OccupancyRate:  rate,
	}, nil
}

// 2. GetBookingReport 按状态统计预订数量
func (s *ReportService) GetBookingReport() (*BookingReport, error) {
	report := &BookingReport{}

	if err := s.DB.Model(&models.Booking{}).Count(&report.TotalBookings).Error; err != nil {
		return nil, err
	}

	statusCounts := []struct {
		status string
		dest   *int64
	}{
		{models.BookingStatusPending, &report.Pending},
		{models.BookingStatusApproved, &report.Approved},
		{models.BookingStatusDeclined, &report.Declined},
	}
	for _, sc := range statusCounts {
		if err := s.DB.Model(&models.Booking{}).Where("status = ?", sc.status).Count(sc.dest).Error; err != nil {
			return nil, err
		}
	}

	return report, nil
}
