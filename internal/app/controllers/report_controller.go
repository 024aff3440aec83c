package controllers

import (
	"apartment-rental-portal/internal/domain/services"
	"apartment-rental-portal/internal/domain/services/container"
	"apartment-rental-portal/internal/error/code"
	"apartment-rental-portal/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceReportController 定义报表控制器接口
type InterfaceReportController interface {
	GetOccupancyReport()
	GetBookingReport()
}

// ReportController 处理管理报表相关的请求
type ReportController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewReportController 创建一个新的报表控制器
func NewReportController(ctx *gin.Context, container *container.ServiceContainer) *ReportController {
	return &ReportController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleReportFunc 返回一个处理报表请求的Gin处理函数
func HandleReportFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewReportController(ctx, container)

		switch method {
		case "getOccupancyReport":
			controller.GetOccupancyReport()
		case "getBookingReport":
			controller.GetBookingReport()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetOccupancyReport 获取入住率报表
// @Summary 获取入住率报表
// @Description 统计单元总数、已租数、可租数及入住率（仅管理员）
// @Tags Report
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/occupancy [get]
func (c *ReportController) GetOccupancyReport() {
	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	report, err := reportService.GetOccupancyReport()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "生成入住率报表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, report)
}

// 2. GetBookingReport 获取预订统计报表
// @Summary 获取预订统计报表
// @Description 按状态统计预订数量（仅管理员）
// @Tags Report
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/bookings [get]
func (c *ReportController) GetBookingReport() {
	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	report, err := reportService.GetBookingReport()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "生成预订统计报表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, report)
}
