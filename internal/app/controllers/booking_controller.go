package controllers

import (
	"errors"
	"strconv"
	"time"

	"apartment-rental-portal/internal/app/middleware"
	"apartment-rental-portal/internal/domain/services"
	"apartment-rental-portal/internal/domain/services/container"
	"apartment-rental-portal/internal/error/code"
	"apartment-rental-portal/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceBookingController 定义预订控制器接口
type InterfaceBookingController interface {
	GetBookings()
	CreateBooking()
	UpdateBooking()
}

// BookingController 处理预订相关的请求
type BookingController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewBookingController 创建一个新的预订控制器
func NewBookingController(ctx *gin.Context, container *container.ServiceContainer) *BookingController {
	return &BookingController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateBookingRequest 表示创建预订请求
type CreateBookingRequest struct {
	UnitID     uint   `json:"unit_id" binding:"required" example:"1"`
	MoveInDate string `json:"move_in_date" binding:"required" example:"2025-10-01"`
	Notes      string `json:"notes" example:"希望月初入住"`
}

// UpdateBookingRequest 表示审批预订请求，两个字段均可选：
// 只带admin_notes时仅补充备注，不改变预订状态
type UpdateBookingRequest struct {
	Status     *string `json:"status" example:"approved"`
	AdminNotes *string `json:"admin_notes" example:"材料齐全，准予入住"`
}

// HandleBookingFunc 返回一个处理预订请求的Gin处理函数
func HandleBookingFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewBookingController(ctx, container)

		switch method {
		case "getBookings":
			controller.GetBookings()
		case "createBooking":
			controller.CreateBooking()
		case "updateBooking":
			controller.UpdateBooking()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetBookings 获取预订列表
// @Summary 获取预订列表
// @Description 管理员返回全部预订，普通用户仅返回自己的预订
// @Tags Booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /bookings [get]
func (c *BookingController) GetBookings() {
	bookingService := c.Container.GetService("booking").(services.InterfaceBookingService)

	var (
		bookings []services.BookingInfo
		err      error
	)
	if c.Ctx.GetBool("isAdmin") {
		bookings, err = bookingService.GetAllBookings()
	} else {
		bookings, err = bookingService.GetUserBookings(c.Ctx.GetUint("userID"))
	}
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取预订列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, bookings)
}

// 2. CreateBooking 创建预订申请
// @Summary 创建预订申请
// @Description 对可租单元提交预订申请，初始状态为pending，不改变单元可租状态
// @Tags Booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param booking body CreateBookingRequest true "预订信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /bookings [post]
func (c *BookingController) CreateBooking() {
	var req CreateBookingRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	moveInDate, err := time.Parse("2006-01-02", req.MoveInDate)
	if err != nil {
		response.ParamError(c.Ctx, "无效的入住日期，格式应为YYYY-MM-DD")
		return
	}

	bookingService := c.Container.GetService("booking").(services.InterfaceBookingService)
	booking, err := bookingService.CreateBooking(c.Ctx.GetUint("userID"), req.UnitID, moveInDate, req.Notes)
	if err != nil {
		if errors.Is(err, services.ErrUnitUnavailable) {
			response.FailWithMessage(c.Ctx, code.ErrUnitUnavailable, "单元不存在或不可租", nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "创建预订失败: "+err.Error(), nil)
		return
	}

	response.Created(c.Ctx, gin.H{
		"id":           booking.ID,
		"unit_id":      booking.UnitID,
		"move_in_date": booking.MoveInDate.Format("2006-01-02"),
		"status":       booking.Status,
	})
}

// 3. UpdateBooking 审批预订
// @Summary 审批预订
// @Description 管理员将预订置为approved或declined，并同步单元可租状态（仅管理员）
// @Tags Booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "预订ID"
// @Param booking body UpdateBookingRequest true "审批结果"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /bookings/{id} [patch]
func (c *BookingController) UpdateBooking() {
	id := c.Ctx.Param("id")
	bookingID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的预订ID")
		return
	}

	var req UpdateBookingRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	bookingService := c.Container.GetService("booking").(services.InterfaceBookingService)
	booking, err := bookingService.UpdateBooking(uint(bookingID), req.Status, req.AdminNotes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			response.NotFound(c.Ctx, "预订不存在")
		case errors.Is(err, services.ErrInvalidBookingStatus):
			response.FailWithMessage(c.Ctx, code.ErrBookingInvalidStatus, "状态只能是approved或declined", nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "更新预订失败: "+err.Error(), nil)
		}
		return
	}

	// 审批同步了单元可租状态，清除房源缓存
	middleware.PurgeCacheByPrefix("/api/units")

	response.Success(c.Ctx, gin.H{
		"id":          booking.ID,
		"status":      booking.Status,
		"admin_notes": booking.AdminNotes,
	})
}
