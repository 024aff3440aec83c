package controllers

import (
	"errors"
	"strconv"

	"apartment-rental-portal/internal/app/middleware"
	"apartment-rental-portal/internal/domain/models"
	"apartment-rental-portal/internal/domain/services"
	"apartment-rental-portal/internal/domain/services/container"
	"apartment-rental-portal/internal/error/code"
	"apartment-rental-portal/internal/error/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// InterfaceUnitController 定义单元控制器接口
type InterfaceUnitController interface {
	GetUnits()
	GetUnit()
	CreateUnit()
	UpdateUnit()
	DeleteUnit()
}

// UnitController 处理单元相关的请求
type UnitController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUnitController 创建一个新的单元控制器
func NewUnitController(ctx *gin.Context, container *container.ServiceContainer) *UnitController {
	return &UnitController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateUnitRequest 表示创建单元请求
type CreateUnitRequest struct {
	TowerID     uint            `json:"tower_id" binding:"required" example:"1"`
	UnitNumber  string          `json:"unit_number" binding:"required" example:"A101"`
	Floor       int             `json:"floor" binding:"required,min=1" example:"1"`
	Bedrooms    int             `json:"bedrooms" binding:"required,min=0" example:"2"`
	Bathrooms   int             `json:"bathrooms" binding:"required,min=1" example:"1"`
	AreaSqft    int             `json:"area_sqft" example:"850"`
	RentAmount  decimal.Decimal `json:"rent_amount" binding:"required" example:"2000.00"`
	Description string          `json:"description" example:"南向两居室"`
}

// UpdateUnitRequest 表示更新单元请求，所有字段均可选
type UpdateUnitRequest struct {
	UnitNumber  *string          `json:"unit_number" example:"A101"`
	Floor       *int             `json:"floor" example:"2"`
	Bedrooms    *int             `json:"bedrooms" example:"3"`
	Bathrooms   *int             `json:"bathrooms" example:"2"`
	AreaSqft    *int             `json:"area_sqft" example:"900"`
	RentAmount  *decimal.Decimal `json:"rent_amount" example:"2200.00"`
	IsAvailable *bool            `json:"is_available" example:"true"`
	Description *string          `json:"description" example:"南向三居室"`
}

// HandleUnitFunc 返回一个处理单元请求的Gin处理函数
func HandleUnitFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUnitController(ctx, container)

		switch method {
		case "getUnits":
			controller.GetUnits()
		case "getUnit":
			controller.GetUnit()
		case "createUnit":
			controller.CreateUnit()
		case "updateUnit":
			controller.UpdateUnit()
		case "deleteUnit":
			controller.DeleteUnit()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetUnits 获取单元列表
// @Summary 获取单元列表
// @Description 获取全部单元，available=true时仅返回可租单元
// @Tags Unit
// @Accept json
// @Produce json
// @Param available query bool false "仅返回可租单元"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /units [get]
func (c *UnitController) GetUnits() {
	availableOnly := c.Ctx.Query("available") == "true"

	unitService := c.Container.GetService("unit").(services.InterfaceUnitService)
	units, err := unitService.GetAllUnits(availableOnly)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取单元列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, units)
}

// 2. GetUnit 获取单个单元详情
// @Summary 获取单元详情
// @Description 根据ID获取单元详细信息，含所属楼栋
// @Tags Unit
// @Accept json
// @Produce json
// @Param id path int true "单元ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /units/{id} [get]
func (c *UnitController) GetUnit() {
	id := c.Ctx.Param("id")
	unitID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的单元ID")
		return
	}

	unitService := c.Container.GetService("unit").(services.InterfaceUnitService)
	unit, err := unitService.GetUnitInfoByID(uint(unitID))
	if err != nil {
		if errors.Is(err, services.ErrUnitNotFound) {
			response.NotFound(c.Ctx, "单元不存在")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取单元失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, unit)
}

// 3. CreateUnit 创建新单元
// @Summary 创建单元
// @Description 在指定楼栋下创建一个新单元（仅管理员）
// @Tags Unit
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param unit body CreateUnitRequest true "单元信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /units [post]
func (c *UnitController) CreateUnit() {
	var req CreateUnitRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	unit := &models.Unit{
		TowerID:     req.TowerID,
		UnitNumber:  req.UnitNumber,
		Floor:       req.Floor,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		AreaSqft:    req.AreaSqft,
		RentAmount:  req.RentAmount,
		IsAvailable: true,
		Description: req.Description,
	}

	unitService := c.Container.GetService("unit").(services.InterfaceUnitService)
	if err := unitService.CreateUnit(unit); err != nil {
		if errors.Is(err, services.ErrTowerNotFound) {
			response.NotFound(c.Ctx, "所属楼栋不存在")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "创建单元失败: "+err.Error(), nil)
		return
	}

	middleware.PurgeCacheByPrefix("/api/units")
	middleware.PurgeCacheByPrefix("/api/towers")

	response.Created(c.Ctx, unit)
}

// 4. UpdateUnit 更新单元信息
// @Summary 更新单元
// @Description 更新单元信息，仅更新传入的字段（仅管理员）
// @Tags Unit
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "单元ID"
// @Param unit body UpdateUnitRequest true "单元信息"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /units/{id} [put]
func (c *UnitController) UpdateUnit() {
	id := c.Ctx.Param("id")
	unitID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的单元ID")
		return
	}

	var req UpdateUnitRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	if req.UnitNumber != nil {
		updates["unit_number"] = *req.UnitNumber
	}
	if req.Floor != nil {
		updates["floor"] = *req.Floor
	}
	if req.Bedrooms != nil {
		updates["bedrooms"] = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		updates["bathrooms"] = *req.Bathrooms
	}
	if req.AreaSqft != nil {
		updates["area_sqft"] = *req.AreaSqft
	}
	if req.RentAmount != nil {
		updates["rent_amount"] = *req.RentAmount
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	unitService := c.Container.GetService("unit").(services.InterfaceUnitService)
	unit, err := unitService.UpdateUnit(uint(unitID), updates)
	if err != nil {
		if errors.Is(err, services.ErrUnitNotFound) {
			response.NotFound(c.Ctx, "单元不存在")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "更新单元失败: "+err.Error(), nil)
		return
	}

	middleware.PurgeCacheByPrefix("/api/units")

	response.Success(c.Ctx, unit)
}

// 5. DeleteUnit 删除单元
// @Summary 删除单元
// @Description 删除指定的单元（仅管理员）
// @Tags Unit
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "单元ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /units/{id} [delete]
func (c *UnitController) DeleteUnit() {
	id := c.Ctx.Param("id")
	unitID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的单元ID")
		return
	}

	unitService := c.Container.GetService("unit").(services.InterfaceUnitService)
	if err := unitService.DeleteUnit(uint(unitID)); err != nil {
		if errors.Is(err, services.ErrUnitNotFound) {
			response.NotFound(c.Ctx, "单元不存在")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "删除单元失败: "+err.Error(), nil)
		return
	}

	middleware.PurgeCacheByPrefix("/api/units")
	middleware.PurgeCacheByPrefix("/api/towers")

	response.Success(c.Ctx, nil)
}
