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
)

// InterfaceAmenityController 定义配套设施控制器接口
type InterfaceAmenityController interface {
	GetAmenities()
	CreateAmenity()
	UpdateAmenity()
	DeleteAmenity()
}

// AmenityController 处理配套设施相关的请求
type AmenityController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAmenityController 创建一个新的配套设施控制器
func NewAmenityController(ctx *gin.Context, container *container.ServiceContainer) *AmenityController {
	return &AmenityController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateAmenityRequest 表示创建配套设施请求
type CreateAmenityRequest struct {
	Name        string `json:"name" binding:"required" example:"Swimming Pool"`
	Description string `json:"description" example:"恒温泳池，全年开放"`
	Icon        string `json:"icon" example:"pool"`
}

// UpdateAmenityRequest 表示更新配套设施请求，所有字段均可选
type UpdateAmenityRequest struct {
	Name        *string `json:"name" example:"Swimming Pool"`
	Description *string `json:"description" example:"恒温泳池，全年开放"`
	IsAvailable *bool   `json:"is_available" example:"false"`
	Icon        *string `json:"icon" example:"pool"`
}

// HandleAmenityFunc 返回一个处理配套设施请求的Gin处理函数
func HandleAmenityFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAmenityController(ctx, container)

		switch method {
		case "getAmenities":
			controller.GetAmenities()
		case "createAmenity":
			controller.CreateAmenity()
		case "updateAmenity":
			controller.UpdateAmenity()
		case "deleteAmenity":
			controller.DeleteAmenity()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetAmenities 获取所有配套设施
// @Summary 获取配套设施列表
// @Description 获取小区全部配套设施
// @Tags Amenity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /amenities [get]
func (c *AmenityController) GetAmenities() {
	amenityService := c.Container.GetService("amenity").(services.InterfaceAmenityService)
	amenities, err := amenityService.GetAllAmenities()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取配套设施列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, amenities)
}

// 2. CreateAmenity 创建配套设施
// @Summary 创建配套设施
// @Description 创建一个新的配套设施（仅管理员）
// @Tags Amenity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param amenity body CreateAmenityRequest true "配套设施信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /amenities [post]
func (c *AmenityController) CreateAmenity() {
	var req CreateAmenityRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	amenity := &models.Amenity{
		Name:        req.Name,
		Description: req.Description,
		IsAvailable: true,
		Icon:        req.Icon,
	}

	amenityService := c.Container.GetService("amenity").(services.InterfaceAmenityService)
	if err := amenityService.CreateAmenity(amenity); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "创建配套设施失败: "+err.Error(), nil)
		return
	}

	middleware.PurgeCacheByPrefix("/api/amenities")

	response.Created(c.Ctx, amenity)
}

// 3. UpdateAmenity 更新配套设施
// @Summary 更新配套设施
// @Description 更新配套设施信息，仅更新传入的字段（仅管理员）
// @Tags Amenity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "配套设施ID"
// @Param amenity body UpdateAmenityRequest true "配套设施信息"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /amenities/{id} [put]
func (c *AmenityController) UpdateAmenity() {
	id := c.Ctx.Param("id")
	amenityID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的配套设施ID")
		return
	}

	var req UpdateAmenityRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}

	amenityService := c.Container.GetService("amenity").(services.InterfaceAmenityService)
	amenity, err := amenityService.UpdateAmenity(uint(amenityID), updates)
	if err != nil {
		if errors.Is(err, services.ErrAmenityNotFound) {
			response.NotFound(c.Ctx, "配套设施不存在")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "更新配套设施失败: "+err.Error(), nil)
		return
	}

	middleware.PurgeCacheByPrefix("/api/amenities")

	response.Success(c.Ctx, amenity)
}

// 4. DeleteAmenity 删除配套设施
// @Summary 删除配套设施
// @Description 删除指定的配套设施（仅管理员）
// @Tags Amenity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "配套设施ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /amenities/{id} [delete]
func (c *AmenityController) DeleteAmenity() {
	id := c.Ctx.Param("id")
	amenityID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的配套设施ID")
		return
	}

	amenityService := c.Container.GetService("amenity").(services.InterfaceAmenityService)
	if err := amenityService.DeleteAmenity(uint(amenityID)); err != nil {
		if errors.Is(err, services.ErrAmenityNotFound) {
			response.NotFound(c.Ctx, "配套设施不存在")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "删除配套设施失败: "+err.Error(), nil)
		return
	}

	middleware.PurgeCacheByPrefix("/api/amenities")

	response.Success(c.Ctx, nil)
}
