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

// InterfaceTowerController 定义楼栋控制器接口
type InterfaceTowerController interface {
	GetTowers()
	GetTower()
	CreateTower()
	UpdateTower()
	DeleteTower()
}

// TowerController 处理楼栋相关的请求
type TowerController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTowerController 创建一个新的楼栋控制器
func NewTowerController(ctx *gin.Context, container *container.ServiceContainer) *TowerController {
	return &TowerController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateTowerRequest 表示创建楼栋请求
type CreateTowerRequest struct {
	Name        string `json:"name" binding:"required" example:"Tower A"`
	Floors      int    `json:"floors" binding:"required,min=1" example:"10"`
	Description string `json:"description" example:"临湖楼栋"`
}

// UpdateTowerRequest 表示更新楼栋请求，所有字段均可选
type UpdateTowerRequest struct {
	Name        *string `json:"name" example:"Tower A"`
	Floors      *int    `json:"floors" example:"12"`
	Description *string `json:"description" example:"临湖楼栋"`
}

// HandleTowerFunc 返回一个处理楼栋请求的Gin处理函数
func HandleTowerFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTowerController(ctx, container)

		switch method {
		case "getTowers":
			controller.GetTowers()
		case "getTower":
			controller.GetTower()
		case "createTower":
			controller.CreateTower()
		case "updateTower":
			controller.UpdateTower()
		case "deleteTower":
			controller.DeleteTower()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetTowers 获取所有楼栋列表
// @Summary 获取所有楼栋
// @Description 获取全部楼栋及各自的单元数量
// @Tags Tower
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /towers [get]
func (c *TowerController) GetTowers() {
	towerService := c.Container.GetService("tower").(services.InterfaceTowerService)
	towers, err := towerService.GetAllTowers()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取楼栋列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, towers)
}

// 2. GetTower 获取单个楼栋详情
// @Summary 获取楼栋详情
// @Description 根据ID获取楼栋及其下属单元
// @Tags Tower
// @Accept json
// @Produce json
// @Param id path int true "楼栋ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /towers/{id} [get]
func (c *TowerController) GetTower() {
	id := c.Ctx.Param("id")
	towerID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的楼栋ID")
		return
	}

	towerService := c.Container.GetService("tower").(services.InterfaceTowerService)
	tower, err := towerService.GetTowerByID(uint(towerID))
	if err != nil {
		if errors.Is(err, services.ErrTowerNotFound) {
			response.NotFound(c.Ctx, "楼栋不存在")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取楼栋失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, tower)
}

// 3. CreateTower 创建新楼栋
// @Summary 创建楼栋
// @Description 创建一个新的楼栋（仅管理员）
// @Tags Tower
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tower body CreateTowerRequest true "楼栋信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /towers [post]
func (c *TowerController) CreateTower() {
	var req CreateTowerRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	tower := &models.Tower{
		Name:        req.Name,
		Floors:      req.Floors,
		Description: req.Description,
	}

	towerService := c.Container.GetService("tower").(services.InterfaceTowerService)
	if err := towerService.CreateTower(tower); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "创建楼栋失败: "+err.Error(), nil)
		return
	}

	// 楼栋数据有变化，清除目录缓存
	middleware.PurgeCacheByPrefix("/api/towers")

	response.Created(c.Ctx, tower)
}

// 4. UpdateTower 更新楼栋信息
// @Summary 更新楼栋
// @Description 更新楼栋信息，仅更新传入的字段（仅管理员）
// @Tags Tower
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "楼栋ID"
// @Param tower body UpdateTowerRequest true "楼栋信息"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /towers/{id} [put]
func (c *TowerController) UpdateTower() {
	id := c.Ctx.Param("id")
	towerID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的楼栋ID")
		return
	}

	var req UpdateTowerRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Floors != nil {
		updates["floors"] = *req.Floors
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	towerService := c.Container.GetService("tower").(services.InterfaceTowerService)
	tower, err := towerService.UpdateTower(uint(towerID), updates)
	if err != nil {
		if errors.Is(err, services.ErrTowerNotFound) {
			response.NotFound(c.Ctx, "楼栋不存在")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "更新楼栋失败: "+err.Error(), nil)
		return
	}

	middleware.PurgeCacheByPrefix("/api/towers")

	response.Success(c.Ctx, tower)
}

// 5. DeleteTower 删除楼栋
// @Summary 删除楼栋
// @Description 删除楼栋并级联删除其下属单元（仅管理员）
// @Tags Tower
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "楼栋ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /towers/{id} [delete]
func (c *TowerController) DeleteTower() {
	id := c.Ctx.Param("id")
	towerID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的楼栋ID")
		return
	}

	towerService := c.Container.GetService("tower").(services.InterfaceTowerService)
	if err := towerService.DeleteTower(uint(towerID)); err != nil {
		if errors.Is(err, services.ErrTowerNotFound) {
			response.NotFound(c.Ctx, "楼栋不存在")
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "删除楼栋失败: "+err.Error(), nil)
		return
	}

	middleware.PurgeCacheByPrefix("/api/towers")
	middleware.PurgeCacheByPrefix("/api/units")

	response.Success(c.Ctx, nil)
}
