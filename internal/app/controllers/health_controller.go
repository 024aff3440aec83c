package controllers

import (
	"time"

	"apartment-rental-portal/internal/domain/services/container"
	"apartment-rental-portal/internal/error/code"
	"apartment-rental-portal/internal/error/response"

	"github.com/gin-gonic/gin"
)

// HealthController 处理健康检查相关的请求
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController 创建一个新的健康检查控制器
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc 返回一个处理健康检查请求的Gin处理函数
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. Ping 服务存活检查
// @Summary 存活检查
// @Description 返回pong与服务器时间
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /ping [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{
		"message":   "pong",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// 2. Status 服务组件状态检查
// @Summary 组件状态检查
// @Description 检查数据库连接状态
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/status [get]
func (c *HealthController) Status() {
	dbStatus := "up"
	sqlDB, err := c.Container.GetDB().DB()
	if err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}

	response.Success(c.Ctx, gin.H{
		"database":  dbStatus,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
