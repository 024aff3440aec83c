package controllers

import (
	"errors"
	"strings"

	"apartment-rental-portal/internal/domain/models"
	"apartment-rental-portal/internal/domain/services"
	"apartment-rental-portal/internal/domain/services/container"
	"apartment-rental-portal/internal/error/code"
	"apartment-rental-portal/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceAuthController 定义认证控制器接口
type InterfaceAuthController interface {
	Register()
	Login()
	Logout()
	GetCurrentUser()
}

// AuthController 处理注册、登录与会话相关的请求
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController 创建一个新的认证控制器
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// ErrorResponse 表示统一的错误响应
type ErrorResponse struct {
	Code    int         `json:"code" example:"401"`
	Message string      `json:"message" example:"Invalid username or password"`
	Data    interface{} `json:"data"`
}

// RegisterRequest 表示注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"john_doe"`
	Email    string `json:"email" binding:"required,email" example:"john@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
	FullName string `json:"full_name" example:"John Doe"`
	Phone    string `json:"phone" example:"13800138000"`
}

// LoginRequest 表示登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"john_doe"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// HandleAuthFunc 返回一个处理认证请求的Gin处理函数
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "login":
			controller.Login()
		case "logout":
			controller.Logout()
		case "getCurrentUser":
			controller.GetCurrentUser()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. Register 注册新用户
// @Summary 用户注册
// @Description 注册一个新用户账号，用户名与邮箱均不可重复
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "注册信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /register [post]
func (c *AuthController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	user := &models.User{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	if err := userService.Register(user); err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			response.FailWithMessage(c.Ctx, code.ErrUsernameExists, "用户名已被占用", nil)
		case errors.Is(err, services.ErrEmailTaken):
			response.FailWithMessage(c.Ctx, code.ErrEmailExists, "邮箱已被注册", nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "注册失败: "+err.Error(), nil)
		}
		return
	}

	response.Created(c.Ctx, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

// 2. Login 用户登录
// @Summary 用户登录
// @Description 校验用户名与密码，成功后签发会话令牌
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "登录凭证"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.VerifyCredentials(req.Username, req.Password)
	if err != nil {
		// 用户不存在与密码错误返回同一错误，避免枚举用户名
		response.FailWithMessage(c.Ctx, code.ErrInvalidCredentials, "用户名或密码错误", nil)
		return
	}

	sessionService := c.Container.GetService("session").(services.InterfaceSessionService)
	session, err := sessionService.Create(user)
	if err != nil {
		response.ServerError(c.Ctx, "创建会话失败: "+err.Error())
		return
	}

	response.Success(c.Ctx, gin.H{
		"token":    session.Token,
		"user_id":  user.ID,
		"username": user.Username,
		"is_admin": user.IsAdmin,
	})
}

// 3. Logout 退出登录
// @Summary 退出登录
// @Description 销毁当前会话令牌
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse
// @Router /logout [post]
func (c *AuthController) Logout() {
	token := c.Ctx.GetString("sessionToken")

	sessionService := c.Container.GetService("session").(services.InterfaceSessionService)
	if err := sessionService.Destroy(token); err != nil {
		response.ServerError(c.Ctx, "销毁会话失败: "+err.Error())
		return
	}

	response.Success(c.Ctx, gin.H{"message": "已退出登录"})
}

// 4. GetCurrentUser 获取当前登录用户信息
// @Summary 获取当前用户
// @Description 根据会话令牌返回当前登录用户的资料
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /me [get]
func (c *AuthController) GetCurrentUser() {
	userID := c.Ctx.GetUint("userID")

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.GetUserByID(userID)
	if err != nil {
		response.NotFound(c.Ctx, "用户不存在")
		return
	}

	response.Success(c.Ctx, gin.H{
		"id":        user.ID,
		"username":  user.Username,
		"email":     user.Email,
		"full_name": user.FullName,
		"phone":     user.Phone,
		"is_admin":  user.IsAdmin,
	})
}
