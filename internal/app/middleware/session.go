package middleware

import (
	"net/http"
	"strings"

	"apartment-rental-portal/internal/domain/services"

	"github.com/gin-gonic/gin"
)

var sessionService services.InterfaceSessionService

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(s services.InterfaceSessionService) {
	sessionService = s
}

// extractToken 从授权头中提取会话令牌
func extractToken(authHeader string) string {
	// 检查并移除 "Bearer " 前缀
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// resolveSession 解析请求携带的会话令牌，失败时写出401响应
func resolveSession(c *gin.Context) *services.Session {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		// 兼容通过自定义头传递令牌的客户端
		authHeader = c.GetHeader("X-Session-Token")
	}
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "Authorization header is required",
			"data":    nil,
		})
		c.Abort()
		return nil
	}

	token := extractToken(authHeader)
	session, err := sessionService.Get(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "Invalid or expired session",
			"data":    nil,
		})
		c.Abort()
		return nil
	}

	return session
}

// Authentication 验证请求携带有效会话（任意已登录用户）
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := resolveSession(c)
		if session == nil {
			return
		}

		// 存储已解析的身份到上下文
		c.Set("userID", session.UserID)
		c.Set("username", session.Username)
		c.Set("isAdmin", session.IsAdmin)
		c.Set("sessionToken", session.Token)
		c.Next()
	}
}

// AuthenticateAdmin 验证管理员权限：先要求有效会话，再要求管理员标记
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := resolveSession(c)
		if session == nil {
			return
		}

		if !session.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Insufficient permissions: requires admin role",
				"data":    nil,
			})
			c.Abort()
			return
		}

		c.Set("userID", session.UserID)
		c.Set("username", session.Username)
		c.Set("isAdmin", session.IsAdmin)
		c.Set("sessionToken", session.Token)
		c.Next()
	}
}
