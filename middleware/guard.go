package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// GuardDecision 路由守卫的裁决结果
type GuardDecision int

const (
	// Allow 放行
	Allow GuardDecision = iota
	// RedirectLogin 未登录，去登录页
	RedirectLogin
	// RedirectUnauthorized 已登录但角色不符
	RedirectUnauthorized
)

// Decide 纯函数形式的守卫裁决：
// 无角色视为未登录；要求角色为空则任何登录用户可过。
func Decide(role, requiredRole string) GuardDecision {
	if role == "" {
		return RedirectLogin
	}
	if requiredRole != "" && role != requiredRole {
		return RedirectUnauthorized
	}
	return Allow
}

// RequireRole 要求特定角色的路由守卫，须在 AuthenticateUser 之后使用
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch Decide(CurrentRole(c), requiredRole) {
		case Allow:
			c.Next()
		case RedirectLogin:
			abortUnauthorized(c)
		case RedirectUnauthorized:
			if strings.Contains(c.GetHeader("Accept"), "text/html") {
				c.Redirect(http.StatusFound, "/unauthorized")
				c.Abort()
				return
			}
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			c.Abort()
		}
	}
}
