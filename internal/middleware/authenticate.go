package middleware

import (
	"net/http"
	"strings"

	"github.com/andrew21-mch/crowdfunding-api/internal/handler"
	"github.com/andrew21-mch/crowdfunding-api/internal/model"
	"github.com/andrew21-mch/crowdfunding-api/internal/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Authenticate 校验 Bearer 令牌并将用户写入上下文
func Authenticate(tm *token.Manager, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveUser(c, tm, db)
		if !ok {
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.Id)
		c.Next()
	}
}

// OptionalAuthenticate 与 Authenticate 相同，但允许不带令牌的请求通过
func OptionalAuthenticate(tm *token.Manager, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}

		user, ok := resolveUser(c, tm, db)
		if !ok {
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.Id)
		c.Next()
	}
}

// resolveUser 解析令牌并加载用户，注销时间之前签发的令牌视为已失效
func resolveUser(c *gin.Context, tm *token.Manager, db *gorm.DB) (model.User, bool) {
	var user model.User

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		handler.ErrorResponse(c, http.StatusUnauthorized, "缺少认证令牌")
		return user, false
	}

	signedToken := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := tm.Validate(signedToken)
	if err != nil {
		handler.ErrorResponse(c, http.StatusUnauthorized, "令牌无效或已过期")
		return user, false
	}

	if err := db.First(&user, claims.UserId).Error; err != nil {
		handler.ErrorResponse(c, http.StatusUnauthorized, "用户不存在")
		return user, false
	}

	if user.LastLogoutAt != nil && claims.IssuedTime().Before(*user.LastLogoutAt) {
		handler.ErrorResponse(c, http.StatusUnauthorized, "令牌已失效")
		return user, false
	}

	return user, true
}
