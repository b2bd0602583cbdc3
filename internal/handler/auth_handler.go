package handler

import (
	"net/http"
	"strconv"

	"github.com/andrew21-mch/crowdfunding-api/internal/logic"
	"github.com/andrew21-mch/crowdfunding-api/internal/mailer"
	"github.com/andrew21-mch/crowdfunding-api/internal/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthHandler 用户认证处理器
type AuthHandler struct {
	authLogic    *logic.AuthLogic
	tokenManager *token.Manager
}

// NewAuthHandler 创建用户认证处理器
func NewAuthHandler(db *gorm.DB, tm *token.Manager, m mailer.Mailer, baseURL string) *AuthHandler {
	return &AuthHandler{
		authLogic:    logic.NewAuthLogic(db, m, baseURL),
		tokenManager: tm,
	}
}

// Register 注册用户
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authLogic.Register(req.Name, req.Email, req.Password)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "注册成功，请查收验证邮件", RegisterResponse{
		User: ToUserResponse(user),
	})
}

// Login 登录并签发令牌
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authLogic.Authenticate(req.Email, req.Password)
	if err != nil {
		HandleError(c, err)
		return
	}

	signedToken, err := h.tokenManager.Generate(user.Id)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "生成令牌失败")
		return
	}

	SuccessResponse(c, http.StatusOK, "登录成功", LoginResponse{
		Token: signedToken,
		User:  ToUserResponse(user),
	})
}

// Logout 注销当前用户，使已签发的令牌失效
func (h *AuthHandler) Logout(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "未认证的请求")
		return
	}

	if err := h.authLogic.Logout(user.Id); err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "注销成功", nil)
}

// GetProfile 获取当前用户资料
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "未认证的请求")
		return
	}

	SuccessResponse(c, http.StatusOK, "获取用户资料成功", ToUserResponse(user))
}

// UpdateProfile 更新当前用户资料
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "未认证的请求")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.authLogic.UpdateProfile(user.Id, req.Name, req.Email)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "用户资料更新成功", ToUserResponse(updated))
}

// ChangePassword 修改当前用户密码
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "未认证的请求")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authLogic.ChangePassword(user.Id, req.CurrentPassword, req.NewPassword); err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "密码修改成功", nil)
}

// SendResetLink 发送密码重置邮件
func (h *AuthHandler) SendResetLink(c *gin.Context) {
	var req SendResetLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.authLogic.SendResetLink(req.Email); err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "密码重置邮件已发送", nil)
}

// ResetPassword 使用重置令牌设置新密码
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authLogic.ResetPassword(c.Param("token"), req.Email, req.Password); err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "密码重置成功", nil)
}

// VerifyEmail 校验邮箱验证链接
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	userId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的用户ID")
		return
	}

	if err := h.authLogic.VerifyEmail(userId, c.Param("hash")); err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "邮箱验证成功", nil)
}

// ResendVerification 重发验证邮件
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "未认证的请求")
		return
	}

	if err := h.authLogic.ResendVerification(user.Id); err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "验证邮件已发送", nil)
}
