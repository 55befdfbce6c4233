package controllers

import (
	"errors"
	"net/http"

	"cybercrime-report-service/internal/error/code"
	"cybercrime-report-service/internal/error/response"
	"cybercrime-report-service/services"
	"cybercrime-report-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceProfileController 定义个人资料控制器接口
type InterfaceProfileController interface {
	GetProfile()
	UpdateProfile()
	ChangePassword()
	GetProfileStats()
}

// ProfileController 个人资料控制器
type ProfileController struct {
	BaseControllerImpl
}

// NewProfileController 创建一个新的个人资料控制器
func (f *ControllerFactory) NewProfileController(ctx *gin.Context) *ProfileController {
	return &ProfileController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// HandleProfileFunc 返回一个处理个人资料请求的Gin处理函数
func HandleProfileFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewProfileController(ctx)

		switch method {
		case "getProfile":
			controller.GetProfile()
		case "updateProfile":
			controller.UpdateProfile()
		case "changePassword":
			controller.ChangePassword()
		case "getProfileStats":
			controller.GetProfileStats()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的方法"})
		}
	}
}

// GetProfile 获取当前用户的个人资料
// @Summary      我的资料
// @Tags         Profile
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "个人资料"
// @Failure      404  {object}  response.ErrorBody  "用户不存在"
// @Router       /profile [get]
func (c *ProfileController) GetProfile() {
	profile, err := c.Container.User().GetProfile(currentUserID(c.Context))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			response.FailWithMessage(c.Context, code.ErrUserNotFound, "User not found")
			return
		}
		response.ServerError(c.Context)
		return
	}
	response.Success(c.Context, gin.H{"profile": profile})
}

// UpdateProfile 更新个人资料
// @Summary      更新资料
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Param        request body services.UpdateProfileInput true "修改字段"
// @Success      200  {object}  map[string]interface{}  "更新后的资料"
// @Router       /profile [put]
func (c *ProfileController) UpdateProfile() {
	var input services.UpdateProfileInput
	if err := c.Context.ShouldBindJSON(&input); err != nil {
		response.ParamError(c.Context, "Invalid request body")
		return
	}

	userID := currentUserID(c.Context)
	profile, err := c.Container.User().UpdateProfile(userID, input)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			response.FailWithMessage(c.Context, code.ErrUserNotFound, "User not found")
			return
		}
		response.ServerError(c.Context)
		return
	}

	// 会话缓存跟随资料变更，保证多标签页展示一致
	if sid, exists := c.Context.Get("session_id"); exists {
		if sessionID, ok := sid.(string); ok && sessionID != "" {
			session := c.Container.Session()
			session.Write(sessionID, "name", profile.Name)
			session.Write(sessionID, "phone", profile.Phone)
		}
	}

	response.Success(c.Context, gin.H{
		"message": "Profile updated successfully",
		"profile": profile,
	})
}

// ChangePassword 修改密码
// @Summary      修改密码
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Param        request body ChangePasswordRequest true "密码参数"
// @Success      200  {object}  map[string]string  "修改成功"
// @Failure      400  {object}  response.ErrorBody  "参数错误"
// @Failure      401  {object}  response.ErrorBody  "旧密码错误"
// @Router       /profile/change-password [post]
func (c *ProfileController) ChangePassword() {
	var req ChangePasswordRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, "All password fields are required")
		return
	}

	userID := currentUserID(c.Context)
	err := c.Container.User().ChangePassword(userID, req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWrongPassword):
			response.FailWithMessage(c.Context, code.ErrUserPasswordIncorrect, "Current password is incorrect")
		case errors.Is(err, services.ErrPasswordMismatch):
			response.FailWithMessage(c.Context, code.ErrPasswordMismatch, "Passwords do not match")
		case errors.Is(err, services.ErrPasswordTooShort):
			response.ParamError(c.Context, "New password must be at least 6 characters")
		default:
			response.ServerError(c.Context)
		}
		return
	}

	c.Container.Audit().Record(&userID, "Password Changed",
		"Account password changed", "Success", c.Context.ClientIP())
	response.Message(c.Context, "Password changed successfully")
}

// GetProfileStats 获取资料页的角色统计
// @Summary      资料统计
// @Tags         Profile
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "统计数据"
// @Router       /profile/stats [get]
func (c *ProfileController) GetProfileStats() {
	stats, err := c.Container.User().GetProfileStats(currentUserID(c.Context))
	if err != nil {
		response.ServerError(c.Context)
		return
	}
	response.Success(c.Context, gin.H{"stats": stats})
}
