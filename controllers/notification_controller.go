package controllers

import (
	"net/http"

	"cybercrime-report-service/internal/error/response"
	"cybercrime-report-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceNotificationController 定义通知控制器接口
type InterfaceNotificationController interface {
	GetNotifications()
	MarkRead()
}

// NotificationController 通知控制器
type NotificationController struct {
	BaseControllerImpl
}

// NewNotificationController 创建一个新的通知控制器
func (f *ControllerFactory) NewNotificationController(ctx *gin.Context) *NotificationController {
	return &NotificationController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// MarkReadRequest 标记已读请求，空列表表示全部已读
type MarkReadRequest struct {
	IDs []uint `json:"notification_ids"`
}

// HandleNotificationFunc 返回一个处理通知请求的Gin处理函数
func HandleNotificationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewNotificationController(ctx)

		switch method {
		case "getNotifications":
			controller.GetNotifications()
		case "markRead":
			controller.MarkRead()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的方法"})
		}
	}
}

// GetNotifications 获取当前用户的通知
// @Summary      我的通知
// @Tags         Notification
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "通知列表"
// @Router       /notifications [get]
func (c *NotificationController) GetNotifications() {
	items, err := c.Container.Notification().ListForUser(currentUserID(c.Context))
	if err != nil {
		response.ServerError(c.Context)
		return
	}
	response.Success(c.Context, gin.H{"notifications": items})
}

// MarkRead 标记通知为已读
// @Summary      标记已读
// @Tags         Notification
// @Accept       json
// @Produce      json
// @Param        request body MarkReadRequest true "通知ID列表"
// @Success      200  {object}  map[string]string  "标记成功"
// @Router       /notifications/mark-read [post]
func (c *NotificationController) MarkRead() {
	var req MarkReadRequest
	// 空请求体等价于全部标记已读
	_ = c.Context.ShouldBindJSON(&req)

	if err := c.Container.Notification().MarkRead(currentUserID(c.Context), req.IDs); err != nil {
		response.ServerError(c.Context)
		return
	}
	response.Message(c.Context, "Notifications marked as read")
}
