package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"cybercrime-report-service/internal/error/code"
	"cybercrime-report-service/internal/error/response"
	"cybercrime-report-service/services"
	"cybercrime-report-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceAdminController 定义管理员控制器接口
type InterfaceAdminController interface {
	GetAllReports()
	AssignOfficer()
	GetAvailableOfficers()
	GetUsers()
	UpdateUser()
	DeleteUser()
	GetUserStats()
	GetAuditLogs()
	ResetAuditLogs()
	GetAnalytics()
	GetActiveCases()
	GetOfficerPerformance()
	GetAuditTrail()
}

// AdminController 管理员控制器
type AdminController struct {
	BaseControllerImpl
}

// NewAdminController 创建一个新的管理员控制器
func (f *ControllerFactory) NewAdminController(ctx *gin.Context) *AdminController {
	return &AdminController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// AssignOfficerRequest 指派警员请求
type AssignOfficerRequest struct {
	ReportID  uint   `json:"report_id" binding:"required" example:"12"`
	OfficerID uint   `json:"officer_id" binding:"required" example:"3"`
	Note      string `json:"note" example:"Handle with priority"`
}

// HandleAdminFunc 返回一个处理管理员请求的Gin处理函数
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewAdminController(ctx)

		switch method {
		case "getAllReports":
			controller.GetAllReports()
		case "assignOfficer":
			controller.AssignOfficer()
		case "getAvailableOfficers":
			controller.GetAvailableOfficers()
		case "getUsers":
			controller.GetUsers()
		case "updateUser":
			controller.UpdateUser()
		case "deleteUser":
			controller.DeleteUser()
		case "getUserStats":
			controller.GetUserStats()
		case "getAuditLogs":
			controller.GetAuditLogs()
		case "resetAuditLogs":
			controller.ResetAuditLogs()
		case "getAnalytics":
			controller.GetAnalytics()
		case "getActiveCases":
			controller.GetActiveCases()
		case "getOfficerPerformance":
			controller.GetOfficerPerformance()
		case "getAuditTrail":
			controller.GetAuditTrail()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的方法"})
		}
	}
}

// userIDParam 解析路径中的用户ID
func (c *AdminController) userIDParam() (uint, bool) {
	id, err := strconv.ParseUint(c.Context.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Context, "Invalid user id")
		return 0, false
	}
	return uint(id), true
}

// GetAllReports 获取全部举报
// @Summary      全部举报
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "举报列表"
// @Router       /admin/all_reports [get]
func (c *AdminController) GetAllReports() {
	reports, err := c.Container.Report().GetAllReports()
	if err != nil {
		response.ServerError(c.Context)
		return
	}
	response.Success(c.Context, gin.H{"reports": reports})
}

// AssignOfficer 把举报指派给警员并通知双方
// @Summary      指派警员
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body AssignOfficerRequest true "指派参数"
// @Success      200  {object}  map[string]string  "指派成功"
// @Failure      404  {object}  response.ErrorBody  "举报或警员不存在"
// @Router       /admin/assign [post]
func (c *AdminController) AssignOfficer() {
	var req AssignOfficerRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, "Report id and officer id are required")
		return
	}

	report, err := c.Container.Report().AssignOfficer(req.ReportID, req.OfficerID, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReportNotFound):
			response.FailWithMessage(c.Context, code.ErrReportNotFound, "Report not found")
		case errors.Is(err, services.ErrOfficerNotFound):
			response.FailWithMessage(c.Context, code.ErrUserNotFound, "Officer not found")
		default:
			response.Fail(c.Context, code.ErrAssignFailed)
		}
		return
	}

	c.Container.Notification().Notify(req.OfficerID,
		fmt.Sprintf("You have been assigned to case #%d (%s)", report.ID, report.CrimeType))
	c.Container.Notification().Notify(report.VictimID,
		fmt.Sprintf("An officer has been assigned to your report #%d", report.ID))

	adminID := currentUserID(c.Context)
	c.Container.Audit().Record(&adminID, "Officer Assigned",
		fmt.Sprintf("Officer #%d assigned to report #%d", req.OfficerID, report.ID),
		"Success", c.Context.ClientIP())
	response.Message(c.Context, "Officer assigned successfully")
}

// GetAvailableOfficers 列出可指派的警员
// @Summary      可指派警员
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "警员列表"
// @Router       /admin/available_officers [get]
func (c *AdminController) GetAvailableOfficers() {
	officers, err := c.Container.Report().AvailableOfficers()
	if err != nil {
		response.ServerError(c.Context)
		return
	}
	response.Success(c.Context, gin.H{"officers": officers})
}

// GetUsers 获取全部在册用户
// @Summary      用户列表
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "用户列表"
// @Router       /admin/users [get]
func (c *AdminController) GetUsers() {
	users, err := c.Container.User().ListUsers()
	if err != nil {
		response.ServerError(c.Context)
		return
	}
	response.Success(c.Context, gin.H{"users": users})
}

// UpdateUser 修改用户基本信息
// @Summary      修改用户
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id path int true "用户ID"
// @Param        request body services.AdminUpdateUserInput true "修改字段"
// @Success      200  {object}  map[string]string  "修改成功"
// @Failure      404  {object}  response.ErrorBody  "用户不存在"
// @Router       /admin/users/{id} [put]
func (c *AdminController) UpdateUser() {
	userID, ok := c.userIDParam()
	if !ok {
		return
	}

	var input services.AdminUpdateUserInput
	if err := c.Context.ShouldBindJSON(&input); err != nil {
		response.ParamError(c.Context, "Invalid request body")
		return
	}

	if err := c.Container.User().UpdateUser(userID, input); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			response.FailWithMessage(c.Context, code.ErrUserNotFound, "User not found")
		case errors.Is(err, services.ErrEmailTaken):
			response.FailWithMessage(c.Context, code.ErrUserAlreadyExist, "Email already in use")
		default:
			response.ServerError(c.Context)
		}
		return
	}

	adminID := currentUserID(c.Context)
	c.Container.Audit().Record(&adminID, "User Updated",
		fmt.Sprintf("User #%d profile updated by admin", userID),
		"Success", c.Context.ClientIP())
	response.Message(c.Context, "User updated successfully")
}

// DeleteUser 停用用户账户（软删除）
// @Summary      删除用户
// @Tags         Admin
// @Produce      json
// @Param        id path int true "用户ID"
// @Success      200  {object}  map[string]string  "删除成功"
// @Failure      400  {object}  response.ErrorBody  "不能删除自己"
// @Failure      404  {object}  response.ErrorBody  "用户不存在"
// @Router       /admin/users/{id} [delete]
func (c *AdminController) DeleteUser() {
	userID, ok := c.userIDParam()
	if !ok {
		return
	}

	adminID := currentUserID(c.Context)
	if err := c.Container.User().DeactivateUser(adminID, userID); err != nil {
		switch {
		case errors.Is(err, services.ErrSelfDelete):
			response.FailWithMessage(c.Context, code.ErrSelfDelete, "Cannot delete your own account")
		case errors.Is(err, services.ErrUserNotFound):
			response.FailWithMessage(c.Context, code.ErrUserNotFound, "User not found")
		default:
			response.ServerError(c.Context)
		}
		return
	}

	c.Container.Audit().Record(&adminID, "User Deleted",
		fmt.Sprintf("User #%d deactivated by admin", userID),
		"Success", c.Context.ClientIP())
	response.Message(c.Context, "User deleted successfully")
}

// GetUserStats 用户规模统计
// @Summary      用户统计
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "统计数据"
// @Router       /admin/users/stats [get]
func (c *AdminController) GetUserStats() {
	stats, err := c.Container.User().GetUserStats()
	if err != nil {
		response.ServerError(c.Context)
		return
	}
	response.Success(c.Context, gin.H{"stats": stats})
}

// GetAuditLogs 获取最近的审计日志
// @Summary      审计日志
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "审计日志列表"
// @Router       /admin/audit_logs [get]
func (c *AdminController) GetAuditLogs() {
	logs, err := c.Container.Audit().List()
	if err != nil {
		response.ServerError(c.Context)
		return
	}
	response.Success(c.Context, gin.H{"audit_logs": logs})
}

// ResetAuditLogs 清空审计日志
// @Summary      清空审计日志
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  map[string]string  "清空成功"
// @Router       /admin/audit_logs/reset [delete]
func (c *AdminController) ResetAuditLogs() {
	adminID := currentUserID(c.Context)
	if err := c.Container.Audit().Reset(adminID, c.Context.ClientIP()); err != nil {
		response.ServerError(c.Context)
		return
	}
	response.Message(c.Context, "Audit logs reset successfully")
}

// GetAnalytics 管理端统计总览
// @Summary      统计总览
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  services.AnalyticsOverview  "统计数据"
// @Router       /admin/analytics [get]
func (c *AdminController) GetAnalytics() {
	overview, err := c.Container.Analytics().Overview()
	if err != nil {
		response.ServerError(c.Context)
		return
	}
	response.Success(c.Context, overview)
}

// GetActiveCases 列出全部进行中案件
// @Summary      进行中案件
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "案件列表"
// @Router       /admin/active_cases [get]
func (c *AdminController) GetActiveCases() {
	cases, err := c.Container.Analytics().ActiveCases(0)
	if err != nil {
		response.ServerError(c.Context)
		return
	}
	response.Success(c.Context, gin.H{"active_cases": cases})
}

// GetOfficerPerformance 警员办案绩效
// @Summary      警员绩效
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "绩效列表"
// @Router       /admin/officer_performance [get]
func (c *AdminController) GetOfficerPerformance() {
	rows, err := c.Container.Analytics().OfficerPerformance()
	if err != nil {
		response.ServerError(c.Context)
		return
	}
	response.Success(c.Context, gin.H{"officer_performance": rows})
}

// GetAuditTrail 审计追踪视图，与审计日志同源
// @Summary      审计追踪
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "审计记录"
// @Router       /admin/audit_trail [get]
func (c *AdminController) GetAuditTrail() {
	logs, err := c.Container.Audit().List()
	if err != nil {
		response.ServerError(c.Context)
		return
	}
	response.Success(c.Context, gin.H{"audit_trail": logs})
}
