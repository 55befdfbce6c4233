package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"cybercrime-report-service/internal/error/code"
	"cybercrime-report-service/internal/error/response"
	"cybercrime-report-service/services"
	"cybercrime-report-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceOfficerController 定义警员控制器接口
type InterfaceOfficerController interface {
	GetAssignedCases()
	GetCaseDetail()
	UpdateCaseStatus()
	AddCaseLog()
	GetCaseLogs()
	GetCaseEvidence()
	UploadCaseEvidence()
	GetEvidenceLibrary()
	GetDashboard()
	GetWorkload()
}

// OfficerController 警员控制器
type OfficerController struct {
	BaseControllerImpl
}

// NewOfficerController 创建一个新的警员控制器
func (f *ControllerFactory) NewOfficerController(ctx *gin.Context) *OfficerController {
	return &OfficerController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// UpdateStatusRequest 更新案件状态请求
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Under Investigation"`
}

// AddLogRequest 追加办案日志请求
type AddLogRequest struct {
	Action string `json:"action" binding:"required" example:"Interview Conducted"`
	Notes  string `json:"notes" binding:"required" example:"Interviewed the complainant"`
}

// HandleOfficerFunc 返回一个处理警员请求的Gin处理函数
func HandleOfficerFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewOfficerController(ctx)

		switch method {
		case "getAssignedCases":
			controller.GetAssignedCases()
		case "getCaseDetail":
			controller.GetCaseDetail()
		case "updateCaseStatus":
			controller.UpdateCaseStatus()
		case "addCaseLog":
			controller.AddCaseLog()
		case "getCaseLogs":
			controller.GetCaseLogs()
		case "getCaseEvidence":
			controller.GetCaseEvidence()
		case "uploadCaseEvidence":
			controller.UploadCaseEvidence()
		case "getEvidenceLibrary":
			controller.GetEvidenceLibrary()
		case "getDashboard":
			controller.GetDashboard()
		case "getWorkload":
			controller.GetWorkload()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的方法"})
		}
	}
}

// caseIDParam 解析路径中的案件ID
func (c *OfficerController) caseIDParam() (uint, bool) {
	id, err := strconv.ParseUint(c.Context.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Context, "Invalid case id")
		return 0, false
	}
	return uint(id), true
}

// ensureAssigned 确认案件分配给当前警员，未分配时直接写响应
func (c *OfficerController) ensureAssigned(caseID uint) bool {
	assigned, err := c.Container.Case().IsAssigned(currentUserID(c.Context), caseID)
	if err != nil {
		response.ServerError(c.Context)
		return false
	}
	if !assigned {
		response.FailWithMessage(c.Context, code.ErrCaseNotAssigned, "Case not found or not assigned to you")
		return false
	}
	return true
}

// GetAssignedCases 获取分配给自己的案件列表
// @Summary      我的案件
// @Description  支持按状态、罪案类型筛选，按受害人姓名或罪案类型搜索
// @Tags         Officer
// @Produce      json
// @Param        search     query string false "搜索词"
// @Param        status     query string false "状态筛选，All Status 表示不筛"
// @Param        crimeType  query string false "类型筛选，All Types 表示不筛"
// @Param        sortBy     query string false "排序字段，默认 Date Reported"
// @Success      200  {object}  map[string]interface{}  "案件列表"
// @Router       /officer/assigned_cases [get]
func (c *OfficerController) GetAssignedCases() {
	filter := services.CaseFilter{
		Search:    c.Context.Query("search"),
		Status:    c.Context.Query("status"),
		CrimeType: c.Context.Query("crimeType"),
		SortBy:    c.Context.Query("sortBy"),
	}

	cases, err := c.Container.Case().GetAssignedCases(currentUserID(c.Context), filter)
	if err != nil {
		response.ServerError(c.Context)
		return
	}
	response.Success(c.Context, gin.H{"cases": cases})
}

// GetCaseDetail 获取案件详情（含证据与办案日志）
// @Summary      案件详情
// @Tags         Officer
// @Produce      json
// @Param        id path int true "案件ID"
// @Success      200  {object}  map[string]interface{}  "案件详情"
// @Failure      404  {object}  response.ErrorBody  "案件不存在或未分配"
// @Router       /officer/case/{id} [get]
func (c *OfficerController) GetCaseDetail() {
	caseID, ok := c.caseIDParam()
	if !ok {
		return
	}

	detail, err := c.Container.Case().GetCaseDetail(currentUserID(c.Context), caseID)
	if err != nil {
		if errors.Is(err, services.ErrCaseNotFound) {
			response.FailWithMessage(c.Context, code.ErrCaseNotAssigned, "Case not found or not assigned to you")
			return
		}
		response.ServerError(c.Context)
		return
	}

	evidence, err := c.Container.Evidence().ListByReport(caseID)
	if err != nil {
		response.ServerError(c.Context)
		return
	}
	logs, err := c.Container.CaseLog().ListByReport(caseID)
	if err != nil {
		response.ServerError(c.Context)
		return
	}

	response.Success(c.Context, gin.H{
		"case":     detail,
		"evidence": evidence,
		"logs":     logs,
	})
}

// UpdateCaseStatus 更新案件状态并通知受害人
// @Summary      更新案件状态
// @Tags         Officer
// @Accept       json
// @Produce      json
// @Param        id path int true "案件ID"
// @Param        request body UpdateStatusRequest true "新状态"
// @Success      200  {object}  map[string]string  "更新成功"
// @Failure      400  {object}  response.ErrorBody  "状态无效"
// @Failure      404  {object}  response.ErrorBody  "案件不存在或未分配"
// @Router       /officer/case/{id} [put]
func (c *OfficerController) UpdateCaseStatus() {
	caseID, ok := c.caseIDParam()
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, "Status is required")
		return
	}

	officerID := currentUserID(c.Context)
	report, err := c.Container.Case().UpdateStatus(officerID, caseID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatusValue):
			response.FailWithMessage(c.Context, code.ErrInvalidStatus, "Invalid status value")
		case errors.Is(err, services.ErrCaseNotFound):
			response.FailWithMessage(c.Context, code.ErrCaseNotAssigned, "Case not found or not assigned to you")
		default:
			response.ServerError(c.Context)
		}
		return
	}

	c.Container.Notification().Notify(report.VictimID,
		fmt.Sprintf("Your report #%d status has been updated to %s", report.ID, report.Status))
	c.Container.Audit().Record(&officerID, "Case Status Updated",
		fmt.Sprintf("Case #%d set to %s", report.ID, report.Status),
		"Success", c.Context.ClientIP())
	response.Message(c.Context, "Status updated successfully")
}

// AddCaseLog 追加办案日志
// @Summary      追加办案日志
// @Tags         Officer
// @Accept       json
// @Produce      json
// @Param        id path int true "案件ID"
// @Param        request body AddLogRequest true "日志内容"
// @Success      201  {object}  map[string]string  "追加成功"
// @Failure      400  {object}  response.ErrorBody  "动作无效"
// @Failure      404  {object}  response.ErrorBody  "案件不存在或未分配"
// @Router       /officer/case/{id}/logs [post]
func (c *OfficerController) AddCaseLog() {
	caseID, ok := c.caseIDParam()
	if !ok {
		return
	}
	if !c.ensureAssigned(caseID) {
		return
	}

	var req AddLogRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, "Action and notes are required")
		return
	}

	officerID := currentUserID(c.Context)
	if _, err := c.Container.CaseLog().Add(caseID, officerID, req.Action, req.Notes); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidLogAction):
			response.FailWithMessage(c.Context, code.ErrInvalidLogAction, "Invalid log action")
		case errors.Is(err, services.ErrEmptyLogNotes):
			response.ParamError(c.Context, "Notes are required")
		default:
			response.ServerError(c.Context)
		}
		return
	}

	c.Context.JSON(http.StatusCreated, gin.H{"message": "Log entry added successfully"})
}

// GetCaseLogs 查看案件的办案日志
// @Summary      案件日志
// @Tags         Officer
// @Produce      json
// @Param        id path int true "案件ID"
// @Success      200  {object}  map[string]interface{}  "日志列表"
// @Failure      404  {object}  response.ErrorBody  "案件不存在或未分配"
// @Router       /officer/case/{id}/logs [get]
func (c *OfficerController) GetCaseLogs() {
	caseID, ok := c.caseIDParam()
	if !ok {
		return
	}
	if !c.ensureAssigned(caseID) {
		return
	}

	logs, err := c.Container.CaseLog().ListByReport(caseID)
	if err != nil {
		response.ServerError(c.Context)
		return
	}
	response.Success(c.Context, gin.H{"logs": logs})
}

// GetCaseEvidence 查看案件的证据文件
// @Summary      案件证据
// @Tags         Officer
// @Produce      json
// @Param        id path int true "案件ID"
// @Success      200  {object}  map[string]interface{}  "证据列表"
// @Failure      404  {object}  response.ErrorBody  "案件不存在或未分配"
// @Router       /officer/case/{id}/evidence [get]
func (c *OfficerController) GetCaseEvidence() {
	caseID, ok := c.caseIDParam()
	if !ok {
		return
	}
	if !c.ensureAssigned(caseID) {
		return
	}

	evidence, err := c.Container.Evidence().ListByReport(caseID)
	if err != nil {
		response.ServerError(c.Context)
		return
	}
	response.Success(c.Context, gin.H{"evidence": evidence})
}

// UploadCaseEvidence 为案件上传证据文件
// @Summary      上传案件证据
// @Tags         Officer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path int true "案件ID"
// @Param        files formData file true "证据文件"
// @Success      201  {object}  map[string]interface{}  "上传成功"
// @Failure      400  {object}  response.ErrorBody  "未提供文件"
// @Failure      404  {object}  response.ErrorBody  "案件不存在或未分配"
// @Router       /officer/case/{id}/evidence [post]
func (c *OfficerController) UploadCaseEvidence() {
	caseID, ok := c.caseIDParam()
	if !ok {
		return
	}
	if !c.ensureAssigned(caseID) {
		return
	}

	form, err := c.Context.MultipartForm()
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrNoFilesProvided, "No files provided")
		return
	}
	files := form.File["files"]
	description := c.Context.PostForm("description")

	officerID := currentUserID(c.Context)
	saved, err := c.Container.Evidence().SaveFiles(caseID, officerID, description, files)
	if err != nil {
		if errors.Is(err, services.ErrNoFilesProvided) {
			response.FailWithMessage(c.Context, code.ErrNoFilesProvided, "No files provided")
			return
		}
		response.Fail(c.Context, code.ErrFileSaveFailed)
		return
	}

	c.Context.JSON(http.StatusCreated, gin.H{
		"message":  "Evidence uploaded successfully",
		"uploaded": len(saved),
	})
}

// GetEvidenceLibrary 名下所有案件的证据汇总
// @Summary      证据库
// @Tags         Officer
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "证据列表"
// @Router       /officer/all_evidence [get]
func (c *OfficerController) GetEvidenceLibrary() {
	evidence, err := c.Container.Evidence().ListByOfficer(currentUserID(c.Context))
	if err != nil {
		response.ServerError(c.Context)
		return
	}
	response.Success(c.Context, gin.H{"evidence": evidence})
}

// GetDashboard 警员工作台：按优先级排序的在办案件队列
// @Summary      警员工作台
// @Description  按罪案类型、积压天数与状态计算优先级，降序返回在办案件
// @Tags         Officer
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "优先级队列"
// @Router       /officer/dashboard [get]
func (c *OfficerController) GetDashboard() {
	officerID := currentUserID(c.Context)
	cases, err := c.Container.Case().GetAssignedCases(officerID, services.CaseFilter{})
	if err != nil {
		response.ServerError(c.Context)
		return
	}

	queue := services.BuildPriorityQueue(cases, time.Now())
	workload, err := c.Container.Case().Workload(officerID)
	if err != nil {
		response.ServerError(c.Context)
		return
	}

	response.Success(c.Context, gin.H{
		"queue":    queue,
		"workload": workload,
	})
}

// GetWorkload 获取警员的办案负荷统计
// @Summary      办案负荷
// @Tags         Officer
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "负荷统计"
// @Router       /officer/workload [get]
func (c *OfficerController) GetWorkload() {
	workload, err := c.Container.Case().Workload(currentUserID(c.Context))
	if err != nil {
		response.ServerError(c.Context)
		return
	}
	response.Success(c.Context, gin.H{"workload": workload})
}
