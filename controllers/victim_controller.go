package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"cybercrime-report-service/config"
	"cybercrime-report-service/internal/error/code"
	"cybercrime-report-service/internal/error/response"
	"cybercrime-report-service/services"
	"cybercrime-report-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceVictimController 定义受害人控制器接口
type InterfaceVictimController interface {
	CreateReport()
	GetMyReports()
	GetReportDetail()
	UploadEvidence()
	GetReportLogs()
}

// VictimController 受害人控制器
type VictimController struct {
	BaseControllerImpl
}

// NewVictimController 创建一个新的受害人控制器
func (f *ControllerFactory) NewVictimController(ctx *gin.Context) *VictimController {
	return &VictimController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandleVictimFunc 返回一个处理受害人请求的Gin处理函数
func HandleVictimFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewVictimController(ctx)

		switch method {
		case "createReport":
			controller.CreateReport()
		case "getMyReports":
			controller.GetMyReports()
		case "getReportDetail":
			controller.GetReportDetail()
		case "uploadEvidence":
			controller.UploadEvidence()
		case "getReportLogs":
			controller.GetReportLogs()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的方法"})
		}
	}
}

// reportIDParam 解析路径中的举报ID
func (c *VictimController) reportIDParam() (uint, bool) {
	id, err := strconv.ParseUint(c.Context.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Context, "Invalid report id")
		return 0, false
	}
	return uint(id), true
}

// CreateReport 提交举报
// @Summary      提交网络犯罪举报
// @Description  支持JSON提交，或以表单提交并随报案附带证据文件
// @Tags         Victim
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Param        request body services.ReportInput true "举报内容"
// @Success      201  {object}  map[string]interface{}  "提交成功"
// @Failure      400  {object}  response.ErrorBody  "参数错误"
// @Router       /victim/report [post]
func (c *VictimController) CreateReport() {
	userID := currentUserID(c.Context)

	// 表单提交时可以随报案附带证据文件，JSON提交则只有文本字段
	var input services.ReportInput
	multipartForm := strings.HasPrefix(c.Context.ContentType(), "multipart/form-data")
	if multipartForm {
		input = services.ReportInput{
			CrimeType:    c.Context.PostForm("crime_type"),
			Description:  c.Context.PostForm("description"),
			DateOccurred: c.Context.PostForm("date_occurred"),
			Location:     c.Context.PostForm("location"),
		}
	} else if err := c.Context.ShouldBindJSON(&input); err != nil {
		response.ParamError(c.Context, "All fields are required")
		return
	}

	report, err := c.Container.Report().CreateReport(userID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReportMissingFields),
			errors.Is(err, services.ErrInvalidDateOccurred):
			response.ParamError(c.Context, err.Error())
		default:
			response.ServerError(c.Context)
		}
		return
	}

	uploaded := 0
	if multipartForm {
		if form, err := c.Context.MultipartForm(); err == nil {
			if files := form.File["files"]; len(files) > 0 {
				saved, err := c.Container.Evidence().SaveFiles(report.ID, userID, "", files)
				if err != nil {
					config.Error("随报案上传证据失败: %v", err)
				} else {
					uploaded = len(saved)
				}
			}
		}
	}

	c.Container.Audit().Record(&userID, "Report Submitted",
		fmt.Sprintf("Report #%d (%s) submitted", report.ID, report.CrimeType),
		"Success", c.Context.ClientIP())
	c.Context.JSON(http.StatusCreated, gin.H{
		"message":   "Report submitted successfully",
		"report_id": report.ID,
		"uploaded":  uploaded,
	})
}

// GetMyReports 获取自己的举报列表
// @Summary      我的举报
// @Tags         Victim
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "举报列表"
// @Router       /victim/reports [get]
func (c *VictimController) GetMyReports() {
	reports, err := c.Container.Report().GetVictimReports(currentUserID(c.Context))
	if err != nil {
		response.ServerError(c.Context)
		return
	}
	response.Success(c.Context, gin.H{"reports": reports})
}

// GetReportDetail 获取单条举报详情（含证据与办案日志）
// @Summary      举报详情
// @Tags         Victim
// @Produce      json
// @Param        id path int true "举报ID"
// @Success      200  {object}  map[string]interface{}  "举报详情"
// @Failure      404  {object}  response.ErrorBody  "举报不存在"
// @Router       /victim/report/{id} [get]
func (c *VictimController) GetReportDetail() {
	reportID, ok := c.reportIDParam()
	if !ok {
		return
	}
	userID := currentUserID(c.Context)

	detail, err := c.Container.Report().GetVictimReportDetail(userID, reportID)
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			response.FailWithMessage(c.Context, code.ErrReportNotFound, "Report not found")
			return
		}
		response.ServerError(c.Context)
		return
	}

	evidence, err := c.Container.Evidence().ListByReport(reportID)
	if err != nil {
		response.ServerError(c.Context)
		return
	}

	response.Success(c.Context, gin.H{
		"report":   detail,
		"evidence": evidence,
	})
}

// UploadEvidence 为自己的举报上传证据文件
// @Summary      上传证据
// @Tags         Victim
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path int true "举报ID"
// @Param        files formData file true "证据文件"
// @Success      201  {object}  map[string]interface{}  "上传成功"
// @Failure      400  {object}  response.ErrorBody  "未提供文件"
// @Failure      404  {object}  response.ErrorBody  "举报不存在"
// @Router       /victim/report/{id}/evidence [post]
func (c *VictimController) UploadEvidence() {
	reportID, ok := c.reportIDParam()
	if !ok {
		return
	}
	userID := currentUserID(c.Context)

	owned, err := c.Container.Report().OwnedByVictim(userID, reportID)
	if err != nil {
		response.ServerError(c.Context)
		return
	}
	if !owned {
		response.FailWithMessage(c.Context, code.ErrReportNotFound, "Report not found")
		return
	}

	form, err := c.Context.MultipartForm()
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrNoFilesProvided, "No files provided")
		return
	}
	files := form.File["files"]
	description := c.Context.PostForm("description")

	saved, err := c.Container.Evidence().SaveFiles(reportID, userID, description, files)
	if err != nil {
		if errors.Is(err, services.ErrNoFilesProvided) {
			response.FailWithMessage(c.Context, code.ErrNoFilesProvided, "No files provided")
			return
		}
		response.Fail(c.Context, code.ErrFileSaveFailed)
		return
	}

	c.Container.Audit().Record(&userID, "Evidence Uploaded",
		fmt.Sprintf("%d file(s) added to report #%d", len(saved), reportID),
		"Success", c.Context.ClientIP())
	c.Context.JSON(http.StatusCreated, gin.H{
		"message":  "Evidence uploaded successfully",
		"uploaded": len(saved),
	})
}

// GetReportLogs 查看自己举报的办案进展日志
// @Summary      举报的办案日志
// @Tags         Victim
// @Produce      json
// @Param        id path int true "举报ID"
// @Success      200  {object}  map[string]interface{}  "日志列表"
// @Failure      404  {object}  response.ErrorBody  "举报不存在"
// @Router       /victim/report/{id}/logs [get]
func (c *VictimController) GetReportLogs() {
	reportID, ok := c.reportIDParam()
	if !ok {
		return
	}
	userID := currentUserID(c.Context)

	owned, err := c.Container.Report().OwnedByVictim(userID, reportID)
	if err != nil {
		response.ServerError(c.Context)
		return
	}
	if !owned {
		response.FailWithMessage(c.Context, code.ErrReportNotFound, "Report not found")
		return
	}

	logs, err := c.Container.CaseLog().ListByReport(reportID)
	if err != nil {
		response.ServerError(c.Context)
		return
	}
	response.Success(c.Context, gin.H{"logs": logs})
}
