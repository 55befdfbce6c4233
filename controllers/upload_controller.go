package controllers

import (
	"net/http"

	"cybercrime-report-service/internal/error/code"
	"cybercrime-report-service/internal/error/response"
	"cybercrime-report-service/services/container"

	"github.com/gin-gonic/gin"
)

// UploadController 证据文件下载控制器
type UploadController struct {
	BaseControllerImpl
}

// NewUploadController 创建一个新的文件下载控制器
func (f *ControllerFactory) NewUploadController(ctx *gin.Context) *UploadController {
	return &UploadController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandleUploadFunc 返回一个处理文件下载请求的Gin处理函数
func HandleUploadFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewUploadController(ctx)

		switch method {
		case "serveFile":
			controller.ServeFile()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的方法"})
		}
	}
}

// ServeFile 按存储名返回证据文件
// @Summary      下载证据文件
// @Tags         Upload
// @Produce      octet-stream
// @Param        filename path string true "存储文件名"
// @Success      200  {file}    file  "文件内容"
// @Failure      404  {object}  response.ErrorBody  "文件不存在"
// @Router       /uploads/{filename} [get]
func (c *UploadController) ServeFile() {
	path, err := c.Container.Evidence().ResolveFile(c.Context.Param("filename"))
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrEvidenceNotFound, "File not found")
		return
	}
	c.Context.File(path)
}
