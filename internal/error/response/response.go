package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cybercrime-report-service/internal/error/code"
)

// ErrorBody 定义统一的错误响应格式。
// 前端约定：任何非 2xx 响应的 JSON 体都带有 error 字段。
type ErrorBody struct {
	Error string `json:"error"`
}

// Success 成功响应，直接返回载荷对象（如 {"reports": [...]}）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message 成功响应（仅携带提示消息）
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Fail 失败响应，HTTP状态码与文案由错误码表决定
func Fail(c *gin.Context, errorCode int) {
	c.JSON(code.GetStatus(errorCode), ErrorBody{Error: code.GetMessage(errorCode)})
}

// FailWithMessage 失败响应（自定义文案）
func FailWithMessage(c *gin.Context, errorCode int, message string) {
	c.JSON(code.GetStatus(errorCode), ErrorBody{Error: message})
}

// ParamError 参数错误响应
func ParamError(c *gin.Context, message string) {
	if message == "" {
		FailWithMessage(c, code.ErrBind, code.GetMessage(code.ErrBind))
		return
	}
	FailWithMessage(c, code.ErrBind, message)
}

// ServerError 服务器错误响应
func ServerError(c *gin.Context) {
	Fail(c, code.ErrDatabase)
}

// NotFound 资源不存在响应
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrRecordNotFound)
	}
	FailWithMessage(c, code.ErrRecordNotFound, message)
}

// Unauthorized 未授权响应
func Unauthorized(c *gin.Context) {
	Fail(c, code.ErrTokenInvalid)
}
