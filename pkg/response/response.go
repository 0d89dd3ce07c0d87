package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CodeSuccess      = 0
	CodeParamError   = 400
	CodeUnauthorized = 401
	CodeNotFound     = 404
	CodeServerError  = 500

	// 业务错误码
	CodeMemberRequired  = 1001 // 直订未选择会员
	CodeUpstreamError   = 1002 // 上游接口失败
	CodeFieldReadonly   = 1003 // 字段不允许行内修改
	CodePartialFailure  = 1004 // 批量删除部分失败
	CodeBusinessFailure = 1005 // 上游 success=false
)

// Response 控制台统一响应壳
// 与上游接口保持同一形状 {code, success, message, data}
type Response struct {
	Code    int         `json:"code"`
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Success: true,
		Message: "success",
		Data:    data,
	})
}

func Error(c *gin.Context, httpStatus, code int, message string) {
	c.JSON(httpStatus, Response{
		Code:    code,
		Success: false,
		Message: message,
	})
}

func ParamError(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, CodeParamError, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, CodeUnauthorized, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, CodeNotFound, message)
}

func ServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, CodeServerError, message)
}

// UpstreamError 上游调用失败，HTTP 状态仍为 200，错误体现在业务码里
// 控制台的调用方按 toast 方式展示 message
func UpstreamError(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeUpstreamError,
		Success: false,
		Message: message,
	})
}
