package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success 成功响应：在 {"status":"success"} 上合并业务载荷
// 响应体字段布局是对外契约，旧客户端按字段名取值，不能包壳。
func Success(c *gin.Context, extra gin.H) {
	body := gin.H{"status": "success"}
	for key, value := range extra {
		body[key] = value
	}
	c.JSON(http.StatusOK, body)
}

// Error 错误响应
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{
		"status":  "error",
		"message": message,
	})
}

// ErrorWithDetails 错误响应（带错误详情）
func ErrorWithDetails(c *gin.Context, httpStatus int, message, details string) {
	c.JSON(httpStatus, gin.H{
		"status":  "error",
		"message": message,
		"details": details,
	})
}

// BadRequest 400 响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 响应
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound 404 响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500 响应，固定文案加错误详情
func InternalError(c *gin.Context, err error) {
	details := ""
	if err != nil {
		details = err.Error()
	}
	ErrorWithDetails(c, http.StatusInternalServerError, "Internal Server Error", details)
}
