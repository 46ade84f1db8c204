package response

import (
	"net/http"

	"tradesdk/internal/consts"
	"tradesdk/pkg/errors"
	"tradesdk/pkg/errors/ecode"

	"github.com/gin-gonic/gin"
)

// 代表响应给客户端的的一个消息结构，包括错误码，错误信息，响应数据
type ApiResponse struct {
	RequestId string      `json:"request_id"` // 请求的唯一ID
	Code      int         `json:"code"`       // 错误码 0表示无错误
	Message   string      `json:"message"`    // 提示信息
	Data      interface{} `json:"data"`       // 响应数据
}

// HTTPStatus 错误码对应的http状态码
func HTTPStatus(code int) int {
	switch code {
	case ecode.Success:
		return http.StatusOK
	case ecode.ValidateErr:
		return http.StatusBadRequest
	case ecode.NotFoundErr:
		return http.StatusNotFound
	case ecode.ConflictErr:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// 发送json格式数据
func JSON(c *gin.Context, err error, data interface{}) {
	code, message := errors.DecodeErr(err)
	c.JSON(HTTPStatus(code), ApiResponse{
		RequestId: c.GetString(consts.RequestId),
		Code:      code,
		Message:   message,
		Data:      data,
	})
}
