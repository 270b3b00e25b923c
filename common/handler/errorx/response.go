package errorx

import (
	"net/http"

	"github.com/yanshicheng/catalog-nova/common/handler/errorx/types"
)

// ErrHandler httpx 全局错误处理，业务错误统一返回 200
// 消息取完整错误链，保留包装时附带的请求上下文
func ErrHandler(err error) (int, any) {
	code := CodeFromError(err)
	return http.StatusOK, types.Status{
		Code:    int32(code.Code()),
		Message: err.Error(),
	}
}
