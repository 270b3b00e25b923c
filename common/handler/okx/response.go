package okx

import "context"

// Response 统一成功响应体
type Response struct {
	Code    int    `json:"code"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// OkHandler httpx 全局成功响应包装
func OkHandler(_ context.Context, data any) any {
	return Response{
		Code:    0,
		Data:    data,
		Message: "OK",
	}
}
