package errorx

import (
	"errors"
	"fmt"
	"strconv"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// XCode 业务错误码接口
type XCode interface {
	Error() string
	Code() int
	Message() string
}

// CodeError 带业务码的错误
type CodeError struct {
	code int
	msg  string
}

var _ XCode = (*CodeError)(nil)

// 通用错误码（第三、四位为 0）
var (
	OK               = add(0, "OK")
	ServerErr        = add(100500, "服务内部错误!")
	ParamsErr        = add(100400, "参数错误!")
	DatabaseQueryErr = add(100501, "数据库查询失败!")
	DatabaseExecErr  = add(100502, "数据库执行失败!")
	MsgCode          = 100999
)

func add(code int, msg string) *CodeError {
	return &CodeError{code: code, msg: msg}
}

// New 创建业务错误
func New(code int, msg string) *CodeError {
	return &CodeError{code: code, msg: msg}
}

// Msg 使用通用业务码创建错误
func Msg(msg string) *CodeError {
	return &CodeError{code: MsgCode, msg: msg}
}

// Msgf 格式化版本的 Msg
func Msgf(format string, args ...any) *CodeError {
	return Msg(fmt.Sprintf(format, args...))
}

func (e *CodeError) Error() string {
	return e.msg
}

func (e *CodeError) Code() int {
	return e.code
}

func (e *CodeError) Message() string {
	return e.msg
}

// WithMessage 复制错误并替换消息，业务码保持不变
func (e *CodeError) WithMessage(msg string) *CodeError {
	return &CodeError{code: e.code, msg: msg}
}

// Is 按业务码比较
func (e *CodeError) Is(target error) bool {
	var t *CodeError
	if !errors.As(target, &t) {
		return false
	}
	return t.code == e.code
}

// Err 转换为 gRPC status 错误
func (e *CodeError) Err() error {
	if e == nil || e.code == OK.code {
		return nil
	}
	return status.Error(codes.Code(e.code), e.msg)
}

// CodeFromError 从错误链中提取业务码，无法识别的错误归为 ServerErr
func CodeFromError(err error) XCode {
	if err == nil {
		return OK
	}
	var ce *CodeError
	if errors.As(err, &ce) {
		return ce
	}
	if st, ok := status.FromError(err); ok && st.Code() != codes.Unknown {
		return GrpcStatusToErrorX(st)
	}
	return ServerErr
}

// FromError 将任意错误转换为 CodeError，nil 保持为 nil
func FromError(err error) *CodeError {
	if err == nil {
		return nil
	}
	var ce *CodeError
	if errors.As(err, &ce) {
		return ce
	}
	if st, ok := status.FromError(err); ok {
		return GrpcStatusToErrorX(st)
	}
	return ServerErr.WithMessage(err.Error())
}

// GrpcStatusToErrorX 将 gRPC status 还原为业务错误
func GrpcStatusToErrorX(st *status.Status) *CodeError {
	if st == nil || st.Code() == codes.OK {
		return nil
	}
	code := int(st.Code())
	// 标准 gRPC 状态码（如超时、不可用）统一视为服务错误
	if code <= int(codes.Unauthenticated) {
		return ServerErr.WithMessage(st.Message())
	}
	return New(code, st.Message())
}

// String 便于日志输出
func (e *CodeError) String() string {
	return strconv.Itoa(e.code) + ": " + e.msg
}
