package code

import "github.com/yanshicheng/catalog-nova/common/handler/errorx"

var (
	BindingErr       = errorx.New(102400, "参数绑定失败!")
	AuthorizationErr = errorx.New(102401, "Unauthorized to assign roles. Please contact your administrator if this needs corrective action.")
	NotFoundErr      = errorx.New(102404, "资源不存在!")
	UnexpectedErr    = errorx.New(102500, "服务内部错误!")

	// 认证相关错误
	TokenInvalidErr = errorx.New(102601, "Token验证失败!")
)
