package code

import "github.com/yanshicheng/catalog-nova/common/handler/errorx"

var (
	// 通用错误（第四位为 0）
	ParameterIllegal = errorx.New(102001, "参数不合法!")
	InvalidUrnErr    = errorx.New(102002, "urn 格式不合法!")
	DatabaseError    = errorx.New(102010, "数据库操作失败!")

	// 角色相关错误（第四位为 2）
	FindRoleErr      = errorx.New(102201, "查询角色失败!")
	BindRoleErr      = errorx.New(102203, "绑定角色失败!")
	FindRoleActorErr = errorx.New(102204, "查询角色成员失败!")
	RoleNotExistErr  = errorx.New(102404, "角色不存在!")

	// 权限相关错误（第四位为 3）
	CheckPrivilegeErr = errorx.New(102301, "检查权限失败!")
)
