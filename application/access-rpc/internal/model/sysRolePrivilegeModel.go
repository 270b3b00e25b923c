package model

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ SysRolePrivilegeModel = (*customSysRolePrivilegeModel)(nil)

type (
	// SysRolePrivilegeModel is an interface to be customized, add more methods here,
	// and implement the added methods in customSysRolePrivilegeModel.
	SysRolePrivilegeModel interface {
		sysRolePrivilegeModel
		FindAllRolePrivileges(ctx context.Context) ([]*RolePrivilege, error)
	}

	customSysRolePrivilegeModel struct {
		*defaultSysRolePrivilegeModel
	}

	// RolePrivilege 角色 urn 与平台权限的对应关系，用于加载 casbin 策略
	RolePrivilege struct {
		RoleUrn   string `db:"role_urn"`
		Privilege string `db:"privilege"`
	}
)

// NewSysRolePrivilegeModel returns a model for the database table.
func NewSysRolePrivilegeModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) SysRolePrivilegeModel {
	return &customSysRolePrivilegeModel{
		defaultSysRolePrivilegeModel: newSysRolePrivilegeModel(conn, c, opts...),
	}
}

// FindAllRolePrivileges 查询全部有效角色的平台权限
func (m *customSysRolePrivilegeModel) FindAllRolePrivileges(ctx context.Context) ([]*RolePrivilege, error) {
	var resp []*RolePrivilege
	query := fmt.Sprintf("SELECT r.`urn` AS `role_urn`, p.`privilege` FROM %s p JOIN `sys_role` r ON r.`id` = p.`role_id` WHERE r.`is_deleted` = 0", m.table)
	if err := m.QueryRowsNoCacheCtx(ctx, &resp, query); err != nil {
		return nil, err
	}
	return resp, nil
}
