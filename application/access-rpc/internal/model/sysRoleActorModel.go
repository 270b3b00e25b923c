package model

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// MySQL 唯一索引冲突错误码
const duplicateEntryErrNo = 1062

var _ SysRoleActorModel = (*customSysRoleActorModel)(nil)

type (
	// SysRoleActorModel is an interface to be customized, add more methods here,
	// and implement the added methods in customSysRoleActorModel.
	SysRoleActorModel interface {
		sysRoleActorModel
		// Bind 绑定成员到角色，绑定已存在时返回 false
		Bind(ctx context.Context, data *SysRoleActor) (bool, error)
		FindPageByRoleId(ctx context.Context, roleId uint64, page, pageSize uint64) ([]*SysRoleActor, uint64, error)
		FindAllActorBindings(ctx context.Context) ([]*ActorBinding, error)
	}

	customSysRoleActorModel struct {
		*defaultSysRoleActorModel
	}

	// ActorBinding 成员与角色 urn 的对应关系，用于加载 casbin 分组策略
	ActorBinding struct {
		ActorUrn string `db:"actor_urn"`
		RoleUrn  string `db:"role_urn"`
	}
)

// NewSysRoleActorModel returns a model for the database table.
func NewSysRoleActorModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) SysRoleActorModel {
	return &customSysRoleActorModel{
		defaultSysRoleActorModel: newSysRoleActorModel(conn, c, opts...),
	}
}

// Bind 依赖 (role_id, actor_urn) 唯一索引保证幂等
func (m *customSysRoleActorModel) Bind(ctx context.Context, data *SysRoleActor) (bool, error) {
	_, err := m.Insert(ctx, data)
	if err == nil {
		return true, nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == duplicateEntryErrNo {
		return false, nil
	}
	return false, err
}

// FindPageByRoleId 分页查询角色成员，返回当前页与总数
func (m *customSysRoleActorModel) FindPageByRoleId(ctx context.Context, roleId uint64, page, pageSize uint64) ([]*SysRoleActor, uint64, error) {
	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE `role_id` = ?", m.table)
	if err := m.QueryRowNoCacheCtx(ctx, &total, countQuery, roleId); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []*SysRoleActor{}, 0, nil
	}

	var resp []*SysRoleActor
	offset := (page - 1) * pageSize
	query := fmt.Sprintf("SELECT %s FROM %s WHERE `role_id` = ? ORDER BY `id` ASC LIMIT ?, ?", sysRoleActorRows, m.table)
	if err := m.QueryRowsNoCacheCtx(ctx, &resp, query, roleId, offset, pageSize); err != nil {
		return nil, 0, err
	}
	return resp, total, nil
}

// FindAllActorBindings 查询全部有效成员绑定
func (m *customSysRoleActorModel) FindAllActorBindings(ctx context.Context) ([]*ActorBinding, error) {
	var resp []*ActorBinding
	query := fmt.Sprintf("SELECT a.`actor_urn`, r.`urn` AS `role_urn` FROM %s a JOIN `sys_role` r ON r.`id` = a.`role_id` WHERE r.`is_deleted` = 0", m.table)
	if err := m.QueryRowsNoCacheCtx(ctx, &resp, query); err != nil {
		return nil, err
	}
	return resp, nil
}
