package authz

import (
	"context"
	"fmt"

	"github.com/casbin/casbin/v2/model"
	"github.com/casbin/casbin/v2/persist"
	model2 "github.com/yanshicheng/catalog-nova/application/access-rpc/internal/model"
	"github.com/zeromicro/go-zero/core/logx"
)

// PrivilegeSource 角色平台权限来源
type PrivilegeSource interface {
	FindAllRolePrivileges(ctx context.Context) ([]*model2.RolePrivilege, error)
}

// BindingSource 角色成员绑定来源
type BindingSource interface {
	FindAllActorBindings(ctx context.Context) ([]*model2.ActorBinding, error)
}

// CasbinAdapter 从现有数据库表加载 Casbin 策略
type CasbinAdapter struct {
	privileges PrivilegeSource
	bindings   BindingSource
}

// NewCasbinAdapter 创建适配器
func NewCasbinAdapter(privileges PrivilegeSource, bindings BindingSource) *CasbinAdapter {
	return &CasbinAdapter{
		privileges: privileges,
		bindings:   bindings,
	}
}

// LoadPolicy 从数据库加载策略到 Casbin
// 权限策略: p, <roleUrn>, platform, <PRIVILEGE>
// 成员分组: g, <actorUrn>, <roleUrn>
// urn 中可能包含逗号，因此按数组加载而不是拼接策略行
func (a *CasbinAdapter) LoadPolicy(m model.Model) error {
	ctx := context.Background()

	privileges, err := a.privileges.FindAllRolePrivileges(ctx)
	if err != nil {
		return fmt.Errorf("查询角色权限失败: %w", err)
	}

	policyCount := 0
	for _, p := range privileges {
		rule := []string{"p", p.RoleUrn, PlatformResource, p.Privilege}
		if err := persist.LoadPolicyArray(rule, m); err != nil {
			logx.Errorf("[Adapter] 加载策略失败: %v, 错误: %v", rule, err)
			continue
		}
		policyCount++
	}

	bindings, err := a.bindings.FindAllActorBindings(ctx)
	if err != nil {
		return fmt.Errorf("查询角色成员失败: %w", err)
	}

	groupingCount := 0
	for _, b := range bindings {
		rule := []string{"g", b.ActorUrn, b.RoleUrn}
		if err := persist.LoadPolicyArray(rule, m); err != nil {
			logx.Errorf("[Adapter] 加载分组失败: %v, 错误: %v", rule, err)
			continue
		}
		groupingCount++
	}

	logx.Infof("[Adapter] 策略加载完成，共 %d 条权限策略，%d 条成员分组", policyCount, groupingCount)
	return nil
}

// SavePolicy 策略通过 sys_role_privilege 与 sys_role_actor 表管理，不需要回写
func (a *CasbinAdapter) SavePolicy(m model.Model) error {
	return nil
}

// AddPolicy 成员绑定先写库再更新 Enforcer，这里无需持久化
func (a *CasbinAdapter) AddPolicy(sec string, ptype string, rule []string) error {
	return nil
}

// RemovePolicy 删除单条策略
func (a *CasbinAdapter) RemovePolicy(sec string, ptype string, rule []string) error {
	return nil
}

// RemoveFilteredPolicy 删除过滤策略
func (a *CasbinAdapter) RemoveFilteredPolicy(sec string, ptype string, fieldIndex int, fieldValues ...string) error {
	return nil
}

// 确保实现了 persist.Adapter 接口
var _ persist.Adapter = (*CasbinAdapter)(nil)
