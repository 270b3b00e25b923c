package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/model"
	"github.com/zeromicro/go-zero/core/logx"
	"sigs.k8s.io/yaml"
)

const systemOperator = "system"

// RoleSeed 默认角色定义
type RoleSeed struct {
	Urn         string   `json:"urn"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Privileges  []string `json:"privileges"`
}

type roleSeedFile struct {
	Roles []RoleSeed `json:"roles"`
}

// RoleStore 角色表读写
type RoleStore interface {
	FindOneByUrn(ctx context.Context, urn string) (*model.SysRole, error)
	Insert(ctx context.Context, data *model.SysRole) (sql.Result, error)
}

// PrivilegeStore 角色权限表读写
type PrivilegeStore interface {
	FindOneByRoleIdPrivilege(ctx context.Context, roleId uint64, privilege string) (*model.SysRolePrivilege, error)
	Insert(ctx context.Context, data *model.SysRolePrivilege) (sql.Result, error)
}

// LoadRoleSeeds 读取默认角色文件
func LoadRoleSeeds(path string) ([]RoleSeed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取角色文件失败: %w", err)
	}

	var file roleSeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("解析角色文件失败: %w", err)
	}

	for i, seed := range file.Roles {
		if seed.Urn == "" {
			return nil, fmt.Errorf("第 %d 个角色缺少 urn", i+1)
		}
	}
	return file.Roles, nil
}

// SeedRoles 补齐缺失的角色与权限，已存在的记录保持不变
// 返回新增的权限条数
func SeedRoles(ctx context.Context, roles RoleStore, privileges PrivilegeStore, seeds []RoleSeed) (int, error) {
	created := 0
	for _, seed := range seeds {
		role, err := ensureRole(ctx, roles, seed)
		if err != nil {
			return created, err
		}

		for _, privilege := range seed.Privileges {
			_, err := privileges.FindOneByRoleIdPrivilege(ctx, role.Id, privilege)
			if err == nil {
				continue
			}
			if !errors.Is(err, model.ErrNotFound) {
				return created, fmt.Errorf("查询角色 %s 权限 %s 失败: %w", seed.Urn, privilege, err)
			}

			if _, err := privileges.Insert(ctx, &model.SysRolePrivilege{
				RoleId:    role.Id,
				Privilege: privilege,
			}); err != nil {
				return created, fmt.Errorf("写入角色 %s 权限 %s 失败: %w", seed.Urn, privilege, err)
			}
			created++
		}
	}

	logx.WithContext(ctx).Infof("[Bootstrap] 默认角色检查完成，共 %d 个角色，新增 %d 条权限", len(seeds), created)
	return created, nil
}

func ensureRole(ctx context.Context, roles RoleStore, seed RoleSeed) (*model.SysRole, error) {
	role, err := roles.FindOneByUrn(ctx, seed.Urn)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, fmt.Errorf("查询角色 %s 失败: %w", seed.Urn, err)
	}

	role = &model.SysRole{
		Urn:         seed.Urn,
		Name:        seed.Name,
		Description: seed.Description,
		CreatedBy:   systemOperator,
		UpdatedBy:   systemOperator,
	}
	result, err := roles.Insert(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("创建角色 %s 失败: %w", seed.Urn, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("获取角色 %s 主键失败: %w", seed.Urn, err)
	}
	role.Id = uint64(id)

	logx.WithContext(ctx).Infof("[Bootstrap] 创建默认角色: %s", seed.Urn)
	return role, nil
}
