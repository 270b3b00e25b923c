package svc

import (
	"context"

	"github.com/yanshicheng/catalog-nova/application/access-rpc/client/authservice"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/client/roleservice"
	"github.com/yanshicheng/catalog-nova/common/ctxdata"
	"github.com/zeromicro/go-zero/core/logx"
)

const privilegeManagePolicies = "MANAGE_POLICIES"

// Authorizer 平台权限判断
type Authorizer interface {
	CanManagePolicies(ctx context.Context) bool
}

// RoleService 角色分配所需的最小能力，调用方凭证经由 context 传递
type RoleService interface {
	Exists(ctx context.Context, roleUrn string) (bool, error)
	AssignRoleToActor(ctx context.Context, actorUrn string, roleUrn string) error
}

type rpcAuthorizer struct {
	auth authservice.AuthService
}

// NewRpcAuthorizer 基于 access-rpc 的权限判断，调用失败按无权限处理
func NewRpcAuthorizer(auth authservice.AuthService) Authorizer {
	return &rpcAuthorizer{auth: auth}
}

func (a *rpcAuthorizer) CanManagePolicies(ctx context.Context) bool {
	caller, ok := ctxdata.GetAuthentication(ctx)
	if !ok {
		return false
	}

	resp, err := a.auth.CheckPrivilege(ctx, &authservice.CheckPrivilegeReq{
		ActorUrn:  caller.ActorUrn,
		Privilege: privilegeManagePolicies,
	})
	if err != nil {
		logx.WithContext(ctx).Errorf("[Authorizer] 检查权限失败，按无权限处理: actor=%s, error=%v", caller.ActorUrn, err)
		return false
	}
	return resp.Allowed
}

type rpcRoleService struct {
	roles roleservice.RoleService
}

// NewRpcRoleService 基于 access-rpc 的角色服务
func NewRpcRoleService(roles roleservice.RoleService) RoleService {
	return &rpcRoleService{roles: roles}
}

func (s *rpcRoleService) Exists(ctx context.Context, roleUrn string) (bool, error) {
	resp, err := s.roles.RoleExists(ctx, &roleservice.RoleExistsReq{RoleUrn: roleUrn})
	if err != nil {
		return false, err
	}
	return resp.Exists, nil
}

func (s *rpcRoleService) AssignRoleToActor(ctx context.Context, actorUrn string, roleUrn string) error {
	_, err := s.roles.AssignRoleToActor(ctx, &roleservice.AssignRoleToActorReq{
		ActorUrn: actorUrn,
		RoleUrn:  roleUrn,
	})
	return err
}
