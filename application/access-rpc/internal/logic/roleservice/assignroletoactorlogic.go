package roleservicelogic

import (
	"context"
	"errors"

	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/code"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/model"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/svc"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/pb"
	"github.com/yanshicheng/catalog-nova/common/ctxdata"
	"github.com/yanshicheng/catalog-nova/common/urn"
	"github.com/zeromicro/go-zero/core/logx"
)

type AssignRoleToActorLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewAssignRoleToActorLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AssignRoleToActorLogic {
	return &AssignRoleToActorLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// 绑定成员到角色，重复绑定视为成功
func (l *AssignRoleToActorLogic) AssignRoleToActor(in *pb.AssignRoleToActorReq) (*pb.AssignRoleToActorResp, error) {
	actor, err := urn.Parse(in.ActorUrn)
	if err != nil {
		return nil, code.InvalidUrnErr
	}
	if _, err := urn.Parse(in.RoleUrn); err != nil {
		return nil, code.InvalidUrnErr
	}

	role, err := findActiveRole(l.ctx, l.svcCtx, in.RoleUrn)
	if errors.Is(err, model.ErrNotFound) {
		return nil, code.RoleNotExistErr
	}
	if err != nil {
		l.Errorf("查询角色失败: urn=%s, 错误: %v", in.RoleUrn, err)
		return nil, code.FindRoleErr
	}

	created, err := l.svcCtx.SysRoleActor.Bind(l.ctx, &model.SysRoleActor{
		RoleId:    role.Id,
		ActorUrn:  actor.String(),
		ActorType: actor.ActorType(),
		CreatedBy: ctxdata.GetUserName(l.ctx),
	})
	if err != nil {
		l.Errorf("绑定角色失败: actor=%s, role=%s, 错误: %v", in.ActorUrn, in.RoleUrn, err)
		return nil, code.BindRoleErr
	}

	// 数据库已是最终状态，策略同步失败由定时任务兜底
	if err := l.svcCtx.AuthzManager.AddActorRole(l.ctx, actor.String(), role.Urn); err != nil {
		l.Errorf("更新权限策略失败: actor=%s, role=%s, 错误: %v", in.ActorUrn, in.RoleUrn, err)
	}

	if created {
		l.Infof("成员 %s 绑定角色 %s 成功", in.ActorUrn, in.RoleUrn)
	} else {
		l.Infof("成员 %s 已绑定角色 %s", in.ActorUrn, in.RoleUrn)
	}
	return &pb.AssignRoleToActorResp{Created: created}, nil
}
