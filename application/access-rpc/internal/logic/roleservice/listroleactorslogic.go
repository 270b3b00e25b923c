package roleservicelogic

import (
	"context"
	"errors"

	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/code"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/model"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/svc"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/pb"
	"github.com/yanshicheng/catalog-nova/common/urn"
	"github.com/yanshicheng/catalog-nova/common/vars"
	"github.com/zeromicro/go-zero/core/logx"
)

type ListRoleActorsLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewListRoleActorsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListRoleActorsLogic {
	return &ListRoleActorsLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// 分页查询角色成员
func (l *ListRoleActorsLogic) ListRoleActors(in *pb.ListRoleActorsReq) (*pb.ListRoleActorsResp, error) {
	if _, err := urn.Parse(in.RoleUrn); err != nil {
		return nil, code.InvalidUrnErr
	}
	if in.Page == 0 || in.PageSize == 0 || in.PageSize > vars.MaxPageSize {
		return nil, code.ParameterIllegal
	}

	role, err := findActiveRole(l.ctx, l.svcCtx, in.RoleUrn)
	if errors.Is(err, model.ErrNotFound) {
		return nil, code.RoleNotExistErr
	}
	if err != nil {
		l.Errorf("查询角色失败: urn=%s, 错误: %v", in.RoleUrn, err)
		return nil, code.FindRoleErr
	}

	rows, total, err := l.svcCtx.SysRoleActor.FindPageByRoleId(l.ctx, role.Id, in.Page, in.PageSize)
	if err != nil {
		l.Errorf("查询角色成员失败: role=%s, 错误: %v", in.RoleUrn, err)
		return nil, code.FindRoleActorErr
	}

	items := make([]*pb.RoleActor, 0, len(rows))
	for _, row := range rows {
		items = append(items, &pb.RoleActor{
			ActorUrn:  row.ActorUrn,
			ActorType: row.ActorType,
			CreatedBy: row.CreatedBy,
			CreatedAt: row.CreatedAt.Unix(),
		})
	}
	return &pb.ListRoleActorsResp{Total: total, Items: items}, nil
}
