package role

import (
	"context"

	"github.com/yanshicheng/catalog-nova/application/access-api/internal/svc"
	"github.com/yanshicheng/catalog-nova/application/access-api/internal/types"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/client/roleservice"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListRoleActorsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListRoleActorsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListRoleActorsLogic {
	return &ListRoleActorsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListRoleActorsLogic) ListRoleActors(req *types.ListRoleActorsRequest) (resp *types.ListRoleActorsResponse, err error) {
	res, err := l.svcCtx.RoleRpc.ListRoleActors(l.ctx, &roleservice.ListRoleActorsReq{
		RoleUrn:  req.RoleUrn,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		l.Errorf("查询角色成员失败: role=%s, error=%v", req.RoleUrn, err)
		return nil, err
	}

	items := make([]types.RoleActor, 0, len(res.Items))
	for _, item := range res.Items {
		items = append(items, types.RoleActor{
			ActorUrn:  item.ActorUrn,
			ActorType: item.ActorType,
			CreatedBy: item.CreatedBy,
			CreatedAt: item.CreatedAt,
		})
	}
	return &types.ListRoleActorsResponse{
		Items: items,
		Total: res.Total,
	}, nil
}
