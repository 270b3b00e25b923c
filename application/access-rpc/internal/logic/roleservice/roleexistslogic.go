package roleservicelogic

import (
	"context"
	"errors"

	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/code"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/model"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/svc"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/pb"
	"github.com/yanshicheng/catalog-nova/common/urn"
	"github.com/zeromicro/go-zero/core/logx"
)

type RoleExistsLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewRoleExistsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RoleExistsLogic {
	return &RoleExistsLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// 判断角色是否存在，已删除的角色视为不存在
func (l *RoleExistsLogic) RoleExists(in *pb.RoleExistsReq) (*pb.RoleExistsResp, error) {
	if _, err := urn.Parse(in.RoleUrn); err != nil {
		return nil, code.InvalidUrnErr
	}

	_, err := findActiveRole(l.ctx, l.svcCtx, in.RoleUrn)
	if errors.Is(err, model.ErrNotFound) {
		return &pb.RoleExistsResp{Exists: false}, nil
	}
	if err != nil {
		l.Errorf("查询角色失败: urn=%s, 错误: %v", in.RoleUrn, err)
		return nil, code.FindRoleErr
	}
	return &pb.RoleExistsResp{Exists: true}, nil
}

// findActiveRole 查询未删除的角色
func findActiveRole(ctx context.Context, svcCtx *svc.ServiceContext, roleUrn string) (*model.SysRole, error) {
	role, err := svcCtx.SysRole.FindOneByUrn(ctx, roleUrn)
	if err != nil {
		return nil, err
	}
	if role.IsDeleted == 1 {
		return nil, model.ErrNotFound
	}
	return role, nil
}
