package authservicelogic

import (
	"context"
	"strings"

	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/code"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/svc"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/pb"
	"github.com/yanshicheng/catalog-nova/common/urn"
	"github.com/zeromicro/go-zero/core/logx"
)

type CheckPrivilegeLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewCheckPrivilegeLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CheckPrivilegeLogic {
	return &CheckPrivilegeLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// 检查成员是否拥有平台权限
func (l *CheckPrivilegeLogic) CheckPrivilege(in *pb.CheckPrivilegeReq) (*pb.CheckPrivilegeResp, error) {
	if _, err := urn.Parse(in.ActorUrn); err != nil {
		return nil, code.InvalidUrnErr
	}
	privilege := strings.TrimSpace(in.Privilege)
	if privilege == "" {
		return nil, code.ParameterIllegal
	}

	allowed, err := l.svcCtx.AuthzManager.CheckPrivilege(l.ctx, in.ActorUrn, privilege)
	if err != nil {
		l.Errorf("检查权限失败: actor=%s, privilege=%s, 错误: %v", in.ActorUrn, privilege, err)
		return nil, code.CheckPrivilegeErr
	}

	return &pb.CheckPrivilegeResp{Allowed: allowed}, nil
}
