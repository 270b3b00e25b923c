package server

import (
	"context"

	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/logic/authservice"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/svc"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/pb"
)

type AuthServiceServer struct {
	svcCtx *svc.ServiceContext
}

var _ pb.AuthServiceServer = (*AuthServiceServer)(nil)

func NewAuthServiceServer(svcCtx *svc.ServiceContext) *AuthServiceServer {
	return &AuthServiceServer{
		svcCtx: svcCtx,
	}
}

func (s *AuthServiceServer) CheckPrivilege(ctx context.Context, in *pb.CheckPrivilegeReq) (*pb.CheckPrivilegeResp, error) {
	l := authservicelogic.NewCheckPrivilegeLogic(ctx, s.svcCtx)
	return l.CheckPrivilege(in)
}
