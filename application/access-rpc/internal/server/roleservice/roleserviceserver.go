package server

import (
	"context"

	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/logic/roleservice"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/svc"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/pb"
)

type RoleServiceServer struct {
	svcCtx *svc.ServiceContext
}

var _ pb.RoleServiceServer = (*RoleServiceServer)(nil)

func NewRoleServiceServer(svcCtx *svc.ServiceContext) *RoleServiceServer {
	return &RoleServiceServer{
		svcCtx: svcCtx,
	}
}

func (s *RoleServiceServer) RoleExists(ctx context.Context, in *pb.RoleExistsReq) (*pb.RoleExistsResp, error) {
	l := roleservicelogic.NewRoleExistsLogic(ctx, s.svcCtx)
	return l.RoleExists(in)
}

func (s *RoleServiceServer) AssignRoleToActor(ctx context.Context, in *pb.AssignRoleToActorReq) (*pb.AssignRoleToActorResp, error) {
	l := roleservicelogic.NewAssignRoleToActorLogic(ctx, s.svcCtx)
	return l.AssignRoleToActor(in)
}

func (s *RoleServiceServer) ListRoleActors(ctx context.Context, in *pb.ListRoleActorsReq) (*pb.ListRoleActorsResp, error) {
	l := roleservicelogic.NewListRoleActorsLogic(ctx, s.svcCtx)
	return l.ListRoleActors(in)
}
