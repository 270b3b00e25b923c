package roleservice

import (
	"context"

	"github.com/yanshicheng/catalog-nova/application/access-rpc/pb"

	"github.com/zeromicro/go-zero/zrpc"
	"google.golang.org/grpc"
)

type (
	AssignRoleToActorReq  = pb.AssignRoleToActorReq
	AssignRoleToActorResp = pb.AssignRoleToActorResp
	ListRoleActorsReq     = pb.ListRoleActorsReq
	ListRoleActorsResp    = pb.ListRoleActorsResp
	RoleActor             = pb.RoleActor
	RoleExistsReq         = pb.RoleExistsReq
	RoleExistsResp        = pb.RoleExistsResp

	RoleService interface {
		RoleExists(ctx context.Context, in *RoleExistsReq, opts ...grpc.CallOption) (*RoleExistsResp, error)
		AssignRoleToActor(ctx context.Context, in *AssignRoleToActorReq, opts ...grpc.CallOption) (*AssignRoleToActorResp, error)
		ListRoleActors(ctx context.Context, in *ListRoleActorsReq, opts ...grpc.CallOption) (*ListRoleActorsResp, error)
	}

	defaultRoleService struct {
		cli zrpc.Client
	}
)

func NewRoleService(cli zrpc.Client) RoleService {
	return &defaultRoleService{
		cli: cli,
	}
}

func (m *defaultRoleService) RoleExists(ctx context.Context, in *RoleExistsReq, opts ...grpc.CallOption) (*RoleExistsResp, error) {
	client := pb.NewRoleServiceClient(m.cli.Conn())
	return client.RoleExists(ctx, in, opts...)
}

func (m *defaultRoleService) AssignRoleToActor(ctx context.Context, in *AssignRoleToActorReq, opts ...grpc.CallOption) (*AssignRoleToActorResp, error) {
	client := pb.NewRoleServiceClient(m.cli.Conn())
	return client.AssignRoleToActor(ctx, in, opts...)
}

func (m *defaultRoleService) ListRoleActors(ctx context.Context, in *ListRoleActorsReq, opts ...grpc.CallOption) (*ListRoleActorsResp, error) {
	client := pb.NewRoleServiceClient(m.cli.Conn())
	return client.ListRoleActors(ctx, in, opts...)
}
