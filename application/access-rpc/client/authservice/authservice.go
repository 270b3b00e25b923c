package authservice

import (
	"context"

	"github.com/yanshicheng/catalog-nova/application/access-rpc/pb"

	"github.com/zeromicro/go-zero/zrpc"
	"google.golang.org/grpc"
)

type (
	CheckPrivilegeReq  = pb.CheckPrivilegeReq
	CheckPrivilegeResp = pb.CheckPrivilegeResp

	AuthService interface {
		CheckPrivilege(ctx context.Context, in *CheckPrivilegeReq, opts ...grpc.CallOption) (*CheckPrivilegeResp, error)
	}

	defaultAuthService struct {
		cli zrpc.Client
	}
)

func NewAuthService(cli zrpc.Client) AuthService {
	return &defaultAuthService{
		cli: cli,
	}
}

func (m *defaultAuthService) CheckPrivilege(ctx context.Context, in *CheckPrivilegeReq, opts ...grpc.CallOption) (*CheckPrivilegeResp, error) {
	client := pb.NewAuthServiceClient(m.cli.Conn())
	return client.CheckPrivilege(ctx, in, opts...)
}
