package pb

import (
	"context"

	"google.golang.org/grpc"
)

const (
	AuthService_CheckPrivilege_FullMethodName    = "/access.AuthService/CheckPrivilege"
	RoleService_RoleExists_FullMethodName        = "/access.RoleService/RoleExists"
	RoleService_AssignRoleToActor_FullMethodName = "/access.RoleService/AssignRoleToActor"
	RoleService_ListRoleActors_FullMethodName    = "/access.RoleService/ListRoleActors"
)

// ---------------------------- AuthService ----------------------------

type AuthServiceClient interface {
	CheckPrivilege(ctx context.Context, in *CheckPrivilegeReq, opts ...grpc.CallOption) (*CheckPrivilegeResp, error)
}

type authServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthServiceClient(cc grpc.ClientConnInterface) AuthServiceClient {
	return &authServiceClient{cc}
}

func (c *authServiceClient) CheckPrivilege(ctx context.Context, in *CheckPrivilegeReq, opts ...grpc.CallOption) (*CheckPrivilegeResp, error) {
	out := new(CheckPrivilegeResp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, AuthService_CheckPrivilege_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type AuthServiceServer interface {
	CheckPrivilege(context.Context, *CheckPrivilegeReq) (*CheckPrivilegeResp, error)
}

func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	s.RegisterService(&AuthService_ServiceDesc, srv)
}

func _AuthService_CheckPrivilege_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CheckPrivilegeReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServiceServer).CheckPrivilege(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AuthService_CheckPrivilege_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthServiceServer).CheckPrivilege(ctx, req.(*CheckPrivilegeReq))
	}
	return interceptor(ctx, in, info, handler)
}

var AuthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "access.AuthService",
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CheckPrivilege",
			Handler:    _AuthService_CheckPrivilege_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "access-rpc/pb",
}

// ---------------------------- RoleService ----------------------------

type RoleServiceClient interface {
	RoleExists(ctx context.Context, in *RoleExistsReq, opts ...grpc.CallOption) (*RoleExistsResp, error)
	AssignRoleToActor(ctx context.Context, in *AssignRoleToActorReq, opts ...grpc.CallOption) (*AssignRoleToActorResp, error)
	ListRoleActors(ctx context.Context, in *ListRoleActorsReq, opts ...grpc.CallOption) (*ListRoleActorsResp, error)
}

type roleServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRoleServiceClient(cc grpc.ClientConnInterface) RoleServiceClient {
	return &roleServiceClient{cc}
}

func (c *roleServiceClient) RoleExists(ctx context.Context, in *RoleExistsReq, opts ...grpc.CallOption) (*RoleExistsResp, error) {
	out := new(RoleExistsResp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, RoleService_RoleExists_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roleServiceClient) AssignRoleToActor(ctx context.Context, in *AssignRoleToActorReq, opts ...grpc.CallOption) (*AssignRoleToActorResp, error) {
	out := new(AssignRoleToActorResp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, RoleService_AssignRoleToActor_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roleServiceClient) ListRoleActors(ctx context.Context, in *ListRoleActorsReq, opts ...grpc.CallOption) (*ListRoleActorsResp, error) {
	out := new(ListRoleActorsResp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, RoleService_ListRoleActors_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type RoleServiceServer interface {
	RoleExists(context.Context, *RoleExistsReq) (*RoleExistsResp, error)
	AssignRoleToActor(context.Context, *AssignRoleToActorReq) (*AssignRoleToActorResp, error)
	ListRoleActors(context.Context, *ListRoleActorsReq) (*ListRoleActorsResp, error)
}

func RegisterRoleServiceServer(s grpc.ServiceRegistrar, srv RoleServiceServer) {
	s.RegisterService(&RoleService_ServiceDesc, srv)
}

func _RoleService_RoleExists_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RoleExistsReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoleServiceServer).RoleExists(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoleService_RoleExists_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoleServiceServer).RoleExists(ctx, req.(*RoleExistsReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoleService_AssignRoleToActor_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AssignRoleToActorReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoleServiceServer).AssignRoleToActor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoleService_AssignRoleToActor_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoleServiceServer).AssignRoleToActor(ctx, req.(*AssignRoleToActorReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoleService_ListRoleActors_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListRoleActorsReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoleServiceServer).ListRoleActors(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoleService_ListRoleActors_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoleServiceServer).ListRoleActors(ctx, req.(*ListRoleActorsReq))
	}
	return interceptor(ctx, in, info, handler)
}

var RoleService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "access.RoleService",
	HandlerType: (*RoleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RoleExists",
			Handler:    _RoleService_RoleExists_Handler,
		},
		{
			MethodName: "AssignRoleToActor",
			Handler:    _RoleService_AssignRoleToActor_Handler,
		},
		{
			MethodName: "ListRoleActors",
			Handler:    _RoleService_ListRoleActors_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "access-rpc/pb",
}
