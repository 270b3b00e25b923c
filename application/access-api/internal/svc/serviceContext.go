package svc

import (
	"github.com/yanshicheng/catalog-nova/application/access-api/internal/config"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/client/authservice"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/client/roleservice"
	"github.com/yanshicheng/catalog-nova/common/future"
	"github.com/yanshicheng/catalog-nova/common/interceptors"
	"github.com/yanshicheng/catalog-nova/common/middleware"
	"github.com/yanshicheng/catalog-nova/common/verify"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/zrpc"
)

type ServiceContext struct {
	Config    config.Config
	Validator *verify.ValidatorInstance

	// access-rpc 客户端
	RoleRpc roleservice.RoleService

	// 角色分配依赖
	Authorizer  Authorizer
	RoleService RoleService
	TaskPool    *future.Pool

	JWTAuthMiddleware rest.Middleware
}

func NewServiceContext(c config.Config) *ServiceContext {
	validator, err := verify.InitValidator(c.Locale)
	if err != nil {
		panic(err)
	}

	// 自定义拦截器
	accessRpc := zrpc.MustNewClient(c.AccessRpc,
		zrpc.WithUnaryClientInterceptor(interceptors.ClientMetadataInterceptor()),
		zrpc.WithUnaryClientInterceptor(interceptors.ClientErrorInterceptor()),
	)
	roleRpc := roleservice.NewRoleService(accessRpc)

	return &ServiceContext{
		Config:            c,
		Validator:         validator,
		RoleRpc:           roleRpc,
		Authorizer:        NewRpcAuthorizer(authservice.NewAuthService(accessRpc)),
		RoleService:       NewRpcRoleService(roleRpc),
		TaskPool:          future.NewPool(c.Batch.Workers),
		JWTAuthMiddleware: middleware.NewJWTAuthMiddleware(c.Auth.AccessSecret).Handle,
	}
}
