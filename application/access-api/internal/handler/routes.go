package handler

import (
	"net/http"

	"github.com/yanshicheng/catalog-nova/application/access-api/internal/graph"
	graphHandler "github.com/yanshicheng/catalog-nova/application/access-api/internal/handler/graph"
	roleHandler "github.com/yanshicheng/catalog-nova/application/access-api/internal/handler/role"
	"github.com/yanshicheng/catalog-nova/application/access-api/internal/logic/role"
	"github.com/yanshicheng/catalog-nova/application/access-api/internal/svc"
	"github.com/yanshicheng/catalog-nova/common/future"

	"github.com/zeromicro/go-zero/rest"
)

// NewRegistry 注册全部 mutation 字段
func NewRegistry(serverCtx *svc.ServiceContext) *graph.Registry {
	registry := graph.NewRegistry()
	graph.RegisterMutation[bool](registry, role.BatchAssignRoleField,
		graph.DataFetcherFunc[bool](func(env *graph.Environment) (*future.Future[bool], error) {
			return role.NewBatchAssignRoleLogic(env.Context(), serverCtx).Get(env)
		}),
	)
	return registry
}

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	registry := NewRegistry(serverCtx)

	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.JWTAuthMiddleware},
			[]rest.Route{
				{
					// 字段解析入口
					Method:  http.MethodPost,
					Path:    "/graphql",
					Handler: graphHandler.GraphqlHandler(registry),
				},
			}...,
		),
		rest.WithPrefix("/access/v1"),
	)

	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.JWTAuthMiddleware},
			[]rest.Route{
				{
					// 批量为成员分配角色
					Method:  http.MethodPost,
					Path:    "/batch-assign",
					Handler: roleHandler.BatchAssignRoleHandler(serverCtx),
				},
				{
					// 分页查询角色成员
					Method:  http.MethodGet,
					Path:    "/actors",
					Handler: roleHandler.ListRoleActorsHandler(serverCtx),
				},
			}...,
		),
		rest.WithPrefix("/access/v1/roles"),
	)
}
