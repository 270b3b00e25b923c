package main

import (
	"flag"
	"fmt"

	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/config"
	authserviceServer "github.com/yanshicheng/catalog-nova/application/access-rpc/internal/server/authservice"
	roleserviceServer "github.com/yanshicheng/catalog-nova/application/access-rpc/internal/server/roleservice"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/svc"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/pb"
	"github.com/yanshicheng/catalog-nova/common/interceptors"
	"github.com/yanshicheng/catalog-nova/common/vars"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/zrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

var configFile = flag.String("f", "etc/access.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())
	ctx := svc.NewServiceContext(c)

	s := zrpc.MustNewServer(c.RpcServerConf, func(grpcServer *grpc.Server) {
		pb.RegisterAuthServiceServer(grpcServer, authserviceServer.NewAuthServiceServer(ctx))
		pb.RegisterRoleServiceServer(grpcServer, roleserviceServer.NewRoleServiceServer(ctx))
		if c.Mode == service.DevMode || c.Mode == service.TestMode {
			reflection.Register(grpcServer)
		}
	})
	defer s.Stop()

	// 自定义拦截器
	s.AddUnaryInterceptors(interceptors.ServerErrorInterceptor())
	s.AddUnaryInterceptors(interceptors.ServerMetadataInterceptor())
	fmt.Printf("Starting %s access-rpc %s at %s...\n", vars.ProjectName, vars.ProjectVer, c.ListenOn)
	s.Start()
}
