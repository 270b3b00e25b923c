package main

import (
	"flag"
	"fmt"

	"github.com/yanshicheng/catalog-nova/application/access-api/internal/config"
	"github.com/yanshicheng/catalog-nova/application/access-api/internal/handler"
	"github.com/yanshicheng/catalog-nova/application/access-api/internal/svc"
	"github.com/yanshicheng/catalog-nova/common/handler/errorx"
	"github.com/yanshicheng/catalog-nova/common/handler/okx"
	"github.com/yanshicheng/catalog-nova/common/vars"
	"github.com/zeromicro/go-zero/rest/httpx"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/access-api.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	// 自定义错误
	httpx.SetErrorHandler(errorx.ErrHandler)
	httpx.SetOkHandler(okx.OkHandler)

	ctx := svc.NewServiceContext(c)
	defer ctx.TaskPool.Wait()
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting %s access-api %s at %s:%d...\n", vars.ProjectName, vars.ProjectVer, c.Host, c.Port)
	server.Start()
}
