package config

import (
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/zrpc"
)

type Config struct {
	rest.RestConf
	AccessRpc zrpc.RpcClientConf

	Auth struct {
		AccessSecret string
	}

	// Batch 批量角色分配的后台任务池
	Batch struct {
		Workers int `json:",default=16"`
	}

	// Locale 参数校验提示语言 zh / en
	Locale string `json:",default=zh,options=zh|en"`
}
