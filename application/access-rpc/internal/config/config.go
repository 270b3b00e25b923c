package config

import (
	"time"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/zrpc"
)

type Config struct {
	zrpc.RpcServerConf
	Mysql struct {
		DataSource      string
		MaxOpenConns    int           `json:",default=100"` // 最大连接数
		MaxIdleConns    int           `json:",default=10"`  // 最大空闲连接数
		ConnMaxLifetime time.Duration `json:",default=1h"`  // 连接的最大生命周期
	}
	DBCache cache.CacheConf
	Cache   redis.RedisConf

	Authz     AuthzConfig
	Bootstrap BootstrapConfig
}

// AuthzConfig 权限引擎配置
type AuthzConfig struct {
	// RootActors 始终拥有全部平台权限的用户 urn，用于初始化阶段
	RootActors []string `json:",optional"`

	// ResyncInterval 定时全量重载策略的间隔，0 表示关闭
	ResyncInterval time.Duration `json:",default=5m"`
}

// BootstrapConfig 默认角色初始化配置
type BootstrapConfig struct {
	Enabled   bool   `json:",default=true"`
	RolesFile string `json:",default=etc/roles.yaml"`
}
