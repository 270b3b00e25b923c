package svc

import (
	"context"
	"log"

	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/authz"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/bootstrap"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/config"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/model"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

const (
	bootstrapLockKey    = "catalog:access:bootstrap:lock"
	bootstrapLockExpire = 60
)

type ServiceContext struct {
	Config config.Config
	Cache  *redis.Redis

	// 数据模型
	SysRole          model.SysRoleModel
	SysRoleActor     model.SysRoleActorModel
	SysRolePrivilege model.SysRolePrivilegeModel

	// Casbin RBAC 管理器
	AuthzManager authz.Manager
}

func NewServiceContext(c config.Config) *ServiceContext {
	sqlConn := sqlx.NewMysql(c.Mysql.DataSource)
	rawDB, err := sqlConn.RawDB()
	if err != nil {
		log.Fatal(err)
	}

	// 配置连接池参数
	rawDB.SetMaxOpenConns(c.Mysql.MaxOpenConns)
	rawDB.SetMaxIdleConns(c.Mysql.MaxIdleConns)
	rawDB.SetConnMaxLifetime(c.Mysql.ConnMaxLifetime)

	rdb := redis.MustNewRedis(c.Cache)

	sysRole := model.NewSysRoleModel(sqlConn, c.DBCache)
	sysRoleActor := model.NewSysRoleActorModel(sqlConn, c.DBCache)
	sysRolePrivilege := model.NewSysRolePrivilegeModel(sqlConn, c.DBCache)

	// 先补齐默认角色，再加载策略
	if c.Bootstrap.Enabled {
		if err := seedDefaultRoles(rdb, c.Bootstrap.RolesFile, sysRole, sysRolePrivilege); err != nil {
			log.Fatalf("初始化默认角色失败: %v", err)
		}
	}

	rbacManager, err := authz.NewCasbinRBACManager(authz.ManagerConfig{
		RedisConf:      c.Cache,
		RootActors:     c.Authz.RootActors,
		ResyncInterval: c.Authz.ResyncInterval,
		Privileges:     sysRolePrivilege,
		Bindings:       sysRoleActor,
	})
	if err != nil {
		log.Fatalf("初始化 RBAC 管理器失败: %v", err)
	}

	return &ServiceContext{
		Config:           c,
		Cache:            rdb,
		SysRole:          sysRole,
		SysRoleActor:     sysRoleActor,
		SysRolePrivilege: sysRolePrivilege,
		AuthzManager:     rbacManager,
	}
}

// seedDefaultRoles 多副本同时启动时只允许一个实例写入默认角色
func seedDefaultRoles(rdb *redis.Redis, rolesFile string, roles bootstrap.RoleStore, privileges bootstrap.PrivilegeStore) error {
	ctx := context.Background()

	seeds, err := bootstrap.LoadRoleSeeds(rolesFile)
	if err != nil {
		return err
	}

	lock := redis.NewRedisLock(rdb, bootstrapLockKey)
	lock.SetExpire(bootstrapLockExpire)
	acquired, err := lock.AcquireCtx(ctx)
	if err != nil {
		return err
	}
	if !acquired {
		logx.Info("[Bootstrap] 其他实例正在初始化默认角色，跳过")
		return nil
	}
	defer func() {
		if _, err := lock.ReleaseCtx(ctx); err != nil {
			logx.Errorf("[Bootstrap] 释放初始化锁失败: %v", err)
		}
	}()

	_, err = bootstrap.SeedRoles(ctx, roles, privileges, seeds)
	return err
}
