package authz

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/robfig/cron/v3"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	// PlatformResource 平台级权限统一使用的资源名
	PlatformResource = "platform"

	PrivilegeManagePolicies       = "MANAGE_POLICIES"
	PrivilegeManageUsersAndGroups = "MANAGE_USERS_AND_GROUPS"
)

// Manager 权限引擎对外能力
type Manager interface {
	CheckPrivilege(ctx context.Context, actorUrn string, privilege string) (bool, error)
	AddActorRole(ctx context.Context, actorUrn string, roleUrn string) error
}

// ManagerConfig RBAC 管理器配置
type ManagerConfig struct {
	RedisConf      redis.RedisConf
	RootActors     []string
	ResyncInterval time.Duration
	Privileges     PrivilegeSource
	Bindings       BindingSource
}

// CasbinRBACManager 基于 Casbin 的 RBAC 权限管理器
type CasbinRBACManager struct {
	enforcer    *casbin.SyncedEnforcer
	watcher     *RedisWatcher
	scheduler   *cron.Cron
	rootActors  map[string]struct{}
	reloadMutex sync.Mutex
}

var _ Manager = (*CasbinRBACManager)(nil)

// newModel 平台权限模型
//   - g: 成员到角色的分组，g(actorUrn, roleUrn)
//   - m: 成员经由角色拥有 platform 资源上的权限，p.act 为 * 表示全部权限
func newModel() model.Model {
	m := model.NewModel()
	m.AddDef("r", "r", "sub, obj, act")
	m.AddDef("p", "p", "sub, obj, act")
	m.AddDef("g", "g", "_, _")
	m.AddDef("e", "e", "some(where (p.eft == allow))")
	m.AddDef("m", "m", "g(r.sub, p.sub) && r.obj == p.obj && (r.act == p.act || p.act == \"*\")")
	return m
}

// NewCasbinRBACManager 创建 RBAC 管理器
func NewCasbinRBACManager(c ManagerConfig) (*CasbinRBACManager, error) {
	adapter := NewCasbinAdapter(c.Privileges, c.Bindings)

	enforcer, err := casbin.NewSyncedEnforcer(newModel(), adapter)
	if err != nil {
		return nil, fmt.Errorf("创建 Enforcer 失败: %w", err)
	}

	watcher, err := NewRedisWatcher(c.RedisConf)
	if err != nil {
		return nil, fmt.Errorf("创建 Watcher 失败: %w", err)
	}

	if err := enforcer.SetWatcher(watcher); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("设置 Watcher 失败: %w", err)
	}

	rootActors := make(map[string]struct{}, len(c.RootActors))
	for _, actor := range c.RootActors {
		rootActors[actor] = struct{}{}
	}

	manager := &CasbinRBACManager{
		enforcer:   enforcer,
		watcher:    watcher,
		rootActors: rootActors,
	}

	// 收到其他实例通知后只重载本地策略，不再广播
	if err := watcher.SetUpdateCallback(func(msg string) {
		logx.Infof("[RBAC] 收到策略更新通知: %s，准备重新加载策略", msg)
		if err := manager.reloadPolicyInternal(); err != nil {
			logx.Errorf("[RBAC] 重新加载策略失败: %v", err)
		} else {
			logx.Info("[RBAC] 策略重新加载成功")
		}
	}); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("设置更新回调失败: %w", err)
	}

	if err := watcher.Start(); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("启动 Watcher 失败: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("加载策略失败: %w", err)
	}

	if c.ResyncInterval > 0 {
		manager.scheduler = cron.New()
		schedule := fmt.Sprintf("@every %s", c.ResyncInterval)
		if _, err := manager.scheduler.AddFunc(schedule, manager.resync); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("注册策略同步任务失败: %w", err)
		}
		manager.scheduler.Start()
	}

	logx.Info("[RBAC] Casbin RBAC 管理器初始化成功，支持分布式模式")
	return manager, nil
}

// CheckPrivilege 检查成员是否拥有平台权限
func (m *CasbinRBACManager) CheckPrivilege(ctx context.Context, actorUrn string, privilege string) (bool, error) {
	if _, ok := m.rootActors[actorUrn]; ok {
		logx.WithContext(ctx).Infof("[RBAC] %s 为初始管理员，允许权限: %s", actorUrn, privilege)
		return true, nil
	}

	allowed, err := m.enforcer.Enforce(actorUrn, PlatformResource, privilege)
	if err != nil {
		return false, fmt.Errorf("casbin 检查权限失败: %w", err)
	}

	logx.WithContext(ctx).Infof("[RBAC] 权限检查: actor=%s, privilege=%s, allowed=%t", actorUrn, privilege, allowed)
	return allowed, nil
}

// AddActorRole 将成员加入角色分组，并通知其他实例重载
func (m *CasbinRBACManager) AddActorRole(ctx context.Context, actorUrn string, roleUrn string) error {
	added, err := m.enforcer.AddGroupingPolicy(actorUrn, roleUrn)
	if err != nil {
		return fmt.Errorf("添加成员分组失败: %w", err)
	}
	if added {
		logx.WithContext(ctx).Infof("[RBAC] 成员 %s 加入角色 %s", actorUrn, roleUrn)
	}
	return nil
}

// GetActorRoles 获取成员直接绑定的角色
func (m *CasbinRBACManager) GetActorRoles(actorUrn string) ([]string, error) {
	return m.enforcer.GetRolesForUser(actorUrn)
}

// ReloadPolicy 重新加载策略并通知其他实例
func (m *CasbinRBACManager) ReloadPolicy(ctx context.Context) error {
	if err := m.reloadPolicyInternal(); err != nil {
		return fmt.Errorf("重新加载策略失败: %w", err)
	}

	// 通知失败不影响本地重载
	if err := m.watcher.Update(); err != nil {
		logx.WithContext(ctx).Errorf("[RBAC] 通知其他实例失败: %v", err)
	}

	logx.WithContext(ctx).Info("[RBAC] 策略重新加载完成，已通知其他实例")
	return nil
}

// reloadPolicyInternal 只重载本地策略
func (m *CasbinRBACManager) reloadPolicyInternal() error {
	m.reloadMutex.Lock()
	defer m.reloadMutex.Unlock()

	return m.enforcer.LoadPolicy()
}

func (m *CasbinRBACManager) resync() {
	if err := m.reloadPolicyInternal(); err != nil {
		logx.Errorf("[RBAC] 定时同步策略失败: %v", err)
		return
	}
	logx.Info("[RBAC] 定时同步策略完成")
}

// Close 关闭管理器，释放资源
func (m *CasbinRBACManager) Close() {
	if m.scheduler != nil {
		<-m.scheduler.Stop().Done()
	}
	if m.watcher != nil {
		m.watcher.Close()
	}
	logx.Info("[RBAC] RBAC 管理器已关闭")
}
