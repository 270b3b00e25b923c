package authz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/casbin/casbin/v2/persist"
	"github.com/google/uuid"
	red "github.com/redis/go-redis/v9"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	// CasbinPolicyChannel 是Redis策略更新频道
	CasbinPolicyChannel = "catalog:casbin:policy:update"
)

// PolicyUpdateMessage 策略更新消息
type PolicyUpdateMessage struct {
	Action    string `json:"action"`    // 动作类型，目前只有 reload
	Timestamp int64  `json:"timestamp"` // 消息时间戳
	Source    string `json:"source"`    // 消息来源实例标识
}

// RedisWatcher 分布式策略同步器，支持单节点和集群模式
type RedisWatcher struct {
	rdb        red.UniversalClient
	mu         sync.RWMutex
	callback   func(string)
	instanceId string
	ctx        context.Context
	cancel     context.CancelFunc
	closeOnce  sync.Once
}

// NewRedisWatcher 创建分布式策略同步器
func NewRedisWatcher(redisConf redis.RedisConf) (*RedisWatcher, error) {
	ctx, cancel := context.WithCancel(context.Background())

	var rdb red.UniversalClient
	if redisConf.Type == redis.ClusterType {
		hosts := parseClusterHosts(redisConf.Host)
		rdb = red.NewClusterClient(&red.ClusterOptions{
			Addrs:    hosts,
			Password: redisConf.Pass,
			Username: redisConf.User,
		})
		logx.Infof("[Watcher] 使用 Redis 集群模式，节点数量: %d", len(hosts))
	} else {
		rdb = red.NewClient(&red.Options{
			Addr:     redisConf.Host,
			Password: redisConf.Pass,
			Username: redisConf.User,
		})
		logx.Info("[Watcher] 使用 Redis 单节点模式")
	}

	if err := rdb.Ping(ctx).Err(); err != nil {
		cancel()
		_ = rdb.Close()
		return nil, fmt.Errorf("redis 连接失败: %w", err)
	}

	watcher := &RedisWatcher{
		rdb:        rdb,
		instanceId: "casbin-" + uuid.NewString(),
		ctx:        ctx,
		cancel:     cancel,
	}

	logx.Infof("[Watcher] 创建实例成功: %s", watcher.instanceId)
	return watcher, nil
}

// parseClusterHosts 解析逗号分隔的集群节点地址
func parseClusterHosts(host string) []string {
	hosts := strings.Split(host, ",")
	result := make([]string, 0, len(hosts))
	for _, h := range hosts {
		h = strings.TrimSpace(h)
		if h != "" {
			result = append(result, h)
		}
	}
	return result
}

// SetUpdateCallback 设置收到其他实例通知时的回调
func (w *RedisWatcher) SetUpdateCallback(callback func(string)) error {
	w.mu.Lock()
	w.callback = callback
	w.mu.Unlock()
	return nil
}

// Update 通知所有实例重新加载策略
func (w *RedisWatcher) Update() error {
	msg := PolicyUpdateMessage{
		Action:    "reload",
		Timestamp: time.Now().Unix(),
		Source:    w.instanceId,
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("序列化消息失败: %w", err)
	}

	if err := w.rdb.Publish(w.ctx, CasbinPolicyChannel, string(data)).Err(); err != nil {
		return fmt.Errorf("发布消息失败: %w", err)
	}

	logx.Infof("[Watcher] 实例 %s 发布策略更新", w.instanceId)
	return nil
}

// Start 开始订阅 Redis 频道，订阅建立后返回
func (w *RedisWatcher) Start() error {
	pubsub := w.rdb.Subscribe(w.ctx, CasbinPolicyChannel)
	if _, err := pubsub.Receive(w.ctx); err != nil {
		_ = pubsub.Close()
		return fmt.Errorf("订阅策略频道失败: %w", err)
	}

	go w.subscribe(pubsub)
	logx.Infof("[Watcher] 实例 %s 开始监听策略更新", w.instanceId)
	return nil
}

func (w *RedisWatcher) subscribe(pubsub *red.PubSub) {
	defer func() {
		_ = pubsub.Close()
	}()

	ch := pubsub.Channel()
	for {
		select {
		case <-w.ctx.Done():
			logx.Infof("[Watcher] 实例 %s 停止监听", w.instanceId)
			return

		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg == nil {
				continue
			}

			var policyMsg PolicyUpdateMessage
			if err := json.Unmarshal([]byte(msg.Payload), &policyMsg); err != nil {
				logx.Errorf("[Watcher] 解析消息失败: %v", err)
				continue
			}

			// 忽略自己发送的消息
			if policyMsg.Source == w.instanceId {
				continue
			}

			logx.Infof("[Watcher] 实例 %s 收到策略更新通知: action=%s, from=%s",
				w.instanceId, policyMsg.Action, policyMsg.Source)

			w.mu.RLock()
			callback := w.callback
			w.mu.RUnlock()
			if callback != nil {
				callback(policyMsg.Action)
			}
		}
	}
}

// Close 停止监听并释放连接
func (w *RedisWatcher) Close() {
	w.closeOnce.Do(func() {
		w.cancel()
		if err := w.rdb.Close(); err != nil {
			logx.Errorf("[Watcher] 关闭 Redis 连接失败: %v", err)
		}
		logx.Infof("[Watcher] 实例 %s 已关闭", w.instanceId)
	})
}

// 确保实现了 persist.Watcher 接口
var _ persist.Watcher = (*RedisWatcher)(nil)
