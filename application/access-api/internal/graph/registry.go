package graph

import (
	"fmt"
	"sync"

	"github.com/yanshicheng/catalog-nova/application/access-api/internal/code"
	"github.com/yanshicheng/catalog-nova/common/future"
)

// DataFetcher 解析单个字段，返回值在任务完成后可用
type DataFetcher[T any] interface {
	Get(env *Environment) (*future.Future[T], error)
}

// DataFetcherFunc 函数形式的 DataFetcher
type DataFetcherFunc[T any] func(env *Environment) (*future.Future[T], error)

func (f DataFetcherFunc[T]) Get(env *Environment) (*future.Future[T], error) {
	return f(env)
}

type resolver func(env *Environment) (any, error)

// Registry mutation 字段到解析器的映射
type Registry struct {
	mu        sync.RWMutex
	mutations map[string]resolver
}

func NewRegistry() *Registry {
	return &Registry{
		mutations: make(map[string]resolver),
	}
}

// RegisterMutation 注册 mutation 字段，重复注册会 panic
func RegisterMutation[T any](r *Registry, field string, fetcher DataFetcher[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.mutations[field]; ok {
		panic(fmt.Sprintf("mutation %s already registered", field))
	}
	r.mutations[field] = func(env *Environment) (any, error) {
		f, err := fetcher.Get(env)
		if err != nil {
			return nil, err
		}
		return f.Await(env.Context())
	}
}

// Fields 已注册的 mutation 字段
func (r *Registry) Fields() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fields := make([]string, 0, len(r.mutations))
	for field := range r.mutations {
		fields = append(fields, field)
	}
	return fields
}

// ExecuteMutation 执行 mutation 并等待结果
func (r *Registry) ExecuteMutation(env *Environment, field string) (any, error) {
	r.mu.RLock()
	resolve, ok := r.mutations[field]
	r.mu.RUnlock()
	if !ok {
		return nil, code.BindingErr.WithMessage(fmt.Sprintf("未知的 mutation 字段: %s", field))
	}
	return resolve(env)
}
