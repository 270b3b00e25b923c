package graph

import (
	"context"
	"fmt"

	"github.com/yanshicheng/catalog-nova/application/access-api/internal/code"
	"github.com/yanshicheng/catalog-nova/common/ctxdata"
	"github.com/zeromicro/go-zero/core/mapping"
)

// Environment 单次字段解析的上下文：请求 context、调用方身份与参数
type Environment struct {
	ctx       context.Context
	caller    ctxdata.Authentication
	arguments map[string]any
}

func NewEnvironment(ctx context.Context, arguments map[string]any) *Environment {
	caller, _ := ctxdata.GetAuthentication(ctx)
	if arguments == nil {
		arguments = map[string]any{}
	}
	return &Environment{
		ctx:       ctx,
		caller:    caller,
		arguments: arguments,
	}
}

func (e *Environment) Context() context.Context {
	return e.ctx
}

func (e *Environment) Authentication() ctxdata.Authentication {
	return e.caller
}

// Argument 返回原始参数值
func (e *Environment) Argument(name string) (any, bool) {
	v, ok := e.arguments[name]
	return v, ok
}

// BindArgument 将对象类型参数绑定到结构体，字段按 json tag 匹配
func (e *Environment) BindArgument(name string, v any) error {
	raw, ok := e.arguments[name]
	if !ok || raw == nil {
		return code.BindingErr.WithMessage(fmt.Sprintf("缺少参数 %s", name))
	}

	m, ok := raw.(map[string]any)
	if !ok {
		return code.BindingErr.WithMessage(fmt.Sprintf("参数 %s 必须是对象", name))
	}

	if err := mapping.UnmarshalJsonMap(m, v); err != nil {
		return code.BindingErr.WithMessage(fmt.Sprintf("参数 %s 绑定失败: %v", name, err))
	}
	return nil
}
