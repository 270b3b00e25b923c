package graph

import (
	"net/http"

	"github.com/yanshicheng/catalog-nova/application/access-api/internal/code"
	"github.com/yanshicheng/catalog-nova/application/access-api/internal/graph"
	"github.com/yanshicheng/catalog-nova/application/access-api/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// 执行 mutation 字段，返回 {"data": {<field>: <value>}}
func GraphqlHandler(registry *graph.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GraphRequest
		if err := httpx.ParseJsonBody(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, code.BindingErr.WithMessage(err.Error()))
			return
		}

		env := graph.NewEnvironment(r.Context(), req.Variables)
		value, err := registry.ExecuteMutation(env, req.Mutation)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, map[string]any{
			req.Mutation: value,
		})
	}
}
