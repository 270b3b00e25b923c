package role

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/yanshicheng/catalog-nova/application/access-api/internal/code"
	"github.com/yanshicheng/catalog-nova/application/access-api/internal/logic/role"
	"github.com/yanshicheng/catalog-nova/application/access-api/internal/svc"
	"github.com/yanshicheng/catalog-nova/application/access-api/internal/types"
	"github.com/yanshicheng/catalog-nova/common/verify"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// 批量为成员分配角色
func BatchAssignRoleHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.BatchAssignRoleRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, code.BindingErr.WithMessage(err.Error()))
			return
		}
		// validator验证
		if err := svcCtx.Validator.Validate.StructCtx(r.Context(), &req); err != nil {
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				httpx.ErrorCtx(r.Context(), w, code.BindingErr.WithMessage(err.Error()))
				return
			}
			httpx.ErrorCtx(r.Context(), w, code.BindingErr.WithMessage(verify.RemoveTopSaStr(verrs, svcCtx.Validator.Translator)))
			return
		}
		l := role.NewBatchAssignRoleLogic(r.Context(), svcCtx)
		f, err := l.BatchAssignRole(&req.Input)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		resp, err := f.Await(r.Context())
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
