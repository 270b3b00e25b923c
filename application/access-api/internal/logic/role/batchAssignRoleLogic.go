package role

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/yanshicheng/catalog-nova/application/access-api/internal/code"
	"github.com/yanshicheng/catalog-nova/application/access-api/internal/graph"
	"github.com/yanshicheng/catalog-nova/application/access-api/internal/svc"
	"github.com/yanshicheng/catalog-nova/application/access-api/internal/types"
	"github.com/yanshicheng/catalog-nova/common/future"
	"github.com/yanshicheng/catalog-nova/common/urn"
	"github.com/zeromicro/go-zero/core/logx"
)

// BatchAssignRoleField mutation 字段名
const BatchAssignRoleField = "batchAssignRole"

type BatchAssignRoleLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

var _ graph.DataFetcher[bool] = (*BatchAssignRoleLogic)(nil)

func NewBatchAssignRoleLogic(ctx context.Context, svcCtx *svc.ServiceContext) *BatchAssignRoleLogic {
	return &BatchAssignRoleLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Get 鉴权与参数绑定在调用方协程完成，其余工作交给任务池
func (l *BatchAssignRoleLogic) Get(env *graph.Environment) (*future.Future[bool], error) {
	if err := l.authorize(); err != nil {
		return nil, err
	}

	var input types.BatchAssignRoleInput
	if err := env.BindArgument("input", &input); err != nil {
		return nil, err
	}
	return l.schedule(&input), nil
}

// BatchAssignRole 参数已在 handler 中校验
func (l *BatchAssignRoleLogic) BatchAssignRole(input *types.BatchAssignRoleInput) (*future.Future[bool], error) {
	if err := l.authorize(); err != nil {
		return nil, err
	}
	return l.schedule(input), nil
}

func (l *BatchAssignRoleLogic) authorize() error {
	if !l.svcCtx.Authorizer.CanManagePolicies(l.ctx) {
		return code.AuthorizationErr
	}
	return nil
}

func (l *BatchAssignRoleLogic) schedule(input *types.BatchAssignRoleInput) *future.Future[bool] {
	// 请求结束不影响后台任务，保留调用方身份与日志字段
	ctx := context.WithoutCancel(l.ctx)
	batchId := uuid.NewString()

	return future.Supply(l.svcCtx.TaskPool, func() (ok bool, err error) {
		defer func() {
			if r := recover(); r != nil {
				ok, err = false, wrapInput(code.UnexpectedErr.WithMessage(fmt.Sprintf("%v", r)), input)
			}
		}()
		return l.assign(ctx, batchId, input)
	})
}

func (l *BatchAssignRoleLogic) assign(ctx context.Context, batchId string, input *types.BatchAssignRoleInput) (bool, error) {
	logger := logx.WithContext(ctx).WithFields(logx.Field("batch", batchId))

	roleUrn, err := urn.Parse(input.RoleUrn)
	if err != nil {
		return false, wrapInput(code.UnexpectedErr.WithMessage(err.Error()), input)
	}

	exists, err := l.svcCtx.RoleService.Exists(ctx, roleUrn.String())
	if err != nil {
		return false, wrapInput(code.UnexpectedErr.WithMessage(err.Error()), input)
	}
	if !exists {
		return false, wrapInput(code.NotFoundErr.WithMessage(fmt.Sprintf("Role %s does not exist", roleUrn)), input)
	}

	succeeded, failed := 0, 0
	for _, actor := range input.Actors {
		if err := l.assignActor(ctx, actor, roleUrn.String()); err != nil {
			logger.Errorw("Skipping actor assignment",
				logx.Field("severity", "warn"),
				logx.Field("actor", actor),
				logx.Field("role", roleUrn.String()),
				logx.Field("error", err.Error()),
			)
			roleAssignFailures.WithLabelValues(roleUrn.String()).Inc()
			failed++
			continue
		}
		succeeded++
	}

	logger.Infow("[BatchAssignRole] 批量分配角色完成",
		logx.Field("role", roleUrn.String()),
		logx.Field("attempted", len(input.Actors)),
		logx.Field("succeeded", succeeded),
		logx.Field("failed", failed),
	)
	return true, nil
}

// assignActor 单个成员的 panic 按失败处理，不中断批次
func (l *BatchAssignRoleLogic) assignActor(ctx context.Context, actor, roleUrn string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("assign panicked: %v", r)
		}
	}()
	return l.svcCtx.RoleService.AssignRoleToActor(ctx, actor, roleUrn)
}

// wrapInput 失败信息附带原始请求
func wrapInput(err error, input *types.BatchAssignRoleInput) error {
	return errors.Wrapf(err, "failed to perform update against input {roleUrn=%s, actors=[%s]}",
		input.RoleUrn, strings.Join(input.Actors, ", "))
}
