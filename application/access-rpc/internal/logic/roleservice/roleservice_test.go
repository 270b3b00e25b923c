package roleservicelogic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/code"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/model"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/svc"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/pb"
	"github.com/yanshicheng/catalog-nova/common/ctxdata"
	"github.com/zeromicro/go-zero/core/logx/logtest"
)

type fakeRoleModel struct {
	model.SysRoleModel
	roles map[string]*model.SysRole
	err   error
}

func (f *fakeRoleModel) FindOneByUrn(_ context.Context, urn string) (*model.SysRole, error) {
	if f.err != nil {
		return nil, f.err
	}
	if r, ok := f.roles[urn]; ok {
		return r, nil
	}
	return nil, model.ErrNotFound
}

type fakeRoleActorModel struct {
	model.SysRoleActorModel
	bound   map[string]bool
	rows    []*model.SysRoleActor
	bindErr error
	binds   []*model.SysRoleActor
}

func (f *fakeRoleActorModel) Bind(_ context.Context, data *model.SysRoleActor) (bool, error) {
	f.binds = append(f.binds, data)
	if f.bindErr != nil {
		return false, f.bindErr
	}
	if f.bound[data.ActorUrn] {
		return false, nil
	}
	f.bound[data.ActorUrn] = true
	return true, nil
}

func (f *fakeRoleActorModel) FindPageByRoleId(_ context.Context, roleId uint64, page, pageSize uint64) ([]*model.SysRoleActor, uint64, error) {
	var matched []*model.SysRoleActor
	for _, r := range f.rows {
		if r.RoleId == roleId {
			matched = append(matched, r)
		}
	}
	start := (page - 1) * pageSize
	if start >= uint64(len(matched)) {
		return []*model.SysRoleActor{}, uint64(len(matched)), nil
	}
	end := min(start+pageSize, uint64(len(matched)))
	return matched[start:end], uint64(len(matched)), nil
}

type fakeManager struct {
	added []string
	err   error
}

func (f *fakeManager) CheckPrivilege(context.Context, string, string) (bool, error) {
	return false, nil
}

func (f *fakeManager) AddActorRole(_ context.Context, actorUrn string, roleUrn string) error {
	f.added = append(f.added, actorUrn+"|"+roleUrn)
	return f.err
}

const (
	adminUrn   = "urn:li:dataHubRole:Admin"
	deletedUrn = "urn:li:dataHubRole:Legacy"
)

func newServiceContext() (*svc.ServiceContext, *fakeRoleActorModel, *fakeManager) {
	actors := &fakeRoleActorModel{bound: map[string]bool{}}
	manager := &fakeManager{}
	return &svc.ServiceContext{
		SysRole: &fakeRoleModel{roles: map[string]*model.SysRole{
			adminUrn:   {Id: 1, Urn: adminUrn},
			deletedUrn: {Id: 2, Urn: deletedUrn, IsDeleted: 1},
		}},
		SysRoleActor: actors,
		AuthzManager: manager,
	}, actors, manager
}

func TestRoleExists(t *testing.T) {
	logtest.NewCollector(t)
	svcCtx, _, _ := newServiceContext()
	l := NewRoleExistsLogic(context.Background(), svcCtx)

	resp, err := l.RoleExists(&pb.RoleExistsReq{RoleUrn: adminUrn})
	require.NoError(t, err)
	assert.True(t, resp.Exists)

	resp, err = l.RoleExists(&pb.RoleExistsReq{RoleUrn: "urn:li:dataHubRole:Ghost"})
	require.NoError(t, err)
	assert.False(t, resp.Exists)

	resp, err = l.RoleExists(&pb.RoleExistsReq{RoleUrn: deletedUrn})
	require.NoError(t, err)
	assert.False(t, resp.Exists)

	_, err = l.RoleExists(&pb.RoleExistsReq{RoleUrn: "Admin"})
	assert.ErrorIs(t, err, code.InvalidUrnErr)
}

func TestRoleExists_StoreError(t *testing.T) {
	logtest.NewCollector(t)
	svcCtx, _, _ := newServiceContext()
	svcCtx.SysRole = &fakeRoleModel{err: errors.New("connection refused")}

	_, err := NewRoleExistsLogic(context.Background(), svcCtx).RoleExists(&pb.RoleExistsReq{RoleUrn: adminUrn})
	assert.ErrorIs(t, err, code.FindRoleErr)
}

func TestAssignRoleToActor(t *testing.T) {
	logtest.NewCollector(t)
	svcCtx, actors, manager := newServiceContext()
	ctx := ctxdata.WithAuthentication(context.Background(), ctxdata.Authentication{
		ActorUrn: "urn:li:corpuser:admin",
		UserName: "admin",
	})
	l := NewAssignRoleToActorLogic(ctx, svcCtx)

	resp, err := l.AssignRoleToActor(&pb.AssignRoleToActorReq{ActorUrn: "urn:li:corpuser:alice", RoleUrn: adminUrn})
	require.NoError(t, err)
	assert.True(t, resp.Created)

	require.Len(t, actors.binds, 1)
	assert.Equal(t, uint64(1), actors.binds[0].RoleId)
	assert.Equal(t, "USER", actors.binds[0].ActorType)
	assert.Equal(t, "admin", actors.binds[0].CreatedBy)
	assert.Equal(t, []string{"urn:li:corpuser:alice|" + adminUrn}, manager.added)

	// 重复绑定幂等
	resp, err = l.AssignRoleToActor(&pb.AssignRoleToActorReq{ActorUrn: "urn:li:corpuser:alice", RoleUrn: adminUrn})
	require.NoError(t, err)
	assert.False(t, resp.Created)
}

func TestAssignRoleToActor_Group(t *testing.T) {
	logtest.NewCollector(t)
	svcCtx, actors, _ := newServiceContext()

	_, err := NewAssignRoleToActorLogic(context.Background(), svcCtx).
		AssignRoleToActor(&pb.AssignRoleToActorReq{ActorUrn: "urn:li:corpGroup:eng", RoleUrn: adminUrn})
	require.NoError(t, err)
	require.Len(t, actors.binds, 1)
	assert.Equal(t, "GROUP", actors.binds[0].ActorType)
	assert.Equal(t, "system", actors.binds[0].CreatedBy)
}

func TestAssignRoleToActor_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *pb.AssignRoleToActorReq
		bindErr error
		want    error
	}{
		{"invalid actor", &pb.AssignRoleToActorReq{ActorUrn: "bad", RoleUrn: adminUrn}, nil, code.InvalidUrnErr},
		{"invalid role", &pb.AssignRoleToActorReq{ActorUrn: "urn:li:corpuser:alice", RoleUrn: "Admin"}, nil, code.InvalidUrnErr},
		{"missing role", &pb.AssignRoleToActorReq{ActorUrn: "urn:li:corpuser:alice", RoleUrn: "urn:li:dataHubRole:Ghost"}, nil, code.RoleNotExistErr},
		{"deleted role", &pb.AssignRoleToActorReq{ActorUrn: "urn:li:corpuser:alice", RoleUrn: deletedUrn}, nil, code.RoleNotExistErr},
		{"bind failure", &pb.AssignRoleToActorReq{ActorUrn: "urn:li:corpuser:alice", RoleUrn: adminUrn}, errors.New("deadlock"), code.BindRoleErr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logtest.NewCollector(t)
			svcCtx, actors, manager := newServiceContext()
			actors.bindErr = tt.bindErr

			_, err := NewAssignRoleToActorLogic(context.Background(), svcCtx).AssignRoleToActor(tt.req)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, manager.added)
		})
	}
}

func TestAssignRoleToActor_PolicyUpdateFailureIsLogged(t *testing.T) {
	c := logtest.NewCollector(t)
	svcCtx, _, manager := newServiceContext()
	manager.err = errors.New("redis unavailable")

	resp, err := NewAssignRoleToActorLogic(context.Background(), svcCtx).
		AssignRoleToActor(&pb.AssignRoleToActorReq{ActorUrn: "urn:li:corpuser:alice", RoleUrn: adminUrn})
	require.NoError(t, err)
	assert.True(t, resp.Created)
	assert.Contains(t, c.String(), "redis unavailable")
}

func TestListRoleActors(t *testing.T) {
	logtest.NewCollector(t)
	svcCtx, actors, _ := newServiceContext()
	now := time.Unix(1700000000, 0)
	actors.rows = []*model.SysRoleActor{
		{RoleId: 1, ActorUrn: "urn:li:corpuser:alice", ActorType: "USER", CreatedBy: "admin", CreatedAt: now},
		{RoleId: 1, ActorUrn: "urn:li:corpuser:bob", ActorType: "USER", CreatedBy: "admin", CreatedAt: now},
		{RoleId: 3, ActorUrn: "urn:li:corpuser:carol", ActorType: "USER", CreatedBy: "admin", CreatedAt: now},
	}
	l := NewListRoleActorsLogic(context.Background(), svcCtx)

	resp, err := l.ListRoleActors(&pb.ListRoleActorsReq{RoleUrn: adminUrn, Page: 2, PageSize: 1})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "urn:li:corpuser:bob", resp.Items[0].ActorUrn)
	assert.Equal(t, now.Unix(), resp.Items[0].CreatedAt)

	_, err = l.ListRoleActors(&pb.ListRoleActorsReq{RoleUrn: adminUrn, Page: 0, PageSize: 10})
	assert.ErrorIs(t, err, code.ParameterIllegal)

	_, err = l.ListRoleActors(&pb.ListRoleActorsReq{RoleUrn: "urn:li:dataHubRole:Ghost", Page: 1, PageSize: 10})
	assert.ErrorIs(t, err, code.RoleNotExistErr)
}
