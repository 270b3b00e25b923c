package authservicelogic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/code"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/svc"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/pb"
	"github.com/zeromicro/go-zero/core/logx/logtest"
)

type fakeManager struct {
	grants map[string]bool
	err    error
}

func (f *fakeManager) CheckPrivilege(_ context.Context, actorUrn string, privilege string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.grants[actorUrn+"|"+privilege], nil
}

func (f *fakeManager) AddActorRole(context.Context, string, string) error {
	return nil
}

func TestCheckPrivilege(t *testing.T) {
	logtest.NewCollector(t)
	svcCtx := &svc.ServiceContext{AuthzManager: &fakeManager{grants: map[string]bool{
		"urn:li:corpuser:alice|MANAGE_POLICIES": true,
	}}}
	l := NewCheckPrivilegeLogic(context.Background(), svcCtx)

	resp, err := l.CheckPrivilege(&pb.CheckPrivilegeReq{ActorUrn: "urn:li:corpuser:alice", Privilege: "MANAGE_POLICIES"})
	require.NoError(t, err)
	assert.True(t, resp.Allowed)

	resp, err = l.CheckPrivilege(&pb.CheckPrivilegeReq{ActorUrn: "urn:li:corpuser:bob", Privilege: "MANAGE_POLICIES"})
	require.NoError(t, err)
	assert.False(t, resp.Allowed)
}

func TestCheckPrivilege_InvalidInput(t *testing.T) {
	logtest.NewCollector(t)
	l := NewCheckPrivilegeLogic(context.Background(), &svc.ServiceContext{AuthzManager: &fakeManager{}})

	_, err := l.CheckPrivilege(&pb.CheckPrivilegeReq{ActorUrn: "alice", Privilege: "MANAGE_POLICIES"})
	assert.ErrorIs(t, err, code.InvalidUrnErr)

	_, err = l.CheckPrivilege(&pb.CheckPrivilegeReq{ActorUrn: "urn:li:corpuser:alice", Privilege: "  "})
	assert.ErrorIs(t, err, code.ParameterIllegal)
}

func TestCheckPrivilege_EngineError(t *testing.T) {
	c := logtest.NewCollector(t)
	l := NewCheckPrivilegeLogic(context.Background(), &svc.ServiceContext{AuthzManager: &fakeManager{err: errors.New("enforcer broken")}})

	_, err := l.CheckPrivilege(&pb.CheckPrivilegeReq{ActorUrn: "urn:li:corpuser:alice", Privilege: "MANAGE_POLICIES"})
	assert.ErrorIs(t, err, code.CheckPrivilegeErr)
	assert.Contains(t, c.String(), "enforcer broken")
}
