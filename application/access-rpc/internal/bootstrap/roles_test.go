package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yanshicheng/catalog-nova/application/access-rpc/internal/model"
	"github.com/zeromicro/go-zero/core/logx/logtest"
)

type insertResult int64

func (r insertResult) LastInsertId() (int64, error) { return int64(r), nil }
func (r insertResult) RowsAffected() (int64, error) { return 1, nil }

type fakeRoles struct {
	byUrn  map[string]*model.SysRole
	nextId uint64
	err    error
}

func (f *fakeRoles) FindOneByUrn(_ context.Context, urn string) (*model.SysRole, error) {
	if f.err != nil {
		return nil, f.err
	}
	if r, ok := f.byUrn[urn]; ok {
		return r, nil
	}
	return nil, model.ErrNotFound
}

func (f *fakeRoles) Insert(_ context.Context, data *model.SysRole) (sql.Result, error) {
	f.nextId++
	stored := *data
	stored.Id = f.nextId
	f.byUrn[data.Urn] = &stored
	return insertResult(f.nextId), nil
}

type fakePrivileges struct {
	rows map[uint64]map[string]bool
}

func (f *fakePrivileges) FindOneByRoleIdPrivilege(_ context.Context, roleId uint64, privilege string) (*model.SysRolePrivilege, error) {
	if f.rows[roleId][privilege] {
		return &model.SysRolePrivilege{RoleId: roleId, Privilege: privilege}, nil
	}
	return nil, model.ErrNotFound
}

func (f *fakePrivileges) Insert(_ context.Context, data *model.SysRolePrivilege) (sql.Result, error) {
	if f.rows[data.RoleId] == nil {
		f.rows[data.RoleId] = map[string]bool{}
	}
	f.rows[data.RoleId][data.Privilege] = true
	return insertResult(0), nil
}

func TestLoadRoleSeeds(t *testing.T) {
	seeds, err := LoadRoleSeeds(filepath.Join("..", "..", "etc", "roles.yaml"))
	require.NoError(t, err)
	require.Len(t, seeds, 3)
	assert.Equal(t, "urn:li:dataHubRole:Admin", seeds[0].Urn)
	assert.Contains(t, seeds[0].Privileges, "MANAGE_POLICIES")
	assert.NotContains(t, seeds[2].Privileges, "MANAGE_POLICIES")
}

func TestLoadRoleSeeds_Invalid(t *testing.T) {
	dir := t.TempDir()

	missingUrn := filepath.Join(dir, "missing.yaml")
	require.NoError(t, os.WriteFile(missingUrn, []byte("roles:\n  - name: Admin\n"), 0o600))
	_, err := LoadRoleSeeds(missingUrn)
	assert.Error(t, err)

	_, err = LoadRoleSeeds(filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}

func TestSeedRoles(t *testing.T) {
	logtest.NewCollector(t)
	ctx := context.Background()
	roles := &fakeRoles{byUrn: map[string]*model.SysRole{
		"urn:li:dataHubRole:Admin": {Id: 7, Urn: "urn:li:dataHubRole:Admin"},
	}, nextId: 10}
	privileges := &fakePrivileges{rows: map[uint64]map[string]bool{
		7: {"MANAGE_POLICIES": true},
	}}
	seeds := []RoleSeed{
		{Urn: "urn:li:dataHubRole:Admin", Privileges: []string{"MANAGE_POLICIES", "VIEW_ANALYTICS"}},
		{Urn: "urn:li:dataHubRole:Reader", Name: "Reader", Privileges: []string{"VIEW_ANALYTICS"}},
	}

	created, err := SeedRoles(ctx, roles, privileges, seeds)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.True(t, privileges.rows[7]["VIEW_ANALYTICS"])

	reader := roles.byUrn["urn:li:dataHubRole:Reader"]
	require.NotNil(t, reader)
	assert.Equal(t, uint64(11), reader.Id)
	assert.Equal(t, "system", reader.CreatedBy)
	assert.True(t, privileges.rows[11]["VIEW_ANALYTICS"])

	// 再次执行不产生新记录
	created, err = SeedRoles(ctx, roles, privileges, seeds)
	require.NoError(t, err)
	assert.Zero(t, created)
}

func TestSeedRoles_StoreError(t *testing.T) {
	logtest.NewCollector(t)
	roles := &fakeRoles{byUrn: map[string]*model.SysRole{}, err: errors.New("db down")}
	_, err := SeedRoles(context.Background(), roles, &fakePrivileges{rows: map[uint64]map[string]bool{}},
		[]RoleSeed{{Urn: "urn:li:dataHubRole:Admin"}})
	assert.ErrorContains(t, err, "db down")
}
