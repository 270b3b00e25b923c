package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yanshicheng/catalog-nova/application/access-api/internal/code"
	"github.com/yanshicheng/catalog-nova/common/ctxdata"
	"github.com/yanshicheng/catalog-nova/common/future"
)

type echoInput struct {
	RoleUrn string   `json:"roleUrn"`
	Actors  []string `json:"actors"`
}

func TestEnvironment_BindArgument(t *testing.T) {
	env := NewEnvironment(context.Background(), map[string]any{
		"input": map[string]any{
			"roleUrn": "urn:li:dataHubRole:Admin",
			"actors":  []any{"urn:li:corpuser:alice", "urn:li:corpuser:bob"},
		},
	})

	var in echoInput
	require.NoError(t, env.BindArgument("input", &in))
	assert.Equal(t, "urn:li:dataHubRole:Admin", in.RoleUrn)
	assert.Equal(t, []string{"urn:li:corpuser:alice", "urn:li:corpuser:bob"}, in.Actors)
}

func TestEnvironment_BindArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
	}{
		{"missing argument", nil},
		{"not an object", map[string]any{"input": "urn:li:dataHubRole:Admin"}},
		{"missing field", map[string]any{"input": map[string]any{"actors": []any{"a"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in echoInput
			err := NewEnvironment(context.Background(), tt.args).BindArgument("input", &in)
			assert.ErrorIs(t, err, code.BindingErr)
		})
	}
}

func TestEnvironment_Authentication(t *testing.T) {
	ctx := ctxdata.WithAuthentication(context.Background(), ctxdata.Authentication{
		ActorUrn:   "urn:li:corpuser:alice",
		Credential: "Bearer abc",
	})
	env := NewEnvironment(ctx, nil)

	assert.Equal(t, "urn:li:corpuser:alice", env.Authentication().ActorUrn)
	assert.Equal(t, "Bearer abc", env.Authentication().Credential)
	_, ok := env.Argument("input")
	assert.False(t, ok)
}

func TestRegistry_ExecuteMutation(t *testing.T) {
	r := NewRegistry()
	RegisterMutation[bool](r, "ok", DataFetcherFunc[bool](func(env *Environment) (*future.Future[bool], error) {
		return future.Completed(true), nil
	}))
	RegisterMutation[bool](r, "rejected", DataFetcherFunc[bool](func(env *Environment) (*future.Future[bool], error) {
		return nil, code.AuthorizationErr
	}))
	RegisterMutation[bool](r, "failed", DataFetcherFunc[bool](func(env *Environment) (*future.Future[bool], error) {
		return future.Failed[bool](errors.New("boom")), nil
	}))
	env := NewEnvironment(context.Background(), nil)

	v, err := r.ExecuteMutation(env, "ok")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	_, err = r.ExecuteMutation(env, "rejected")
	assert.ErrorIs(t, err, code.AuthorizationErr)

	_, err = r.ExecuteMutation(env, "failed")
	assert.EqualError(t, err, "boom")

	_, err = r.ExecuteMutation(env, "missing")
	assert.ErrorIs(t, err, code.BindingErr)

	assert.ElementsMatch(t, []string{"ok", "rejected", "failed"}, r.Fields())
}

func TestRegistry_DuplicateRegistrationPanics(t *testing.T) {
	r := NewRegistry()
	fetcher := DataFetcherFunc[bool](func(env *Environment) (*future.Future[bool], error) {
		return future.Completed(true), nil
	})
	RegisterMutation[bool](r, "batchAssignRole", fetcher)
	assert.Panics(t, func() {
		RegisterMutation[bool](r, "batchAssignRole", fetcher)
	})
}
