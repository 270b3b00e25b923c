package ctxdata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthentication(t *testing.T) {
	_, ok := GetAuthentication(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "system", GetUserName(context.Background()))

	ctx := WithAuthentication(context.Background(), Authentication{
		ActorUrn:   "urn:li:corpuser:alice",
		UserName:   "alice",
		Credential: "Bearer abc",
	})
	auth, ok := GetAuthentication(ctx)
	assert.True(t, ok)
	assert.Equal(t, "urn:li:corpuser:alice", auth.ActorUrn)
	assert.Equal(t, "Bearer abc", auth.Credential)
	assert.Equal(t, "alice", GetUserName(ctx))
}
