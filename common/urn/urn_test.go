package urn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		namespace  string
		entityType string
		id         string
	}{
		{name: "short form", in: "urn:role:Admin", entityType: "role", id: "Admin"},
		{name: "platform namespace", in: "urn:li:dataHubRole:Editor", namespace: "li", entityType: "dataHubRole", id: "Editor"},
		{name: "id with colons", in: "urn:li:dataset:(urn:li:dataPlatform:hive,db.t,PROD)", namespace: "li", entityType: "dataset", id: "(urn:li:dataPlatform:hive,db.t,PROD)"},
		{name: "upper prefix", in: "URN:user:alice", entityType: "user", id: "alice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.namespace, u.Namespace())
			assert.Equal(t, tt.entityType, u.EntityType())
			assert.Equal(t, tt.id, u.Id())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "role:Admin", "urn:", "urn:role", "urn:role:", "urn::Admin", "urn:li:role"} {
		_, err := Parse(in)
		assert.Truef(t, errors.Is(err, ErrInvalidUrn), "expected invalid urn for %q, got %v", in, err)
	}
}

func TestActorType(t *testing.T) {
	assert.Equal(t, ActorTypeUser, MustParse("urn:li:corpuser:alice").ActorType())
	assert.Equal(t, ActorTypeGroup, MustParse("urn:li:corpGroup:eng").ActorType())
	assert.Equal(t, ActorTypeUser, MustParse("urn:user:bob").ActorType())
	assert.Equal(t, ActorTypeUnknown, MustParse("urn:role:Admin").ActorType())
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("nope") })
}
