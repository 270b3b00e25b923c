package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yanshicheng/catalog-nova/common/ctxdata"
	"github.com/yanshicheng/catalog-nova/common/jwt"
)

const secret = "test-secret"

func newToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.CreateJWTToken(&jwt.AccountInfo{
		ActorUrn: "urn:li:corpuser:alice",
		UserName: "alice",
	}, secret, time.Hour)
	require.NoError(t, err)
	return token
}

func TestJWTAuthMiddleware(t *testing.T) {
	token := newToken(t)
	var got ctxdata.Authentication
	var called bool
	handler := NewJWTAuthMiddleware(secret).Handle(func(w http.ResponseWriter, r *http.Request) {
		called = true
		got, _ = ctxdata.GetAuthentication(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/access/v1/roles/actors", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.True(t, called)
	assert.Equal(t, "urn:li:corpuser:alice", got.ActorUrn)
	assert.Equal(t, "alice", got.UserName)
	assert.Equal(t, "Bearer "+token, got.Credential)
}

func TestJWTAuthMiddleware_QueryToken(t *testing.T) {
	token := newToken(t)
	var called bool
	handler := NewJWTAuthMiddleware(secret).Handle(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/access/v1/roles/actors?token="+token, nil)
	handler(httptest.NewRecorder(), req)
	assert.True(t, called)
}

func TestJWTAuthMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"garbage", "Bearer not-a-token"},
		{"wrong secret", "Bearer " + func() string {
			token, _ := jwt.CreateJWTToken(&jwt.AccountInfo{ActorUrn: "urn:li:corpuser:alice"}, "other", time.Hour)
			return token
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewJWTAuthMiddleware(secret).Handle(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler must not be called")
			})

			req := httptest.NewRequest(http.MethodPost, "/access/v1/graphql", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			var resp Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, int64(tokenInvalidCode), resp.Code)
		})
	}
}
