package ctxdata

import "context"

type ctxKey string

const (
	actorUrnKey ctxKey = "actorUrn"
	userNameKey ctxKey = "username"
	tokenKey    ctxKey = "token"
)

// Authentication 调用方身份与原始凭证
type Authentication struct {
	ActorUrn   string
	UserName   string
	Credential string
}

// WithAuthentication 写入调用方身份
func WithAuthentication(ctx context.Context, auth Authentication) context.Context {
	ctx = context.WithValue(ctx, actorUrnKey, auth.ActorUrn)
	ctx = context.WithValue(ctx, userNameKey, auth.UserName)
	return context.WithValue(ctx, tokenKey, auth.Credential)
}

// GetAuthentication 读取调用方身份，未认证时 ok 为 false
func GetAuthentication(ctx context.Context) (Authentication, bool) {
	actor, _ := ctx.Value(actorUrnKey).(string)
	if actor == "" {
		return Authentication{}, false
	}
	name, _ := ctx.Value(userNameKey).(string)
	token, _ := ctx.Value(tokenKey).(string)
	return Authentication{ActorUrn: actor, UserName: name, Credential: token}, true
}

// GetUserName 读取操作人，缺省为 system
func GetUserName(ctx context.Context) string {
	if name, ok := ctx.Value(userNameKey).(string); ok && name != "" {
		return name
	}
	return "system"
}
