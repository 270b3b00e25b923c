package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jwtgo "github.com/dgrijalva/jwt-go"
)

var (
	ErrTokenEmpty   = errors.New("token 为空")
	ErrTokenInvalid = errors.New("token 无效")
)

// AccountInfo 令牌中携带的调用方身份
type AccountInfo struct {
	ActorUrn string `json:"actorUrn"`
	UserName string `json:"userName"`
	NickName string `json:"nickName"`
}

// Claims 自定义声明
type Claims struct {
	UserName AccountInfo `json:"userName"`
	jwtgo.StandardClaims
}

// CreateJWTToken 签发 HS256 令牌
func CreateJWTToken(info *AccountInfo, secret string, expire time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserName: *info,
		StandardClaims: jwtgo.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(expire).Unix(),
			Subject:   info.ActorUrn,
		},
	}
	token := jwtgo.NewWithClaims(jwtgo.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken 校验令牌，支持带 Bearer 前缀
func VerifyToken(token string, secret string) (*Claims, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer"))
	if token == "" {
		return nil, ErrTokenEmpty
	}

	claims := &Claims{}
	parsed, err := jwtgo.ParseWithClaims(token, claims, func(t *jwtgo.Token) (any, error) {
		if _, ok := t.Method.(*jwtgo.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("不支持的签名算法: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || claims.UserName.ActorUrn == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
