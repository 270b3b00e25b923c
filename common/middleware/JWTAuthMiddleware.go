package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/yanshicheng/catalog-nova/common/ctxdata"
	"github.com/yanshicheng/catalog-nova/common/jwt"
)

// 令牌校验失败的业务码
const tokenInvalidCode = 100002

type Response struct {
	Code    int64  `json:"code"`    // 应用自定义状态码
	Data    any    `json:"data"`    // 响应数据
	Message string `json:"message"` // 消息描述
}

type JWTAuthMiddleware struct {
	secret string
}

func NewJWTAuthMiddleware(secret string) *JWTAuthMiddleware {
	return &JWTAuthMiddleware{
		secret: secret,
	}
}

// writeJSONResponse 统一封装JSON响应，不包含HTTP状态码
func writeJSONResponse(w http.ResponseWriter, code int64, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Response{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

func (m *JWTAuthMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			// 从 url 中获取 token
			if urlToken := r.URL.Query().Get("token"); urlToken != "" {
				token = "Bearer " + urlToken
			}
		}

		claims, err := jwt.VerifyToken(token, m.secret)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			writeJSONResponse(w, tokenInvalidCode, "Token验证失败: "+err.Error(), nil)
			return
		}

		ctx := ctxdata.WithAuthentication(r.Context(), ctxdata.Authentication{
			ActorUrn:   claims.UserName.ActorUrn,
			UserName:   claims.UserName.UserName,
			Credential: token,
		})
		next(w, r.WithContext(ctx))
	}
}
