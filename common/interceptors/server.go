package interceptors

import (
	"context"

	"github.com/yanshicheng/catalog-nova/common/ctxdata"
	"github.com/yanshicheng/catalog-nova/common/handler/errorx"
	"github.com/zeromicro/go-zero/core/logx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// ServerMetadataInterceptor 从 gRPC metadata 中提取调用方身份并注入到 context
func ServerMetadataInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			auth := ctxdata.Authentication{
				ActorUrn:   first(md, mdActorUrn),
				UserName:   first(md, mdUserName),
				Credential: first(md, mdToken),
			}
			if auth.ActorUrn != "" {
				ctx = ctxdata.WithAuthentication(ctx, auth)
			}
		}
		return handler(ctx, req)
	}
}

// ServerErrorInterceptor 服务端错误处理拦截器
func ServerErrorInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		resp, err = handler(ctx, req)
		if err != nil {
			logx.WithContext(ctx).Errorf("【RPC SRV ERR】 %s: %v", info.FullMethod, err)
			return resp, errorx.FromError(err).Err()
		}
		return resp, nil
	}
}

func first(md metadata.MD, key string) string {
	if v := md.Get(key); len(v) > 0 {
		return v[0]
	}
	return ""
}
