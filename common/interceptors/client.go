package interceptors

import (
	"context"

	"github.com/yanshicheng/catalog-nova/common/ctxdata"
	"github.com/yanshicheng/catalog-nova/common/handler/errorx"
	"github.com/zeromicro/go-zero/core/logx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	mdActorUrn = "actor-urn"
	mdUserName = "username"
	mdToken    = "authorization"
)

// ClientMetadataInterceptor 将 context 中的调用方身份注入到 gRPC metadata
func ClientMetadataInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if auth, ok := ctxdata.GetAuthentication(ctx); ok {
			ctx = metadata.AppendToOutgoingContext(ctx,
				mdActorUrn, auth.ActorUrn,
				mdUserName, auth.UserName,
				mdToken, auth.Credential,
			)
		}

		err := invoker(ctx, method, req, reply, cc, opts...)
		if err != nil {
			logx.WithContext(ctx).Errorf("[ClientMetadata] 调用失败: method=%s, error=%v", method, err)
		}
		return err
	}
}

// ClientErrorInterceptor 将 gRPC status 还原为业务错误
func ClientErrorInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err != nil {
			grpcStatus, _ := status.FromError(err)
			if xc := errorx.GrpcStatusToErrorX(grpcStatus); xc != nil {
				return xc
			}
		}
		return err
	}
}
