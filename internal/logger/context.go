package logger

import (
	"context"

	"go.uber.org/zap"
)

type requestIDKey struct{}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// FromCtx returns the global logger tagged with the request id carried by ctx.
func FromCtx(ctx context.Context) *zap.Logger {
	if id := RequestIDFrom(ctx); id != "" {
		return L().With(zap.String("request_id", id))
	}
	return L()
}

// Service is the logger for one catalog service method.
func Service(ctx context.Context, method string, fields ...zap.Field) *zap.Logger {
	return FromCtx(ctx).With(append([]zap.Field{
		zap.String("layer", "service"),
		zap.String("method", method),
	}, fields...)...)
}

// Upstream is the logger for one Storefront API operation.
func Upstream(ctx context.Context, operation string) *zap.Logger {
	return FromCtx(ctx).With(
		zap.String("layer", "shopify"),
		zap.String("operation", operation),
	)
}
