package errors

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

func appendMetaFromCtx(ctx context.Context, meta []slog.Attr) []slog.Attr {
	if ctx == nil {
		return meta
	}
	parent, ok := ctx.Value(ctxKey{}).([]slog.Attr)
	if !ok {
		return meta
	}
	return append(meta, parent...)
}

// AddMetaToCtx adds metadata to the context that will be added to the error once WrapMetaCtx is called.
// It creates a new slice each time to prevent data races.
func AddMetaToCtx(ctx context.Context, meta ...slog.Attr) context.Context {
	if ctx == nil {
		return nil
	}
	return context.WithValue(ctx, ctxKey{}, appendMetaFromCtx(ctx, meta))
}

// WrapMetaCtx is WrapMeta that also attaches any metadata previously added to ctx with AddMetaToCtx.
// Like WrapMeta it returns nil if err is nil.
func WrapMetaCtx(ctx context.Context, err error, meta ...slog.Attr) error {
	if err == nil {
		return nil
	}
	return metaErr{error: err, meta: appendMetaFromCtx(ctx, meta)}
}
