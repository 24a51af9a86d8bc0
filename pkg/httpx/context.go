package httpx

import (
	"context"

	"github.com/fractalglobal/fgc/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyAppID  ctxKey = "app_id"
	CtxKeyClaims ctxKey = "claims"
)

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyAppID, c.AppID)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

// ClaimsFromContext returns the verified token claims placed by AuthnMiddleware.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return c, ok
}

// AppIDFromContext returns the client application of the verified token.
func AppIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyAppID).(string); ok {
		return v
	}
	return ""
}
