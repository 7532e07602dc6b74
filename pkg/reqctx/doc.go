// Package reqctx carries request-scoped values (request metadata and
// verified auth claims) through context.Context.
//
// Middleware sets them:
//
//	ctx = reqctx.WithRequestMeta(ctx, &reqctx.RequestMeta{RequestID: id})
//	ctx = reqctx.WithClaims(ctx, claims)
//
// Handlers and services read them:
//
//	owner, ok := reqctx.UserIDFromContext(ctx)
//	slog.InfoContext(ctx, "report generated", reqctx.LogAttrs(ctx)...)
//
// Claims are set only for requests whose bearer token verified.
package reqctx
