package httpserver

import (
	"context"

	"github.com/vkazmin/blogcore/internal/model"
)

type ctxKey string

const userKey ctxKey = "blog.user"

// WithUser stores the resolved identity in the request context.
func WithUser(ctx context.Context, u *model.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromCtx fetches the resolved identity from the request context.
func UserFromCtx(ctx context.Context) (*model.User, bool) {
	u, ok := ctx.Value(userKey).(*model.User)
	return u, ok
}
