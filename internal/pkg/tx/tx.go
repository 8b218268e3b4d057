package tx

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/grpc"
)

type key string

// KeyTx is the context key under which the middleware stores the
// transaction runner for the current request.
const KeyTx = key("tx")

// DbRepo is the subset of the repository the transaction runner needs.
type DbRepo interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Tx struct {
	DbRepo DbRepo
}

// TxExecute runs cb inside a single database transaction. The runner is
// taken from the request context, so handlers and services stay unaware of
// the concrete repository.
func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok {
		return fmt.Errorf("transaction runner is not available in context")
	}

	return t.DbRepo.WithTx(ctx, cb)
}

func TxMiddlewareHTTP(repo DbRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), KeyTx, Tx{DbRepo: repo})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func TxMiddlewareGRPC(repo DbRepo) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		ctx = context.WithValue(ctx, KeyTx, Tx{DbRepo: repo})
		return handler(ctx, req)
	}
}
