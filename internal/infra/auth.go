package infra

import (
	"context"
	"net/http"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/s21platform/stream-service/internal/config"
)

// The platform gateway terminates end-user auth and forwards the verified
// identity in these headers / metadata keys.
const (
	uuidHeader = "uuid"
	roleHeader = "role"
)

func AuthInterceptorHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userUUID := r.Header.Get(uuidHeader)
		if userUUID == "" {
			http.Error(w, "missing user uuid", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, userUUID)
		if role := r.Header.Get(roleHeader); role != "" {
			ctx = context.WithValue(ctx, config.KeyRole, role)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func AuthInterceptorGRPC(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	// health checks come from the infrastructure, not from users
	if strings.HasPrefix(info.FullMethod, "/grpc.health.v1.Health/") {
		return handler(ctx, req)
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing metadata")
	}

	values := md.Get(uuidHeader)
	if len(values) == 0 || values[0] == "" {
		return nil, status.Error(codes.Unauthenticated, "missing user uuid")
	}

	ctx = context.WithValue(ctx, config.KeyUUID, values[0])
	if roles := md.Get(roleHeader); len(roles) > 0 {
		ctx = context.WithValue(ctx, config.KeyRole, roles[0])
	}

	return handler(ctx, req)
}
