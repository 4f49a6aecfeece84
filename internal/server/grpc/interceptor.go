package grpc

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/dmitrijs2005/diarykeeper/internal/common"
	pb "github.com/dmitrijs2005/diarykeeper/internal/proto"
	"github.com/dmitrijs2005/diarykeeper/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userIDKey ctxKey = "userID"

func userIDFromContext(ctx context.Context) (string, error) {
	id, ok := ctx.Value(userIDKey).(string)
	if !ok || id == "" {
		return "", status.Error(codes.Unauthenticated, "missing user")
	}
	return id, nil
}

func firstHeader(ctx context.Context, name string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(name)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func isDiaryMethod(method string) bool {
	return strings.HasPrefix(method, "/"+pb.DiaryServiceName+"/") && method != pb.DiaryService_Ping_FullMethodName
}

// accessTokenInterceptor authenticates every DiaryService call except Ping
// and stores the caller's user id in the context.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !isDiaryMethod(info.FullMethod) {
		return handler(ctx, req)
	}

	accessToken, ok := strings.CutPrefix(firstHeader(ctx, common.AuthorizationHeaderName), common.BearerPrefix)
	if !ok || accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return handler(context.WithValue(ctx, userIDKey, userID), req)
}

// apiKeyInterceptor guards IdentityService when an API key is configured.
func (s *GRPCServer) apiKeyInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if s.apiKey == "" || !strings.HasPrefix(info.FullMethod, "/"+pb.IdentityServiceName+"/") {
		return handler(ctx, req)
	}

	key := firstHeader(ctx, common.APIKeyHeaderName)
	if subtle.ConstantTimeCompare([]byte(key), []byte(s.apiKey)) != 1 {
		return nil, status.Error(codes.Unauthenticated, "invalid API key")
	}
	return handler(ctx, req)
}
