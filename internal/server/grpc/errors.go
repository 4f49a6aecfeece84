package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/diarykeeper/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus translates a service error into a gRPC status. The detail of a
// common.Error becomes the status message.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	msg := common.Detail(err)

	switch {
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, msg)
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, common.MessageOr(err, "Diary not found"))
	case errors.Is(err, common.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, msg)
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, msg)
	}

	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, common.MessageOr(err, "internal error"))
}
