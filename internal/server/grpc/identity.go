package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/diarykeeper/internal/proto"
	"github.com/dmitrijs2005/diarykeeper/internal/server/services"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func tokensToPB(p *services.TokenPair) *pb.TokenResponse {
	return &pb.TokenResponse{
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		ExpiresAt:    timestamppb.New(p.ExpiresAt),
	}
}

func (s *GRPCServer) SignUp(ctx context.Context, req *pb.SignUpRequest) (*pb.TokenResponse, error) {
	s.logger.Info(ctx, "Registration request")

	tokens, err := s.users.Register(ctx, req.Email, req.Password, req.DisplayName)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "email", req.Email)
	return tokensToPB(tokens), nil
}

func (s *GRPCServer) SignIn(ctx context.Context, req *pb.SignInRequest) (*pb.TokenResponse, error) {
	tokens, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return tokensToPB(tokens), nil
}

func (s *GRPCServer) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.TokenResponse, error) {
	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return tokensToPB(tokens), nil
}

func (s *GRPCServer) SignOut(ctx context.Context, req *pb.SignOutRequest) (*emptypb.Empty, error) {
	if err := s.users.Logout(ctx, req.RefreshToken); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

var (
	_ pb.DiaryServiceServer    = (*GRPCServer)(nil)
	_ pb.IdentityServiceServer = (*GRPCServer)(nil)
)
