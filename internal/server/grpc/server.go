// Package grpc exposes the diary and identity services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/diarykeeper/internal/logging"
	pb "github.com/dmitrijs2005/diarykeeper/internal/proto"
	"github.com/dmitrijs2005/diarykeeper/internal/server/ai"
	"github.com/dmitrijs2005/diarykeeper/internal/server/models"
	"github.com/dmitrijs2005/diarykeeper/internal/server/services"
	"google.golang.org/grpc"
)

// UserService is the identity logic the server delegates to.
type UserService interface {
	Register(ctx context.Context, email, password, displayName string) (*services.TokenPair, error)
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

// EntryService is the diary logic the server delegates to.
type EntryService interface {
	List(ctx context.Context, userID string) ([]models.Entry, error)
	Get(ctx context.Context, userID, id string) (*models.Entry, error)
	Create(ctx context.Context, userID, title, content string) (*models.Entry, error)
	Update(ctx context.Context, userID, id, title, content string) (*models.Entry, error)
	Delete(ctx context.Context, userID, id string) error
	GenerateInsight(ctx context.Context, userID, id string) (string, error)
	Recommend(ctx context.Context, userID, title, content string) (string, error)
	AdvisorStatus(ctx context.Context) ai.Status
}

type GRPCServer struct {
	address   string
	users     UserService
	entries   EntryService
	logger    logging.Logger
	jwtSecret []byte
	apiKey    string
}

func NewGRPCServer(a string, l logging.Logger, us UserService, es EntryService, secretKey, apiKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		entries:   es,
		jwtSecret: []byte(secretKey),
		apiKey:    apiKey,
	}
}

// NewServer builds a grpc.Server with both services and the auth
// interceptors registered.
func (s *GRPCServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(s.apiKeyInterceptor, s.accessTokenInterceptor))
	srv := grpc.NewServer(opts...)
	pb.RegisterDiaryServiceServer(srv, s)
	pb.RegisterIdentityServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
