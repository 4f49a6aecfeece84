package client

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/diarykeeper/internal/client/models"
	"github.com/dmitrijs2005/diarykeeper/internal/common"
	pb "github.com/dmitrijs2005/diarykeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
)

// DefaultRequestTimeout bounds a single call when no timeout is configured.
const DefaultRequestTimeout = 30 * time.Second

type GRPCClient struct {
	endpointURL string
	apiKey      string
	timeout     time.Duration
	dialOpts    []grpc.DialOption

	conn     *grpc.ClientConn
	client   pb.DiaryServiceClient
	identity pb.IdentityServiceClient

	mu     sync.RWMutex
	tokens TokenSource
}

type Option func(*GRPCClient)

// WithAPIKey sets the key presented to the identity service.
func WithAPIKey(key string) Option {
	return func(c *GRPCClient) { c.apiKey = key }
}

// WithRequestTimeout bounds every call; d <= 0 keeps the default.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *GRPCClient) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithDialOptions appends extra dial options (used by tests for bufconn).
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *GRPCClient) { c.dialOpts = append(c.dialOpts, opts...) }
}

// WithTokenSource sets the bearer token source at construction time.
func WithTokenSource(ts TokenSource) Option {
	return func(c *GRPCClient) { c.tokens = ts }
}

func NewGRPCClient(endpointURL string, opts ...Option) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: DefaultRequestTimeout}
	for _, o := range opts {
		o(c)
	}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.authInterceptor),
	}, s.dialOpts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewDiaryServiceClient(conn)
	s.identity = pb.NewIdentityServiceClient(conn)
	return nil
}

// UseTokenSource installs the bearer token source. The session manager is
// built on top of this client, so it is wired in after construction.
func (s *GRPCClient) UseTokenSource(ts TokenSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = ts
}

func (s *GRPCClient) tokenSource() TokenSource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens
}

func withHeader(ctx context.Context, name, value string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(name, value)
	return metadata.NewOutgoingContext(ctx, md)
}

// needsToken reports whether method is a Diary API call that must carry a
// bearer token. Ping is public.
func needsToken(method string) bool {
	if !strings.HasPrefix(method, "/"+pb.DiaryServiceName+"/") {
		return false
	}
	return method != pb.DiaryService_Ping_FullMethodName
}

func (s *GRPCClient) authInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	switch {
	case strings.HasPrefix(method, "/"+pb.IdentityServiceName+"/"):
		if s.apiKey != "" {
			ctx = withHeader(ctx, common.APIKeyHeaderName, s.apiKey)
		}
	case needsToken(method):
		ts := s.tokenSource()
		if ts == nil {
			return ErrNotSignedIn
		}
		token, err := ts.Token(ctx)
		if err != nil {
			return err
		}
		if token == "" {
			return ErrNotSignedIn
		}
		ctx = withHeader(ctx, common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return mapError(err)
	}
	if resp.Status != "OK" {
		return common.NewError(common.ErrNetwork, "server reported status "+resp.Status)
	}
	return nil
}

func entryFromPB(e *pb.Entry) models.Entry {
	if e == nil {
		return models.Entry{}
	}
	out := models.Entry{
		ID:        e.Id,
		Title:     e.Title,
		Content:   e.Content,
		AIInsight: e.AiInsight,
	}
	if e.CreatedAt != nil {
		out.CreatedAt = e.CreatedAt.AsTime()
	}
	if e.UpdatedAt != nil {
		out.UpdatedAt = e.UpdatedAt.AsTime()
	}
	return out
}

func (s *GRPCClient) ListEntries(ctx context.Context) ([]models.Entry, error) {
	resp, err := s.client.ListEntries(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, mapError(err)
	}
	entries := make([]models.Entry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		entries = append(entries, entryFromPB(e))
	}
	return entries, nil
}

func (s *GRPCClient) GetEntry(ctx context.Context, id string) (models.Entry, error) {
	resp, err := s.client.GetEntry(ctx, &pb.GetEntryRequest{Id: id})
	if err != nil {
		return models.Entry{}, mapError(err)
	}
	return entryFromPB(resp), nil
}

func (s *GRPCClient) CreateEntry(ctx context.Context, title, content string) (models.Entry, error) {
	resp, err := s.client.CreateEntry(ctx, &pb.CreateEntryRequest{Title: title, Content: content})
	if err != nil {
		return models.Entry{}, mapError(err)
	}
	return entryFromPB(resp), nil
}

func (s *GRPCClient) UpdateEntry(ctx context.Context, id, title, content string) (models.Entry, error) {
	resp, err := s.client.UpdateEntry(ctx, &pb.UpdateEntryRequest{Id: id, Title: title, Content: content})
	if err != nil {
		return models.Entry{}, mapError(err)
	}
	return entryFromPB(resp), nil
}

func (s *GRPCClient) DeleteEntry(ctx context.Context, id string) error {
	_, err := s.client.DeleteEntry(ctx, &pb.DeleteEntryRequest{Id: id})
	return mapError(err)
}

func (s *GRPCClient) RequestInsight(ctx context.Context, id string) (string, error) {
	resp, err := s.client.RequestInsight(ctx, &pb.InsightRequest{Id: id})
	if err != nil {
		return "", mapError(err)
	}
	return resp.Insight, nil
}

func (s *GRPCClient) RequestRecommendation(ctx context.Context, title, content string) (string, error) {
	resp, err := s.client.RequestRecommendation(ctx, &pb.RecommendationRequest{Title: title, Content: content})
	if err != nil {
		return "", mapError(err)
	}
	return resp.Insight, nil
}

func (s *GRPCClient) AdvisorStatus(ctx context.Context) (models.AdvisorStatus, error) {
	resp, err := s.client.AdvisorStatus(ctx, &emptypb.Empty{})
	if err != nil {
		return models.AdvisorStatus{}, mapError(err)
	}
	return models.AdvisorStatus{
		Available:      resp.Available,
		ModelAvailable: resp.ModelAvailable,
		Model:          resp.Model,
		Models:         resp.Models,
		Error:          resp.Error,
	}, nil
}

func tokenPairFromPB(r *pb.TokenResponse) models.TokenPair {
	p := models.TokenPair{AccessToken: r.AccessToken, RefreshToken: r.RefreshToken}
	if r.ExpiresAt != nil {
		p.ExpiresAt = r.ExpiresAt.AsTime()
	}
	return p
}

func (s *GRPCClient) SignUp(ctx context.Context, email, password, displayName string) (models.TokenPair, error) {
	resp, err := s.identity.SignUp(ctx, &pb.SignUpRequest{Email: email, Password: password, DisplayName: displayName})
	if err != nil {
		return models.TokenPair{}, mapError(err)
	}
	return tokenPairFromPB(resp), nil
}

func (s *GRPCClient) SignIn(ctx context.Context, email, password string) (models.TokenPair, error) {
	resp, err := s.identity.SignIn(ctx, &pb.SignInRequest{Email: email, Password: password})
	if err != nil {
		return models.TokenPair{}, mapError(err)
	}
	return tokenPairFromPB(resp), nil
}

func (s *GRPCClient) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	resp, err := s.identity.Refresh(ctx, &pb.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return models.TokenPair{}, mapError(err)
	}
	return tokenPairFromPB(resp), nil
}

func (s *GRPCClient) SignOut(ctx context.Context, refreshToken string) error {
	_, err := s.identity.SignOut(ctx, &pb.SignOutRequest{RefreshToken: refreshToken})
	return mapError(err)
}

var (
	_ Client     = (*GRPCClient)(nil)
	_ AuthClient = (*GRPCClient)(nil)
)
