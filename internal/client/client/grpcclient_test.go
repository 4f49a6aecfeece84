package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/diarykeeper/internal/common"
	pb "github.com/dmitrijs2005/diarykeeper/internal/proto"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

/*************
 * Fake pb clients
 *************/

type fakeDiary struct {
	lastGet       *pb.GetEntryRequest
	lastCreate    *pb.CreateEntryRequest
	lastUpdate    *pb.UpdateEntryRequest
	lastDelete    *pb.DeleteEntryRequest
	lastInsight   *pb.InsightRequest
	lastRecommend *pb.RecommendationRequest

	pingResp   *pb.PingResponse
	listResp   *pb.ListEntriesResponse
	entryResp  *pb.Entry
	insight    *pb.InsightResponse
	statusResp *pb.AdvisorStatusResponse
	err        error
}

func (f *fakeDiary) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	return f.pingResp, f.err
}
func (f *fakeDiary) ListEntries(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*pb.ListEntriesResponse, error) {
	return f.listResp, f.err
}
func (f *fakeDiary) GetEntry(ctx context.Context, in *pb.GetEntryRequest, opts ...grpc.CallOption) (*pb.Entry, error) {
	f.lastGet = in
	return f.entryResp, f.err
}
func (f *fakeDiary) CreateEntry(ctx context.Context, in *pb.CreateEntryRequest, opts ...grpc.CallOption) (*pb.Entry, error) {
	f.lastCreate = in
	return f.entryResp, f.err
}
func (f *fakeDiary) UpdateEntry(ctx context.Context, in *pb.UpdateEntryRequest, opts ...grpc.CallOption) (*pb.Entry, error) {
	f.lastUpdate = in
	return f.entryResp, f.err
}
func (f *fakeDiary) DeleteEntry(ctx context.Context, in *pb.DeleteEntryRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	f.lastDelete = in
	return &emptypb.Empty{}, f.err
}
func (f *fakeDiary) RequestInsight(ctx context.Context, in *pb.InsightRequest, opts ...grpc.CallOption) (*pb.InsightResponse, error) {
	f.lastInsight = in
	return f.insight, f.err
}
func (f *fakeDiary) RequestRecommendation(ctx context.Context, in *pb.RecommendationRequest, opts ...grpc.CallOption) (*pb.InsightResponse, error) {
	f.lastRecommend = in
	return f.insight, f.err
}
func (f *fakeDiary) AdvisorStatus(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*pb.AdvisorStatusResponse, error) {
	return f.statusResp, f.err
}

type fakeIdentity struct {
	lastSignUp  *pb.SignUpRequest
	lastSignIn  *pb.SignInRequest
	lastRefresh *pb.RefreshRequest
	lastSignOut *pb.SignOutRequest

	resp *pb.TokenResponse
	err  error
}

func (f *fakeIdentity) SignUp(ctx context.Context, in *pb.SignUpRequest, opts ...grpc.CallOption) (*pb.TokenResponse, error) {
	f.lastSignUp = in
	return f.resp, f.err
}
func (f *fakeIdentity) SignIn(ctx context.Context, in *pb.SignInRequest, opts ...grpc.CallOption) (*pb.TokenResponse, error) {
	f.lastSignIn = in
	return f.resp, f.err
}
func (f *fakeIdentity) Refresh(ctx context.Context, in *pb.RefreshRequest, opts ...grpc.CallOption) (*pb.TokenResponse, error) {
	f.lastRefresh = in
	return f.resp, f.err
}
func (f *fakeIdentity) SignOut(ctx context.Context, in *pb.SignOutRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	f.lastSignOut = in
	return &emptypb.Empty{}, f.err
}

type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) Token(ctx context.Context) (string, error) { return s.token, s.err }

/*************
 * authInterceptor tests
 *************/

func TestInterceptor_AttachesBearerToken(t *testing.T) {
	c := &GRPCClient{tokens: staticTokens{token: "T1"}, timeout: time.Second}

	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		require.Equal(t, []string{"Bearer T1"}, md.Get(common.AuthorizationHeaderName))
		require.Empty(t, md.Get(common.APIKeyHeaderName))
		_, ok := ctx.Deadline()
		require.True(t, ok)
		return nil
	}

	err := c.authInterceptor(context.Background(), pb.DiaryService_ListEntries_FullMethodName, nil, nil, nil, invoker)
	require.NoError(t, err)
}

func TestInterceptor_NoSessionIsUnauthorized(t *testing.T) {
	c := &GRPCClient{}
	called := false
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		called = true
		return nil
	}

	err := c.authInterceptor(context.Background(), pb.DiaryService_GetEntry_FullMethodName, nil, nil, nil, invoker)
	require.ErrorIs(t, err, common.ErrUnauthorized)
	require.False(t, called)
}

func TestInterceptor_TokenSourceErrorPropagates(t *testing.T) {
	boom := common.NewError(common.ErrNetwork, "refresh failed")
	c := &GRPCClient{tokens: staticTokens{err: boom}}
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		t.Fatal("invoker must not be called")
		return nil
	}

	err := c.authInterceptor(context.Background(), pb.DiaryService_DeleteEntry_FullMethodName, nil, nil, nil, invoker)
	require.ErrorIs(t, err, common.ErrNetwork)
}

func TestInterceptor_PingIsPublic(t *testing.T) {
	c := &GRPCClient{}
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		require.Empty(t, md.Get(common.AuthorizationHeaderName))
		return nil
	}
	require.NoError(t, c.authInterceptor(context.Background(), pb.DiaryService_Ping_FullMethodName, nil, nil, nil, invoker))
}

func TestInterceptor_IdentityCallsCarryAPIKey(t *testing.T) {
	c := &GRPCClient{apiKey: "K", tokens: staticTokens{token: "T"}}
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		require.Equal(t, []string{"K"}, md.Get(common.APIKeyHeaderName))
		require.Empty(t, md.Get(common.AuthorizationHeaderName))
		return nil
	}
	require.NoError(t, c.authInterceptor(context.Background(), pb.IdentityService_SignIn_FullMethodName, nil, nil, nil, invoker))
}

func TestUseTokenSource_ReplacesSource(t *testing.T) {
	c := &GRPCClient{}
	require.Nil(t, c.tokenSource())
	c.UseTokenSource(staticTokens{token: "x"})
	tok, err := c.tokenSource().Token(context.Background())
	require.NoError(t, err)
	require.Equal(t, "x", tok)
}

/*************
 * mapError tests
 *************/

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		in         error
		kind       error
		wantDetail string
	}{
		{"not found", status.Error(codes.NotFound, "Diary not found"), common.ErrNotFound, "Diary not found"},
		{"unauthenticated", status.Error(codes.Unauthenticated, "bad token"), common.ErrUnauthorized, "bad token"},
		{"permission denied", status.Error(codes.PermissionDenied, "nope"), common.ErrUnauthorized, "nope"},
		{"unavailable", status.Error(codes.Unavailable, "conn refused"), common.ErrNetwork, ""},
		{"deadline", status.Error(codes.DeadlineExceeded, "slow"), common.ErrNetwork, ""},
		{"invalid argument", status.Error(codes.InvalidArgument, "title required"), common.ErrValidation, "title required"},
		{"internal", status.Error(codes.Internal, "Failed to generate recommendation: Ollama is down"), common.ErrServer, "Failed to generate recommendation: Ollama is down"},
		{"already exists", status.Error(codes.AlreadyExists, "email taken"), common.ErrServer, "email taken"},
		{"plain error", errors.New("dial tcp: refused"), common.ErrNetwork, ""},
		{"context deadline", context.DeadlineExceeded, common.ErrNetwork, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapError(tt.in)
			require.ErrorIs(t, err, tt.kind)
			require.Equal(t, tt.wantDetail, common.Detail(err))
		})
	}
}

func TestMapError_NilAndPassThrough(t *testing.T) {
	require.NoError(t, mapError(nil))
	require.Same(t, ErrNotSignedIn, mapError(ErrNotSignedIn))
}

/*************
 * wrapper method tests
 *************/

func TestEntryCalls(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	f := &fakeDiary{entryResp: &pb.Entry{
		Id: "e1", Title: "T", Content: "C", AiInsight: "nice",
		CreatedAt: timestamppb.New(created), UpdatedAt: timestamppb.New(created),
	}}
	c := &GRPCClient{client: f}
	ctx := context.Background()

	e, err := c.CreateEntry(ctx, "T", "C")
	require.NoError(t, err)
	require.Equal(t, "e1", e.ID)
	require.Equal(t, "nice", e.AIInsight)
	require.True(t, e.CreatedAt.Equal(created))
	require.Equal(t, "T", f.lastCreate.Title)

	_, err = c.UpdateEntry(ctx, "e1", "T2", "C2")
	require.NoError(t, err)
	require.Equal(t, &pb.UpdateEntryRequest{Id: "e1", Title: "T2", Content: "C2"}, f.lastUpdate)

	_, err = c.GetEntry(ctx, "e1")
	require.NoError(t, err)
	require.Equal(t, "e1", f.lastGet.Id)

	require.NoError(t, c.DeleteEntry(ctx, "e1"))
	require.Equal(t, "e1", f.lastDelete.Id)
}

func TestListEntries(t *testing.T) {
	f := &fakeDiary{listResp: &pb.ListEntriesResponse{Entries: []*pb.Entry{{Id: "a"}, {Id: "b"}}}}
	c := &GRPCClient{client: f}

	got, err := c.ListEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "b", got[1].ID)
}

func TestAICalls(t *testing.T) {
	f := &fakeDiary{insight: &pb.InsightResponse{Insight: "keep going"}}
	c := &GRPCClient{client: f}
	ctx := context.Background()

	s, err := c.RequestInsight(ctx, "e1")
	require.NoError(t, err)
	require.Equal(t, "keep going", s)
	require.Equal(t, "e1", f.lastInsight.Id)

	s, err = c.RequestRecommendation(ctx, "T", "C")
	require.NoError(t, err)
	require.Equal(t, "keep going", s)
	require.Equal(t, "C", f.lastRecommend.Content)
}

func TestCalls_MapErrors(t *testing.T) {
	f := &fakeDiary{err: status.Error(codes.NotFound, "Diary not found")}
	c := &GRPCClient{client: f}

	_, err := c.GetEntry(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrNotFound)

	err = c.DeleteEntry(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestPing(t *testing.T) {
	c := &GRPCClient{client: &fakeDiary{pingResp: &pb.PingResponse{Status: "OK"}}}
	require.NoError(t, c.Ping(context.Background()))

	c = &GRPCClient{client: &fakeDiary{pingResp: &pb.PingResponse{Status: "DEGRADED"}}}
	require.ErrorIs(t, c.Ping(context.Background()), common.ErrNetwork)
}

func TestAdvisorStatus(t *testing.T) {
	f := &fakeDiary{statusResp: &pb.AdvisorStatusResponse{Available: true, Model: "llama3.2:1b", Models: []string{"llama3.2:1b"}}}
	c := &GRPCClient{client: f}

	st, err := c.AdvisorStatus(context.Background())
	require.NoError(t, err)
	require.True(t, st.Available)
	require.Equal(t, "llama3.2:1b", st.Model)
}

func TestIdentityCalls(t *testing.T) {
	exp := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	f := &fakeIdentity{resp: &pb.TokenResponse{AccessToken: "A", RefreshToken: "R", ExpiresAt: timestamppb.New(exp)}}
	c := &GRPCClient{identity: f}
	ctx := context.Background()

	p, err := c.SignUp(ctx, "a@b.c", "pw", "Ann")
	require.NoError(t, err)
	require.Equal(t, "A", p.AccessToken)
	require.True(t, p.ExpiresAt.Equal(exp))
	require.Equal(t, "Ann", f.lastSignUp.DisplayName)

	_, err = c.SignIn(ctx, "a@b.c", "pw")
	require.NoError(t, err)
	require.Equal(t, "a@b.c", f.lastSignIn.Email)

	_, err = c.Refresh(ctx, "R")
	require.NoError(t, err)
	require.Equal(t, "R", f.lastRefresh.RefreshToken)

	require.NoError(t, c.SignOut(ctx, "R"))
	require.Equal(t, "R", f.lastSignOut.RefreshToken)
}

func TestIdentityCalls_MapErrors(t *testing.T) {
	f := &fakeIdentity{err: status.Error(codes.Unauthenticated, "invalid credentials")}
	c := &GRPCClient{identity: f}

	_, err := c.SignIn(context.Background(), "a@b.c", "bad")
	require.ErrorIs(t, err, common.ErrUnauthorized)
	require.Equal(t, "invalid credentials", common.Detail(err))
}
