package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const DiaryServiceName = "diarykeeper.v1.DiaryService"

const (
	DiaryService_Ping_FullMethodName                  = "/" + DiaryServiceName + "/Ping"
	DiaryService_ListEntries_FullMethodName           = "/" + DiaryServiceName + "/ListEntries"
	DiaryService_GetEntry_FullMethodName              = "/" + DiaryServiceName + "/GetEntry"
	DiaryService_CreateEntry_FullMethodName           = "/" + DiaryServiceName + "/CreateEntry"
	DiaryService_UpdateEntry_FullMethodName           = "/" + DiaryServiceName + "/UpdateEntry"
	DiaryService_DeleteEntry_FullMethodName           = "/" + DiaryServiceName + "/DeleteEntry"
	DiaryService_RequestInsight_FullMethodName        = "/" + DiaryServiceName + "/RequestInsight"
	DiaryService_RequestRecommendation_FullMethodName = "/" + DiaryServiceName + "/RequestRecommendation"
	DiaryService_AdvisorStatus_FullMethodName         = "/" + DiaryServiceName + "/AdvisorStatus"
)

type DiaryServiceClient interface {
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*PingResponse, error)
	ListEntries(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ListEntriesResponse, error)
	GetEntry(ctx context.Context, in *GetEntryRequest, opts ...grpc.CallOption) (*Entry, error)
	CreateEntry(ctx context.Context, in *CreateEntryRequest, opts ...grpc.CallOption) (*Entry, error)
	UpdateEntry(ctx context.Context, in *UpdateEntryRequest, opts ...grpc.CallOption) (*Entry, error)
	DeleteEntry(ctx context.Context, in *DeleteEntryRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	RequestInsight(ctx context.Context, in *InsightRequest, opts ...grpc.CallOption) (*InsightResponse, error)
	RequestRecommendation(ctx context.Context, in *RecommendationRequest, opts ...grpc.CallOption) (*InsightResponse, error)
	AdvisorStatus(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*AdvisorStatusResponse, error)
}

type diaryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDiaryServiceClient(cc grpc.ClientConnInterface) DiaryServiceClient {
	return &diaryServiceClient{cc: cc}
}

func (c *diaryServiceClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, DiaryService_Ping_FullMethodName, in, opts)
}

func (c *diaryServiceClient) ListEntries(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ListEntriesResponse, error) {
	return invoke[ListEntriesResponse](ctx, c.cc, DiaryService_ListEntries_FullMethodName, in, opts)
}

func (c *diaryServiceClient) GetEntry(ctx context.Context, in *GetEntryRequest, opts ...grpc.CallOption) (*Entry, error) {
	return invoke[Entry](ctx, c.cc, DiaryService_GetEntry_FullMethodName, in, opts)
}

func (c *diaryServiceClient) CreateEntry(ctx context.Context, in *CreateEntryRequest, opts ...grpc.CallOption) (*Entry, error) {
	return invoke[Entry](ctx, c.cc, DiaryService_CreateEntry_FullMethodName, in, opts)
}

func (c *diaryServiceClient) UpdateEntry(ctx context.Context, in *UpdateEntryRequest, opts ...grpc.CallOption) (*Entry, error) {
	return invoke[Entry](ctx, c.cc, DiaryService_UpdateEntry_FullMethodName, in, opts)
}

func (c *diaryServiceClient) DeleteEntry(ctx context.Context, in *DeleteEntryRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, DiaryService_DeleteEntry_FullMethodName, in, opts)
}

func (c *diaryServiceClient) RequestInsight(ctx context.Context, in *InsightRequest, opts ...grpc.CallOption) (*InsightResponse, error) {
	return invoke[InsightResponse](ctx, c.cc, DiaryService_RequestInsight_FullMethodName, in, opts)
}

func (c *diaryServiceClient) RequestRecommendation(ctx context.Context, in *RecommendationRequest, opts ...grpc.CallOption) (*InsightResponse, error) {
	return invoke[InsightResponse](ctx, c.cc, DiaryService_RequestRecommendation_FullMethodName, in, opts)
}

func (c *diaryServiceClient) AdvisorStatus(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*AdvisorStatusResponse, error) {
	return invoke[AdvisorStatusResponse](ctx, c.cc, DiaryService_AdvisorStatus_FullMethodName, in, opts)
}

type DiaryServiceServer interface {
	Ping(context.Context, *emptypb.Empty) (*PingResponse, error)
	ListEntries(context.Context, *emptypb.Empty) (*ListEntriesResponse, error)
	GetEntry(context.Context, *GetEntryRequest) (*Entry, error)
	CreateEntry(context.Context, *CreateEntryRequest) (*Entry, error)
	UpdateEntry(context.Context, *UpdateEntryRequest) (*Entry, error)
	DeleteEntry(context.Context, *DeleteEntryRequest) (*emptypb.Empty, error)
	RequestInsight(context.Context, *InsightRequest) (*InsightResponse, error)
	RequestRecommendation(context.Context, *RecommendationRequest) (*InsightResponse, error)
	AdvisorStatus(context.Context, *emptypb.Empty) (*AdvisorStatusResponse, error)
}

var DiaryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: DiaryServiceName,
	HandlerType: (*DiaryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: unaryHandler(DiaryService_Ping_FullMethodName, DiaryServiceServer.Ping)},
		{MethodName: "ListEntries", Handler: unaryHandler(DiaryService_ListEntries_FullMethodName, DiaryServiceServer.ListEntries)},
		{MethodName: "GetEntry", Handler: unaryHandler(DiaryService_GetEntry_FullMethodName, DiaryServiceServer.GetEntry)},
		{MethodName: "CreateEntry", Handler: unaryHandler(DiaryService_CreateEntry_FullMethodName, DiaryServiceServer.CreateEntry)},
		{MethodName: "UpdateEntry", Handler: unaryHandler(DiaryService_UpdateEntry_FullMethodName, DiaryServiceServer.UpdateEntry)},
		{MethodName: "DeleteEntry", Handler: unaryHandler(DiaryService_DeleteEntry_FullMethodName, DiaryServiceServer.DeleteEntry)},
		{MethodName: "RequestInsight", Handler: unaryHandler(DiaryService_RequestInsight_FullMethodName, DiaryServiceServer.RequestInsight)},
		{MethodName: "RequestRecommendation", Handler: unaryHandler(DiaryService_RequestRecommendation_FullMethodName, DiaryServiceServer.RequestRecommendation)},
		{MethodName: "AdvisorStatus", Handler: unaryHandler(DiaryService_AdvisorStatus_FullMethodName, DiaryServiceServer.AdvisorStatus)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "diarykeeper/v1/diary.proto",
}

func RegisterDiaryServiceServer(s grpc.ServiceRegistrar, srv DiaryServiceServer) {
	s.RegisterService(&DiaryService_ServiceDesc, srv)
}
