package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const IdentityServiceName = "diarykeeper.v1.IdentityService"

const (
	IdentityService_SignUp_FullMethodName  = "/" + IdentityServiceName + "/SignUp"
	IdentityService_SignIn_FullMethodName  = "/" + IdentityServiceName + "/SignIn"
	IdentityService_Refresh_FullMethodName = "/" + IdentityServiceName + "/Refresh"
	IdentityService_SignOut_FullMethodName = "/" + IdentityServiceName + "/SignOut"
)

type IdentityServiceClient interface {
	SignUp(ctx context.Context, in *SignUpRequest, opts ...grpc.CallOption) (*TokenResponse, error)
	SignIn(ctx context.Context, in *SignInRequest, opts ...grpc.CallOption) (*TokenResponse, error)
	Refresh(ctx context.Context, in *RefreshRequest, opts ...grpc.CallOption) (*TokenResponse, error)
	SignOut(ctx context.Context, in *SignOutRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type identityServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewIdentityServiceClient(cc grpc.ClientConnInterface) IdentityServiceClient {
	return &identityServiceClient{cc: cc}
}

func (c *identityServiceClient) SignUp(ctx context.Context, in *SignUpRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	return invoke[TokenResponse](ctx, c.cc, IdentityService_SignUp_FullMethodName, in, opts)
}

func (c *identityServiceClient) SignIn(ctx context.Context, in *SignInRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	return invoke[TokenResponse](ctx, c.cc, IdentityService_SignIn_FullMethodName, in, opts)
}

func (c *identityServiceClient) Refresh(ctx context.Context, in *RefreshRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	return invoke[TokenResponse](ctx, c.cc, IdentityService_Refresh_FullMethodName, in, opts)
}

func (c *identityServiceClient) SignOut(ctx context.Context, in *SignOutRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, IdentityService_SignOut_FullMethodName, in, opts)
}

type IdentityServiceServer interface {
	SignUp(context.Context, *SignUpRequest) (*TokenResponse, error)
	SignIn(context.Context, *SignInRequest) (*TokenResponse, error)
	Refresh(context.Context, *RefreshRequest) (*TokenResponse, error)
	SignOut(context.Context, *SignOutRequest) (*emptypb.Empty, error)
}

var IdentityService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: IdentityServiceName,
	HandlerType: (*IdentityServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SignUp", Handler: unaryHandler(IdentityService_SignUp_FullMethodName, IdentityServiceServer.SignUp)},
		{MethodName: "SignIn", Handler: unaryHandler(IdentityService_SignIn_FullMethodName, IdentityServiceServer.SignIn)},
		{MethodName: "Refresh", Handler: unaryHandler(IdentityService_Refresh_FullMethodName, IdentityServiceServer.Refresh)},
		{MethodName: "SignOut", Handler: unaryHandler(IdentityService_SignOut_FullMethodName, IdentityServiceServer.SignOut)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "diarykeeper/v1/identity.proto",
}

func RegisterIdentityServiceServer(s grpc.ServiceRegistrar, srv IdentityServiceServer) {
	s.RegisterService(&IdentityService_ServiceDesc, srv)
}
