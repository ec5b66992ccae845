package adapter

import (
	"context"

	"github.com/MKhiriev/go-proxy-keeper/models"
	"google.golang.org/grpc"
)

const (
	proxyServiceName = "proxykeeper.ProxyService"

	getStateMethod = "/" + proxyServiceName + "/GetState"
	startMethod    = "/" + proxyServiceName + "/Start"
	stopMethod     = "/" + proxyServiceName + "/Stop"
)

// Empty is the request of every proxy service method and the reply of
// Start and Stop.
type Empty struct{}

// StateReply is the reply of GetState.
type StateReply struct {
	State models.ServiceState `json:"state"`
}

// ProxyServiceDesc describes the proxy service for grpc.Server. The service
// must be served with [ServerCodec] so that it speaks the same JSON encoding
// as the binder.
var ProxyServiceDesc = grpc.ServiceDesc{
	ServiceName: proxyServiceName,
	HandlerType: (*ProxyService)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetState", Handler: getStateHandler},
		{MethodName: "Start", Handler: startHandler},
		{MethodName: "Stop", Handler: stopHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proxykeeper/proxy_service",
}

// RegisterProxyServiceServer registers srv on s. Use it in the process that
// owns the proxy, together with [ServerCodec].
func RegisterProxyServiceServer(s grpc.ServiceRegistrar, srv ProxyService) {
	s.RegisterService(&ProxyServiceDesc, srv)
}

// ServerCodec forces the JSON codec on a grpc.Server.
func ServerCodec() grpc.ServerOption {
	return grpc.ForceServerCodec(jsonCodec{})
}

func getStateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}

	call := func(ctx context.Context, _ any) (any, error) {
		state, err := srv.(ProxyService).GetState(ctx)
		if err != nil {
			return nil, err
		}
		return &StateReply{State: state}, nil
	}
	if interceptor == nil {
		return call(ctx, in)
	}

	return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: getStateMethod}, call)
}

func startHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return commandHandler(srv, ctx, dec, interceptor, startMethod, ProxyService.Start)
}

func stopHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return commandHandler(srv, ctx, dec, interceptor, stopMethod, ProxyService.Stop)
}

func commandHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
	fullMethod string,
	command func(ProxyService, context.Context) error,
) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}

	call := func(ctx context.Context, _ any) (any, error) {
		if err := command(srv.(ProxyService), ctx); err != nil {
			return nil, err
		}
		return &Empty{}, nil
	}
	if interceptor == nil {
		return call(ctx, in)
	}

	return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}, call)
}
