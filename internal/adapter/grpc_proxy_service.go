package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-proxy-keeper/models"
	"google.golang.org/grpc"
)

// grpcProxyService is the client side of [ProxyServiceDesc] on a shared
// connection owned by a binding.
type grpcProxyService struct {
	conn        *grpc.ClientConn
	callTimeout time.Duration
}

func newGRPCProxyService(conn *grpc.ClientConn, callTimeout time.Duration) *grpcProxyService {
	return &grpcProxyService{conn: conn, callTimeout: callTimeout}
}

// GetState implements [ProxyService].
func (p *grpcProxyService) GetState(ctx context.Context) (models.ServiceState, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var reply StateReply
	if err := p.conn.Invoke(ctx, getStateMethod, &Empty{}, &reply); err != nil {
		return 0, fmt.Errorf("%w: get state: %w", ErrRemoteCall, err)
	}

	return reply.State, nil
}

// Start implements [ProxyService].
func (p *grpcProxyService) Start(ctx context.Context) error {
	return p.command(ctx, startMethod, "start")
}

// Stop implements [ProxyService].
func (p *grpcProxyService) Stop(ctx context.Context) error {
	return p.command(ctx, stopMethod, "stop")
}

func (p *grpcProxyService) command(ctx context.Context, method, name string) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	if err := p.conn.Invoke(ctx, method, &Empty{}, &Empty{}); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRemoteCall, name, err)
	}

	return nil
}

func (p *grpcProxyService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.callTimeout)
}
